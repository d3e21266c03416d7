package primitive

import (
	"fmt"
	"strings"

	"layout-inspector/internal/common"
)

// DataModel selects the sizes of the C integer types that vary between platforms.
type DataModel int

const (
	LP64  DataModel = iota // long and pointers are 64-bit (Linux, macOS)
	ILP32                  // int, long and pointers are 32-bit
	LLP64                  // long stays 32-bit, pointers are 64-bit (Windows)
)

// DefaultDataModel is used when a schema or configuration does not name one.
const DefaultDataModel = LP64

// String returns the lowercase model name.
func (m DataModel) String() string {
	switch m {
	case LP64:
		return "lp64"
	case ILP32:
		return "ilp32"
	case LLP64:
		return "llp64"
	default:
		return common.UnknownStr
	}
}

// ParseDataModel parses a model name such as "lp64". The empty string yields DefaultDataModel.
func ParseDataModel(s string) (DataModel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultDataModel, nil
	case "lp64":
		return LP64, nil
	case "ilp32":
		return ILP32, nil
	case "llp64":
		return LLP64, nil
	default:
		return 0, fmt.Errorf("unknown data model %q (want lp64, ilp32 or llp64)", s)
	}
}

// DataModelNames lists the accepted model names.
func DataModelNames() []string {
	return []string{LP64.String(), ILP32.String(), LLP64.String()}
}

// pointerSize returns the size of pointers, size_t and long-sized words.
func (m DataModel) pointerSize() uint64 {
	if m == ILP32 {
		return 4
	}

	return 8
}

func (m DataModel) longSize() uint64 {
	if m == LP64 {
		return 8
	}

	return 4
}

func (m DataModel) longDoubleSize() uint64 {
	if m == LP64 {
		return 16
	}

	return 8
}

// Size returns the size in bytes of k under the data model.
func (k KindEnum) Size(m DataModel) uint64 {
	switch k {
	default:
		panic("size requested for invalid kind: " + k.String())
	case KindChar, KindSignedChar, KindUnsignedChar, KindBool, KindInt8, KindUint8:
		return 1
	case KindShort, KindUnsignedShort, KindInt16, KindUint16:
		return 2
	case KindInt, KindUnsignedInt, KindFloat, KindInt32, KindUint32:
		return 4
	case KindLongLong, KindUnsignedLongLong, KindDouble, KindInt64, KindUint64:
		return 8
	case KindLong, KindUnsignedLong:
		return m.longSize()
	case KindPointer, KindSizeT:
		return m.pointerSize()
	case KindLongDouble:
		return m.longDoubleSize()
	}
}

// Align returns the natural alignment of k under the data model.
// Every kind is aligned to its own size.
func (k KindEnum) Align(m DataModel) uint64 {
	return k.Size(m)
}
