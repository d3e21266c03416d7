package primitive

import (
	"strings"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindChar
	KindSignedChar
	KindUnsignedChar
	KindShort
	KindUnsignedShort
	KindInt
	KindUnsignedInt
	KindLong
	KindUnsignedLong
	KindLongLong
	KindUnsignedLongLong
	KindFloat
	KindDouble
	KindLongDouble
	KindPointer
	KindBool
	KindSizeT
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// cNames holds the canonical C spelling of each kind.
var cNames = map[KindEnum]string{
	KindChar:             "char",
	KindSignedChar:       "signed char",
	KindUnsignedChar:     "unsigned char",
	KindShort:            "short",
	KindUnsignedShort:    "unsigned short",
	KindInt:              "int",
	KindUnsignedInt:      "unsigned int",
	KindLong:             "long",
	KindUnsignedLong:     "unsigned long",
	KindLongLong:         "long long",
	KindUnsignedLongLong: "unsigned long long",
	KindFloat:            "float",
	KindDouble:           "double",
	KindLongDouble:       "long double",
	KindPointer:          "pointer",
	KindBool:             "bool",
	KindSizeT:            "size_t",
	KindInt8:             "int8_t",
	KindInt16:            "int16_t",
	KindInt32:            "int32_t",
	KindInt64:            "int64_t",
	KindUint8:            "uint8_t",
	KindUint16:           "uint16_t",
	KindUint32:           "uint32_t",
	KindUint64:           "uint64_t",
}

// aliases maps accepted spellings that differ from the canonical C name.
var aliases = map[string]KindEnum{
	"byte":                   KindUint8,
	"short int":              KindShort,
	"signed short":           KindShort,
	"unsigned short int":     KindUnsignedShort,
	"signed":                 KindInt,
	"signed int":             KindInt,
	"unsigned":               KindUnsignedInt,
	"long int":               KindLong,
	"signed long":            KindLong,
	"unsigned long int":      KindUnsignedLong,
	"long long int":          KindLongLong,
	"signed long long":       KindLongLong,
	"unsigned long long int": KindUnsignedLongLong,
	"_bool":                  KindBool,
	"ptr":                    KindPointer,
	"void*":                  KindPointer,
	"uintptr_t":              KindPointer,
	"float32":                KindFloat,
	"float64":                KindDouble,
	"int8":                   KindInt8,
	"int16":                  KindInt16,
	"int32":                  KindInt32,
	"int64":                  KindInt64,
	"uint8":                  KindUint8,
	"uint16":                 KindUint16,
	"uint32":                 KindUint32,
	"uint64":                 KindUint64,
}

// CName returns the C spelling of the kind, e.g. "unsigned long".
func (k KindEnum) CName() string {
	if name, ok := cNames[k]; ok {
		return name
	}

	return k.String()
}

func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindChar, KindSignedChar, KindUnsignedChar,
		KindShort, KindUnsignedShort, KindInt, KindUnsignedInt,
		KindLong, KindUnsignedLong, KindLongLong, KindUnsignedLongLong,
		KindSizeT, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat, KindDouble, KindLongDouble:
		return true
	}
}

// IsFixedWidth reports whether the size of k is the same under every data model.
func (k KindEnum) IsFixedWidth() bool {
	switch k {
	default:
		return false
	case KindChar, KindSignedChar, KindUnsignedChar, KindBool,
		KindShort, KindUnsignedShort, KindFloat,
		KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

// FromName maps a type spelling to its kind. Matching is case-insensitive
// and collapses repeated whitespace, so "Unsigned  Long" is KindUnsignedLong.
func FromName(name string) (KindEnum, bool) {
	normalized := strings.ToLower(strings.Join(strings.Fields(name), " "))
	normalized = strings.ReplaceAll(normalized, " *", "*")

	if k, ok := aliases[normalized]; ok {
		return k, true
	}

	for k, cName := range cNames {
		if cName == normalized {
			return k, true
		}
	}

	return 0, false
}

// Names returns the canonical C spelling of every kind, in kind order.
func Names() []string {
	names := make([]string, 0, len(cNames))
	for k := KindEnum(1); int(k) < KindTotal; k++ {
		names = append(names, cNames[k])
	}

	return names
}
