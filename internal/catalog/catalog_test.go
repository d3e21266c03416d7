package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"layout-inspector/internal/layout"
)

func offsets(res *layout.Result) []uint64 {
	out := make([]uint64, 0, len(res.Fields))
	for _, f := range res.Fields {
		out = append(out, f.Offset)
	}

	return out
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"CFoo", "Foo", "Bar", "Billy", "Pair"}, Names())
}

func TestResolve_LP64(t *testing.T) {
	r, err := Resolve("")
	require.NoError(t, err)

	tests := []struct {
		record  string
		offsets []uint64
		size    uint64
	}{
		{"CFoo", []uint64{0, 8, 12, 14}, 16},
		{"Foo", []uint64{0, 8, 16, 20}, 24},
		{"Bar", []uint64{0, 4, 8, 16}, 24},
		{"Billy", []uint64{0, 2, 4, 5}, 6},
		{"Pair", []uint64{0, 4}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.record, func(t *testing.T) {
			res, ok := r.Lookup(tt.record)
			require.True(t, ok)
			assert.Equal(t, tt.offsets, offsets(res))
			assert.Equal(t, tt.size, res.Size)
		})
	}
}

func TestResolve_ILP32(t *testing.T) {
	r, err := Resolve("ilp32")
	require.NoError(t, err)

	// long shrinks to four bytes
	res, ok := r.Lookup("CFoo")
	require.True(t, ok)
	assert.Equal(t, []uint64{0, 4, 8, 10}, offsets(res))
	assert.Equal(t, uint64(12), res.Size)
}

func TestLoad_BadModel(t *testing.T) {
	_, err := Load("lp128")
	require.Error(t, err)
}
