package analyze

import (
	"context"
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

func TestAnalyzer_Layouts_AMD64(t *testing.T) {
	analyzer, _ := loadRecords(t, WithArch("amd64"))

	results, err := analyzer.Layouts(context.Background(), "CFoo", "Foo", "Bar", "Billy", "Pair", "Node", "Wrapped")
	require.NoError(t, err)
	require.Len(t, results, 7)

	tests := []struct {
		name    string
		size    uint64
		offsets []uint64
	}{
		{"records.CFoo", 16, []uint64{0, 8, 12, 14}},
		{"records.Foo", 24, []uint64{0, 8, 16, 20}},
		{"records.Bar", 24, []uint64{0, 4, 8, 16}},
		{"records.Billy", 6, []uint64{0, 2, 4, 5}},
		{"records.Pair", 8, []uint64{0, 4}},
		{"records.Node", 40, []uint64{0, 16, 24, 32}},
		{"records.Wrapped", 28, []uint64{0, 2, 8, 24}},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := results[i]
			assert.Equal(t, tt.name, res.Record)
			assert.Equal(t, tt.size, res.Size)
			assert.Equal(t, tt.offsets, offsets(res))
		})
	}

	assert.False(t, analyzer.Diagnostics().HasErrors(), analyzer.Diagnostics().Error())
}

func TestAnalyzer_Layouts_BlankFields(t *testing.T) {
	analyzer, _ := loadRecords(t, WithArch("amd64"))

	results, err := analyzer.Layouts(context.Background(), "Header")
	require.NoError(t, err)
	require.Len(t, results, 1)

	res := results[0]
	var fieldNames []string
	for _, f := range res.Fields {
		fieldNames = append(fieldNames, f.Name)
	}

	assert.Equal(t, []string{"Magic", "_#1", "_1", "Size"}, fieldNames)
	assert.Equal(t, []uint64{0, 4, 6, 8}, offsets(res))
	assert.Equal(t, uint64(16), res.Size)
	assert.False(t, analyzer.Diagnostics().HasErrors())
}

func TestAnalyzer_Layouts_386(t *testing.T) {
	analyzer, _ := loadRecords(t, WithArch("386"))

	results, err := analyzer.Layouts(context.Background(), "CFoo", "Foo")
	require.NoError(t, err)
	require.Len(t, results, 2)

	// 64-bit integers are only 4-byte aligned on 386.
	assert.Equal(t, []uint64{0, 8, 12, 14}, offsets(results[0]))
	assert.Equal(t, uint64(16), results[0].Size)
	assert.Equal(t, []uint64{0, 4, 12, 16}, offsets(results[1]))
	assert.Equal(t, uint64(20), results[1].Size)

	assert.False(t, analyzer.Diagnostics().HasErrors())
}

func TestAnalyzer_Layouts_All(t *testing.T) {
	analyzer, index := loadRecords(t, WithArch("arm64"))

	results, err := analyzer.Layouts(context.Background())
	require.NoError(t, err)

	var computable int
	for _, s := range index.Sorted() {
		if s.Skipped == "" {
			computable++
		}
	}

	assert.Len(t, results, computable)
	assert.False(t, analyzer.Diagnostics().HasErrors())
}

func TestAnalyzer_CrossCheckMismatch(t *testing.T) {
	analyzer := NewAnalyzer(WithArch("amd64"))

	s := &StructInfo{
		ID:   TypeID{PkgPath: "p", Name: "T"},
		Size: 16,
		Fields: []FieldInfo{
			{Name: "A", Size: 1, Align: 1, Offset: 0},
			{Name: "B", Size: 8, Align: 8, Offset: 4},
		},
	}

	res, err := layout.Compute(s.Record())
	require.NoError(t, err)

	analyzer.crossCheck(s, res)

	diags := analyzer.Diagnostics()
	require.True(t, diags.HasErrors())
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, "layout_mismatch", diags.Errors[0].Code)
	assert.Equal(t, "B", diags.Errors[0].Field)
}
