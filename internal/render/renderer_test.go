package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"layout-inspector/internal/diagnostic"
	"layout-inspector/internal/layout"
)

func compute(t *testing.T, name string, fields ...layout.FieldSpec) *layout.Result {
	t.Helper()

	res, err := layout.Compute(layout.RecordSpec{Name: name, Fields: fields})
	require.NoError(t, err)

	return res
}

func cFoo(t *testing.T) *layout.Result {
	return compute(t, "Foo",
		layout.FieldSpec{Name: "a", Size: 8, Align: 8},
		layout.FieldSpec{Name: "b", Size: 4, Align: 4},
		layout.FieldSpec{Name: "c", Size: 2, Align: 2},
		layout.FieldSpec{Name: "d", Size: 1, Align: 1},
	)
}

func TestParseMode(t *testing.T) {
	for _, name := range ModeNames() {
		m, err := ParseMode(name)
		require.NoError(t, err)
		assert.Equal(t, name, m.String())
	}

	m, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeText, m)

	m, err = ParseMode("YML")
	require.NoError(t, err)
	assert.Equal(t, ModeYAML, m)

	_, err = ParseMode("html")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "text, table, json, yaml")

	assert.Equal(t, "unknown", Mode(99).String())
}

func TestRenderer_Text(t *testing.T) {
	var out bytes.Buffer

	r := NewRenderer(&out, &out, ModeText, false)
	require.NoError(t, r.Layouts([]*layout.Result{cFoo(t)}))

	want := "" +
		"sizeof(Foo):   16\n" +
		"Member:        Offset:\n" +
		"a              0\n" +
		"b              8\n" +
		"c              12\n" +
		"d              14\n"
	assert.Equal(t, want, out.String())
}

func TestRenderer_TextVerboseAndLongNames(t *testing.T) {
	var out bytes.Buffer

	res := compute(t, "Bar",
		layout.FieldSpec{Name: "a_final_32_bit_int", Size: 4, Align: 4},
		layout.FieldSpec{Name: "a_64_bit_int", Size: 8, Align: 8},
		layout.FieldSpec{Name: "b", Size: 1, Align: 1},
	)

	r := NewRenderer(&out, &out, ModeText, true)
	require.NoError(t, r.Layouts([]*layout.Result{res, res}))

	s := out.String()
	assert.Contains(t, s, "a_final_32_bit_int   0\n")
	assert.Contains(t, s, "a_64_bit_int         8\n")
	assert.Contains(t, s, "padding:             11 bytes (internal 4, trailing 7)\n")
	assert.Contains(t, s, "\n\nsizeof(Bar):")
}

func TestRenderer_Table(t *testing.T) {
	var out bytes.Buffer

	r := NewRenderer(&out, &out, ModeTable, false)
	require.NoError(t, r.Layouts([]*layout.Result{cFoo(t)}))

	s := out.String()
	assert.Contains(t, s, "Foo (size 16, align 8)")
	assert.Contains(t, s, "FIELD")
	assert.Contains(t, s, "OFFSET")
	assert.Contains(t, s, "PADDING")
	assert.Contains(t, s, "TOTAL")
}

func TestRenderer_JSON(t *testing.T) {
	var out bytes.Buffer

	r := NewRenderer(&out, &out, ModeJSON, false)
	require.NoError(t, r.Layouts([]*layout.Result{cFoo(t)}))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "Foo", decoded[0]["record"])
	assert.EqualValues(t, 16, decoded[0]["size"])
	assert.EqualValues(t, 1, decoded[0]["trailing_padding"])

	fields, ok := decoded[0]["fields"].([]any)
	require.True(t, ok)
	assert.Len(t, fields, 4)
}

func TestRenderer_YAML(t *testing.T) {
	var out bytes.Buffer

	r := NewRenderer(&out, &out, ModeYAML, false)
	require.NoError(t, r.Layouts([]*layout.Result{cFoo(t)}))

	var decoded []layout.Result
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, *cFoo(t), decoded[0])
}

func TestRenderer_Comparisons(t *testing.T) {
	before := compute(t, "S",
		layout.FieldSpec{Name: "c1", Size: 1, Align: 1},
		layout.FieldSpec{Name: "d", Size: 8, Align: 8},
		layout.FieldSpec{Name: "c2", Size: 1, Align: 1},
	)
	after := compute(t, "S",
		layout.FieldSpec{Name: "d", Size: 8, Align: 8},
		layout.FieldSpec{Name: "c1", Size: 1, Align: 1},
		layout.FieldSpec{Name: "c2", Size: 1, Align: 1},
	)
	cmps := []Comparison{{Before: before, After: after}}

	var text bytes.Buffer
	require.NoError(t, NewRenderer(&text, &text, ModeText, false).Comparisons(cmps))
	assert.Equal(t, "S: 24 -> 16 bytes (saves 8)\n  order: d, c1, c2\n", text.String())

	var tbl bytes.Buffer
	require.NoError(t, NewRenderer(&tbl, &tbl, ModeTable, false).Comparisons(cmps))
	assert.Contains(t, tbl.String(), "d, c1, c2")
	assert.Contains(t, tbl.String(), "OPTIMIZED")

	var js bytes.Buffer
	require.NoError(t, NewRenderer(&js, &js, ModeJSON, false).Comparisons(cmps))

	var decoded []Comparison
	require.NoError(t, json.Unmarshal(js.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, uint64(8), decoded[0].Savings().Bytes())
}

func TestRenderer_Diagnostics(t *testing.T) {
	d := &diagnostic.Diagnostics{}
	d.AddInfo("skipped", "zero-size field", "Empty", "")
	d.AddError("unknown_type", `unknown type "lnog"`, "Foo", "a", "long")

	var quiet bytes.Buffer
	NewRenderer(&bytes.Buffer{}, &quiet, ModeText, false).Diagnostics(d)
	assert.Equal(t, "error: [Foo] a: [unknown_type] unknown type \"lnog\" (did you mean long?)\n", quiet.String())

	var loud bytes.Buffer
	NewRenderer(&bytes.Buffer{}, &loud, ModeText, true).Diagnostics(d)
	assert.Contains(t, loud.String(), "info: [Empty]: [skipped] zero-size field")

	NewRenderer(&bytes.Buffer{}, &loud, ModeText, true).Diagnostics(nil)
}
