package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"layout-inspector/internal/diagnostic"
)

func mustParse(t *testing.T, yaml string) *File {
	t.Helper()

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)

	return f
}

func codes(ds []diagnostic.Diagnostic) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.Code)
	}

	return out
}

func TestValidate_Valid(t *testing.T) {
	f := mustParse(t, `
records:
  - name: Inner
    fields: ["char tag", "double value"]
  - name: Outer
    fields:
      - "Inner inner"
      - {name: raw, size: 4, align: 4}
`)

	res := Validate(f)
	assert.True(t, res.IsValid(), res.Error())
	assert.Empty(t, res.Warnings)
}

func TestValidate_Nil(t *testing.T) {
	res := Validate(nil)
	assert.Equal(t, []string{"schema_is_nil"}, codes(res.Errors))
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		codes []string
	}{
		{
			name:  "unsupported version",
			yaml:  "version: \"2\"\nrecords: [{name: A, fields: [\"int x\"]}]",
			codes: []string{"unsupported_version"},
		},
		{
			name:  "unknown model",
			yaml:  "model: lp46\nrecords: [{name: A, fields: [\"int x\"]}]",
			codes: []string{"unknown_model"},
		},
		{
			name:  "record without name",
			yaml:  "records: [{fields: [\"int x\"]}]",
			codes: []string{"record_without_name"},
		},
		{
			name:  "duplicate record",
			yaml:  "records: [{name: A, fields: [\"int x\"]}, {name: A, fields: [\"int y\"]}]",
			codes: []string{"duplicate_record"},
		},
		{
			name:  "record shadows primitive",
			yaml:  "records: [{name: long, fields: [\"int x\"]}]",
			codes: []string{"record_shadows_primitive"},
		},
		{
			name:  "no fields",
			yaml:  "records: [{name: A}]",
			codes: []string{"no_fields"},
		},
		{
			name:  "field without name",
			yaml:  "records: [{name: A, fields: [{type: int}]}]",
			codes: []string{"field_without_name"},
		},
		{
			name:  "duplicate field",
			yaml:  "records: [{name: A, fields: [\"int x\", \"char x\"]}]",
			codes: []string{"duplicate_field"},
		},
		{
			name:  "ambiguous field",
			yaml:  "records: [{name: A, fields: [{name: x, type: int, size: 4}]}]",
			codes: []string{"ambiguous_field"},
		},
		{
			name:  "missing type",
			yaml:  "records: [{name: A, fields: [{name: x}]}]",
			codes: []string{"missing_type"},
		},
		{
			name:  "invalid align",
			yaml:  "records: [{name: A, fields: [{name: x, size: 6, align: 3}]}]",
			codes: []string{"invalid_align"},
		},
		{
			name:  "invalid count",
			yaml:  "records: [{name: A, fields: [{name: x, type: int, count: 0}]}]",
			codes: []string{"invalid_count"},
		},
		{
			name:  "self reference",
			yaml:  "records: [{name: A, fields: [\"A inner\"]}]",
			codes: []string{"self_reference"},
		},
		{
			name:  "cycle",
			yaml:  "records: [{name: A, fields: [\"B b\"]}, {name: B, fields: [\"A a\"]}]",
			codes: []string{"reference_cycle"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(mustParse(t, tt.yaml))
			assert.Equal(t, tt.codes, codes(res.Errors))
			assert.Error(t, res.Error())
		})
	}
}

func TestValidate_UnknownTypeSuggestions(t *testing.T) {
	f := mustParse(t, `
records:
  - name: Billy
    fields: ["uint8_t a_char_01"]
  - name: Foo
    fields:
      - "uint33_t count"
      - "Bily child"
`)

	res := Validate(f)
	require.Len(t, res.Errors, 2)

	assert.Equal(t, "unknown_type", res.Errors[0].Code)
	assert.Equal(t, "Foo", res.Errors[0].Record)
	assert.Equal(t, "count", res.Errors[0].Field)
	require.NotEmpty(t, res.Errors[0].Suggestions)
	assert.Equal(t, "uint32_t", res.Errors[0].Suggestions[0])

	assert.Equal(t, "child", res.Errors[1].Field)
	assert.Contains(t, res.Errors[1].Suggestions, "Billy")
	assert.Contains(t, res.Errors[1].String(), "did you mean")
}

func TestValidate_Warnings(t *testing.T) {
	f := mustParse(t, `
records:
  - name: A
    fields:
      - {name: raw, size: 3, align: 2, count: 2}
`)

	res := Validate(f)
	assert.True(t, res.IsValid())
	assert.Equal(t, []string{"unaligned_array"}, codes(res.Warnings))

	empty := Validate(mustParse(t, "version: \"1\""))
	assert.True(t, empty.IsValid())
	assert.Equal(t, []string{"no_records"}, codes(empty.Warnings))
}
