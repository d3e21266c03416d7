package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdent(t *testing.T) {
	tests := map[string]string{
		"uint32_t":      "uint32",
		"Unsigned Long": "unsignedlong",
		"order_item":    "orderitem",
		"OrderItem":     "orderitem",
		"  size_t ":     "size",
		"a-b":           "ab",
		"":              "",
	}

	for in, want := range tests {
		assert.Equal(t, want, NormalizeIdent(in), in)
	}
}

func TestSuggest(t *testing.T) {
	candidates := []string{"uint8_t", "uint16_t", "uint32_t", "uint64_t", "int32_t", "double", "Billy"}

	assert.Equal(t, []string{"uint32_t"}, Suggest("uint33_t", candidates, 1))

	got := Suggest("uint33_t", candidates, 3)
	assert.Len(t, got, 3)
	assert.Equal(t, "uint32_t", got[0])

	assert.Equal(t, []string{"Billy"}, Suggest("billi", candidates, 3))
	assert.Empty(t, Suggest("zzzzzz", candidates, 3))
	assert.Nil(t, Suggest("uint32", candidates, 0))
}

func TestSuggest_Deduplicates(t *testing.T) {
	got := Suggest("lnog", []string{"long", "long", "lang"}, 5)
	assert.Equal(t, []string{"lang", "long"}, got)
}
