package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleCheck(t *testing.T) {
	tests := []struct {
		name  string
		rule  Rule
		value string
		ok    bool
	}{
		{"id accepts positive", ID, "42", true},
		{"id rejects zero", ID, "0", false},
		{"id rejects word", ID, "abc", false},
		{"integer rejects negative", Integer, "-3", false},
		{"integer rejects fraction", Integer, "1.5", false},
		{"integer rejects empty", Integer, "", false},
		{"number accepts fraction", Positive, "12.50", true},
		{"number rejects zero", Positive, "0.00", false},
		{"number rejects negative", Positive, "-1", false},
		{"number rejects text", Positive, "ten", false},
		{"name accepts letters and spaces", Name(60), "Alice Smith", true},
		{"name rejects digits", Name(60), "Alice2", false},
		{"name rejects accents", Name(60), "Zoë", false},
		{"name rejects empty", Name(60), "", false},
		{"name enforces max length", Name(5), "Abcdef", false},
		{"name allows exact max length", Name(5), "Abcde", true},
		{"text accepts dashes and digits", Text(60), "Coffee Cup - 12", true},
		{"text rejects punctuation", Text(60), "Tea'; DROP TABLE products;--", false},
		{"text rejects percent", Text(60), "50%", false},
		{"text enforces max length", Text(10), strings.Repeat("a", 11), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.Check(tt.value)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.NotEmpty(t, err.Error(), "a failure must carry a reason")
		})
	}
}

func TestParsePositiveInt(t *testing.T) {
	n, err := ParsePositiveInt(" 7 ")
	require.NoError(t, err)
	assert.EqualValues(t, 7, n)

	_, err = ParsePositiveInt("9999999999999999999999")
	assert.Error(t, err)
}

func TestParsePositiveDecimal(t *testing.T) {
	d, err := ParsePositiveDecimal("3.75")
	require.NoError(t, err)
	assert.Equal(t, "3.75", d.String())

	_, err = ParsePositiveDecimal("")
	assert.Error(t, err)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "restrictedName", Name(1).Kind.String())
	assert.Equal(t, "positiveNumber", Positive.Kind.String())
}
