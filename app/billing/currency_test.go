package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatterFormat(t *testing.T) {
	f := NewFormatter()

	cases := map[string]string{
		"0":          "BDT 0.00",
		"5":          "BDT 5.00",
		"999.9":      "BDT 999.90",
		"1000":       "BDT 1,000.00",
		"1234.56":    "BDT 1,234.56",
		"987654.321": "BDT 987,654.32",
		"12345678.9": "BDT 12,345,678.90",
		"-4321.07":   "BDT -4,321.07",
		"100000":     "BDT 100,000.00",
	}
	for in, want := range cases {
		assert.Equal(t, want, f.Format(dec(in)), "input %s", in)
	}
}

func TestFormatterCustomCode(t *testing.T) {
	f := Formatter{Code: "USD"}
	assert.Equal(t, "USD 2,500.00", f.Format(dec("2500")))
}
