package billing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrencyCode is the currency every invoice is billed in. The
// institution bills in Bangladeshi Taka only; the code is a formatter field
// so a future deployment could change it in one place, but it is not a
// per-invoice property.
const DefaultCurrencyCode = "BDT"

// Formatter renders money amounts as fixed two-decimal, thousands-grouped
// strings with a currency label, e.g. "BDT 1,234.56".
type Formatter struct {
	Code string
}

func NewFormatter() Formatter {
	return Formatter{Code: DefaultCurrencyCode}
}

// Format renders an amount with the formatter's currency label.
func (f Formatter) Format(amount decimal.Decimal) string {
	return f.Code + " " + groupThousands(amount.StringFixed(2))
}

// groupThousands inserts comma separators into the integer part of a fixed
// decimal string.
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart = s[:dot]
		fracPart = s[dot:]
	}

	if len(intPart) <= 3 {
		return sign + intPart + fracPart
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return sign + b.String() + fracPart
}
