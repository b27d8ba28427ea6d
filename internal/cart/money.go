package cart

import (
	"fmt"
	"strings"
)

// FormatBRL renders an amount in cents as a Brazilian currency string, e.g.
// 123456 -> "R$ 1.234,56". Negative amounts carry a leading minus sign.
func FormatBRL(cents int64) string {
	negative := cents < 0
	if negative {
		cents = -cents
	}

	reais := cents / 100
	centavos := cents % 100

	digits := fmt.Sprintf("%d", reais)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	formatted := fmt.Sprintf("R$ %s,%02d", strings.Join(groups, "."), centavos)
	if negative {
		return "-" + formatted
	}
	return formatted
}
