package whatsapp

import (
	"fmt"
	"strings"
)

// FormatPrice renders an amount in Meticais the way pt-MZ does it,
// dot for thousands and comma for decimals: 1.234,56 MZN.
func FormatPrice(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	whole := fmt.Sprintf("%.2f", amount)
	intPart, fracPart, _ := strings.Cut(whole, ".")

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	b.WriteString(" MZN")

	return b.String()
}

// FormatPhone normalizes a Mozambican phone number to the 258-prefixed
// digits-only form WhatsApp expects.
func FormatPhone(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	cleaned := digits.String()
	if strings.HasPrefix(cleaned, "258") {
		return cleaned
	}

	cleaned = strings.TrimPrefix(cleaned, "0")
	return "258" + cleaned
}
