package services

import "strings"

var wordUnits = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var wordTens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// AmountInWords renders a whole amount in the Indian numbering system,
// peeling off crores, then lakhs, then thousands, then the final
// 0-999 remainder. The crore group recurses so amounts of a thousand
// crores and above render correctly ("One Thousand Crore"). Negative
// amounts are prefixed with "Negative" and zero renders as "Zero".
// The caller appends the currency suffix ("Only") when printing a
// document.
func AmountInWords(amount int64) string {
	if amount == 0 {
		return "Zero"
	}
	if amount < 0 {
		return "Negative " + AmountInWords(-amount)
	}

	var parts []string

	if amount >= 10000000 {
		parts = append(parts, AmountInWords(amount/10000000)+" Crore")
		amount %= 10000000
	}
	if amount >= 100000 {
		parts = append(parts, wordsBelowThousand(amount/100000)+" Lakh")
		amount %= 100000
	}
	if amount >= 1000 {
		parts = append(parts, wordsBelowThousand(amount/1000)+" Thousand")
		amount %= 1000
	}
	if amount > 0 {
		parts = append(parts, wordsBelowThousand(amount))
	}

	return strings.Join(parts, " ")
}

// wordsBelowThousand renders 1-999: units by name, tens combined with
// units, hundreds followed by " and " plus the sub-100 remainder when
// one exists.
func wordsBelowThousand(n int64) string {
	switch {
	case n < 20:
		return wordUnits[n]
	case n < 100:
		s := wordTens[n/10]
		if n%10 != 0 {
			s += " " + wordUnits[n%10]
		}
		return s
	default:
		s := wordUnits[n/100] + " Hundred"
		if n%100 != 0 {
			s += " and " + wordsBelowThousand(n%100)
		}
		return s
	}
}
