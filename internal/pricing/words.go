package pricing

import "strings"

var onesWords = []string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}

var tensWords = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}

// AmountInWords spells out an integer Taka amount using South Asian
// grouping: thousand, lakh (10^5), crore (10^7). Negative amounts,
// possible when price overrides push the net payable below the line
// discounts, are clamped to "Zero".
func AmountInWords(amount int64) string {
	if amount <= 0 {
		return "Zero"
	}
	return amountWords(amount)
}

func amountWords(n int64) string {
	switch {
	case n < 1000:
		return underThousand(n)
	case n < 100_000:
		return joinWords(underThousand(n/1000)+" Thousand", n%1000)
	case n < 10_000_000:
		return joinWords(underThousand(n/100_000)+" Lakh", n%100_000)
	default:
		return joinWords(amountWords(n/10_000_000)+" Crore", n%10_000_000)
	}
}

func joinWords(head string, remainder int64) string {
	if remainder == 0 {
		return head
	}
	return head + " " + amountWords(remainder)
}

func underThousand(n int64) string {
	if n == 0 {
		return ""
	}
	if n < 20 {
		return onesWords[n]
	}
	if n < 100 {
		word := tensWords[n/10]
		if n%10 != 0 {
			word += " " + onesWords[n%10]
		}
		return word
	}
	word := onesWords[n/100] + " Hundred"
	if n%100 != 0 {
		word += " " + underThousand(n%100)
	}
	return strings.TrimSpace(word)
}
