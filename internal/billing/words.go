package billing

import (
	"math"
	"strings"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// AmountInWords renders a rupee amount in Indian-English words with
// lakh/crore grouping. The paise clause is omitted when the fraction rounds
// to zero.
//
//	0       → "Zero Rupees Only"
//	100000  → "One Lakh Rupees Only"
//	1234.50 → "One Thousand Two Hundred Thirty Four Rupees and Fifty Paise Only"
func AmountInWords(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	if amount < 0 {
		return "Negative " + AmountInWords(-amount)
	}

	totalPaise := int64(math.Round(amount * 100))
	rupees := totalPaise / 100
	paise := totalPaise % 100

	rupeeWords := "Zero"
	if rupees > 0 {
		rupeeWords = indianWords(rupees)
	}
	if paise > 0 {
		return rupeeWords + " Rupees and " + underHundred(paise) + " Paise Only"
	}
	return rupeeWords + " Rupees Only"
}

// indianWords converts a positive integer using hundred/thousand/lakh/crore
// grouping. Amounts of a hundred crore and above recurse on the crore count.
func indianWords(n int64) string {
	var parts []string

	if n >= 10000000 {
		parts = append(parts, indianWords(n/10000000)+" Crore")
		n %= 10000000
	}
	if n >= 100000 {
		parts = append(parts, underHundred(n/100000)+" Lakh")
		n %= 100000
	}
	if n >= 1000 {
		parts = append(parts, underHundred(n/1000)+" Thousand")
		n %= 1000
	}
	if n >= 100 {
		parts = append(parts, ones[n/100]+" Hundred")
		n %= 100
	}
	if n > 0 {
		parts = append(parts, underHundred(n))
	}

	return strings.Join(parts, " ")
}

func underHundred(n int64) string {
	if n < 20 {
		return ones[n]
	}
	s := tens[n/10]
	if n%10 != 0 {
		s += " " + ones[n%10]
	}
	return s
}
