package entity

import "strings"

const cpfLength = 11

// OnlyDigits strips every non-digit rune from value.
func OnlyDigits(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// IsValidCPF validates a Brazilian CPF, formatted or not, by its two check digits.
// Sequences of a single repeated digit are rejected.
func IsValidCPF(value string) bool {
	digits := OnlyDigits(value)
	if len(digits) != cpfLength {
		return false
	}

	if strings.Count(digits, digits[:1]) == cpfLength {
		return false
	}

	nums := make([]int, cpfLength)
	for i, r := range digits {
		nums[i] = int(r - '0')
	}

	return cpfCheckDigit(nums[:9]) == nums[9] && cpfCheckDigit(nums[:10]) == nums[10]
}

func cpfCheckDigit(nums []int) int {
	sum := 0
	weight := len(nums) + 1
	for _, n := range nums {
		sum += n * weight
		weight--
	}

	rest := (sum * 10) % 11
	if rest == 10 {
		return 0
	}

	return rest
}
