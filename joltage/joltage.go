// Package joltage picks batteries out of a bank.  A bank is a row of digits;
// turning on k batteries, in order, produces the k-digit number formed by
// their digits.  The goal is the largest such number per bank.
package joltage

import (
	"github.com/pkg/errors"
)

// MaxDigits is the largest k for which the answer fits in a uint64.
const MaxDigits = 19

// Bank is a sequence of battery digits, 0-9.
type Bank []byte

// ParseBank parses a line of decimal digits.
func ParseBank(line string) (Bank, error) {
	bank := make(Bank, len(line))
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c < '0' || c > '9' {
			return nil, errors.Errorf("joltage.ParseBank: non-digit %q at column %d", c, i+1)
		}
		bank[i] = c - '0'
	}
	return bank, nil
}

// ParseBanks parses one bank per line, skipping blank lines.
func ParseBanks(lines []string) ([]Bank, error) {
	banks := make([]Bank, 0, len(lines))
	for i, line := range lines {
		if line == "" {
			continue
		}
		bank, err := ParseBank(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", i+1)
		}
		banks = append(banks, bank)
	}
	return banks, nil
}

// MaxJoltage returns the largest number formed by k digits of bank, kept in
// their original order.
//
// Digit i of the answer is the earliest maximum of the window that still
// leaves k-i-1 digits after it, so the scan is O(k * len(bank)).
func MaxJoltage(bank Bank, k int) (uint64, error) {
	if k <= 0 || k > MaxDigits {
		return 0, errors.Errorf("joltage.MaxJoltage: k=%d out of range [1, %d]", k, MaxDigits)
	}
	if len(bank) < k {
		return 0, errors.Errorf("joltage.MaxJoltage: bank has %d batteries, %d required", len(bank), k)
	}
	var result uint64
	start := 0
	for i := 0; i < k; i++ {
		// Last usable index for this digit.
		limit := len(bank) - (k - i)
		bestIdx := start
		for j := start + 1; j <= limit; j++ {
			if bank[j] > bank[bestIdx] {
				bestIdx = j
				if bank[j] == 9 {
					break
				}
			}
		}
		result = result*10 + uint64(bank[bestIdx])
		start = bestIdx + 1
	}
	return result, nil
}

// Total returns the sum of MaxJoltage over all banks.
func Total(banks []Bank, k int) (uint64, error) {
	var total uint64
	for i, bank := range banks {
		v, err := MaxJoltage(bank, k)
		if err != nil {
			return 0, errors.Wrapf(err, "bank %d", i+1)
		}
		total += v
	}
	return total, nil
}
