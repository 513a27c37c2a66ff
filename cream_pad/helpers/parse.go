package helpers

import (
	"fmt"
	"strconv"
)

// The wire format carries round and buy indices as decimal strings (they
// double as PDA seeds). They are parsed and range-checked here, once, and
// carried as integers everywhere else.

func ParseRoundIndex(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid round index %q: %w", s, err)
	}
	return uint16(v), nil
}

func ParseBuyIndex(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid buy index %q: %w", s, err)
	}
	return v, nil
}

func FormatRoundIndex(round uint16) string {
	return strconv.FormatUint(uint64(round), 10)
}

func FormatBuyIndex(index uint64) string {
	return strconv.FormatUint(index, 10)
}
