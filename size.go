package sshconfig

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ParseSize converts a size such as "64k", "1M" or "2g" into bytes.
// Suffixes are case-insensitive powers of 1024. Only the leading integer is
// read; a value without one is 0. Values beyond the int64 range saturate at
// math.MaxInt64 or math.MinInt64.
func ParseSize(size string) int64 {
	size = strings.TrimSpace(size)

	var multiplier int64 = 1

	if size != "" {
		switch size[len(size)-1] {
		case 'k', 'K':
			multiplier = 1 << 10
		case 'm', 'M':
			multiplier = 1 << 20
		case 'g', 'G':
			multiplier = 1 << 30
		}
	}

	end := 0
	if end < len(size) && (size[end] == '-' || size[end] == '+') {
		end++
	}

	for end < len(size) && size[end] >= '0' && size[end] <= '9' {
		end++
	}

	n, err := strconv.ParseInt(size[:end], 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return n // ParseInt already saturated
	}

	if err != nil {
		return 0
	}

	switch {
	case n > math.MaxInt64/multiplier:
		return math.MaxInt64
	case n < math.MinInt64/multiplier:
		return math.MinInt64
	}

	return n * multiplier
}
