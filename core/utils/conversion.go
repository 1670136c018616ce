package utils

import (
	"strconv"
	"strings"
)

// ToInt16 parses a decimal string with 16-bit integer semantics.
// Anything that is not a valid int16 yields 0.
func ToInt16(s string) int16 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 16)
	if err != nil {
		return 0
	}
	return int16(v)
}

// ToInt16List converts repeated query values to int16, dropping values that do not parse.
// Comma separated values inside one entry are split as well ("16,32").
func ToInt16List(values []string) []int16 {
	var out []int16
	for _, raw := range values {
		for _, part := range strings.Split(raw, ",") {
			v, err := strconv.ParseInt(strings.TrimSpace(part), 10, 16)
			if err != nil {
				continue
			}
			out = append(out, int16(v))
		}
	}
	return out
}
