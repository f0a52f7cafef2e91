package util

import (
	"strconv"
	"strings"
)

func listSplitter(s string) []string {
	parts := strings.Split(s, ",")
	v := make([]string, 0, len(parts))
	for _, p := range parts {
		v = append(v, strings.TrimSpace(p))
	}
	return v
}

func sliceTypeParser[T any](s string, f func(string) (T, error)) ([]T, error) {
	parts := listSplitter(s)
	v := make([]T, 0, len(parts))
	for _, p := range parts {
		v2, err := f(p)
		if err != nil {
			return v, err
		}
		v = append(v, v2)
	}
	return v, nil
}

// ParseFloats parses a comma separated list of numbers. Whitespace around each
// value and a trailing '%' are ignored, so "210, 50%, 40%" yields [210 50 40].
func ParseFloats(s string) ([]float64, error) {
	return sliceTypeParser(s, func(p string) (float64, error) {
		// only one '%' is dropped, "50%%" stays an error
		return strconv.ParseFloat(strings.TrimSuffix(p, "%"), 64)
	})
}
