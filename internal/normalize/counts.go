package normalize

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCount parses a non-negative integer count as printed by tools like
// cutadapt, which group digits with commas ("1,234,567").
func ParseCount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, fmt.Errorf("empty count")
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse count %q: %w", s, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative count %d", n)
	}
	return n, nil
}
