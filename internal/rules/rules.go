package rules

import (
	"strings"

	"github.com/tony-montemuro/picoserver/internal/lws"
)

// Extract splits s on sep and trims every part. Parts that are empty after trimming are
// dropped.
func Extract(s string, sep byte) []string {
	rules := []string{}

	for _, part := range strings.Split(s, string(sep)) {
		part = lws.Trim(part)
		if len(part) == 0 {
			continue
		}
		rules = append(rules, part)
	}

	return rules
}
