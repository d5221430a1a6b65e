// Package text splits puzzle inputs into records.
package text

import "strings"

// Lines splits input into its lines, trimmed. Blank lines carry no record and are dropped.
func Lines(input string) []string {
	lines := []string{}
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	return lines
}
