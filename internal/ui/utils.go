package ui

import "strings"

// CN merges class lists.
// It performs simple string joining and deduplication of exact matches.
func CN(inputs ...string) string {
	var classes []string
	seen := make(map[string]bool)

	for _, input := range inputs {
		// Split by space to handle multiple classes in one string
		for _, part := range strings.Fields(input) {
			if !seen[part] {
				classes = append(classes, part)
				seen[part] = true
			}
		}
	}
	return strings.Join(classes, " ")
}

// ClassIf returns class when cond holds, else the empty string.
func ClassIf(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}
