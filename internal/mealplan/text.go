package mealplan

import "strings"

// normalizeName lowercases a dish or medication name and strips all
// whitespace so keyword matching is insensitive to spacing.
func normalizeName(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "")
}

// containsAny reports whether the lowercased s contains any of the keywords.
func containsAny(s string, keywords ...string) bool {
	lower := strings.ToLower(s)
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

func indexOf(pool []string, value string) int {
	for i, v := range pool {
		if v == value {
			return i
		}
	}
	return 0
}
