package discovery

import (
	"path/filepath"
	"strings"

	"dtp/internal/domain"
)

// Filter filters discovered modules by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters modules by dotted name using wildcard matching.
// Supports patterns like "config.*" or "*templates*"; a pattern without
// wildcards matches as a substring.
func (f *Filter) FilterByName(modules []domain.Module, pattern string) []domain.Module {
	if pattern == "" {
		return modules
	}

	var filtered []domain.Module

	for _, module := range modules {
		// Try to match using filepath.Match (supports * and ? wildcards)
		matched, err := filepath.Match(pattern, module.Name)
		if err == nil && matched {
			filtered = append(filtered, module)
			continue
		}

		// Flexible match for patterns like "*templates*": every non-empty
		// segment between wildcards must appear in the name
		if strings.Contains(pattern, "*") {
			if matchesAllParts(module.Name, pattern) {
				filtered = append(filtered, module)
			}
			continue
		}

		// No wildcards: simple substring check
		if !strings.Contains(pattern, "?") && strings.Contains(module.Name, pattern) {
			filtered = append(filtered, module)
		}
	}

	return filtered
}

func matchesAllParts(name, pattern string) bool {
	parts := strings.Split(pattern, "*")
	hasNonEmptyPart := false
	for _, part := range parts {
		if part == "" {
			continue
		}
		hasNonEmptyPart = true
		if !strings.Contains(name, part) {
			return false
		}
	}
	return hasNonEmptyPart
}
