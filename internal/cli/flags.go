package cli

import "dtp/internal/config"

// Flags holds command-line flags
type Flags struct {
	SrcPath      string
	NameFilter   string
	Examples     bool
	OpenFailures bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		SrcPath:      f.SrcPath,
		NameFilter:   f.NameFilter,
		Examples:     f.Examples,
		OpenFailures: f.OpenFailures,
	}
}
