// Package themeindex parses freedesktop icon theme index files.
package themeindex

import "strings"

// DirType is the sizing policy of a theme subdirectory.
type DirType int

const (
	// Threshold directories accept sizes within Threshold pixels of their bounds.
	Threshold DirType = iota
	// Fixed directories accept exactly one size.
	Fixed
	// Scalable directories accept any size between MinSize and MaxSize.
	Scalable
)

func (t DirType) String() string {
	switch t {
	case Fixed:
		return "Fixed"
	case Scalable:
		return "Scalable"
	default:
		return "Threshold"
	}
}

// ParseDirType maps a Type= value to a DirType. Unknown values are Threshold.
func ParseDirType(s string) DirType {
	switch {
	case strings.EqualFold(s, "Fixed"):
		return Fixed
	case strings.EqualFold(s, "Scalable"):
		return Scalable
	default:
		return Threshold
	}
}

// Default values for optional subdirectory keys.
const (
	DefaultScale     = 1
	DefaultThreshold = 2
)

// Subdir describes one icon directory of a theme.
type Subdir struct {
	Path      string // relative to the theme root, e.g. "48x48/apps"
	Size      int
	Scale     int
	Type      DirType
	MinSize   int
	MaxSize   int
	Threshold int
	Context   string
}

// Theme is a parsed index.theme. It is not modified after Parse returns.
type Theme struct {
	Name              string // theme id, the directory name
	DisplayName       string
	Comment           string
	Inherits          []string
	Directories       []string
	ScaledDirectories []string
	Hidden            bool
	Example           string
	Subdirs           []Subdir

	// Skipped lists sections dropped because they had no usable Size.
	Skipped []string
}
