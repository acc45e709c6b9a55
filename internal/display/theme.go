package display

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/harrison/lsg/internal/fs"
)

// Theme maps entry kinds to their display colors. A nil color means the
// kind is rendered unstyled.
type Theme struct {
	Dir     *color.Color
	Symlink *color.Color
	File    *color.Color
	Other   *color.Color
}

// DefaultTheme returns the built-in color scheme: blue directories, cyan
// symlinks, yellow specials, unstyled regular files.
func DefaultTheme() Theme {
	return Theme{
		Dir:     color.New(color.FgBlue, color.Bold),
		Symlink: color.New(color.FgCyan),
		Other:   color.New(color.FgYellow),
	}
}

func (t Theme) colorFor(kind fs.Kind) *color.Color {
	switch kind {
	case fs.KindDir:
		return t.Dir
	case fs.KindSymlink:
		return t.Symlink
	case fs.KindOther:
		return t.Other
	default:
		return t.File
	}
}

// colorNames maps config color names to ANSI foreground attributes.
var colorNames = map[string]color.Attribute{
	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
}

// ThemeFromNames builds a theme by applying kind-to-color-name overrides on
// top of the defaults. Valid kinds are "dir", "file", "symlink" and "other";
// valid colors are the eight standard ANSI names.
func ThemeFromNames(overrides map[string]string) (Theme, error) {
	theme := DefaultTheme()
	for kind, name := range overrides {
		attr, ok := colorNames[strings.ToLower(name)]
		if !ok {
			return Theme{}, fmt.Errorf("unknown color %q for entry kind %q", name, kind)
		}
		c := color.New(attr)
		switch strings.ToLower(kind) {
		case "dir":
			theme.Dir = c
		case "file":
			theme.File = c
		case "symlink":
			theme.Symlink = c
		case "other":
			theme.Other = c
		default:
			return Theme{}, fmt.Errorf("unknown entry kind %q in colors", kind)
		}
	}
	return theme, nil
}
