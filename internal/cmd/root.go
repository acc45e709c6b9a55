// Package cmd wires the lsg command-line surface to the listing pipeline.
package cmd

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harrison/lsg/internal/config"
	"github.com/harrison/lsg/internal/display"
	"github.com/harrison/lsg/internal/fs"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for lsg.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lsg [flags] [path]",
		Short: "List directory contents",
		Long: `lsg lists directory contents in a color-coded multi-column grid.

Entries are sorted by name unless -S (size, largest first) or -t
(modification time, newest first) is given; -r reverses the active
order. When both -S and -t are given, size takes precedence.

Colors and the fallback terminal width can be customized in
~/.config/lsg/config.yaml.`,
		Version: Version,
		Args:    cobra.MaximumNArgs(1),
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		// main prints the error exactly once
		SilenceErrors: true,
		RunE:          runList,
	}

	cmd.Flags().BoolP("all", "a", false, "do not ignore entries starting with '.'")
	cmd.Flags().BoolP("sizes", "s", false, "show sizes of files; use -h for human-readable units")
	cmd.Flags().BoolP("human", "h", false, "print sizes in human-readable units")
	cmd.Flags().BoolP("reverse", "r", false, "reverse order when sorting (-S, -t)")
	cmd.Flags().BoolP("sort-size", "S", false, "sort by file size, largest first (specify -r for smallest first)")
	cmd.Flags().BoolP("sort-mtime", "t", false, "sort by time modified, newest first (specify -r for oldest first)")
	cmd.Flags().BoolP("stream", "m", false, "list files separated by ', '")
	cmd.Flags().StringP("color", "C", "auto", "colorize the output: auto, always or never")
	cmd.Flags().String("config", "", "path to config file (default: ~/.config/lsg/config.yaml)")

	// -h belongs to --human, as in classic ls. Registering the help flag
	// ourselves keeps cobra from claiming the shorthand.
	cmd.Flags().Bool("help", false, "show this help message")

	return cmd
}

// runList implements the listing pipeline: collect, sort, render.
func runList(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) == 1 {
		path = args[0]
	}

	flags := cmd.Flags()
	showHidden, _ := flags.GetBool("all")
	showSizes, _ := flags.GetBool("sizes")
	human, _ := flags.GetBool("human")
	reverse, _ := flags.GetBool("reverse")
	bySize, _ := flags.GetBool("sort-size")
	byMtime, _ := flags.GetBool("sort-mtime")
	stream, _ := flags.GetBool("stream")
	colorMode, _ := flags.GetString("color")

	configPath, _ := flags.GetString("config")
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	theme, err := display.ThemeFromNames(cfg.Colors)
	if err != nil {
		return err
	}

	opts := display.Options{
		ShowSizes: showSizes,
		Human:     human,
		Stream:    stream,
		Theme:     theme,
		Width:     display.TerminalWidth(os.Stdout, cfg.FallbackWidth),
	}
	switch colorMode {
	case "always":
		color.NoColor = false
		opts.Color = true
	case "never":
		opts.Color = false
	case "auto":
		opts.Color = display.ColorEnabled(os.Stdout)
	default:
		return fmt.Errorf("invalid --color mode %q: want auto, always or never", colorMode)
	}

	entries, err := fs.Collect(path, showHidden)
	if err != nil {
		return describeListError(path, err)
	}

	mode := fs.SortByName
	switch {
	case bySize:
		// -S outranks -t when both are given; see the long help.
		mode = fs.SortBySize
	case byMtime:
		mode = fs.SortByMtime
	}
	fs.SortEntries(entries, mode, reverse)

	return display.NewRenderer(opts).Render(cmd.OutOrStdout(), entries)
}

// describeListError turns collector failures into the short messages ls
// users expect, keeping the wrapped cause for everything else.
func describeListError(path string, err error) error {
	switch {
	case errors.Is(err, iofs.ErrNotExist):
		return fmt.Errorf("%s: no such file or directory", path)
	case errors.Is(err, iofs.ErrPermission):
		return fmt.Errorf("%s: permission denied", path)
	default:
		return err
	}
}
