// Package display renders ordered directory entries into terminal output.
package display

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/harrison/lsg/internal/fs"
)

// cellPadding is the minimum gap between grid columns.
const cellPadding = 2

// Options controls how a listing is rendered. Width and Color are expected
// to come from a one-time terminal probe at startup (see TerminalWidth and
// ColorEnabled); the renderer itself never touches global terminal state.
type Options struct {
	// ShowSizes annotates each file cell with its size.
	ShowSizes bool

	// Human formats size annotations with 1024-based units instead of raw
	// byte counts. Only meaningful together with ShowSizes.
	Human bool

	// Stream renders a single comma-separated line instead of a grid.
	Stream bool

	// Color enables per-kind ANSI coloring.
	Color bool

	// Width is the terminal width in columns used for grid layout.
	Width int

	// Theme selects the colors used when Color is set.
	Theme Theme
}

// Renderer lays entries out for a terminal.
type Renderer struct {
	opts Options
}

// NewRenderer creates a Renderer for the given options. A non-positive
// width falls back to DefaultWidth.
func NewRenderer(opts Options) *Renderer {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	return &Renderer{opts: opts}
}

// Render writes the formatted listing to w. Output is fully buffered and
// written once; an empty listing produces no output at all.
func (r *Renderer) Render(w io.Writer, entries []fs.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	var buf bytes.Buffer
	if r.opts.Stream {
		r.renderStream(&buf, entries)
	} else {
		r.renderGrid(&buf, entries)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// renderStream writes names as one ", "-separated line, with no size
// annotations or color.
func (r *Renderer) renderStream(buf *bytes.Buffer, entries []fs.Entry) {
	for i, e := range entries {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(e.Name)
	}
	buf.WriteByte('\n')
}

// cell is one grid slot: the rendered text, which may contain color escape
// sequences, and its display width, which never does.
type cell struct {
	text  string
	width int
}

// renderGrid packs entries row-major into columns sized to the widest cell.
func (r *Renderer) renderGrid(buf *bytes.Buffer, entries []fs.Entry) {
	cells := make([]cell, len(entries))
	widest := 0
	for i, e := range entries {
		cells[i] = r.makeCell(e)
		if cells[i].width > widest {
			widest = cells[i].width
		}
	}

	colWidth := widest + cellPadding
	cols := r.opts.Width / colWidth
	if cols < 1 {
		cols = 1
	}

	for i, c := range cells {
		buf.WriteString(c.text)
		if i == len(cells)-1 || (i+1)%cols == 0 {
			buf.WriteByte('\n')
		} else {
			buf.WriteString(strings.Repeat(" ", colWidth-c.width))
		}
	}
}

func (r *Renderer) makeCell(e fs.Entry) cell {
	label := e.Name
	if e.IsDir() {
		label += "/"
	}
	if r.opts.ShowSizes {
		label = r.sizeColumn(e) + " " + label
	}

	// Width is measured before coloring so escape sequences never count
	// toward the column math.
	width := runewidth.StringWidth(label)
	if r.opts.Color {
		if c := r.opts.Theme.colorFor(e.Kind); c != nil {
			label = c.Sprint(label)
		}
	}
	return cell{text: label, width: width}
}

// sizeColumn formats the size annotation for one entry. Directories report
// a nominal size, so they get a placeholder instead.
func (r *Renderer) sizeColumn(e fs.Entry) string {
	if e.IsDir() {
		return "-"
	}
	if r.opts.Human {
		return HumanSize(e.Size)
	}
	return strconv.FormatInt(e.Size, 10)
}
