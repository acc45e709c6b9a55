package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/lsg/internal/fs"
)

func render(t *testing.T, opts Options, entries []fs.Entry) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(opts).Render(&buf, entries))
	return buf.String()
}

func files(names ...string) []fs.Entry {
	entries := make([]fs.Entry, len(names))
	for i, name := range names {
		entries[i] = fs.Entry{Name: name, Kind: fs.KindFile}
	}
	return entries
}

func TestRender_GridLayout(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		entries []fs.Entry
		want    string
	}{
		{
			name:    "row-major fill within width",
			width:   12,
			entries: files("aa", "bb", "cc", "dd", "ee"),
			want:    "aa  bb  cc\ndd  ee\n",
		},
		{
			name:    "single column when names exceed width",
			width:   4,
			entries: files("longname", "x"),
			want:    "longname\nx\n",
		},
		{
			name:    "single row when everything fits",
			width:   80,
			entries: files("a.txt", "b.txt"),
			want:    "a.txt  b.txt\n",
		},
		{
			name:  "column width follows the widest cell",
			width: 20,
			entries: []fs.Entry{
				{Name: "a", Kind: fs.KindFile},
				{Name: "medium", Kind: fs.KindFile},
				{Name: "b", Kind: fs.KindFile},
			},
			want: "a       medium\nb\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(t, Options{Width: tt.width}, tt.entries)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_EmptyListing(t *testing.T) {
	assert.Empty(t, render(t, Options{Width: 80}, nil))
	assert.Empty(t, render(t, Options{Width: 80, Stream: true}, []fs.Entry{}))
}

func TestRender_DirectoryMarker(t *testing.T) {
	out := render(t, Options{Width: 80}, []fs.Entry{{Name: "docs", Kind: fs.KindDir}})
	assert.Equal(t, "docs/\n", out)
}

func TestRender_SizeAnnotations(t *testing.T) {
	entries := []fs.Entry{
		{Name: "a.txt", Kind: fs.KindFile, Size: 10},
		{Name: "b.txt", Kind: fs.KindFile, Size: 5},
		{Name: "docs", Kind: fs.KindDir},
	}

	t.Run("raw byte counts", func(t *testing.T) {
		out := render(t, Options{Width: 80, ShowSizes: true}, entries)
		assert.Equal(t, []string{"10", "a.txt", "5", "b.txt", "-", "docs/"}, strings.Fields(out))
	})

	t.Run("human-readable units", func(t *testing.T) {
		out := render(t, Options{Width: 80, ShowSizes: true, Human: true}, entries)
		assert.Equal(t, []string{"10B", "a.txt", "5B", "b.txt", "-", "docs/"}, strings.Fields(out))
	})

	t.Run("annotation counts toward column width", func(t *testing.T) {
		out := render(t, Options{Width: 16, ShowSizes: true}, entries[:2])
		assert.Equal(t, "10 a.txt\n5 b.txt\n", out)
	})
}

func TestRender_StreamMode(t *testing.T) {
	out := render(t, Options{Width: 80, Stream: true}, files("a.txt", "b.txt", "c.txt"))
	assert.Equal(t, "a.txt, b.txt, c.txt\n", out)
}

func TestRender_Color(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = noColor })

	entries := []fs.Entry{
		{Name: "docs", Kind: fs.KindDir},
		{Name: "plain.txt", Kind: fs.KindFile},
	}

	t.Run("escape sequences emitted when enabled", func(t *testing.T) {
		out := render(t, Options{Width: 80, Color: true, Theme: DefaultTheme()}, entries)
		assert.Contains(t, out, "\x1b[")
		assert.Contains(t, out, "docs/")
		// Regular files have no default color; their cell stays plain.
		assert.Contains(t, out, "plain.txt")
		assert.NotContains(t, out, "\x1b[mplain.txt")
	})

	t.Run("plain text when disabled", func(t *testing.T) {
		out := render(t, Options{Width: 80, Color: false, Theme: DefaultTheme()}, entries)
		assert.NotContains(t, out, "\x1b[")
	})

	t.Run("colored cells keep column alignment", func(t *testing.T) {
		aligned := []fs.Entry{
			{Name: "aa", Kind: fs.KindDir},
			{Name: "bb", Kind: fs.KindFile},
			{Name: "cc", Kind: fs.KindFile},
		}
		// Width math must ignore escape bytes: "aa/" is the widest cell
		// at 3 columns, so two 5-wide columns fit in 10.
		out := render(t, Options{Width: 10, Color: true, Theme: DefaultTheme()}, aligned)
		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		require.Len(t, lines, 2)
	})
}

func TestThemeFromNames(t *testing.T) {
	t.Run("overrides applied", func(t *testing.T) {
		theme, err := ThemeFromNames(map[string]string{"dir": "red", "file": "GREEN"})
		require.NoError(t, err)
		assert.NotNil(t, theme.Dir)
		assert.NotNil(t, theme.File)
	})

	t.Run("empty overrides keep defaults", func(t *testing.T) {
		theme, err := ThemeFromNames(nil)
		require.NoError(t, err)
		assert.NotNil(t, theme.Dir)
		assert.Nil(t, theme.File)
	})

	t.Run("unknown color rejected", func(t *testing.T) {
		_, err := ThemeFromNames(map[string]string{"dir": "chartreuse"})
		assert.Error(t, err)
	})

	t.Run("unknown kind rejected", func(t *testing.T) {
		_, err := ThemeFromNames(map[string]string{"socket": "red"})
		assert.Error(t, err)
	})
}
