package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

func TestNotebookStyleApply(t *testing.T) {
	p := plot.New()
	s := NotebookStyle()
	s.Apply(p)

	require.Equal(t, vg.Points(15), p.Title.TextStyle.Font.Size)
	require.Equal(t, vg.Points(13), p.X.Label.TextStyle.Font.Size)
	require.Equal(t, vg.Points(11), p.Y.Tick.Label.Font.Size)
	require.True(t, p.Legend.Top)
	require.True(t, p.Legend.Left)
}

func TestDefaultStyleApply(t *testing.T) {
	p := plot.New()
	DefaultStyle().Apply(p)

	require.False(t, p.Legend.Top)
	require.False(t, p.Legend.Left)
}

func TestStyleColorCycles(t *testing.T) {
	s := NotebookStyle()
	n := len(s.Palette)
	require.Equal(t, s.Palette[0], s.Color(0))
	require.Equal(t, s.Palette[0], s.Color(n))
	require.Equal(t, s.Palette[1], s.Color(n+1))

	// Empty palette falls back to the plotutil defaults.
	require.NotNil(t, DefaultStyle().Color(3))
}
