package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	uikit "github.com/alexisbeaulieu97/vaultkit/internal/ui/components"
)

func TestNewProgress(t *testing.T) {
	t.Parallel()

	t.Run("creates progress with specified total", func(t *testing.T) {
		t.Parallel()
		p := NewProgress(4, uikit.DefaultTheme())
		require.Equal(t, 4, p.total)
		require.Equal(t, defaultProgressWidth, p.bar.Width)
	})

	t.Run("width override", func(t *testing.T) {
		t.Parallel()
		p := NewProgress(4, uikit.DefaultTheme()).WithWidth(12)
		require.Equal(t, 12, p.bar.Width)

		p = p.WithWidth(0)
		require.Equal(t, 12, p.bar.Width, "non-positive widths are ignored")
	})
}

func TestProgressRatio(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		total int
		step  int
		want  float64
	}{
		{name: "zero total", total: 0, step: 0, want: 0},
		{name: "partial", total: 4, step: 1, want: 0.25},
		{name: "complete", total: 4, step: 4, want: 1},
		{name: "beyond total", total: 4, step: 9, want: 1},
		{name: "negative", total: 4, step: -1, want: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := NewProgress(tt.total, uikit.DefaultTheme())
			require.InDelta(t, tt.want, p.Ratio(tt.step), 1e-9)
		})
	}
}

func TestProgressView(t *testing.T) {
	t.Parallel()

	t.Run("renders step label", func(t *testing.T) {
		t.Parallel()
		p := NewProgress(4, uikit.DefaultTheme())
		require.Contains(t, p.View(2), "Step 2 of 4")
	})

	t.Run("progress bar takes up space", func(t *testing.T) {
		t.Parallel()
		p := NewProgress(4, uikit.DarkTheme())
		view := p.View(2)
		label := "Step 2 of 4"
		require.Greater(t, len(strings.TrimSpace(view)), len(label),
			"expected view to contain progress bar in addition to label")
	})
}
