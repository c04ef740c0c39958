package components

import (
	"testing"

	"github.com/stretchr/testify/require"

	uikit "github.com/alexisbeaulieu97/vaultkit/internal/ui/components"
)

func TestNewSummary(t *testing.T) {
	t.Parallel()

	data := SummaryData{Rows: []SummaryRow{{Label: "Name", Value: "Savings"}}}
	summary := NewSummary(data)
	require.Equal(t, data, summary.data)
}

func TestSummaryView(t *testing.T) {
	t.Parallel()

	t.Run("renders empty summary", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "", NewSummary(SummaryData{}).View())
	})

	t.Run("aligns labels", func(t *testing.T) {
		t.Parallel()
		view := NewSummary(SummaryData{Rows: []SummaryRow{
			{Label: "Name", Value: "Savings"},
			{Label: "Vault ID", Value: "abc"},
		}}).View()
		require.Equal(t, "Name      Savings\nVault ID  abc", view)
	})

	t.Run("renders issues after rows", func(t *testing.T) {
		t.Parallel()
		view := NewSummary(SummaryData{
			Rows:   []SummaryRow{{Label: "Name", Value: "x"}},
			Issues: []string{"Name must be at least 3 characters"},
		}).View()
		require.Equal(t, "Name  x\n\n✗ Name must be at least 3 characters", view)
	})

	t.Run("renders issues alone", func(t *testing.T) {
		t.Parallel()
		view := NewSummary(SummaryData{Issues: []string{"a", "b"}}).View()
		require.Equal(t, "✗ a\n✗ b", view)
	})

	t.Run("themed view keeps the text", func(t *testing.T) {
		t.Parallel()
		view := NewSummary(SummaryData{Rows: []SummaryRow{{Label: "Words", Value: "12"}}}).
			ViewWithContext(uikit.NewRenderContext(uikit.DarkTheme()))
		require.Contains(t, view, "Words")
		require.Contains(t, view, "12")
	})
}
