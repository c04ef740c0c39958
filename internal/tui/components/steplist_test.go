package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var walletOrder = []string{"choose", "details", "review", "done"}

func TestNewStepList(t *testing.T) {
	t.Parallel()

	t.Run("creates empty step list", func(t *testing.T) {
		t.Parallel()
		sl := NewStepList(nil, nil, "")
		require.Empty(t, sl.entries)
		require.Empty(t, sl.View())
	})

	t.Run("marks steps around the current one", func(t *testing.T) {
		t.Parallel()
		sl := NewStepList(walletOrder, nil, "review")
		require.Len(t, sl.entries, 4)
		require.Equal(t, StepDone, sl.entries[0].Status)
		require.Equal(t, StepDone, sl.entries[1].Status)
		require.Equal(t, StepCurrent, sl.entries[2].Status)
		require.Equal(t, StepPending, sl.entries[3].Status)
	})

	t.Run("unknown current leaves every step pending", func(t *testing.T) {
		t.Parallel()
		sl := NewStepList(walletOrder, nil, "missing")
		for _, e := range sl.entries {
			require.Equal(t, StepPending, e.Status)
		}
	})

	t.Run("uses titles with id fallback", func(t *testing.T) {
		t.Parallel()
		sl := NewStepList(walletOrder, map[string]string{"choose": "Choose vault"}, "choose")
		require.Equal(t, "Choose vault", sl.entries[0].Title)
		require.Equal(t, "details", sl.entries[1].Title)
	})

	t.Run("respects provided order", func(t *testing.T) {
		t.Parallel()
		sl := NewStepList([]string{"review", "choose"}, nil, "choose")
		require.Equal(t, "review", sl.entries[0].ID)
		require.Equal(t, StepDone, sl.entries[0].Status)
		require.Equal(t, StepCurrent, sl.entries[1].Status)
	})
}

func TestStepListEntries(t *testing.T) {
	t.Parallel()

	t.Run("returns independent copy", func(t *testing.T) {
		t.Parallel()
		sl := NewStepList(walletOrder, nil, "choose")
		entries1 := sl.Entries()
		entries2 := sl.Entries()

		entries1[0].ID = "modified"
		require.Equal(t, "choose", entries2[0].ID)
	})
}

func TestStepListView(t *testing.T) {
	t.Parallel()

	view := NewStepList(walletOrder, map[string]string{"details": "Vault details"}, "details").View()
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 4)
	require.Contains(t, lines[0], "✓")
	require.Contains(t, lines[1], "●")
	require.Contains(t, lines[1], "Vault details")
	require.Contains(t, lines[3], "…")
}

func TestStatusIcon(t *testing.T) {
	t.Parallel()

	icon, _ := StatusIcon(StepDone)
	require.Equal(t, "✓", icon)
	icon, _ = StatusIcon(StepStatus(42))
	require.Equal(t, "…", icon)
}
