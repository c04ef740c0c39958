package diff

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnifiedIdenticalContent(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Unified("a\nb\n", "a\nb\n", "before", "after"))
}

func TestUnifiedSingleLineChange(t *testing.T) {
	t.Parallel()

	result := Unified("primary #111\nring #222\n", "primary #333\nring #222\n", "built-in", "configured")
	require.NotEmpty(t, result)

	lines := strings.Split(strings.TrimSuffix(result, "\n"), "\n")
	assert.Equal(t, "--- built-in", lines[0])
	assert.Equal(t, "+++ configured", lines[1])
	assert.Equal(t, "@@ -1,2 +1,2 @@", lines[2])
	assert.Contains(t, lines, "-primary #111")
	assert.Contains(t, lines, "+primary #333")
	assert.Contains(t, lines, " ring #222")
}

func TestUnifiedWholeLines(t *testing.T) {
	t.Parallel()

	result := Unified("token abc\n", "token abd\n", "a", "b")
	assert.Contains(t, result, "-token abc\n")
	assert.Contains(t, result, "+token abd\n", "changes are reported per line, not per character")
}

func TestChanged(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"-b", "+c"}, Changed("a\nb\n", "a\nc\n"))
	assert.Empty(t, Changed("same\n", "same\n"))
}

func TestUnifiedTruncatesLongOutput(t *testing.T) {
	t.Parallel()

	var before strings.Builder
	for i := 0; i < maxDiffLines+10; i++ {
		fmt.Fprintf(&before, "old %d\n", i)
	}

	result := Unified(before.String(), "", "a", "b")
	assert.True(t, strings.HasSuffix(result, truncateMessage+"\n"))
}
