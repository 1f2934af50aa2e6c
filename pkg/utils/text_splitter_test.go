package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTextShortInput(t *testing.T) {
	chunks := SplitText("short text", 500, 50)
	require.Len(t, chunks, 1)
	assert.Equal(t, "short text", chunks[0])
}

func TestSplitTextChunkSizeAndOverlap(t *testing.T) {
	text := strings.Repeat("a", 90) + strings.Repeat("b", 90)
	chunks := SplitText(text, 100, 20)

	require.Len(t, chunks, 2)
	assert.Len(t, chunks[0], 100)

	// The second chunk starts 20 runes before the first one ended.
	assert.Equal(t, chunks[0][80:], chunks[1][:20])

	// Concatenating chunks with the overlap removed restores the input.
	rebuilt := chunks[0] + chunks[1][20:]
	assert.Equal(t, text, rebuilt)
}

func TestSplitTextCoversWholeInput(t *testing.T) {
	text := strings.Repeat("0123456789", 127) // 1270 runes, not a multiple of the step
	chunks := SplitText(text, 500, 50)

	require.NotEmpty(t, chunks)
	last := chunks[len(chunks)-1]
	assert.True(t, strings.HasSuffix(text, last))

	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 500)
	}
}

func TestSplitTextOverlapAtLeastChunkSize(t *testing.T) {
	text := strings.Repeat("x", 30)
	chunks := SplitText(text, 10, 10)

	// Degenerate overlap falls back to non-overlapping steps instead of looping.
	require.Len(t, chunks, 3)
	assert.Equal(t, text, strings.Join(chunks, ""))
}

func TestSplitTextMultibyteRunes(t *testing.T) {
	text := strings.Repeat("é", 40)
	chunks := SplitText(text, 10, 2)

	for _, chunk := range chunks {
		runes := []rune(chunk)
		assert.LessOrEqual(t, len(runes), 10)
		for _, r := range runes {
			assert.Equal(t, 'é', r)
		}
	}
}
