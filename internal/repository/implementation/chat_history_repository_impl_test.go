package implementation

import (
	"testing"
	"time"

	"nutrichat-be/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func turnAt(question string, createdAt time.Time) *model.ChatTurn {
	return &model.ChatTurn{Question: question, CreatedAt: createdAt}
}

func TestOldestFirstReversesDescendingRead(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	// Rows arrive newest-first, as the store query orders them.
	rows := []*model.ChatTurn{
		turnAt("q3", base.Add(2*time.Minute)),
		turnAt("q2", base.Add(1*time.Minute)),
		turnAt("q1", base),
	}

	out := oldestFirst(rows)

	require.Len(t, out, 3)
	assert.Equal(t, "q1", out[0].Question)
	assert.Equal(t, "q2", out[1].Question)
	assert.Equal(t, "q3", out[2].Question)
	for i := 1; i < len(out); i++ {
		assert.True(t, !out[i].CreatedAt.Before(out[i-1].CreatedAt),
			"turn %d is older than turn %d", i, i-1)
	}
}

func TestOldestFirstDegenerateInputs(t *testing.T) {
	assert.Empty(t, oldestFirst(nil))
	assert.Empty(t, oldestFirst([]*model.ChatTurn{}))

	single := []*model.ChatTurn{turnAt("only", time.Now())}
	out := oldestFirst(single)
	require.Len(t, out, 1)
	assert.Equal(t, "only", out[0].Question)
}

func TestOldestFirstEvenLength(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rows := []*model.ChatTurn{
		turnAt("q4", base.Add(3*time.Minute)),
		turnAt("q3", base.Add(2*time.Minute)),
		turnAt("q2", base.Add(1*time.Minute)),
		turnAt("q1", base),
	}

	out := oldestFirst(rows)
	got := make([]string, len(out))
	for i, row := range out {
		got[i] = row.Question
	}
	assert.Equal(t, []string{"q1", "q2", "q3", "q4"}, got)
}
