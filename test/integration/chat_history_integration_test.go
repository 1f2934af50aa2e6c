package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"nutrichat-be/internal/model"
	"nutrichat-be/internal/repository/implementation"
	"nutrichat-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatHistoryRoundTrip(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}
	require.NoError(t, gormDB.AutoMigrate(&model.ChatTurn{}))

	repo := implementation.NewChatHistoryRepository(gormDB)
	ctx := context.Background()

	email := "test-integration-" + uuid.New().String() + "@example.com"
	t.Cleanup(func() {
		gormDB.Where("user_email = ?", email).Delete(&model.ChatTurn{})
	})

	// Appends spaced out so created_at ordering is unambiguous.
	for _, q := range []string{"q1", "q2", "q3"} {
		require.NoError(t, repo.Append(ctx, email, q, "answer to "+q))
		time.Sleep(20 * time.Millisecond)
	}

	t.Run("fetch returns all turns oldest first", func(t *testing.T) {
		turns, err := repo.FindRecentByEmail(ctx, email, 5)
		require.NoError(t, err)
		require.Len(t, turns, 3)

		assert.Equal(t, "q1", turns[0].Question)
		assert.Equal(t, "q2", turns[1].Question)
		assert.Equal(t, "q3", turns[2].Question)
		for i := 1; i < len(turns); i++ {
			assert.True(t, !turns[i].CreatedAt.Before(turns[i-1].CreatedAt),
				"turn %d is older than turn %d", i, i-1)
		}
	})

	t.Run("limit keeps the newest turns, still ascending", func(t *testing.T) {
		turns, err := repo.FindRecentByEmail(ctx, email, 2)
		require.NoError(t, err)
		require.Len(t, turns, 2)

		assert.Equal(t, "q2", turns[0].Question)
		assert.Equal(t, "q3", turns[1].Question)
	})

	t.Run("unknown user yields no turns", func(t *testing.T) {
		turns, err := repo.FindRecentByEmail(ctx, "nobody-"+uuid.New().String()+"@example.com", 5)
		require.NoError(t, err)
		assert.Empty(t, turns)
	})
}
