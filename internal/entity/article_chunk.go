package entity

import (
	"time"

	"github.com/google/uuid"
)

// ArticleChunk is one embedded slice of a source document in the
// retrieval index.
type ArticleChunk struct {
	Id         uuid.UUID
	Source     string
	ChunkIndex int
	Content    string
	Embedding  []float32
	CreatedAt  time.Time
}
