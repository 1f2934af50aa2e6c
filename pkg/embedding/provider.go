package embedding

import "context"

// Task types hint retrieval-aware embedding models at which side of the
// index a text belongs to. Providers that don't distinguish ignore them.
const (
	TaskTypeRetrievalDocument = "RETRIEVAL_DOCUMENT"
	TaskTypeRetrievalQuery    = "RETRIEVAL_QUERY"
)

// EmbeddingProvider generates vector embeddings for text. Ingestion and
// query must use the same provider so vectors live in the same space.
type EmbeddingProvider interface {
	Embed(ctx context.Context, text string, taskType string) ([]float32, error)
}
