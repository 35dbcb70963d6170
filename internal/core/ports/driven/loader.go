package driven

import (
	"context"

	"github.com/custodia-labs/legible/internal/core/domain"
)

// DocumentLoader reads documents from storage.
type DocumentLoader interface {
	// Load reads at most maxChars characters from path.
	// maxChars <= 0 reads the whole file. Reaching end of file early is
	// reported through LoadResult.Short, never as an error.
	Load(ctx context.Context, path string, maxChars int) (*domain.LoadResult, error)
}
