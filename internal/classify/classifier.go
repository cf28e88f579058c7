package classify

import (
	"context"

	"moabook/cardsheet/internal/models"
)

// Classifier is the external classification collaborator contract. The
// response maps request indices to category tags; a response that omits some
// indices is valid, and those rows keep their prior or default category.
type Classifier interface {
	Classify(ctx context.Context, kind models.TransactionKind, items []Item) (map[int]string, error)
}
