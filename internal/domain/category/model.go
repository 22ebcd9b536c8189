package category

import (
	"context"

	"github.com/subtrackr/subtrackr/internal/types"
)

// Category is a spending category used to group subscriptions in forecasts
// and dashboard breakdowns.
type Category struct {
	// ID is the unique identifier for the category
	ID string `db:"id" json:"id"`

	// Name is the display name, e.g. "Streaming"
	Name string `db:"name" json:"name"`

	types.BaseModel
}

type Repository interface {
	Create(ctx context.Context, category *Category) error
	Get(ctx context.Context, id string) (*Category, error)
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*Category, error)
}
