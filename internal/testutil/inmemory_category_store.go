package testutil

import (
	"context"
	"fmt"

	"github.com/subtrackr/subtrackr/internal/domain/category"
)

// InMemoryCategoryStore implements category.Repository
type InMemoryCategoryStore struct {
	*InMemoryStore[*category.Category]
}

func NewInMemoryCategoryStore() *InMemoryCategoryStore {
	return &InMemoryCategoryStore{
		InMemoryStore: NewInMemoryStore[*category.Category](),
	}
}

func (s *InMemoryCategoryStore) Create(ctx context.Context, c *category.Category) error {
	if c == nil {
		return fmt.Errorf("category cannot be nil")
	}
	return s.InMemoryStore.Create(ctx, c.ID, c)
}

func (s *InMemoryCategoryStore) Get(ctx context.Context, id string) (*category.Category, error) {
	return s.InMemoryStore.Get(ctx, id)
}

func (s *InMemoryCategoryStore) Update(ctx context.Context, c *category.Category) error {
	if c == nil {
		return fmt.Errorf("category cannot be nil")
	}
	return s.InMemoryStore.Update(ctx, c.ID, c)
}

func (s *InMemoryCategoryStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}

func (s *InMemoryCategoryStore) List(ctx context.Context) ([]*category.Category, error) {
	return s.InMemoryStore.List(ctx, nil, nil, func(i, j *category.Category) bool {
		return i.Name < j.Name
	})
}
