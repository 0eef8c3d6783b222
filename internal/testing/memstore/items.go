package memstore

import (
	"context"

	"github.com/osse101/raiddata/internal/domain"
)

func (s *Store) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("GetItem"); err != nil {
		return nil, err
	}
	it, ok := s.data.items[id]
	if !ok {
		return nil, notFound(domain.ErrItemNotFound, id)
	}
	out := cloneItem(it)
	return &out, nil
}

func (s *Store) ExistingItemIDs(ctx context.Context, ids []string) (map[string]bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("ExistingItemIDs"); err != nil {
		return nil, err
	}
	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		if _, ok := s.data.items[id]; ok {
			out[id] = true
		}
	}
	return out, nil
}

func (s *Store) InsertItem(ctx context.Context, item *domain.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("InsertItem"); err != nil {
		return err
	}
	if _, ok := s.data.items[item.ID]; ok {
		return violation("duplicate item %s", item.ID)
	}
	s.data.items[item.ID] = cloneItem(*item)
	return nil
}

func (s *Store) UpdateItem(ctx context.Context, item *domain.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("UpdateItem"); err != nil {
		return err
	}
	old, ok := s.data.items[item.ID]
	if !ok {
		return notFound(domain.ErrItemNotFound, item.ID)
	}
	next := cloneItem(*item)
	next.RecipeID = old.RecipeID
	next.RecyclingRecipeID = old.RecyclingRecipeID
	s.data.items[item.ID] = next
	return nil
}

func (s *Store) SetItemRecipe(ctx context.Context, itemID, recipeID string) error {
	return s.setPointer("SetItemRecipe", itemID, recipeID, func(it *domain.Item, id *string) { it.RecipeID = id })
}

func (s *Store) SetItemRecyclingRecipe(ctx context.Context, itemID, recipeID string) error {
	return s.setPointer("SetItemRecyclingRecipe", itemID, recipeID, func(it *domain.Item, id *string) { it.RecyclingRecipeID = id })
}

func (s *Store) setPointer(op, itemID, recipeID string, set func(*domain.Item, *string)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(op); err != nil {
		return err
	}
	it, ok := s.data.items[itemID]
	if !ok {
		return notFound(domain.ErrItemNotFound, itemID)
	}
	if _, ok := s.data.recipes[recipeID]; !ok {
		return violation("item %s references unknown recipe %s", itemID, recipeID)
	}
	id := recipeID
	set(&it, &id)
	s.data.items[itemID] = it
	return nil
}

// Items returns every stored item, for assertions
func (s *Store) Items() map[string]domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]domain.Item, len(s.data.items))
	for k, v := range s.data.items {
		out[k] = cloneItem(v)
	}
	return out
}
