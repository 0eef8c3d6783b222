package memstore

import (
	"context"
	"slices"
	"sort"

	"github.com/osse101/raiddata/internal/domain"
)

func (s *Store) GetRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("GetRecipe"); err != nil {
		return nil, err
	}
	r, ok := s.data.recipes[id]
	if !ok {
		return nil, notFound(domain.ErrRecipeNotFound, id)
	}
	return &r, nil
}

func (s *Store) InsertRecipe(ctx context.Context, recipe *domain.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("InsertRecipe"); err != nil {
		return err
	}
	if _, ok := s.data.recipes[recipe.ID]; ok {
		return violation("duplicate recipe %s", recipe.ID)
	}
	s.data.recipes[recipe.ID] = *recipe
	return nil
}

func (s *Store) UpdateRecipe(ctx context.Context, recipe *domain.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("UpdateRecipe"); err != nil {
		return err
	}
	if _, ok := s.data.recipes[recipe.ID]; !ok {
		return notFound(domain.ErrRecipeNotFound, recipe.ID)
	}
	s.data.recipes[recipe.ID] = *recipe
	return nil
}

func (s *Store) DeleteRecipeIO(ctx context.Context, recipeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("DeleteRecipeIO"); err != nil {
		return err
	}
	delete(s.data.recipeIO, recipeID)
	return nil
}

func (s *Store) InsertRecipeIO(ctx context.Context, rows []domain.RecipeIO) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("InsertRecipeIO"); err != nil {
		return err
	}
	for _, row := range rows {
		if _, ok := s.data.recipes[row.RecipeID]; !ok {
			return violation("recipe_io references unknown recipe %s", row.RecipeID)
		}
		if _, ok := s.data.items[row.ItemID]; !ok {
			return violation("recipe_io references unknown item %s", row.ItemID)
		}
		if row.Quantity <= 0 {
			return violation("recipe_io quantity %d for %s", row.Quantity, row.ItemID)
		}
		for _, existing := range s.data.recipeIO[row.RecipeID] {
			if existing.ItemID == row.ItemID && existing.Role == row.Role {
				return violation("duplicate recipe_io %s/%s/%s", row.RecipeID, row.ItemID, row.Role)
			}
		}
		s.data.recipeIO[row.RecipeID] = append(slices.Clip(s.data.recipeIO[row.RecipeID]), row)
	}
	return nil
}

func (s *Store) GetRecipeIO(ctx context.Context, recipeID string) ([]domain.RecipeIO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("GetRecipeIO"); err != nil {
		return nil, err
	}
	return slices.Clone(s.data.recipeIO[recipeID]), nil
}

func (s *Store) ListRecipeIOByType(ctx context.Context, recipeType domain.RecipeType) ([]domain.RecipeIO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("ListRecipeIOByType"); err != nil {
		return nil, err
	}
	var ids []string
	for id, r := range s.data.recipes {
		if r.Type == recipeType {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	var out []domain.RecipeIO
	for _, id := range ids {
		out = append(out, s.data.recipeIO[id]...)
	}
	return out, nil
}

func (s *Store) DeleteWorkbenchLinks(ctx context.Context, recipeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("DeleteWorkbenchLinks"); err != nil {
		return err
	}
	delete(s.data.links, recipeID)
	return nil
}

func (s *Store) InsertWorkbenchLinks(ctx context.Context, links []domain.WorkbenchLink) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("InsertWorkbenchLinks"); err != nil {
		return err
	}
	for _, l := range links {
		if _, ok := s.data.recipes[l.RecipeID]; !ok {
			return violation("link references unknown recipe %s", l.RecipeID)
		}
		if _, ok := s.data.tiers[tierKey{l.WorkbenchID, l.Tier}]; !ok {
			return violation("link references unknown tier %s/%d", l.WorkbenchID, l.Tier)
		}
		for _, existing := range s.data.links[l.RecipeID] {
			if existing == l {
				return violation("duplicate link %s/%s/%d", l.RecipeID, l.WorkbenchID, l.Tier)
			}
		}
		s.data.links[l.RecipeID] = append(slices.Clip(s.data.links[l.RecipeID]), l)
	}
	return nil
}

func (s *Store) GetWorkbenchLinks(ctx context.Context, recipeID string) ([]domain.WorkbenchLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("GetWorkbenchLinks"); err != nil {
		return nil, err
	}
	return slices.Clone(s.data.links[recipeID]), nil
}

// Recipes returns every stored recipe header, for assertions
func (s *Store) Recipes() map[string]domain.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]domain.Recipe, len(s.data.recipes))
	for k, v := range s.data.recipes {
		out[k] = v
	}
	return out
}
