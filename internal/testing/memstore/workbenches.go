package memstore

import (
	"context"
	"slices"

	"github.com/osse101/raiddata/internal/domain"
)

func (s *Store) GetWorkbench(ctx context.Context, id string) (*domain.Workbench, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("GetWorkbench"); err != nil {
		return nil, err
	}
	wb, ok := s.data.workbenches[id]
	if !ok {
		return nil, notFound(domain.ErrWorkbenchNotFound, id)
	}
	return &wb, nil
}

func (s *Store) InsertWorkbench(ctx context.Context, wb *domain.Workbench) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("InsertWorkbench"); err != nil {
		return err
	}
	if _, ok := s.data.workbenches[wb.ID]; ok {
		return violation("duplicate workbench %s", wb.ID)
	}
	s.data.workbenches[wb.ID] = *wb
	return nil
}

func (s *Store) UpdateWorkbench(ctx context.Context, wb *domain.Workbench) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("UpdateWorkbench"); err != nil {
		return err
	}
	if _, ok := s.data.workbenches[wb.ID]; !ok {
		return notFound(domain.ErrWorkbenchNotFound, wb.ID)
	}
	s.data.workbenches[wb.ID] = *wb
	return nil
}

func (s *Store) GetTier(ctx context.Context, workbenchID string, tier int) (*domain.Tier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("GetTier"); err != nil {
		return nil, err
	}
	t, ok := s.data.tiers[tierKey{workbenchID, tier}]
	if !ok {
		return nil, notFound(domain.ErrTierNotFound, tierKey{workbenchID, tier})
	}
	return &t, nil
}

func (s *Store) InsertTier(ctx context.Context, tier *domain.Tier) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("InsertTier"); err != nil {
		return err
	}
	if _, ok := s.data.workbenches[tier.WorkbenchID]; !ok {
		return violation("tier references unknown workbench %s", tier.WorkbenchID)
	}
	key := tierKey{tier.WorkbenchID, tier.Tier}
	if _, ok := s.data.tiers[key]; ok {
		return violation("duplicate tier %s/%d", tier.WorkbenchID, tier.Tier)
	}
	s.data.tiers[key] = *tier
	return nil
}

func (s *Store) UpdateTierName(ctx context.Context, workbenchID string, tier int, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("UpdateTierName"); err != nil {
		return err
	}
	key := tierKey{workbenchID, tier}
	t, ok := s.data.tiers[key]
	if !ok {
		return notFound(domain.ErrTierNotFound, key)
	}
	t.Name = name
	s.data.tiers[key] = t
	return nil
}

func (s *Store) DeleteTierRequirements(ctx context.Context, workbenchID string, tier int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("DeleteTierRequirements"); err != nil {
		return err
	}
	delete(s.data.requirements, tierKey{workbenchID, tier})
	return nil
}

func (s *Store) InsertTierRequirements(ctx context.Context, rows []domain.TierRequirement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("InsertTierRequirements"); err != nil {
		return err
	}
	for _, r := range rows {
		key := tierKey{r.WorkbenchID, r.Tier}
		if _, ok := s.data.tiers[key]; !ok {
			return violation("requirement references unknown tier %s/%d", r.WorkbenchID, r.Tier)
		}
		if _, ok := s.data.items[r.ItemID]; !ok {
			return violation("requirement references unknown item %s", r.ItemID)
		}
		for _, existing := range s.data.requirements[key] {
			if existing.ItemID == r.ItemID {
				return violation("duplicate requirement %s/%d/%s", r.WorkbenchID, r.Tier, r.ItemID)
			}
		}
		s.data.requirements[key] = append(slices.Clip(s.data.requirements[key]), r)
	}
	return nil
}

func (s *Store) GetTierRequirements(ctx context.Context, workbenchID string, tier int) ([]domain.TierRequirement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("GetTierRequirements"); err != nil {
		return nil, err
	}
	return slices.Clone(s.data.requirements[tierKey{workbenchID, tier}]), nil
}
