package memstore

import (
	"context"
	"maps"

	"github.com/osse101/raiddata/internal/domain"
)

func (s *Store) GetUpgrade(ctx context.Context, weaponID string, level int) (*domain.Upgrade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("GetUpgrade"); err != nil {
		return nil, err
	}
	up, ok := s.data.upgrades[upgradeKey{weaponID, level}]
	if !ok {
		return nil, notFound(domain.ErrUpgradeNotFound, upgradeKey{weaponID, level})
	}
	up.Modifiers = maps.Clone(up.Modifiers)
	return &up, nil
}

func (s *Store) InsertUpgrade(ctx context.Context, up *domain.Upgrade) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("InsertUpgrade"); err != nil {
		return err
	}
	if err := s.checkUpgrade(up); err != nil {
		return err
	}
	key := upgradeKey{up.WeaponID, up.Level}
	if _, ok := s.data.upgrades[key]; ok {
		return violation("duplicate upgrade %s/%d", up.WeaponID, up.Level)
	}
	next := *up
	next.Modifiers = maps.Clone(up.Modifiers)
	s.data.upgrades[key] = next
	return nil
}

func (s *Store) UpdateUpgrade(ctx context.Context, up *domain.Upgrade) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("UpdateUpgrade"); err != nil {
		return err
	}
	key := upgradeKey{up.WeaponID, up.Level}
	if _, ok := s.data.upgrades[key]; !ok {
		return notFound(domain.ErrUpgradeNotFound, key)
	}
	if err := s.checkUpgrade(up); err != nil {
		return err
	}
	next := *up
	next.Modifiers = maps.Clone(up.Modifiers)
	s.data.upgrades[key] = next
	return nil
}

func (s *Store) checkUpgrade(up *domain.Upgrade) error {
	if _, ok := s.data.weapons[up.WeaponID]; !ok {
		return violation("upgrade references unknown weapon %s", up.WeaponID)
	}
	if up.RecipeID != nil {
		if _, ok := s.data.recipes[*up.RecipeID]; !ok {
			return violation("upgrade references unknown recipe %s", *up.RecipeID)
		}
	}
	return nil
}

func (s *Store) GetSyncMetadata(ctx context.Context, configName string) (*domain.SyncMetadata, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("GetSyncMetadata"); err != nil {
		return nil, err
	}
	m, ok := s.data.syncs[configName]
	if !ok {
		return nil, notFound(domain.ErrSyncNotFound, configName)
	}
	return &m, nil
}

func (s *Store) UpsertSyncMetadata(ctx context.Context, metadata *domain.SyncMetadata) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("UpsertSyncMetadata"); err != nil {
		return err
	}
	s.data.syncs[metadata.ConfigName] = *metadata
	return nil
}
