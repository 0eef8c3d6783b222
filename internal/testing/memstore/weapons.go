package memstore

import (
	"context"
	"slices"

	"github.com/osse101/raiddata/internal/domain"
)

func (s *Store) GetWeapon(ctx context.Context, itemID string) (*domain.Weapon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("GetWeapon"); err != nil {
		return nil, err
	}
	w, ok := s.data.weapons[itemID]
	if !ok {
		return nil, notFound(domain.ErrWeaponNotFound, itemID)
	}
	out := cloneWeapon(w)
	return &out, nil
}

func (s *Store) InsertWeapon(ctx context.Context, weapon *domain.Weapon) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("InsertWeapon"); err != nil {
		return err
	}
	if _, ok := s.data.items[weapon.ItemID]; !ok {
		return violation("weapon %s has no item row", weapon.ItemID)
	}
	if _, ok := s.data.weapons[weapon.ItemID]; ok {
		return violation("duplicate weapon %s", weapon.ItemID)
	}
	s.data.weapons[weapon.ItemID] = cloneWeapon(*weapon)
	return nil
}

func (s *Store) UpdateWeapon(ctx context.Context, weapon *domain.Weapon) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("UpdateWeapon"); err != nil {
		return err
	}
	old, ok := s.data.weapons[weapon.ItemID]
	if !ok {
		return notFound(domain.ErrWeaponNotFound, weapon.ItemID)
	}
	next := cloneWeapon(*weapon)
	next.CompatibleMods = old.CompatibleMods
	s.data.weapons[weapon.ItemID] = next
	return nil
}

func (s *Store) SetCompatibleMods(ctx context.Context, itemID string, mods []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("SetCompatibleMods"); err != nil {
		return err
	}
	w, ok := s.data.weapons[itemID]
	if !ok {
		return notFound(domain.ErrWeaponNotFound, itemID)
	}
	w.CompatibleMods = slices.Clone(mods)
	s.data.weapons[itemID] = w
	return nil
}
