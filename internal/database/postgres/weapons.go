package postgres

import (
	"context"
	"fmt"

	"github.com/osse101/raiddata/internal/domain"
)

func (q *queries) GetWeapon(ctx context.Context, itemID string) (*domain.Weapon, error) {
	var (
		w                 domain.Weapon
		ammo, class       *string
		modSlots, compats []string
		statsBase         []byte
	)
	err := q.db.QueryRow(ctx, `
		SELECT item_id, ammo_type, weapon_class, mod_slots, compatible_mods, stats_base,
			firing_mode, arc_armor_penetration
		FROM weapons WHERE item_id = $1`, itemID).
		Scan(&w.ItemID, &ammo, &class, &modSlots, &compats, &statsBase, &w.FiringMode, &w.ArcArmorPenetration)
	if err != nil {
		return nil, lookup(err, domain.ErrWeaponNotFound, itemID)
	}
	w.AmmoType = fromStringPtr[domain.AmmoType](ammo)
	w.WeaponClass = fromStringPtr[domain.WeaponClass](class)
	w.ModSlots = fromStrings[domain.ModSlot](modSlots)
	if len(compats) > 0 {
		w.CompatibleMods = compats
	}
	if err := decodeJSON("stats_base", statsBase, &w.StatsBase); err != nil {
		return nil, err
	}
	return &w, nil
}

func (q *queries) InsertWeapon(ctx context.Context, weapon *domain.Weapon) error {
	statsBase, err := encodeJSON("stats_base", weapon.StatsBase)
	if err != nil {
		return err
	}
	_, err = q.db.Exec(ctx, `
		INSERT INTO weapons (item_id, ammo_type, weapon_class, mod_slots, compatible_mods,
			stats_base, firing_mode, arc_armor_penetration)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		weapon.ItemID, toStringPtr(weapon.AmmoType), toStringPtr(weapon.WeaponClass),
		toStrings(weapon.ModSlots), toStrings(weapon.CompatibleMods), statsBase,
		weapon.FiringMode, weapon.ArcArmorPenetration)
	if err != nil {
		return fmt.Errorf(ErrMsgQueryFailed, "insert weapon "+weapon.ItemID, classify(err))
	}
	return nil
}

func (q *queries) UpdateWeapon(ctx context.Context, weapon *domain.Weapon) error {
	statsBase, err := encodeJSON("stats_base", weapon.StatsBase)
	if err != nil {
		return err
	}
	tag, err := q.db.Exec(ctx, `
		UPDATE weapons SET ammo_type = $2, weapon_class = $3, mod_slots = $4, stats_base = $5,
			firing_mode = $6, arc_armor_penetration = $7
		WHERE item_id = $1`,
		weapon.ItemID, toStringPtr(weapon.AmmoType), toStringPtr(weapon.WeaponClass),
		toStrings(weapon.ModSlots), statsBase, weapon.FiringMode, weapon.ArcArmorPenetration)
	return affected(tag, err, domain.ErrWeaponNotFound, weapon.ItemID)
}

func (q *queries) SetCompatibleMods(ctx context.Context, itemID string, mods []string) error {
	tag, err := q.db.Exec(ctx, `UPDATE weapons SET compatible_mods = $2 WHERE item_id = $1`,
		itemID, toStrings(mods))
	return affected(tag, err, domain.ErrWeaponNotFound, itemID)
}
