package postgres

import (
	"context"
	"fmt"

	"github.com/osse101/raiddata/internal/domain"
)

func (q *queries) GetUpgrade(ctx context.Context, weaponID string, level int) (*domain.Upgrade, error) {
	var (
		up        domain.Upgrade
		modifiers []byte
	)
	err := q.db.QueryRow(ctx, `
		SELECT weapon_id, level, modifiers, recipe_id, sell_price FROM weapon_upgrades
		WHERE weapon_id = $1 AND level = $2`, weaponID, level).
		Scan(&up.WeaponID, &up.Level, &modifiers, &up.RecipeID, &up.SellPrice)
	if err != nil {
		return nil, lookup(err, domain.ErrUpgradeNotFound, fmt.Sprintf("%s/%d", weaponID, level))
	}
	if err := decodeJSON("modifiers", modifiers, &up.Modifiers); err != nil {
		return nil, err
	}
	return &up, nil
}

func (q *queries) InsertUpgrade(ctx context.Context, up *domain.Upgrade) error {
	modifiers, err := encodeJSON("modifiers", up.Modifiers)
	if err != nil {
		return err
	}
	_, err = q.db.Exec(ctx, `
		INSERT INTO weapon_upgrades (weapon_id, level, modifiers, recipe_id, sell_price)
		VALUES ($1, $2, $3, $4, $5)`,
		up.WeaponID, up.Level, modifiers, up.RecipeID, up.SellPrice)
	if err != nil {
		return fmt.Errorf(ErrMsgQueryFailed, fmt.Sprintf("insert upgrade %s/%d", up.WeaponID, up.Level), classify(err))
	}
	return nil
}

func (q *queries) UpdateUpgrade(ctx context.Context, up *domain.Upgrade) error {
	modifiers, err := encodeJSON("modifiers", up.Modifiers)
	if err != nil {
		return err
	}
	tag, err := q.db.Exec(ctx, `
		UPDATE weapon_upgrades SET modifiers = $3, recipe_id = $4, sell_price = $5
		WHERE weapon_id = $1 AND level = $2`,
		up.WeaponID, up.Level, modifiers, up.RecipeID, up.SellPrice)
	return affected(tag, err, domain.ErrUpgradeNotFound, fmt.Sprintf("%s/%d", up.WeaponID, up.Level))
}
