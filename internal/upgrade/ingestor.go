package upgrade

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/raiddata/internal/crafting"
	"github.com/osse101/raiddata/internal/domain"
	"github.com/osse101/raiddata/internal/logger"
	"github.com/osse101/raiddata/internal/modifier"
	"github.com/osse101/raiddata/internal/repository"
	"github.com/osse101/raiddata/internal/source"
)

// Ingestor writes the upgrade track of a weapon. Each level owns an
// upgrade-cost recipe and, when the source lists recycled materials, a
// per-level recycle recipe.
type Ingestor struct {
	store   repository.Store
	builder *crafting.Builder
	perks   *modifier.Table
	diag    *modifier.Diagnostics
}

// NewIngestor creates an upgrade ingestor
func NewIngestor(store repository.Store, builder *crafting.Builder, perks *modifier.Table, diag *modifier.Diagnostics) *Ingestor {
	return &Ingestor{store: store, builder: builder, perks: perks, diag: diag}
}

// Result tallies upgrade rows and the recipes written for them
type Result struct {
	Upgrades domain.Tally
	Recipes  domain.Tally
}

// Ingest writes every upgrade level of rec. A weapon that is not stored is
// skipped as a whole; a failing level does not stop the others.
func (in *Ingestor) Ingest(ctx context.Context, rec *source.Weapon) (Result, error) {
	weaponID := rec.ID.Value
	log := logger.FromContext(ctx).With("item_id", weaponID)

	var res Result
	if len(rec.Upgrades) == 0 {
		return res, nil
	}

	if _, err := in.store.GetWeapon(ctx, weaponID); err != nil {
		if errors.Is(err, domain.ErrWeaponNotFound) {
			log.Warn(LogMsgWeaponNotStored, "levels", len(rec.Upgrades))
			res.Upgrades.Skipped += len(rec.Upgrades)
			return res, nil
		}
		return res, fmt.Errorf(ErrMsgLoadWeaponFailed, weaponID, err)
	}

	for _, entry := range rec.Upgrades {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		level := entry.Level()
		if err := in.level(ctx, weaponID, level, entry, &res); err != nil {
			log.Error(LogMsgLevelFailed, "level", level, "error", err)
			res.Upgrades.Failed++
		}
	}

	log.Info(LogMsgUpgradesDone,
		"levels", len(rec.Upgrades),
		"inserted", res.Upgrades.Inserted,
		"updated", res.Upgrades.Updated)
	return res, nil
}

func (in *Ingestor) level(ctx context.Context, weaponID string, level int, entry source.UpgradeEntry, res *Result) error {
	recipeID, outcome, err := in.builder.UpgradeCost(ctx, weaponID, level, entry.Materials)
	if err != nil {
		res.Recipes.Failed++
		return err
	}
	res.Recipes.Add(outcome)

	if entry.RecycledMaterials.Len() > 0 {
		outcome, err := in.builder.UpgradeRecycle(ctx, weaponID, level, entry.RecycledMaterials)
		if err != nil {
			res.Recipes.Failed++
			return err
		}
		res.Recipes.Add(outcome)
	}

	up := &domain.Upgrade{
		WeaponID:  weaponID,
		Level:     level,
		Modifiers: in.normalizePerks(ctx, weaponID, level, entry.Perks),
		SellPrice: sellPrice(entry.SellPrice),
	}
	if recipeID != "" {
		up.RecipeID = &recipeID
	}

	err = in.store.InTx(ctx, func(q repository.Queries) error {
		outcome, err = Upsert(ctx, q, up)
		return err
	})
	if err != nil {
		return err
	}
	res.Upgrades.Add(outcome)
	return nil
}

func (in *Ingestor) normalizePerks(ctx context.Context, weaponID string, level int, perks source.NumberMap) domain.Modifiers {
	mods, misses := in.perks.Normalize(modifier.Pairs(perks))
	if len(misses) == 0 {
		return mods
	}
	keys := make([]string, 0, len(misses))
	for _, miss := range misses {
		in.diag.RecordMiss(in.perks, weaponID, miss)
		keys = append(keys, miss.Key)
	}
	logger.FromContext(ctx).Warn(LogMsgUnmappedPerks, "item_id", weaponID, "level", level, "keys", keys)
	return mods
}

// Upsert inserts up or overwrites the stored (weapon, level) row
func Upsert(ctx context.Context, q repository.Upgrade, up *domain.Upgrade) (domain.Outcome, error) {
	existing, err := q.GetUpgrade(ctx, up.WeaponID, up.Level)
	switch {
	case errors.Is(err, domain.ErrUpgradeNotFound):
		if err := q.InsertUpgrade(ctx, up); err != nil {
			return domain.OutcomeSkipped, fmt.Errorf(ErrMsgInsertUpgradeFailed, up.WeaponID, up.Level, err)
		}
		return domain.OutcomeInserted, nil
	case err != nil:
		return domain.OutcomeSkipped, fmt.Errorf(ErrMsgLoadUpgradeFailed, up.WeaponID, up.Level, err)
	case existing.SameContent(up):
		return domain.OutcomeUnchanged, nil
	}
	if err := q.UpdateUpgrade(ctx, up); err != nil {
		return domain.OutcomeSkipped, fmt.Errorf(ErrMsgUpdateUpgradeFailed, up.WeaponID, up.Level, err)
	}
	return domain.OutcomeUpdated, nil
}

func sellPrice(n source.Number) *int {
	v, ok := n.Int()
	if !ok {
		return nil
	}
	return &v
}
