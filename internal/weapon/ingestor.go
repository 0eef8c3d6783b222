package weapon

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/osse101/raiddata/internal/catalog"
	"github.com/osse101/raiddata/internal/classify"
	"github.com/osse101/raiddata/internal/domain"
	"github.com/osse101/raiddata/internal/item"
	"github.com/osse101/raiddata/internal/logger"
	"github.com/osse101/raiddata/internal/repository"
	"github.com/osse101/raiddata/internal/source"
)

// Ingestor writes the item row and the weapon extension row of each weapon
// record in one transaction
type Ingestor struct {
	store   repository.Store
	catalog *catalog.Catalog
	items   *item.Ingestor
	stats   *StatNormalizer
}

// NewIngestor creates a weapon ingestor
func NewIngestor(store repository.Store, cat *catalog.Catalog, items *item.Ingestor, stats *StatNormalizer) *Ingestor {
	return &Ingestor{store: store, catalog: cat, items: items, stats: stats}
}

// Result reports what happened to both rows of a weapon
type Result struct {
	Item   domain.Outcome
	Weapon domain.Outcome
}

// Ingest normalizes rec and upserts its item and weapon rows
func (in *Ingestor) Ingest(ctx context.Context, rec *source.Weapon) (Result, error) {
	it, w, err := in.Normalize(ctx, rec)
	if err != nil {
		return Result{}, err
	}

	var res Result
	err = in.store.InTx(ctx, func(q repository.Queries) error {
		var err error
		if res.Item, err = item.Upsert(ctx, q, it); err != nil {
			return err
		}
		res.Weapon, err = Upsert(ctx, q, w)
		return err
	})
	if err != nil {
		return Result{}, err
	}
	in.catalog.Remember(it.ID)
	return res, nil
}

// Normalize builds both rows. Value and weight prefer the base block.
func (in *Ingestor) Normalize(ctx context.Context, rec *source.Weapon) (*domain.Item, *domain.Weapon, error) {
	log := logger.FromContext(ctx)

	it, err := in.items.Normalize(ctx, &rec.Item, domain.KindWeapon)
	if err != nil {
		return nil, nil, err
	}
	it.Value = item.Trunc(rec.SellPriceValue(), 0)
	it.Weight = rec.WeightValue().Or(0)

	block := rec.StatBlock()
	w := &domain.Weapon{
		ItemID:              it.ID,
		ModSlots:            classify.ModSlots(rec.ModSlots),
		StatsBase:           in.stats.Normalize(ctx, it.ID, block),
		FiringMode:          nonEmpty(block.FiringMode),
		ArcArmorPenetration: nonEmpty(block.ArcArmorPenetration),
	}
	if len(w.StatsBase) == 0 {
		log.Warn(LogMsgNoBaseStats, "item_id", it.ID, "sample_keys", block.Stats.Keys())
	}

	if ammo, ok := classify.AmmoType(rec.AmmoType.Value); ok {
		w.AmmoType = &ammo
	} else if rec.AmmoType.Present() {
		log.Warn(LogMsgUnknownAmmoType, "item_id", it.ID, "ammo_type", rec.AmmoType.Value)
	}
	if class, ok := classify.WeaponClass(rec.ClassName()); ok {
		w.WeaponClass = &class
	} else if name := rec.ClassName(); name != "" {
		log.Warn(LogMsgUnknownWeaponClass, "item_id", it.ID, "class", name)
	}
	return it, w, nil
}

// Upsert inserts w or overwrites its content. Compatible mods are kept.
func Upsert(ctx context.Context, q repository.Weapon, w *domain.Weapon) (domain.Outcome, error) {
	log := logger.FromContext(ctx)

	existing, err := q.GetWeapon(ctx, w.ItemID)
	switch {
	case errors.Is(err, domain.ErrWeaponNotFound):
		if err := q.InsertWeapon(ctx, w); err != nil {
			return domain.OutcomeSkipped, fmt.Errorf(ErrMsgInsertWeaponFailed, w.ItemID, err)
		}
		log.Info(LogMsgInsertedWeapon, "item_id", w.ItemID)
		return domain.OutcomeInserted, nil
	case err != nil:
		return domain.OutcomeSkipped, fmt.Errorf(ErrMsgLoadWeaponFailed, w.ItemID, err)
	case existing.SameContent(w):
		return domain.OutcomeUnchanged, nil
	}

	if err := q.UpdateWeapon(ctx, w); err != nil {
		return domain.OutcomeSkipped, fmt.Errorf(ErrMsgUpdateWeaponFailed, w.ItemID, err)
	}
	log.Info(LogMsgUpdatedWeapon, "item_id", w.ItemID)
	return domain.OutcomeUpdated, nil
}

func nonEmpty(t source.Text) *string {
	if strings.TrimSpace(t.Value) == "" {
		return nil
	}
	v := t.Value
	return &v
}
