package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/raiddata/internal/domain"
	"github.com/osse101/raiddata/internal/logger"
	"github.com/osse101/raiddata/internal/source"
)

func (r *run) ingestItem(ctx context.Context, b *batch, i int) {
	rec, ok := decode[source.Item](ctx, b, i)
	if !ok {
		return
	}
	if !rec.Identified() {
		malformed(ctx, b, i)
		return
	}
	id := rec.ID.Value
	r.claim(ctx, b, domain.EntityItem, id)

	outcome, err := r.items.Ingest(ctx, &rec, b.spec.Kind)
	if err != nil {
		r.fail(ctx, b, domain.EntityItem, id, err)
		return
	}
	r.count(b, domain.EntityItem, outcome)

	if b.spec.Kind == domain.KindMod && len(rec.CompatibleWeapons) > 0 {
		r.compat.Add(id, rec.CompatibleWeapons)
	}
}

func (r *run) ingestWeapon(ctx context.Context, b *batch, i int) {
	rec, ok := decode[source.Weapon](ctx, b, i)
	if !ok {
		return
	}
	if !rec.Identified() {
		malformed(ctx, b, i)
		return
	}
	id := rec.ID.Value
	r.claim(ctx, b, domain.EntityItem, id)

	res, err := r.weapons.Ingest(ctx, &rec)
	if err != nil {
		r.fail(ctx, b, domain.EntityWeapon, id, err)
		return
	}
	r.count(b, domain.EntityItem, res.Item)
	r.count(b, domain.EntityWeapon, res.Weapon)
}

// applyCompatibleMods writes the lists gathered from mod records onto the
// weapons stored by the weapon phase
func (r *run) applyCompatibleMods(ctx context.Context) {
	if r.cancelled(ctx) || len(r.compat.Weapons()) == 0 {
		return
	}
	tally, err := r.weapons.ApplyCompatibleMods(context.WithoutCancel(ctx), r.compat)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgCompatFailed, "error", fmt.Errorf(ErrMsgCompatFailed, err))
		tally.Failed++
	}
	r.report.merge(domain.EntityCompatibleMods, tally)
}

func (r *run) ingestWorkbench(ctx context.Context, b *batch, i int) {
	rec, ok := decode[source.Workbench](ctx, b, i)
	if !ok {
		return
	}
	if !rec.Identified() {
		malformed(ctx, b, i)
		return
	}
	id := rec.ID.Value
	r.claim(ctx, b, domain.EntityWorkbench, id)

	res, err := r.workbenches.Ingest(ctx, &rec)
	if err != nil {
		r.fail(ctx, b, domain.EntityWorkbench, id, err)
		return
	}
	r.count(b, domain.EntityWorkbench, res.Workbench)
	for _, o := range res.Tiers {
		r.count(b, domain.EntityTier, o)
	}
}

// buildRecipes writes the crafting and recycling recipes declared on item
// and weapon records. Weapons only use their first crafting definition.
func (r *run) buildRecipes(ctx context.Context, b *batch, i int) {
	if b.spec.Kind == domain.KindWeapon {
		rec, ok := decode[source.Weapon](ctx, b, i)
		if !ok {
			return
		}
		if !rec.Identified() {
			malformed(ctx, b, i)
			return
		}
		if def, ok := rec.Recipe.First(); ok && def.HasContent() {
			r.crafting(ctx, b, rec.ID.Value, def)
		}
		r.recycling(ctx, b, rec.ID.Value, rec.RecyclingOutputs())
		return
	}

	rec, ok := decode[source.Item](ctx, b, i)
	if !ok {
		return
	}
	if !rec.Identified() {
		malformed(ctx, b, i)
		return
	}
	for _, def := range rec.Recipe {
		if def.HasContent() {
			r.crafting(ctx, b, rec.ID.Value, def)
		}
	}
	r.recycling(ctx, b, rec.ID.Value, rec.Recycling)
}

func (r *run) crafting(ctx context.Context, b *batch, subjectID string, def source.RecipeDef) {
	outcome, err := r.builder.Crafting(ctx, subjectID, def)
	if err != nil {
		r.fail(ctx, b, domain.EntityRecipe, subjectID, err)
		return
	}
	r.count(b, domain.EntityRecipe, outcome)
}

func (r *run) recycling(ctx context.Context, b *batch, inputID string, outputs source.NumberMap) {
	if outputs.Len() == 0 {
		return
	}
	outcome, err := r.builder.Recycling(ctx, inputID, outputs)
	if err != nil {
		r.fail(ctx, b, domain.EntityRecipe, inputID, err)
		return
	}
	r.count(b, domain.EntityRecipe, outcome)
}

func (r *run) ingestUpgrades(ctx context.Context, b *batch, i int) {
	rec, ok := decode[source.Weapon](ctx, b, i)
	if !ok {
		return
	}
	if !rec.Identified() {
		malformed(ctx, b, i)
		return
	}

	res, err := r.upgrades.Ingest(ctx, &rec)
	r.merge(b, domain.EntityUpgrade, res.Upgrades)
	r.merge(b, domain.EntityRecipe, res.Recipes)
	if err != nil {
		r.fail(ctx, b, domain.EntityUpgrade, rec.ID.Value, err)
	}
}

// rebuildIndex refreshes the reverse recycle index from the stored
// recycling recipes once every recipe of the run is written
func (r *run) rebuildIndex(ctx context.Context) {
	if r.cancelled(ctx) {
		return
	}
	log := logger.FromContext(ctx)
	start := time.Now()

	idx := r.builder.Index()
	if idx.Stale() {
		if err := idx.Rebuild(ctx, r.store); err != nil {
			log.Error(LogMsgIndexFailed, "error", err)
		}
	}
	r.report.RecycleSources = idx.Len()
	r.report.RecycledFrom = make(map[string][]string, r.report.RecycleSources)
	for _, id := range idx.Items() {
		r.report.RecycledFrom[id] = idx.Sources(id)
	}

	d := time.Since(start)
	r.recorder.RecordPhase(string(PhaseRecycleIndex), d)
	log.Info(LogMsgIndexRebuilt, "items", r.report.RecycleSources, "duration", d)
}
