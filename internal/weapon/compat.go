package weapon

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/osse101/raiddata/internal/domain"
	"github.com/osse101/raiddata/internal/logger"
	"github.com/osse101/raiddata/internal/repository"
)

// CompatibleMods gathers, per weapon, the mods that declare it compatible
type CompatibleMods struct {
	weapons []string
	mods    map[string][]string
}

// NewCompatibleMods returns an empty aggregation
func NewCompatibleMods() *CompatibleMods {
	return &CompatibleMods{mods: make(map[string][]string)}
}

// Add records modID as compatible with each of weaponIDs
func (c *CompatibleMods) Add(modID string, weaponIDs []string) {
	for _, raw := range weaponIDs {
		wid := strings.TrimSpace(raw)
		if wid == "" {
			continue
		}
		list, ok := c.mods[wid]
		if !ok {
			c.weapons = append(c.weapons, wid)
		}
		if !slices.Contains(list, modID) {
			c.mods[wid] = append(list, modID)
		}
	}
}

// Weapons returns the weapon ids in first-seen order
func (c *CompatibleMods) Weapons() []string {
	return c.weapons
}

// For returns the mods compatible with weaponID
func (c *CompatibleMods) For(weaponID string) []string {
	return c.mods[weaponID]
}

// ApplyCompatibleMods writes the aggregated lists onto stored weapons, one
// transaction per weapon. Weapons that are not stored are skipped with a
// warning.
func (in *Ingestor) ApplyCompatibleMods(ctx context.Context, c *CompatibleMods) (domain.Tally, error) {
	log := logger.FromContext(ctx)
	var tally domain.Tally

	for _, wid := range c.Weapons() {
		if err := ctx.Err(); err != nil {
			return tally, err
		}
		mods := c.For(wid)
		var outcome domain.Outcome
		err := in.store.InTx(ctx, func(q repository.Queries) error {
			existing, err := q.GetWeapon(ctx, wid)
			if errors.Is(err, domain.ErrWeaponNotFound) {
				outcome = domain.OutcomeSkipped
				return nil
			}
			if err != nil {
				return err
			}
			if slices.Equal(existing.CompatibleMods, mods) {
				outcome = domain.OutcomeUnchanged
				return nil
			}
			if err := q.SetCompatibleMods(ctx, wid, mods); err != nil {
				return fmt.Errorf(ErrMsgSetCompatFailed, wid, err)
			}
			outcome = domain.OutcomeUpdated
			return nil
		})
		if err != nil {
			return tally, err
		}
		if outcome == domain.OutcomeSkipped {
			log.Warn(LogMsgCompatUnknownWeapon, "weapon_id", wid, "mods", mods)
		}
		tally.Add(outcome)
	}

	log.Info(LogMsgCompatApplied,
		"weapons", len(c.Weapons()),
		"updated", tally.Updated,
		"unchanged", tally.Unchanged,
		"skipped", tally.Skipped)
	return tally, nil
}
