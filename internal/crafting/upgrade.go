package crafting

import (
	"context"

	"github.com/osse101/raiddata/internal/domain"
	"github.com/osse101/raiddata/internal/naming"
	"github.com/osse101/raiddata/internal/source"
)

// UpgradeCost writes upgrade_<weapon>_lvl<N>. The weapon ×1 and every
// positive material are inputs; the weapon ×1 is the only output. The
// returned id is empty when the recipe was skipped.
func (b *Builder) UpgradeCost(ctx context.Context, weaponID string, level int, materials source.NumberMap) (string, domain.Outcome, error) {
	recipeID := naming.UpgradeRecipeID(weaponID, level)

	io := newIOSet(recipeID)
	io.add(weaponID, domain.RoleInput, SubjectQuantity)
	io.addMap(materials, domain.RoleInput, 0)
	io.add(weaponID, domain.RoleOutput, SubjectQuantity)

	outcome, err := b.apply(ctx, &plan{
		recipe:  domain.Recipe{ID: recipeID, Type: domain.RecipeUpgrade},
		subject: weaponID,
		io:      io,
	})
	if err != nil || outcome == domain.OutcomeSkipped {
		return "", outcome, err
	}
	return recipeID, outcome, nil
}

// UpgradeRecycle writes recycle_<weapon>_lvl<N>: the weapon ×1 yields every
// positive entry of outputs.
func (b *Builder) UpgradeRecycle(ctx context.Context, weaponID string, level int, outputs source.NumberMap) (domain.Outcome, error) {
	recipeID := naming.UpgradeRecycleRecipeID(weaponID, level)

	io := newIOSet(recipeID)
	io.add(weaponID, domain.RoleInput, SubjectQuantity)
	io.addMap(outputs, domain.RoleOutput, 0)

	return b.apply(ctx, &plan{
		recipe:  domain.Recipe{ID: recipeID, Type: domain.RecipeRecycling},
		subject: weaponID,
		io:      io,
	})
}
