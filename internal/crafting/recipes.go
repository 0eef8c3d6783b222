package crafting

import (
	"context"
	"slices"

	"github.com/osse101/raiddata/internal/domain"
	"github.com/osse101/raiddata/internal/naming"
	"github.com/osse101/raiddata/internal/source"
)

// Crafting writes the crafting recipe a subject item declares. The output
// is the first numeric entry of result, or the subject itself ×1; the recipe
// id derives from the output.
func (b *Builder) Crafting(ctx context.Context, subjectID string, def source.RecipeDef) (domain.Outcome, error) {
	outputID, outputQty, ok := craftingOutput(subjectID, def.Result)
	recipeID := naming.CraftingRecipeID(outputID)

	io := newIOSet(recipeID)
	io.addMap(def.Ingredients, domain.RoleInput, DefaultQuantity)
	if ok {
		io.add(outputID, domain.RoleOutput, outputQty)
	} else {
		io.reject(outputID)
	}
	links, badTiers := workbenchLinks(def.Workbenches)

	inRaid := bool(def.InRaid) || slices.Contains(def.Workbenches.Keys(), naming.InventoryWorkbenchKey)

	return b.apply(ctx, &plan{
		recipe: domain.Recipe{
			ID:                recipeID,
			Type:              domain.RecipeCrafting,
			RequiresBlueprint: bool(def.Blueprint),
			InRaid:            inRaid,
		},
		subject:     subjectID,
		io:          io,
		pointer:     pointerCrafting,
		pointerItem: outputID,
		links:       links,
		badTiers:    badTiers,
		withLinks:   true,
	})
}

// Recycling writes recycle_<input>: the input ×1 yields every positive entry
// of outputs.
func (b *Builder) Recycling(ctx context.Context, inputID string, outputs source.NumberMap) (domain.Outcome, error) {
	recipeID := naming.RecyclingRecipeID(inputID)

	io := newIOSet(recipeID)
	io.add(inputID, domain.RoleInput, SubjectQuantity)
	io.addMap(outputs, domain.RoleOutput, DefaultQuantity)

	return b.apply(ctx, &plan{
		recipe:      domain.Recipe{ID: recipeID, Type: domain.RecipeRecycling},
		subject:     inputID,
		io:          io,
		pointer:     pointerRecycling,
		pointerItem: inputID,
	})
}

// craftingOutput picks the output item and quantity. ok is false when the
// declared quantity does not fit the quantity column.
func craftingOutput(subjectID string, result source.NumberMap) (string, int, bool) {
	for _, e := range result.Entries() {
		if e.Key == "" || !e.Value.Valid || e.FromString {
			continue
		}
		n, ok := e.Value.Int()
		return e.Key, max(n, SubjectQuantity), ok
	}
	return subjectID, SubjectQuantity, true
}

// workbenchLinks reads the workbench→tier map. The inventory pseudo bench
// and tiers that are not numbers are left out; known misspelled ids are
// corrected. Workbenches whose tier is out of range come back in badTiers.
func workbenchLinks(m source.NumberMap) (refs []linkRef, badTiers []string) {
	for _, e := range m.Entries() {
		if e.Key == "" || e.Key == naming.InventoryWorkbenchKey || !e.Value.Valid {
			continue
		}
		tier, ok := e.Value.Int()
		if !ok {
			badTiers = append(badTiers, e.Key)
			continue
		}
		ref := linkRef{workbenchID: naming.CorrectWorkbenchID(e.Key), tier: tier}
		if !slices.Contains(refs, ref) {
			refs = append(refs, ref)
		}
	}
	return refs, badTiers
}
