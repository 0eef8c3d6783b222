package crafting

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/raiddata/internal/catalog"
	"github.com/osse101/raiddata/internal/domain"
	"github.com/osse101/raiddata/internal/logger"
	"github.com/osse101/raiddata/internal/repository"
)

// Builder writes recipes into the bipartite recipe graph. Every recipe is
// written in one transaction: header, full IO replacement, the owning item's
// pointer and, for crafting recipes, the workbench links. A recipe that
// references an unknown item is skipped as a whole.
type Builder struct {
	store   repository.Store
	catalog *catalog.Catalog
	index   *RecycleIndex
}

// NewBuilder creates a builder. The recycle index it owns is marked stale
// whenever a recycling recipe changes.
func NewBuilder(store repository.Store, cat *catalog.Catalog) *Builder {
	return &Builder{store: store, catalog: cat, index: NewRecycleIndex()}
}

// Index returns the reverse recycling index owned by the builder
func (b *Builder) Index() *RecycleIndex {
	return b.index
}

type pointerKind int

const (
	pointerNone pointerKind = iota
	pointerCrafting
	pointerRecycling
)

// linkRef is a workbench unlock as declared by the source, before the tier
// is checked
type linkRef struct {
	workbenchID string
	tier        int
}

type plan struct {
	recipe      domain.Recipe
	subject     string
	io          *ioSet
	pointer     pointerKind
	pointerItem string
	links       []linkRef
	badTiers    []string
	withLinks   bool
}

// result carries what happened inside the transaction so it can be logged
// once after commit
type result struct {
	outcome      domain.Outcome
	subjectGone  bool
	missing      []string
	missingTiers []linkRef
	found        []string
}

func (b *Builder) apply(ctx context.Context, p *plan) (domain.Outcome, error) {
	log := logger.FromContext(ctx).With("recipe_id", p.recipe.ID, "item_id", p.subject)

	if len(p.io.outOfRange) > 0 {
		log.Warn(LogMsgQuantityOutOfRange, "items", p.io.outOfRange)
		return domain.OutcomeSkipped, nil
	}
	if !p.io.hasOutput() {
		return domain.OutcomeSkipped, fmt.Errorf(ErrFmtNoOutput, domain.ErrEmptyRecipeOutput, p.recipe.ID)
	}

	var res result
	err := b.store.InTx(ctx, func(q repository.Queries) error {
		res = result{}
		return b.write(ctx, q, p, &res)
	})
	if err != nil {
		return domain.OutcomeSkipped, err
	}

	switch {
	case res.subjectGone:
		log.Warn(LogMsgSubjectMissing)
		return domain.OutcomeSkipped, nil
	case len(res.missing) > 0:
		log.Warn(LogMsgReferenceMissing, "missing", res.missing)
		return domain.OutcomeSkipped, nil
	}

	b.catalog.Remember(res.found...)
	for _, l := range res.missingTiers {
		log.Warn(LogMsgTierMissing, "workbench_id", l.workbenchID, "tier", l.tier)
	}
	for _, wb := range p.badTiers {
		log.Warn(LogMsgTierOutOfRange, "workbench_id", wb)
	}
	switch res.outcome {
	case domain.OutcomeInserted:
		log.Info(LogMsgRecipeInserted, "type", p.recipe.Type)
	case domain.OutcomeUpdated:
		log.Info(LogMsgRecipeUpdated, "type", p.recipe.Type)
	}
	if p.recipe.Type == domain.RecipeRecycling && res.outcome != domain.OutcomeUnchanged {
		b.index.Invalidate()
	}
	return res.outcome, nil
}

func (b *Builder) write(ctx context.Context, q repository.Queries, p *plan, res *result) error {
	id := p.recipe.ID

	ids := append([]string{p.subject}, p.io.itemIDs()...)
	found, err := b.catalog.Existing(ctx, q, ids)
	if err != nil {
		return fmt.Errorf(ErrMsgExistenceCheckFailed, id, err)
	}
	if !found[p.subject] {
		res.subjectGone = true
		return nil
	}
	for _, itemID := range ids[1:] {
		if !found[itemID] {
			res.missing = append(res.missing, itemID)
		}
	}
	if len(res.missing) > 0 {
		return nil
	}
	for itemID := range found {
		res.found = append(res.found, itemID)
	}

	changed, inserted, err := upsertHeader(ctx, q, &p.recipe)
	if err != nil {
		return err
	}

	ioChanged, err := replaceIO(ctx, q, id, p.io.rows)
	if err != nil {
		return err
	}
	changed = changed || ioChanged

	if p.pointer != pointerNone {
		ptrChanged, err := setPointer(ctx, q, p.pointer, p.pointerItem, id)
		if err != nil {
			return err
		}
		changed = changed || ptrChanged
	}

	if p.withLinks {
		linksChanged, err := replaceLinks(ctx, q, id, p.links, res)
		if err != nil {
			return err
		}
		changed = changed || linksChanged
	}

	switch {
	case inserted:
		res.outcome = domain.OutcomeInserted
	case changed:
		res.outcome = domain.OutcomeUpdated
	default:
		res.outcome = domain.OutcomeUnchanged
	}
	return nil
}

func upsertHeader(ctx context.Context, q repository.Recipe, r *domain.Recipe) (changed, inserted bool, err error) {
	existing, err := q.GetRecipe(ctx, r.ID)
	switch {
	case errors.Is(err, domain.ErrRecipeNotFound):
		if err := q.InsertRecipe(ctx, r); err != nil {
			return false, false, fmt.Errorf(ErrMsgInsertRecipeFailed, r.ID, err)
		}
		return true, true, nil
	case err != nil:
		return false, false, fmt.Errorf(ErrMsgLoadRecipeFailed, r.ID, err)
	case *existing == *r:
		return false, false, nil
	}
	if err := q.UpdateRecipe(ctx, r); err != nil {
		return false, false, fmt.Errorf(ErrMsgUpdateRecipeFailed, r.ID, err)
	}
	return true, false, nil
}

// replaceIO makes the stored edge set of recipeID exactly rows. An equal set
// is left untouched.
func replaceIO(ctx context.Context, q repository.Recipe, recipeID string, rows []domain.RecipeIO) (bool, error) {
	current, err := q.GetRecipeIO(ctx, recipeID)
	if err != nil {
		return false, fmt.Errorf(ErrMsgReplaceIOFailed, recipeID, err)
	}
	if sameIO(current, rows) {
		return false, nil
	}
	if err := q.DeleteRecipeIO(ctx, recipeID); err != nil {
		return false, fmt.Errorf(ErrMsgReplaceIOFailed, recipeID, err)
	}
	if err := q.InsertRecipeIO(ctx, rows); err != nil {
		return false, fmt.Errorf(ErrMsgReplaceIOFailed, recipeID, err)
	}
	return true, nil
}

func setPointer(ctx context.Context, q repository.Item, kind pointerKind, itemID, recipeID string) (bool, error) {
	it, err := q.GetItem(ctx, itemID)
	if err != nil {
		return false, fmt.Errorf(ErrMsgSetPointerFailed, itemID, recipeID, err)
	}

	current, set := it.RecipeID, q.SetItemRecipe
	if kind == pointerRecycling {
		current, set = it.RecyclingRecipeID, q.SetItemRecyclingRecipe
	}
	if current != nil && *current == recipeID {
		return false, nil
	}
	if err := set(ctx, itemID, recipeID); err != nil {
		return false, fmt.Errorf(ErrMsgSetPointerFailed, itemID, recipeID, err)
	}
	return true, nil
}

// replaceLinks keeps the declared links whose tier exists and makes them the
// recipe's full link set. Links to unknown tiers are reported in res.
func replaceLinks(ctx context.Context, q repository.Queries, recipeID string, refs []linkRef, res *result) (bool, error) {
	var links []domain.WorkbenchLink
	for _, ref := range refs {
		_, err := q.GetTier(ctx, ref.workbenchID, ref.tier)
		if errors.Is(err, domain.ErrTierNotFound) {
			res.missingTiers = append(res.missingTiers, ref)
			continue
		}
		if err != nil {
			return false, fmt.Errorf(ErrMsgLookupTierFailed, ref.workbenchID, ref.tier, err)
		}
		links = append(links, domain.WorkbenchLink{
			RecipeID:    recipeID,
			WorkbenchID: ref.workbenchID,
			Tier:        ref.tier,
		})
	}

	current, err := q.GetWorkbenchLinks(ctx, recipeID)
	if err != nil {
		return false, fmt.Errorf(ErrMsgReplaceLinksFailed, recipeID, err)
	}
	if sameLinks(current, links) {
		return false, nil
	}
	if err := q.DeleteWorkbenchLinks(ctx, recipeID); err != nil {
		return false, fmt.Errorf(ErrMsgReplaceLinksFailed, recipeID, err)
	}
	if len(links) == 0 {
		return true, nil
	}
	if err := q.InsertWorkbenchLinks(ctx, links); err != nil {
		return false, fmt.Errorf(ErrMsgReplaceLinksFailed, recipeID, err)
	}
	return true, nil
}
