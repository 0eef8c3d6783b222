package item

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/raiddata/internal/catalog"
	"github.com/osse101/raiddata/internal/classify"
	"github.com/osse101/raiddata/internal/domain"
	"github.com/osse101/raiddata/internal/logger"
	"github.com/osse101/raiddata/internal/modifier"
	"github.com/osse101/raiddata/internal/repository"
	"github.com/osse101/raiddata/internal/source"
)

// Ingestor normalizes scraped item records and upserts them by id
type Ingestor struct {
	store    repository.Store
	catalog  *catalog.Catalog
	modStats *modifier.Table
	diag     *modifier.Diagnostics
	validate *validator.Validate
}

// NewIngestor creates an item ingestor. modStats resolves the stat modifiers
// of mod records.
func NewIngestor(store repository.Store, cat *catalog.Catalog, modStats *modifier.Table, diag *modifier.Diagnostics) *Ingestor {
	return &Ingestor{
		store:    store,
		catalog:  cat,
		modStats: modStats,
		diag:     diag,
		validate: newValidator(),
	}
}

// Ingest normalizes rec and writes it in its own transaction
func (in *Ingestor) Ingest(ctx context.Context, rec *source.Item, kind domain.BatchKind) (domain.Outcome, error) {
	it, err := in.Normalize(ctx, rec, kind)
	if err != nil {
		return domain.OutcomeSkipped, err
	}

	var outcome domain.Outcome
	err = in.store.InTx(ctx, func(q repository.Queries) error {
		var err error
		outcome, err = Upsert(ctx, q, it)
		return err
	})
	if err != nil {
		return domain.OutcomeSkipped, err
	}
	in.catalog.Remember(it.ID)
	return outcome, nil
}

// Normalize converts a raw record into an item row. Only augment batches can
// fail, when their stat block is incomplete.
func (in *Ingestor) Normalize(ctx context.Context, rec *source.Item, kind domain.BatchKind) (*domain.Item, error) {
	foundIn := classify.FoundIn(rec.FoundIn)
	if foundIn == nil {
		foundIn = []string{}
	}

	it := &domain.Item{
		ID:          rec.ID.Value,
		Name:        rec.Name.Value,
		Description: cleanDescription(rec.Description.Value),
		FlavorText:  flavorText(rec.Caption),
		Rarity:      classify.Rarity(rec.Rarity.Value),
		Category: classify.Category(classify.CategoryInput{
			VerboseCategory: rec.VerboseCategory.Value,
			Type:            rec.Type.Value,
			Tags:            rec.CategoryTags,
			Kind:            kind,
		}),
		Value:    Trunc(rec.SellPrice, 0),
		Weight:   rec.Weight.Or(0),
		MaxStack: max(Trunc(rec.StackSize, DefaultMaxStack), DefaultMaxStack),
		FoundIn:  foundIn,
		QuickUse: QuickUse(kind, rec.QuickUse),
	}

	switch kind {
	case domain.KindAugment:
		gear, err := in.augmentGear(rec)
		if err != nil {
			return nil, err
		}
		it.Gear = gear
	case domain.KindMod:
		it.Modifiers = in.modModifiers(ctx, rec)
	}
	return it, nil
}

// Upsert inserts it, or overwrites the stored row when its content differs
func Upsert(ctx context.Context, q repository.Item, it *domain.Item) (domain.Outcome, error) {
	log := logger.FromContext(ctx)

	existing, err := q.GetItem(ctx, it.ID)
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		if err := q.InsertItem(ctx, it); err != nil {
			return domain.OutcomeSkipped, fmt.Errorf(ErrMsgInsertItemFailed, it.ID, err)
		}
		log.Info(LogMsgInsertedItem, "item_id", it.ID, "category", it.Category)
		return domain.OutcomeInserted, nil
	case err != nil:
		return domain.OutcomeSkipped, fmt.Errorf(ErrMsgLoadExistingFailed, it.ID, err)
	case existing.SameContent(it):
		return domain.OutcomeUnchanged, nil
	}

	if err := q.UpdateItem(ctx, it); err != nil {
		return domain.OutcomeSkipped, fmt.Errorf(ErrMsgUpdateItemFailed, it.ID, err)
	}
	log.Info(LogMsgUpdatedItem, "item_id", it.ID, "category", it.Category)
	return domain.OutcomeUpdated, nil
}

func (in *Ingestor) modModifiers(ctx context.Context, rec *source.Item) domain.Modifiers {
	mods, misses := in.modStats.Normalize(modifier.Pairs(rec.StatModifiers))
	for _, miss := range misses {
		in.diag.RecordMiss(in.modStats, rec.ID.Value, miss)
		logger.FromContext(ctx).Debug(LogMsgUnmappedModStat, "item_id", rec.ID.Value, "key", miss.Key, "slug", miss.Slug)
	}
	if len(mods) == 0 {
		return nil
	}
	return mods
}

// Trunc truncates a scraped number toward zero, or returns fallback when it
// is missing or does not fit an integer column
func Trunc(n source.Number, fallback int) int {
	if v, ok := n.Int(); ok {
		return v
	}
	return fallback
}

func cleanDescription(raw string) string {
	desc := strings.TrimSpace(raw)
	if strings.HasPrefix(desc, WikiFilePrefix) {
		return PlaceholderDescription
	}
	return desc
}

func flavorText(caption source.Text) *string {
	s := caption.Trimmed()
	if s == "" {
		return nil
	}
	return &s
}
