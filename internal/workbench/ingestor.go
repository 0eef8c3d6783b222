package workbench

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/osse101/raiddata/internal/catalog"
	"github.com/osse101/raiddata/internal/domain"
	"github.com/osse101/raiddata/internal/logger"
	"github.com/osse101/raiddata/internal/repository"
	"github.com/osse101/raiddata/internal/source"
)

// Ingestor upserts workbenches together with their tiers and tier
// requirements, one transaction per workbench
type Ingestor struct {
	store   repository.Store
	catalog *catalog.Catalog
}

// NewIngestor creates a workbench ingestor
func NewIngestor(store repository.Store, cat *catalog.Catalog) *Ingestor {
	return &Ingestor{store: store, catalog: cat}
}

// Tier is a normalized tier with its requirement set
type Tier struct {
	domain.Tier
	Requirements []domain.TierRequirement
	// OutOfRange lists requirement item ids whose count does not fit the
	// count column; those requirements are dropped
	OutOfRange []string
}

// Result reports the workbench row outcome and one outcome per tier
type Result struct {
	Workbench domain.Outcome
	Tiers     []domain.Outcome
	// Dropped lists requirement item ids that were not in the catalog
	Dropped []domain.TierRequirement
}

// Normalize converts a raw record. Tiers are positional and 1-based.
func Normalize(rec *source.Workbench) (*domain.Workbench, []Tier) {
	wb := &domain.Workbench{
		ID:            rec.ID.Value,
		Name:          rec.Name.Value,
		Description:   rec.Description.Trimmed(),
		Icon:          DefaultIcon,
		BaseTier:      intOrZero(rec.BaseTier),
		RaidsRequired: intOrZero(rec.RaidsRequired),
	}
	if rec.Icon.Valid {
		wb.Icon = rec.Icon.Value
	}

	tiers := make([]Tier, 0, len(rec.Tiers))
	for i, reqs := range rec.Tiers {
		n := i + 1
		t := Tier{Tier: domain.Tier{WorkbenchID: wb.ID, Tier: n, Name: tierName(n, rec.TierNames)}}
		for _, e := range reqs.Entries() {
			if e.Key == "" || !e.Value.Valid || e.FromString {
				continue
			}
			if e.Value.Value <= 0 {
				continue
			}
			count, ok := e.Value.Int()
			if !ok {
				t.OutOfRange = append(t.OutOfRange, e.Key)
				continue
			}
			if count <= 0 {
				continue
			}
			t.Requirements = append(t.Requirements, domain.TierRequirement{
				WorkbenchID: wb.ID,
				Tier:        n,
				ItemID:      e.Key,
				Count:       count,
			})
		}
		tiers = append(tiers, t)
	}
	return wb, tiers
}

// Ingest normalizes rec and writes the workbench, its tiers and their
// requirement sets in one transaction
func (in *Ingestor) Ingest(ctx context.Context, rec *source.Workbench) (Result, error) {
	log := logger.FromContext(ctx).With("workbench_id", rec.ID.Value)
	wb, tiers := Normalize(rec)

	var res Result
	var known []string
	err := in.store.InTx(ctx, func(q repository.Queries) error {
		res, known = Result{}, nil

		var err error
		if res.Workbench, err = upsertWorkbench(ctx, q, wb); err != nil {
			return err
		}
		for _, t := range tiers {
			outcome, kept, err := in.upsertTier(ctx, q, t, &res)
			if err != nil {
				return err
			}
			res.Tiers = append(res.Tiers, outcome)
			known = append(known, kept...)
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	in.catalog.Remember(known...)
	for _, t := range tiers {
		for _, id := range t.OutOfRange {
			log.Warn(LogMsgCountOutOfRange, "tier", t.Tier.Tier, "item_id", id)
		}
	}
	for _, r := range res.Dropped {
		log.Warn(LogMsgRequirementDropped, "tier", r.Tier, "item_id", r.ItemID)
	}
	log.Info(LogMsgWorkbenchUpserted, "outcome", res.Workbench, "tiers", len(res.Tiers))
	return res, nil
}

func upsertWorkbench(ctx context.Context, q repository.Workbench, wb *domain.Workbench) (domain.Outcome, error) {
	existing, err := q.GetWorkbench(ctx, wb.ID)
	switch {
	case errors.Is(err, domain.ErrWorkbenchNotFound):
		if err := q.InsertWorkbench(ctx, wb); err != nil {
			return domain.OutcomeSkipped, fmt.Errorf(ErrMsgInsertWorkbenchFailed, wb.ID, err)
		}
		return domain.OutcomeInserted, nil
	case err != nil:
		return domain.OutcomeSkipped, fmt.Errorf(ErrMsgLoadWorkbenchFailed, wb.ID, err)
	case *existing == *wb:
		return domain.OutcomeUnchanged, nil
	}
	if err := q.UpdateWorkbench(ctx, wb); err != nil {
		return domain.OutcomeSkipped, fmt.Errorf(ErrMsgUpdateWorkbenchFailed, wb.ID, err)
	}
	return domain.OutcomeUpdated, nil
}

// upsertTier writes the tier row, renaming it only when the name changed,
// and replaces its requirement set with the entries whose item exists
func (in *Ingestor) upsertTier(ctx context.Context, q repository.Queries, t Tier, res *Result) (domain.Outcome, []string, error) {
	wbID, n := t.WorkbenchID, t.Tier.Tier

	outcome := domain.OutcomeUnchanged
	existing, err := q.GetTier(ctx, wbID, n)
	switch {
	case errors.Is(err, domain.ErrTierNotFound):
		if err := q.InsertTier(ctx, &t.Tier); err != nil {
			return domain.OutcomeSkipped, nil, fmt.Errorf(ErrMsgUpsertTierFailed, wbID, n, err)
		}
		outcome = domain.OutcomeInserted
	case err != nil:
		return domain.OutcomeSkipped, nil, fmt.Errorf(ErrMsgUpsertTierFailed, wbID, n, err)
	case existing.Name != t.Name:
		if err := q.UpdateTierName(ctx, wbID, n, t.Name); err != nil {
			return domain.OutcomeSkipped, nil, fmt.Errorf(ErrMsgUpsertTierFailed, wbID, n, err)
		}
		outcome = domain.OutcomeUpdated
	}

	ids := make([]string, 0, len(t.Requirements))
	for _, r := range t.Requirements {
		ids = append(ids, r.ItemID)
	}
	found, err := in.catalog.Existing(ctx, q, ids)
	if err != nil {
		return domain.OutcomeSkipped, nil, fmt.Errorf(ErrMsgCheckItemsFailed, wbID, n, err)
	}
	var rows []domain.TierRequirement
	var kept []string
	for _, r := range t.Requirements {
		if !found[r.ItemID] {
			res.Dropped = append(res.Dropped, r)
			continue
		}
		rows = append(rows, r)
		kept = append(kept, r.ItemID)
	}

	current, err := q.GetTierRequirements(ctx, wbID, n)
	if err != nil {
		return domain.OutcomeSkipped, nil, fmt.Errorf(ErrMsgReplaceReqsFailed, wbID, n, err)
	}
	if sameRequirements(current, rows) {
		return outcome, kept, nil
	}
	if err := q.DeleteTierRequirements(ctx, wbID, n); err != nil {
		return domain.OutcomeSkipped, nil, fmt.Errorf(ErrMsgReplaceReqsFailed, wbID, n, err)
	}
	if len(rows) > 0 {
		if err := q.InsertTierRequirements(ctx, rows); err != nil {
			return domain.OutcomeSkipped, nil, fmt.Errorf(ErrMsgReplaceReqsFailed, wbID, n, err)
		}
	}
	if outcome == domain.OutcomeUnchanged {
		outcome = domain.OutcomeUpdated
	}
	return outcome, kept, nil
}

func tierName(n int, names source.TextMap) string {
	if name := strings.TrimSpace(names[strconv.Itoa(n)]); name != "" {
		return name
	}
	return fmt.Sprintf(TierNameFormat, n)
}

func sameRequirements(a, b []domain.TierRequirement) bool {
	byItem := func(x, y domain.TierRequirement) int { return strings.Compare(x.ItemID, y.ItemID) }
	a, b = slices.Clone(a), slices.Clone(b)
	slices.SortFunc(a, byItem)
	slices.SortFunc(b, byItem)
	return slices.Equal(a, b)
}

// intOrZero reads an optional integer field; missing and out of range
// values both become 0
func intOrZero(n source.Number) int {
	v, _ := n.Int()
	return v
}
