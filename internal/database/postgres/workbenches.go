package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/raiddata/internal/domain"
)

func (q *queries) GetWorkbench(ctx context.Context, id string) (*domain.Workbench, error) {
	var wb domain.Workbench
	err := q.db.QueryRow(ctx, `
		SELECT id, name, description, icon, base_tier, raids_required
		FROM workbenches WHERE id = $1`, id).
		Scan(&wb.ID, &wb.Name, &wb.Description, &wb.Icon, &wb.BaseTier, &wb.RaidsRequired)
	if err != nil {
		return nil, lookup(err, domain.ErrWorkbenchNotFound, id)
	}
	return &wb, nil
}

func (q *queries) InsertWorkbench(ctx context.Context, wb *domain.Workbench) error {
	_, err := q.db.Exec(ctx, `
		INSERT INTO workbenches (id, name, description, icon, base_tier, raids_required)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		wb.ID, wb.Name, wb.Description, wb.Icon, wb.BaseTier, wb.RaidsRequired)
	if err != nil {
		return fmt.Errorf(ErrMsgQueryFailed, "insert workbench "+wb.ID, classify(err))
	}
	return nil
}

func (q *queries) UpdateWorkbench(ctx context.Context, wb *domain.Workbench) error {
	tag, err := q.db.Exec(ctx, `
		UPDATE workbenches SET name = $2, description = $3, icon = $4, base_tier = $5,
			raids_required = $6
		WHERE id = $1`,
		wb.ID, wb.Name, wb.Description, wb.Icon, wb.BaseTier, wb.RaidsRequired)
	return affected(tag, err, domain.ErrWorkbenchNotFound, wb.ID)
}

func (q *queries) GetTier(ctx context.Context, workbenchID string, tier int) (*domain.Tier, error) {
	var t domain.Tier
	err := q.db.QueryRow(ctx, `
		SELECT workbench_id, tier, tier_name FROM workbench_tiers
		WHERE workbench_id = $1 AND tier = $2`, workbenchID, tier).
		Scan(&t.WorkbenchID, &t.Tier, &t.Name)
	if err != nil {
		return nil, lookup(err, domain.ErrTierNotFound, fmt.Sprintf("%s/%d", workbenchID, tier))
	}
	return &t, nil
}

func (q *queries) InsertTier(ctx context.Context, tier *domain.Tier) error {
	_, err := q.db.Exec(ctx, `
		INSERT INTO workbench_tiers (workbench_id, tier, tier_name) VALUES ($1, $2, $3)`,
		tier.WorkbenchID, tier.Tier, tier.Name)
	if err != nil {
		return fmt.Errorf(ErrMsgQueryFailed, fmt.Sprintf("insert tier %s/%d", tier.WorkbenchID, tier.Tier), classify(err))
	}
	return nil
}

func (q *queries) UpdateTierName(ctx context.Context, workbenchID string, tier int, name string) error {
	tag, err := q.db.Exec(ctx, `
		UPDATE workbench_tiers SET tier_name = $3 WHERE workbench_id = $1 AND tier = $2`,
		workbenchID, tier, name)
	return affected(tag, err, domain.ErrTierNotFound, fmt.Sprintf("%s/%d", workbenchID, tier))
}

func (q *queries) DeleteTierRequirements(ctx context.Context, workbenchID string, tier int) error {
	_, err := q.db.Exec(ctx, `
		DELETE FROM tier_requirements WHERE workbench_id = $1 AND tier = $2`, workbenchID, tier)
	return classify(err)
}

func (q *queries) InsertTierRequirements(ctx context.Context, rows []domain.TierRequirement) error {
	if len(rows) == 0 {
		return nil
	}
	_, err := q.db.CopyFrom(ctx, pgx.Identifier{"tier_requirements"},
		[]string{"workbench_id", "tier", "item_id", "count"},
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			r := rows[i]
			return []any{r.WorkbenchID, r.Tier, r.ItemID, r.Count}, nil
		}))
	if err != nil {
		return fmt.Errorf(ErrMsgQueryFailed, fmt.Sprintf("insert requirements %s/%d", rows[0].WorkbenchID, rows[0].Tier), classify(err))
	}
	return nil
}

func (q *queries) GetTierRequirements(ctx context.Context, workbenchID string, tier int) ([]domain.TierRequirement, error) {
	rows, err := q.db.Query(ctx, `
		SELECT workbench_id, tier, item_id, count FROM tier_requirements
		WHERE workbench_id = $1 AND tier = $2 ORDER BY item_id`, workbenchID, tier)
	if err != nil {
		return nil, classify(err)
	}
	reqs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TierRequirement, error) {
		var r domain.TierRequirement
		err := row.Scan(&r.WorkbenchID, &r.Tier, &r.ItemID, &r.Count)
		return r, err
	})
	return reqs, classify(err)
}
