package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/raiddata/internal/domain"
)

func (q *queries) GetRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	var (
		r   domain.Recipe
		typ string
	)
	err := q.db.QueryRow(ctx, `SELECT id, type, requires_blueprint, in_raid FROM recipes WHERE id = $1`, id).
		Scan(&r.ID, &typ, &r.RequiresBlueprint, &r.InRaid)
	if err != nil {
		return nil, lookup(err, domain.ErrRecipeNotFound, id)
	}
	r.Type = domain.RecipeType(typ)
	return &r, nil
}

func (q *queries) InsertRecipe(ctx context.Context, recipe *domain.Recipe) error {
	_, err := q.db.Exec(ctx, `
		INSERT INTO recipes (id, type, requires_blueprint, in_raid) VALUES ($1, $2, $3, $4)`,
		recipe.ID, string(recipe.Type), recipe.RequiresBlueprint, recipe.InRaid)
	if err != nil {
		return fmt.Errorf(ErrMsgQueryFailed, "insert recipe "+recipe.ID, classify(err))
	}
	return nil
}

func (q *queries) UpdateRecipe(ctx context.Context, recipe *domain.Recipe) error {
	tag, err := q.db.Exec(ctx, `
		UPDATE recipes SET type = $2, requires_blueprint = $3, in_raid = $4 WHERE id = $1`,
		recipe.ID, string(recipe.Type), recipe.RequiresBlueprint, recipe.InRaid)
	return affected(tag, err, domain.ErrRecipeNotFound, recipe.ID)
}

func (q *queries) DeleteRecipeIO(ctx context.Context, recipeID string) error {
	_, err := q.db.Exec(ctx, `DELETE FROM recipe_io WHERE recipe_id = $1`, recipeID)
	return classify(err)
}

func (q *queries) InsertRecipeIO(ctx context.Context, rows []domain.RecipeIO) error {
	if len(rows) == 0 {
		return nil
	}
	_, err := q.db.CopyFrom(ctx, pgx.Identifier{"recipe_io"},
		[]string{"recipe_id", "item_id", "role", "quantity"},
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			r := rows[i]
			return []any{r.RecipeID, r.ItemID, string(r.Role), r.Quantity}, nil
		}))
	if err != nil {
		return fmt.Errorf(ErrMsgQueryFailed, "insert recipe io "+rows[0].RecipeID, classify(err))
	}
	return nil
}

func scanRecipeIO(rows pgx.Rows) ([]domain.RecipeIO, error) {
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.RecipeIO, error) {
		var (
			io   domain.RecipeIO
			role string
		)
		err := row.Scan(&io.RecipeID, &io.ItemID, &role, &io.Quantity)
		io.Role = domain.IORole(role)
		return io, err
	})
	return out, classify(err)
}

func (q *queries) GetRecipeIO(ctx context.Context, recipeID string) ([]domain.RecipeIO, error) {
	rows, err := q.db.Query(ctx, `
		SELECT recipe_id, item_id, role, quantity FROM recipe_io
		WHERE recipe_id = $1 ORDER BY role, item_id`, recipeID)
	if err != nil {
		return nil, classify(err)
	}
	return scanRecipeIO(rows)
}

func (q *queries) ListRecipeIOByType(ctx context.Context, recipeType domain.RecipeType) ([]domain.RecipeIO, error) {
	rows, err := q.db.Query(ctx, `
		SELECT io.recipe_id, io.item_id, io.role, io.quantity
		FROM recipe_io io JOIN recipes r ON r.id = io.recipe_id
		WHERE r.type = $1
		ORDER BY io.recipe_id, io.role, io.item_id`, string(recipeType))
	if err != nil {
		return nil, classify(err)
	}
	return scanRecipeIO(rows)
}

func (q *queries) DeleteWorkbenchLinks(ctx context.Context, recipeID string) error {
	_, err := q.db.Exec(ctx, `DELETE FROM recipe_workbench_links WHERE recipe_id = $1`, recipeID)
	return classify(err)
}

func (q *queries) InsertWorkbenchLinks(ctx context.Context, links []domain.WorkbenchLink) error {
	if len(links) == 0 {
		return nil
	}
	_, err := q.db.CopyFrom(ctx, pgx.Identifier{"recipe_workbench_links"},
		[]string{"recipe_id", "workbench_id", "tier"},
		pgx.CopyFromSlice(len(links), func(i int) ([]any, error) {
			l := links[i]
			return []any{l.RecipeID, l.WorkbenchID, l.Tier}, nil
		}))
	if err != nil {
		return fmt.Errorf(ErrMsgQueryFailed, "insert workbench links "+links[0].RecipeID, classify(err))
	}
	return nil
}

func (q *queries) GetWorkbenchLinks(ctx context.Context, recipeID string) ([]domain.WorkbenchLink, error) {
	rows, err := q.db.Query(ctx, `
		SELECT recipe_id, workbench_id, tier FROM recipe_workbench_links
		WHERE recipe_id = $1 ORDER BY workbench_id, tier`, recipeID)
	if err != nil {
		return nil, classify(err)
	}
	links, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.WorkbenchLink, error) {
		var l domain.WorkbenchLink
		err := row.Scan(&l.RecipeID, &l.WorkbenchID, &l.Tier)
		return l, err
	})
	return links, classify(err)
}
