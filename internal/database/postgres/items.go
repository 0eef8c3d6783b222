package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/raiddata/internal/domain"
)

const itemColumns = `id, name, description, flavor_text, rarity, category, value, weight,
	max_stack, found_in, quick_use, gear, modifiers, recipe_id, recycling_recipe_id`

func (q *queries) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	row := q.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE id = $1`, id)
	it, err := scanItem(row)
	if err != nil {
		return nil, lookup(err, domain.ErrItemNotFound, id)
	}
	return it, nil
}

func scanItem(row pgx.Row) (*domain.Item, error) {
	var (
		it                       domain.Item
		rarity, category         string
		quickUse, gear, modifier []byte
	)
	err := row.Scan(&it.ID, &it.Name, &it.Description, &it.FlavorText, &rarity, &category,
		&it.Value, &it.Weight, &it.MaxStack, &it.FoundIn, &quickUse, &gear, &modifier,
		&it.RecipeID, &it.RecyclingRecipeID)
	if err != nil {
		return nil, err
	}
	it.Rarity = domain.Rarity(rarity)
	it.Category = domain.Category(category)
	if err := decodeJSON("quick_use", quickUse, &it.QuickUse); err != nil {
		return nil, err
	}
	if err := decodeJSON("gear", gear, &it.Gear); err != nil {
		return nil, err
	}
	if err := decodeJSON("modifiers", modifier, &it.Modifiers); err != nil {
		return nil, err
	}
	return &it, nil
}

func (q *queries) ExistingItemIDs(ctx context.Context, ids []string) (map[string]bool, error) {
	out := make(map[string]bool, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := q.db.Query(ctx, `SELECT id FROM items WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, classify(err)
	}
	found, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, classify(err)
	}
	for _, id := range found {
		out[id] = true
	}
	return out, nil
}

// itemArgs returns the ingested columns of it in itemColumns order, without
// the recipe pointers
func itemArgs(it *domain.Item) ([]any, error) {
	quickUse, err := encodeNullableJSON("quick_use", it.QuickUse)
	if err != nil {
		return nil, err
	}
	gear, err := encodeNullableJSON("gear", it.Gear)
	if err != nil {
		return nil, err
	}
	modifiers, err := encodeJSON("modifiers", it.Modifiers)
	if err != nil {
		return nil, err
	}
	return []any{
		it.ID, it.Name, it.Description, it.FlavorText, string(it.Rarity), string(it.Category),
		it.Value, it.Weight, it.MaxStack, toStrings(it.FoundIn), quickUse, gear, modifiers,
	}, nil
}

func (q *queries) InsertItem(ctx context.Context, item *domain.Item) error {
	args, err := itemArgs(item)
	if err != nil {
		return err
	}
	_, err = q.db.Exec(ctx, `
		INSERT INTO items (id, name, description, flavor_text, rarity, category, value, weight,
			max_stack, found_in, quick_use, gear, modifiers)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`, args...)
	if err != nil {
		return fmt.Errorf(ErrMsgQueryFailed, "insert item "+item.ID, classify(err))
	}
	return nil
}

func (q *queries) UpdateItem(ctx context.Context, item *domain.Item) error {
	args, err := itemArgs(item)
	if err != nil {
		return err
	}
	tag, err := q.db.Exec(ctx, `
		UPDATE items SET name = $2, description = $3, flavor_text = $4, rarity = $5,
			category = $6, value = $7, weight = $8, max_stack = $9, found_in = $10,
			quick_use = $11, gear = $12, modifiers = $13
		WHERE id = $1`, args...)
	return affected(tag, err, domain.ErrItemNotFound, item.ID)
}

func (q *queries) SetItemRecipe(ctx context.Context, itemID, recipeID string) error {
	tag, err := q.db.Exec(ctx, `UPDATE items SET recipe_id = $2 WHERE id = $1`, itemID, recipeID)
	return affected(tag, err, domain.ErrItemNotFound, itemID)
}

func (q *queries) SetItemRecyclingRecipe(ctx context.Context, itemID, recipeID string) error {
	tag, err := q.db.Exec(ctx, `UPDATE items SET recycling_recipe_id = $2 WHERE id = $1`, itemID, recipeID)
	return affected(tag, err, domain.ErrItemNotFound, itemID)
}
