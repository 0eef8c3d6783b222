package repository

import (
	"context"

	"github.com/osse101/raiddata/internal/domain"
)

// Recipe defines persistence for recipe headers, IO edges and workbench links
type Recipe interface {
	GetRecipe(ctx context.Context, id string) (*domain.Recipe, error)
	InsertRecipe(ctx context.Context, recipe *domain.Recipe) error
	UpdateRecipe(ctx context.Context, recipe *domain.Recipe) error

	// IO edges are replaced as a set: delete by recipe, then insert many
	DeleteRecipeIO(ctx context.Context, recipeID string) error
	InsertRecipeIO(ctx context.Context, rows []domain.RecipeIO) error
	GetRecipeIO(ctx context.Context, recipeID string) ([]domain.RecipeIO, error)
	ListRecipeIOByType(ctx context.Context, recipeType domain.RecipeType) ([]domain.RecipeIO, error)

	DeleteWorkbenchLinks(ctx context.Context, recipeID string) error
	InsertWorkbenchLinks(ctx context.Context, links []domain.WorkbenchLink) error
	GetWorkbenchLinks(ctx context.Context, recipeID string) ([]domain.WorkbenchLink, error)
}
