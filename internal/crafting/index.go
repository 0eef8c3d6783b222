package crafting

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/osse101/raiddata/internal/domain"
	"github.com/osse101/raiddata/internal/logger"
	"github.com/osse101/raiddata/internal/repository"
)

// RecycleIndex answers "which items recycle into X". It is built from the
// stored recycling recipes by Rebuild and goes stale when one of them is
// written; a stale index answers from its last build.
type RecycleIndex struct {
	mu      sync.RWMutex
	sources map[string][]string
	stale   bool
}

// NewRecycleIndex returns an empty index that needs a Rebuild
func NewRecycleIndex() *RecycleIndex {
	return &RecycleIndex{sources: make(map[string][]string), stale: true}
}

// Rebuild replaces the index with the current recycling edges in q
func (x *RecycleIndex) Rebuild(ctx context.Context, q repository.Recipe) error {
	rows, err := q.ListRecipeIOByType(ctx, domain.RecipeRecycling)
	if err != nil {
		return fmt.Errorf(ErrMsgRebuildIndexFailed, err)
	}

	inputs := make(map[string][]string)
	var outputs []domain.RecipeIO
	for _, r := range rows {
		if r.Role == domain.RoleInput {
			inputs[r.RecipeID] = append(inputs[r.RecipeID], r.ItemID)
		} else {
			outputs = append(outputs, r)
		}
	}

	sources := make(map[string][]string)
	for _, out := range outputs {
		for _, in := range inputs[out.RecipeID] {
			if !slices.Contains(sources[out.ItemID], in) {
				sources[out.ItemID] = append(sources[out.ItemID], in)
			}
		}
	}
	for _, list := range sources {
		slices.Sort(list)
	}

	x.mu.Lock()
	x.sources = sources
	x.stale = false
	x.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgIndexRebuilt, "outputs", len(sources), "edges", len(rows))
	return nil
}

// Invalidate marks the index stale
func (x *RecycleIndex) Invalidate() {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.stale = true
}

// Stale reports whether a recycling recipe changed since the last Rebuild
func (x *RecycleIndex) Stale() bool {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.stale
}

// Sources returns the sorted ids of items whose recycling yields itemID
func (x *RecycleIndex) Sources(itemID string) []string {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return slices.Clone(x.sources[itemID])
}

// Items returns the sorted ids of items that have at least one recycle source
func (x *RecycleIndex) Items() []string {
	x.mu.RLock()
	defer x.mu.RUnlock()
	ids := make([]string, 0, len(x.sources))
	for id := range x.sources {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Len returns the number of items that have at least one recycle source
func (x *RecycleIndex) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.sources)
}
