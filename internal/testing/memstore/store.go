// Package memstore is an in-memory repository.Store for tests. It enforces
// the same keys and foreign keys as the SQL schema, rolls back failed
// transactions and can inject faults.
package memstore

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/osse101/raiddata/internal/domain"
	"github.com/osse101/raiddata/internal/repository"
)

// DefaultMaxRetries is how often InTx re-runs a unit after a transient fault
const DefaultMaxRetries = 3

type tierKey struct {
	workbench string
	tier      int
}

type upgradeKey struct {
	weapon string
	level  int
}

type state struct {
	items        map[string]domain.Item
	weapons      map[string]domain.Weapon
	recipes      map[string]domain.Recipe
	recipeIO     map[string][]domain.RecipeIO
	links        map[string][]domain.WorkbenchLink
	workbenches  map[string]domain.Workbench
	tiers        map[tierKey]domain.Tier
	requirements map[tierKey][]domain.TierRequirement
	upgrades     map[upgradeKey]domain.Upgrade
	syncs        map[string]domain.SyncMetadata
}

func newState() *state {
	return &state{
		items:        make(map[string]domain.Item),
		weapons:      make(map[string]domain.Weapon),
		recipes:      make(map[string]domain.Recipe),
		recipeIO:     make(map[string][]domain.RecipeIO),
		links:        make(map[string][]domain.WorkbenchLink),
		workbenches:  make(map[string]domain.Workbench),
		tiers:        make(map[tierKey]domain.Tier),
		requirements: make(map[tierKey][]domain.TierRequirement),
		upgrades:     make(map[upgradeKey]domain.Upgrade),
		syncs:        make(map[string]domain.SyncMetadata),
	}
}

// snapshot copies the maps. Stored values are never mutated in place, so
// sharing them between snapshots is safe.
func (s *state) snapshot() *state {
	return &state{
		items:        maps.Clone(s.items),
		weapons:      maps.Clone(s.weapons),
		recipes:      maps.Clone(s.recipes),
		recipeIO:     maps.Clone(s.recipeIO),
		links:        maps.Clone(s.links),
		workbenches:  maps.Clone(s.workbenches),
		tiers:        maps.Clone(s.tiers),
		requirements: maps.Clone(s.requirements),
		upgrades:     maps.Clone(s.upgrades),
		syncs:        maps.Clone(s.syncs),
	}
}

// Store implements repository.Store
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex
	data *state

	// Error injection for testing
	faults       map[string]error
	transient    int
	maxRetries   int
	unreachable  bool
	calls        map[string]int
	transactions int
	rolledBack   int
}

var _ repository.Store = (*Store)(nil)

// New returns an empty store
func New() *Store {
	return &Store{
		data:       newState(),
		faults:     make(map[string]error),
		calls:      make(map[string]int),
		maxRetries: DefaultMaxRetries,
	}
}

// FailOn makes every call to op return err until ResetFaults
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults[op] = err
}

// FailTransient makes the next n transaction attempts fail with
// domain.ErrTransient after fn has run
func (s *Store) FailTransient(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transient = n
}

// SetUnreachable makes Ping fail
func (s *Store) SetUnreachable(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unreachable = v
}

// ResetFaults clears every injected fault
func (s *Store) ResetFaults() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults = make(map[string]error)
	s.transient = 0
	s.unreachable = false
}

// Calls returns how often op was invoked
func (s *Store) Calls(op string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.calls[op]
}

// RolledBack returns the number of transaction attempts that were undone
func (s *Store) RolledBack() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rolledBack
}

// Transactions returns the number of transaction attempts
func (s *Store) Transactions() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.transactions
}

// enter records the call and returns an injected fault. Callers hold s.mu.
func (s *Store) enter(op string) error {
	s.calls[op]++
	if err, ok := s.faults[op]; ok {
		return err
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.unreachable {
		return domain.ErrStoreUnavailable
	}
	return ctx.Err()
}

func (s *Store) InTx(ctx context.Context, fn func(q repository.Queries) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	var err error
	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		err = s.attempt(fn)
		if err == nil || !errors.Is(err, domain.ErrTransient) {
			return err
		}
	}
	return err
}

func (s *Store) attempt(fn func(q repository.Queries) error) error {
	s.mu.Lock()
	s.transactions++
	saved := s.data.snapshot()
	s.mu.Unlock()

	err := fn(s)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil && s.transient > 0 {
		s.transient--
		err = fmt.Errorf("%w: injected", domain.ErrTransient)
	}
	if err != nil {
		s.data = saved
		s.rolledBack++
	}
	return err
}

func notFound(sentinel error, key any) error {
	return fmt.Errorf("%w: %v", sentinel, key)
}

func violation(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{domain.ErrConstraintViolation}, args...)...)
}

func cloneItem(it domain.Item) domain.Item {
	it.FoundIn = slices.Clone(it.FoundIn)
	it.Modifiers = maps.Clone(it.Modifiers)
	if it.QuickUse != nil {
		q := *it.QuickUse
		q.Stats = slices.Clone(q.Stats)
		it.QuickUse = &q
	}
	if it.Gear != nil {
		g := *it.Gear
		g.Stats.SupportedShieldTypes = slices.Clone(g.Stats.SupportedShieldTypes)
		it.Gear = &g
	}
	return it
}

func cloneWeapon(w domain.Weapon) domain.Weapon {
	w.ModSlots = slices.Clone(w.ModSlots)
	w.CompatibleMods = slices.Clone(w.CompatibleMods)
	w.StatsBase = maps.Clone(w.StatsBase)
	return w
}
