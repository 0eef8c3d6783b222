package weapon

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/raiddata/internal/testing/memstore"
)

func TestCompatibleMods_Add(t *testing.T) {
	c := NewCompatibleMods()
	c.Add("silencer_i", []string{"ferro_i", " stitcher_i ", ""})
	c.Add("silencer_ii", []string{"stitcher_i"})
	c.Add("silencer_i", []string{"ferro_i"})

	assert.Equal(t, []string{"ferro_i", "stitcher_i"}, c.Weapons())
	assert.Equal(t, []string{"silencer_i"}, c.For("ferro_i"))
	assert.Equal(t, []string{"silencer_i", "silencer_ii"}, c.For("stitcher_i"))
	assert.Nil(t, c.For("anvil_i"))
}

func TestApplyCompatibleMods(t *testing.T) {
	store := memstore.New()
	in, _ := newTestIngestor(store)
	ctx := context.Background()

	_, err := in.Ingest(ctx, decodeWeapon(t, ferroJSON))
	require.NoError(t, err)

	c := NewCompatibleMods()
	c.Add("silencer_i", []string{"ferro_i", "ghost_gun"})

	tally, err := in.ApplyCompatibleMods(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, 1, tally.Updated)
	assert.Equal(t, 1, tally.Skipped)

	stored, err := store.GetWeapon(ctx, "ferro_i")
	require.NoError(t, err)
	assert.Equal(t, []string{"silencer_i"}, stored.CompatibleMods)

	tally, err = in.ApplyCompatibleMods(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, 1, tally.Unchanged)
	assert.Zero(t, tally.Updated)
}

func TestApplyCompatibleMods_Cancelled(t *testing.T) {
	in, _ := newTestIngestor(memstore.New())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewCompatibleMods()
	c.Add("silencer_i", []string{"ferro_i"})

	_, err := in.ApplyCompatibleMods(ctx, c)
	assert.ErrorIs(t, err, context.Canceled)
}
