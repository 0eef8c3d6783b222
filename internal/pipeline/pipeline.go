// Package pipeline drives one ingestion run over a data set: items, weapons,
// workbenches, recipes and upgrades, in that order, followed by a rebuild of
// the reverse recycle index.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/raiddata/internal/catalog"
	"github.com/osse101/raiddata/internal/crafting"
	"github.com/osse101/raiddata/internal/domain"
	"github.com/osse101/raiddata/internal/item"
	"github.com/osse101/raiddata/internal/logger"
	"github.com/osse101/raiddata/internal/modifier"
	"github.com/osse101/raiddata/internal/repository"
	"github.com/osse101/raiddata/internal/source"
	"github.com/osse101/raiddata/internal/upgrade"
	"github.com/osse101/raiddata/internal/weapon"
	"github.com/osse101/raiddata/internal/workbench"
)

// Recorder receives run measurements. The metrics package implements it.
type Recorder interface {
	RecordTally(entity domain.EntityType, t domain.Tally)
	RecordFile(phase, status string)
	RecordPhase(phase string, d time.Duration)
	RecordUnmapped(scope string, keys int)
}

type nopRecorder struct{}

func (nopRecorder) RecordTally(domain.EntityType, domain.Tally) {}
func (nopRecorder) RecordFile(string, string) {}
func (nopRecorder) RecordPhase(string, time.Duration) {}
func (nopRecorder) RecordUnmapped(string, int) {}

// Options configures a Pipeline. Manifest and Tables are required.
type Options struct {
	DataDir  string
	Manifest *source.Manifest
	Tables   *modifier.Tables
	// SkipUnchanged skips a (phase, file) pass whose file hash and mod
	// time match the last clean pass
	SkipUnchanged bool
	Catalog       *catalog.Catalog
	Recorder      Recorder
}

// Pipeline is the single writer of a store. Runs must not overlap.
type Pipeline struct {
	store repository.Store
	opts  Options
}

// New validates opts and returns a pipeline writing to store
func New(store repository.Store, opts Options) (*Pipeline, error) {
	if opts.Manifest == nil {
		return nil, fmt.Errorf(ErrMsgNoManifest, domain.ErrInvalidConfig)
	}
	if opts.Tables == nil {
		return nil, fmt.Errorf(ErrMsgNoTables, domain.ErrInvalidConfig)
	}
	if err := opts.Manifest.Validate(); err != nil {
		return nil, err
	}
	if opts.Catalog == nil {
		opts.Catalog = catalog.New(catalog.DefaultSize, catalog.DefaultTTL)
	}
	if opts.Recorder == nil {
		opts.Recorder = nopRecorder{}
	}
	return &Pipeline{store: store, opts: opts}, nil
}

// Run ingests the whole data set. Record and file failures are counted in
// the report; an unreachable store or an already cancelled ctx is returned
// as an error before any work starts. When ctx is cancelled the record in
// flight finishes, no further record or file is started, and the partial
// report is returned together with ctx.Err().
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := p.store.Ping(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgStoreUnreachable, domain.ErrStoreUnavailable, err)
	}

	runID, ok := logger.RunIDFromContext(ctx)
	if !ok {
		runID = logger.GenerateRunID()
		ctx = logger.WithRunID(ctx, runID)
	}
	log := logger.FromContext(ctx)

	r := p.newRun(runID)
	m := p.opts.Manifest
	log.Info(LogMsgRunStarted,
		"data_dir", p.opts.DataDir,
		"files", len(m.Files),
		"skip_unchanged", p.opts.SkipUnchanged)

	weaponFiles := m.FilesOf(domain.KindWeapon)
	recipeFiles := append(m.ItemFiles(), weaponFiles...)

	r.phase(ctx, PhaseItems, m.ItemFiles(), r.ingestItem)
	r.phase(ctx, PhaseWeapons, weaponFiles, r.ingestWeapon)
	r.applyCompatibleMods(ctx)
	r.phase(ctx, PhaseWorkbenches, m.FilesOf(domain.KindWorkbench), r.ingestWorkbench)
	r.phase(ctx, PhaseRecipes, recipeFiles, r.buildRecipes)
	r.phase(ctx, PhaseUpgrades, weaponFiles, r.ingestUpgrades)
	r.rebuildIndex(ctx)

	report := r.finish()
	log.Info(LogMsgRunFinished,
		"duration", report.Duration,
		"cancelled", report.Cancelled,
		"unmapped", len(report.Unmapped))

	if report.Cancelled {
		return report, ctx.Err()
	}
	return report, nil
}

// run holds the state of one Run
type run struct {
	store    repository.Store
	opts     Options
	recorder Recorder
	report   *Report

	diag        *modifier.Diagnostics
	items       *item.Ingestor
	weapons     *weapon.Ingestor
	workbenches *workbench.Ingestor
	builder     *crafting.Builder
	upgrades    *upgrade.Ingestor

	compat *weapon.CompatibleMods
	files  map[string]*source.File
	errs   map[string]error
	seen   map[seenKey]string
}

type seenKey struct {
	entity domain.EntityType
	id     string
}

func (p *Pipeline) newRun(runID string) *run {
	t := p.opts.Tables
	cat := p.opts.Catalog
	diag := modifier.NewDiagnostics()
	items := item.NewIngestor(p.store, cat, t.ModStats, diag)
	builder := crafting.NewBuilder(p.store, cat)

	return &run{
		store:       p.store,
		opts:        p.opts,
		recorder:    p.opts.Recorder,
		report:      newReport(runID, time.Now()),
		diag:        diag,
		items:       items,
		weapons:     weapon.NewIngestor(p.store, cat, items, weapon.NewStatNormalizer(t.WeaponStats, diag)),
		workbenches: workbench.NewIngestor(p.store, cat),
		builder:     builder,
		upgrades:    upgrade.NewIngestor(p.store, builder, t.UpgradePerks, diag),
		compat:      weapon.NewCompatibleMods(),
		files:       make(map[string]*source.File),
		errs:        make(map[string]error),
		seen:        make(map[seenKey]string),
	}
}

// batch is one phase's pass over one file
type batch struct {
	phase Phase
	spec  source.FileSpec
	file  *source.File
	tally domain.Tally
}

// clean passes are the only ones recorded in sync metadata, so a file with
// skipped or failed records is looked at again on the next run
func (b *batch) clean() bool {
	return b.tally.Failed == 0 && b.tally.Skipped == 0
}

type recordFunc func(ctx context.Context, b *batch, i int)

func (r *run) phase(ctx context.Context, phase Phase, files []source.FileSpec, each recordFunc) {
	if r.cancelled(ctx) {
		return
	}
	log := logger.FromContext(ctx).With("phase", phase)
	log.Info(LogMsgPhaseStarted, "files", len(files))
	start := time.Now()

	// Records run detached from cancellation so a unit of work is never
	// interrupted half way; ctx is checked between records instead.
	rctx := context.WithoutCancel(ctx)
	for _, spec := range files {
		if r.cancelled(ctx) {
			break
		}
		r.processFile(ctx, rctx, phase, spec, each)
	}

	d := time.Since(start)
	r.recorder.RecordPhase(string(phase), d)
	log.Info(LogMsgPhaseFinished, "duration", d)
}

func (r *run) processFile(ctx, rctx context.Context, phase Phase, spec source.FileSpec, each recordFunc) {
	log := logger.FromContext(ctx).With("phase", phase, "file", spec.File)
	fr := FileReport{Phase: phase, File: spec.File}

	f, err := r.read(source.Resolve(r.opts.DataDir, spec.File))
	if err != nil {
		log.Error(LogMsgFileFailed, "error", err)
		fr.Status, fr.Error = FileFailed, err.Error()
		r.addFile(fr)
		return
	}
	fr.Records = len(f.Records)

	syncName := fmt.Sprintf(SyncNameFormat, phase, spec.File)
	if r.opts.SkipUnchanged && r.unchanged(rctx, syncName, f) {
		log.Info(LogMsgFileUnchanged, "hash", f.Hash)
		fr.Status = FileUnchanged
		r.addFile(fr)
		return
	}

	b := &batch{phase: phase, spec: spec, file: f}
	fr.Status = FileDone
	for i := range f.Records {
		if r.cancelled(ctx) {
			fr.Status = FileCancelled
			break
		}
		each(rctx, b, i)
	}
	fr.Tally = b.tally

	if r.opts.SkipUnchanged && fr.Status == FileDone && b.clean() {
		if err := r.markSynced(rctx, syncName, f); err != nil {
			log.Warn(LogMsgSyncUpdateFailed, "error", err)
		}
	}
	r.addFile(fr)
}

// read parses each file once per run; later phases reuse the records
func (r *run) read(path string) (*source.File, error) {
	if f, ok := r.files[path]; ok {
		return f, nil
	}
	if err, ok := r.errs[path]; ok {
		return nil, err
	}
	f, err := source.ReadFile(path)
	if err != nil {
		r.errs[path] = err
		return nil, err
	}
	r.files[path] = f
	return f, nil
}

func (r *run) addFile(fr FileReport) {
	r.report.Files = append(r.report.Files, fr)
	r.recorder.RecordFile(string(fr.Phase), string(fr.Status))
}

func (r *run) cancelled(ctx context.Context) bool {
	if ctx.Err() == nil {
		return false
	}
	if !r.report.Cancelled {
		r.report.Cancelled = true
		logger.FromContext(ctx).Warn(LogMsgRunCancelled, "error", ctx.Err())
	}
	return true
}

// syncModTime drops precision the store cannot keep
func syncModTime(f *source.File) time.Time {
	return f.ModTime.UTC().Truncate(time.Microsecond)
}

func (r *run) unchanged(ctx context.Context, name string, f *source.File) bool {
	meta, err := r.store.GetSyncMetadata(ctx, name)
	if err != nil {
		if !errors.Is(err, domain.ErrSyncNotFound) {
			logger.FromContext(ctx).Warn(LogMsgSyncCheckFailed, "sync_name", name,
				"error", fmt.Errorf(ErrMsgLoadSyncFailed, name, err))
		}
		return false
	}
	return meta.FileHash == f.Hash && meta.FileModTime.Equal(syncModTime(f))
}

func (r *run) markSynced(ctx context.Context, name string, f *source.File) error {
	err := r.store.UpsertSyncMetadata(ctx, &domain.SyncMetadata{
		ConfigName:   name,
		LastSyncTime: time.Now(),
		FileHash:     f.Hash,
		FileModTime:  syncModTime(f),
	})
	if err != nil {
		return fmt.Errorf(ErrMsgUpdateSyncFailed, name, err)
	}
	return nil
}

func (r *run) count(b *batch, e domain.EntityType, o domain.Outcome) {
	r.report.add(e, o)
	b.tally.Add(o)
}

func (r *run) merge(b *batch, e domain.EntityType, t domain.Tally) {
	r.report.merge(e, t)
	b.tally.Merge(t)
}

func (r *run) fail(ctx context.Context, b *batch, e domain.EntityType, id string, err error) {
	logger.FromContext(ctx).Error(LogMsgRecordFailed,
		"phase", b.phase,
		"file", b.spec.File,
		"entity", e,
		"id", id,
		"error", err)
	r.report.fail(e)
	b.tally.Failed++
}

// claim warns when id was already written from another file. The later
// file's row replaces the earlier one.
func (r *run) claim(ctx context.Context, b *batch, e domain.EntityType, id string) {
	k := seenKey{entity: e, id: id}
	if prev, ok := r.seen[k]; ok && prev != b.spec.File {
		logger.FromContext(ctx).Warn(LogMsgDuplicateID,
			"entity", e,
			"id", id,
			"first_file", prev,
			"file", b.spec.File)
	}
	r.seen[k] = b.spec.File
}

// decode returns false for records that are not objects of the expected
// shape. They are skipped without being counted.
func decode[T any](ctx context.Context, b *batch, i int) (T, bool) {
	rec, err := source.Decode[T](b.file, i)
	if err != nil {
		logger.FromContext(ctx).Debug(LogMsgRecordUndecoded, "file", b.spec.File, "index", i, "error", err)
		return rec, false
	}
	return rec, true
}

func malformed(ctx context.Context, b *batch, i int) {
	logger.FromContext(ctx).Debug(LogMsgRecordMalformed, "phase", b.phase, "file", b.spec.File, "index", i)
}

func (r *run) finish() *Report {
	rep := r.report
	rep.Duration = time.Since(rep.StartedAt)
	rep.Unmapped = r.diag.Unmapped()

	for _, e := range domain.EntityOrder {
		if t, ok := rep.Tallies[e]; ok {
			r.recorder.RecordTally(e, t)
		}
	}
	perScope := make(map[modifier.Scope]int)
	for _, u := range rep.Unmapped {
		perScope[u.Scope]++
	}
	for _, s := range []modifier.Scope{modifier.ScopeWeaponStats, modifier.ScopeUpgradePerks, modifier.ScopeModStats} {
		r.recorder.RecordUnmapped(string(s), perScope[s])
	}
	return rep
}
