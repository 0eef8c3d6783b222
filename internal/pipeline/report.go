package pipeline

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/osse101/raiddata/internal/domain"
	"github.com/osse101/raiddata/internal/modifier"
)

// FileReport is the result of one phase over one source file
type FileReport struct {
	Phase   Phase        `json:"phase"`
	File    string       `json:"file"`
	Status  FileStatus   `json:"status"`
	Records int          `json:"records"`
	Tally   domain.Tally `json:"tally"`
	Error   string       `json:"error,omitempty"`
}

// Report summarizes a run. RecycleSources is the number of items the reverse
// recycle index knows sources for; RecycledFrom maps each of them to the
// items that recycle into it.
type Report struct {
	RunID          string                             `json:"run_id"`
	StartedAt      time.Time                          `json:"started_at"`
	Duration       time.Duration                      `json:"duration"`
	Tallies        map[domain.EntityType]domain.Tally `json:"tallies"`
	Files          []FileReport                       `json:"files"`
	Unmapped       []modifier.Unmapped                `json:"unmapped"`
	RecycleSources int                                `json:"recycle_sources"`
	RecycledFrom   map[string][]string                `json:"recycled_from"`
	Cancelled      bool                               `json:"cancelled"`
}

func newReport(runID string, start time.Time) *Report {
	return &Report{
		RunID:     runID,
		StartedAt: start,
		Tallies:   make(map[domain.EntityType]domain.Tally),
	}
}

// Tally returns the counts for one entity type
func (r *Report) Tally(e domain.EntityType) domain.Tally {
	return r.Tallies[e]
}

func (r *Report) add(e domain.EntityType, o domain.Outcome) {
	t := r.Tallies[e]
	t.Add(o)
	r.Tallies[e] = t
}

func (r *Report) fail(e domain.EntityType) {
	t := r.Tallies[e]
	t.Failed++
	r.Tallies[e] = t
}

func (r *Report) merge(e domain.EntityType, o domain.Tally) {
	t := r.Tallies[e]
	t.Merge(o)
	r.Tallies[e] = t
}

// Failed reports whether any record or file failed
func (r *Report) Failed() bool {
	for _, t := range r.Tallies {
		if t.Failed > 0 {
			return true
		}
	}
	for _, f := range r.Files {
		if f.Status == FileFailed {
			return true
		}
	}
	return false
}

// FilesWith returns the file reports with the given status
func (r *Report) FilesWith(status FileStatus) []FileReport {
	var out []FileReport
	for _, f := range r.Files {
		if f.Status == status {
			out = append(out, f)
		}
	}
	return out
}

// Print writes the per-entity tally, failed files and the unmapped key list
func (r *Report) Print(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Run %s (%s)\n", r.RunID, r.Duration.Round(time.Millisecond))
	if r.Cancelled {
		fmt.Fprintln(tw, "Run was cancelled before all files were processed")
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "ENTITY\tINSERTED\tUPDATED\tUNCHANGED\tSKIPPED\tFAILED\tUPSERTED")
	for _, e := range domain.EntityOrder {
		t, ok := r.Tallies[e]
		if !ok {
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%d\n",
			e, t.Inserted, t.Updated, t.Unchanged, t.Skipped, t.Failed, t.Upserted())
	}

	if failed := r.FilesWith(FileFailed); len(failed) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "FAILED FILE\tPHASE\tERROR")
		for _, f := range failed {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", f.File, f.Phase, f.Error)
		}
	}
	if unchanged := r.FilesWith(FileUnchanged); len(unchanged) > 0 {
		fmt.Fprintf(tw, "\n%d file passes skipped as unchanged\n", len(unchanged))
	}

	if len(r.Unmapped) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "UNMAPPED KEY\tSCOPE\tSLUG\tCOUNT\tNOTE\tSEEN ON")
		for _, u := range r.Unmapped {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n",
				u.Key, u.Scope, u.Slug, u.Count, unmappedNote(u), strings.Join(u.Owners, ","))
		}
	}

	fmt.Fprintf(tw, "\nReverse recycle index covers %d items\n", r.RecycleSources)
	if len(r.RecycledFrom) > 0 {
		fmt.Fprintln(tw, "RECYCLED INTO\tFROM")
		for _, id := range slices.Sorted(maps.Keys(r.RecycledFrom)) {
			fmt.Fprintf(tw, "%s\t%s\n", id, strings.Join(r.RecycledFrom[id], ","))
		}
	}
	return tw.Flush()
}

func unmappedNote(u modifier.Unmapped) string {
	switch {
	case u.Inferred != "":
		return "inferred " + u.Inferred
	case u.Suggestion != "":
		return "did you mean " + u.Suggestion + "?"
	default:
		return "tried " + strings.Join(u.Tried, ",")
	}
}
