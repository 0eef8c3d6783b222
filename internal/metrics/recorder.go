package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/osse101/raiddata/internal/domain"
)

// Recorder feeds pipeline measurements into the package metrics
type Recorder struct{}

// NewRecorder creates a recorder backed by the default registry
func NewRecorder() *Recorder {
	return &Recorder{}
}

// RecordTally adds the counts of one entity type
func (r *Recorder) RecordTally(entity domain.EntityType, t domain.Tally) {
	e := string(entity)
	RecordsTotal.WithLabelValues(e, OutcomeInserted).Add(float64(t.Inserted))
	RecordsTotal.WithLabelValues(e, OutcomeUpdated).Add(float64(t.Updated))
	RecordsTotal.WithLabelValues(e, OutcomeUnchanged).Add(float64(t.Unchanged))
	RecordsTotal.WithLabelValues(e, OutcomeSkipped).Add(float64(t.Skipped))
	RecordsTotal.WithLabelValues(e, OutcomeFailed).Add(float64(t.Failed))
}

func (r *Recorder) RecordFile(phase, status string) {
	FilesTotal.WithLabelValues(phase, status).Inc()
}

func (r *Recorder) RecordPhase(phase string, d time.Duration) {
	PhaseDuration.WithLabelValues(phase).Observe(d.Seconds())
}

func (r *Recorder) RecordUnmapped(scope string, keys int) {
	UnmappedKeys.WithLabelValues(scope).Set(float64(keys))
}

// WriteTextfile stamps the run as finished and writes every registered
// metric to path in the node exporter textfile format. The file is replaced
// atomically.
func WriteTextfile(path string) error {
	LastRunTimestamp.SetToCurrentTime()
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf(ErrMsgWriteTextfileFailed, path, err)
	}
	return nil
}
