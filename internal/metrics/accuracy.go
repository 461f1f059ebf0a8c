package metrics

import (
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Feedback is one user verdict on a routing decision.
type Feedback struct {
	ID             string    `json:"id"`
	RequestID      string    `json:"request_id"`
	Model          string    `json:"model"`
	Correct        bool      `json:"correct"`
	SuggestedModel string    `json:"suggested_model,omitempty"`
	Comment        string    `json:"comment,omitempty"`
	ReceivedAt     time.Time `json:"received_at"`
}

// ModelAccuracy aggregates feedback for one model.
type ModelAccuracy struct {
	Total    int     `json:"total"`
	Correct  int     `json:"correct"`
	Accuracy float64 `json:"accuracy"`
}

// AccuracyReport summarizes the feedback window.
type AccuracyReport struct {
	WindowSize int                      `json:"window_size"`
	Total      int                      `json:"total"`
	Correct    int                      `json:"correct"`
	Accuracy   float64                  `json:"accuracy"`
	PerModel   map[string]ModelAccuracy `json:"per_model"`
}

// AccuracyTracker keeps a bounded window of recent feedback. Old entries
// fall out of the LRU, so the report reflects current behavior instead
// of all-time history.
type AccuracyTracker struct {
	mu     sync.Mutex
	window *lru.Cache[string, Feedback]
	size   int
}

// NewAccuracyTracker builds the tracker with the given window size.
func NewAccuracyTracker(size int) (*AccuracyTracker, error) {
	window, err := lru.New[string, Feedback](size)
	if err != nil {
		return nil, err
	}
	return &AccuracyTracker{window: window, size: size}, nil
}

// Record stores one feedback entry, assigning it an ID, and returns the
// stored record.
func (t *AccuracyTracker) Record(fb Feedback) Feedback {
	fb.ID = uuid.NewString()
	if fb.ReceivedAt.IsZero() {
		fb.ReceivedAt = time.Now().UTC()
	}

	t.mu.Lock()
	t.window.Add(fb.ID, fb)
	t.mu.Unlock()
	return fb
}

// Report computes accuracy over the current window.
func (t *AccuracyTracker) Report() AccuracyReport {
	t.mu.Lock()
	entries := t.window.Values()
	t.mu.Unlock()

	report := AccuracyReport{
		WindowSize: t.size,
		PerModel:   make(map[string]ModelAccuracy),
	}
	for _, fb := range entries {
		report.Total++
		m := report.PerModel[fb.Model]
		m.Total++
		if fb.Correct {
			report.Correct++
			m.Correct++
		}
		report.PerModel[fb.Model] = m
	}

	if report.Total > 0 {
		report.Accuracy = float64(report.Correct) / float64(report.Total)
	}
	for name, m := range report.PerModel {
		if m.Total > 0 {
			m.Accuracy = float64(m.Correct) / float64(m.Total)
			report.PerModel[name] = m
		}
	}
	return report
}
