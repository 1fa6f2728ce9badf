package dashboard

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"prunflow/internal/analysis"
	"prunflow/internal/model"
)

// PlanetReport is the rendered analysis state of one planet.
type PlanetReport struct {
	Planet    string                    `json:"planet"`
	NaturalID string                    `json:"naturalId"`
	Balance   *analysis.Balance         `json:"balance,omitempty"`
	Resupply  []analysis.ResupplyItem   `json:"resupply,omitempty"`
	Galactic  []analysis.ResupplyItem   `json:"galactic,omitempty"`
	Costs     []analysis.CostResult     `json:"costs,omitempty"`
	Profits   []analysis.ProfitEstimate `json:"profits,omitempty"`
	Deals     []analysis.Deal           `json:"deals,omitempty"`
	Listings  []analysis.Listing        `json:"listings,omitempty"`
}

// Snapshot is one complete refresh across all planets.
type Snapshot struct {
	GeneratedAt time.Time               `json:"generatedAt"`
	Planets     map[string]PlanetReport `json:"planets"`
	Warehouses  []model.Warehouse       `json:"warehouses,omitempty"`
	Orders      []model.MarketOrder     `json:"orders,omitempty"`
}

// snapshotStore holds the latest refresh. Readers always observe a complete
// snapshot; Publish swaps the pointer atomically.
type snapshotStore struct {
	current atomic.Pointer[Snapshot]
}

func newSnapshotStore() *snapshotStore {
	s := &snapshotStore{}
	s.current.Store(&Snapshot{Planets: map[string]PlanetReport{}})
	return s
}

func (s *snapshotStore) publish(snap *Snapshot) {
	s.current.Store(snap)
}

func (s *snapshotStore) snapshot() *Snapshot {
	return s.current.Load()
}

// logRecord is the serialisable representation of a captured log entry.
type logRecord struct {
	Timestamp time.Time              `json:"timestamp"`
	Level     string                 `json:"level"`
	Component string                 `json:"component,omitempty"`
	Message   string                 `json:"message"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
}

// logStore retains the most recent logs flowing through the global logger.
// It implements the logrus Hook interface so it can attach directly.
type logStore struct {
	mu      sync.RWMutex
	items   []logRecord
	limit   int
	enabled atomic.Bool
}

func newLogStore(limit int) *logStore {
	if limit <= 0 {
		limit = 200
	}
	ls := &logStore{limit: limit}
	ls.enabled.Store(true)
	return ls
}

func (s *logStore) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (s *logStore) Fire(entry *logrus.Entry) error {
	if !s.enabled.Load() {
		return nil
	}

	record := logRecord{
		Timestamp: entry.Time,
		Level:     entry.Level.String(),
		Message:   entry.Message,
	}
	if component, ok := entry.Data["component"].(string); ok {
		record.Component = component
	}
	if len(entry.Data) > 0 {
		record.Fields = make(map[string]interface{}, len(entry.Data))
		for k, v := range entry.Data {
			if k == "component" {
				continue
			}
			switch val := v.(type) {
			case error:
				record.Fields[k] = val.Error()
			case fmt.Stringer:
				record.Fields[k] = val.String()
			default:
				record.Fields[k] = val
			}
		}
	}

	s.mu.Lock()
	s.items = append(s.items, record)
	if len(s.items) > s.limit {
		s.items = append([]logRecord(nil), s.items[len(s.items)-s.limit:]...)
	}
	s.mu.Unlock()
	return nil
}

func (s *logStore) snapshot() []logRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]logRecord, len(s.items))
	copy(out, s.items)
	return out
}

func (s *logStore) close() {
	s.enabled.Store(false)
}
