package catalog

import (
	"context"
	"sort"
	"sync"
)

// Location identifies where a campus sits.
type Location struct {
	City  string `json:"city"`
	State string `json:"state"`
	Zip   string `json:"zip"`
}

// Cost breaks down the annual sticker price of attendance.
type Cost struct {
	Tuition      float64 `json:"tuition"`
	RoomAndBoard float64 `json:"room_and_board"`
	Books        float64 `json:"books"`
	Total        float64 `json:"total"`
}

// FinancialAid summarises the aid a college typically awards.
type FinancialAid struct {
	AveragePackage      float64 `json:"average_package"`
	PercentReceivingAid float64 `json:"percent_receiving_aid"`
}

// College is a read-only reference record describing one institution.
type College struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Location      Location     `json:"location"`
	Website       string       `json:"website"`
	AdmissionRate float64      `json:"admission_rate"`
	AverageGPA    float64      `json:"average_gpa"`
	Cost          Cost         `json:"cost"`
	FinancialAid  FinancialAid `json:"financial_aid"`
	Majors        []string     `json:"majors"`
	Enrollment    int          `json:"enrollment"`
	CampusSetting string       `json:"campus_setting"`
}

// Source provides college reference data. Implementations must be safe for
// concurrent use.
type Source interface {
	List(ctx context.Context, limit int) ([]College, error)
	GetByID(ctx context.Context, id string) (College, bool)
	Search(ctx context.Context, query string, limit int) ([]College, error)
}

// SourceManager is a named registry of college data sources.
type SourceManager struct {
	mu      sync.RWMutex
	sources map[string]Source
}

// NewSourceManager constructs an empty registry.
func NewSourceManager() *SourceManager {
	return &SourceManager{sources: make(map[string]Source)}
}

// Register stores a source under the given name, replacing any previous one.
func (m *SourceManager) Register(name string, source Source) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sources[name] = source
}

// Get returns the source registered under name.
func (m *SourceManager) Get(name string) (Source, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	source, ok := m.sources[name]
	return source, ok
}

// Available lists registered source names in stable order.
func (m *SourceManager) Available() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.sources))
	for name := range m.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
