package tables

import (
	"github.com/tsawler/folio/model"
)

// Engine is the interface for table detection engines. Implementations
// receive the page, a strategy name, and optional search areas in the
// engine's native coordinate convention, and report zero or more table
// candidates with cell-text grids.
//
// No timeout is imposed on Detect; a non-terminating engine blocks its page.
type Engine interface {
	// Detect finds table candidates on a page. An empty area list means the
	// whole page.
	Detect(page *model.Page, strategy string, areas []Area) ([]*model.Table, error)

	// Name returns the engine name.
	Name() string
}

// EngineRegistry holds registered engines.
type EngineRegistry struct {
	engines map[string]Engine
}

// NewRegistry creates a new engine registry.
func NewRegistry() *EngineRegistry {
	return &EngineRegistry{
		engines: make(map[string]Engine),
	}
}

// Register registers an engine.
func (r *EngineRegistry) Register(engine Engine) {
	r.engines[engine.Name()] = engine
}

// Get retrieves an engine by name.
func (r *EngineRegistry) Get(name string) Engine {
	return r.engines[name]
}

// List returns all registered engine names.
func (r *EngineRegistry) List() []string {
	names := make([]string, 0, len(r.engines))
	for name := range r.engines {
		names = append(names, name)
	}
	return names
}

// Global registry
var globalRegistry = NewRegistry()

// RegisterEngine registers an engine globally.
func RegisterEngine(engine Engine) {
	globalRegistry.Register(engine)
}

// GetEngine retrieves an engine by name.
func GetEngine(name string) Engine {
	return globalRegistry.Get(name)
}

// ListEngines returns all registered engine names.
func ListEngines() []string {
	return globalRegistry.List()
}

func init() {
	// Register default engines
	RegisterEngine(NewGeometricEngine())
}
