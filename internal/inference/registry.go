package inference

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// EngineRegistry manages all inference engines
type EngineRegistry struct {
	engines map[string]Engine
	logger  *zap.Logger
	mu      sync.RWMutex
}

// NewEngineRegistry creates a new engine registry
func NewEngineRegistry(logger *zap.Logger) *EngineRegistry {
	return &EngineRegistry{
		engines: make(map[string]Engine),
		logger:  logger,
	}
}

// Register adds an engine to the registry
func (r *EngineRegistry) Register(engine Engine) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.engines[engine.Name()] = engine
	r.logger.Info("Registered inference engine",
		zap.String("engine", engine.Name()),
		zap.Int("variables", len(engine.Variables())),
		zap.Int("categories", len(engine.Outputs().Categories)))
}

// Get retrieves an engine by name
func (r *EngineRegistry) Get(name string) (Engine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	engine, ok := r.engines[name]
	if !ok {
		return nil, fmt.Errorf("engine not found: %s", name)
	}
	return engine, nil
}

// Classify runs the named engine on the given inputs
func (r *EngineRegistry) Classify(ctx context.Context, name string, inputs map[string]float64) (*Result, error) {
	engine, err := r.Get(name)
	if err != nil {
		return nil, err
	}

	result, err := engine.Classify(ctx, inputs)
	if err != nil {
		r.logger.Debug("Classification rejected",
			zap.String("engine", name),
			zap.Error(err))
		return nil, fmt.Errorf("%s engine: %w", name, err)
	}
	return result, nil
}

// GetAllEngines returns all registered engines sorted by name
func (r *EngineRegistry) GetAllEngines() []Engine {
	r.mu.RLock()
	defer r.mu.RUnlock()

	engines := make([]Engine, 0, len(r.engines))
	for _, engine := range r.engines {
		engines = append(engines, engine)
	}
	sort.Slice(engines, func(i, j int) bool {
		return engines[i].Name() < engines[j].Name()
	})
	return engines
}
