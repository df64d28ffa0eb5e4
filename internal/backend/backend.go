// Package backend defines the language-model and shell execution seams of
// the dispatcher. Keeping both behind small interfaces allows provider
// swaps through configuration and mock implementations in tests.
package backend

import "context"

// LLMBackend is the interface for remote language-model providers.
// Implementations include the Anthropic messages API and the OpenAI chat
// completions API.
type LLMBackend interface {
	// Generate sends prompt as a single user-role message and returns the
	// reply text. model selects the provider model; maxTokens caps the
	// response length (0 means provider default). The call blocks until the
	// provider responds or the transport fails.
	Generate(ctx context.Context, prompt string, model string, maxTokens int) (string, error)

	// Name returns a human-readable name for the backend.
	Name() string

	// Close releases any resources held by the backend.
	Close() error
}

// Registry manages available LLM backends and allows lookup by name.
type Registry struct {
	backends   map[string]LLMBackend
	defaultLLM string
}

// NewRegistry creates an empty backend registry.
func NewRegistry() *Registry {
	return &Registry{
		backends: make(map[string]LLMBackend),
	}
}

// Register adds an LLM backend. The first registered backend becomes the
// default.
func (r *Registry) Register(name string, backend LLMBackend) {
	r.backends[name] = backend
	if r.defaultLLM == "" {
		r.defaultLLM = name
	}
}

// SetDefault sets which backend to use when none is specified.
func (r *Registry) SetDefault(name string) {
	r.defaultLLM = name
}

// Get returns a backend by name, or the default if name is empty.
func (r *Registry) Get(name string) (LLMBackend, bool) {
	if name == "" {
		name = r.defaultLLM
	}
	b, ok := r.backends[name]
	return b, ok
}

// Close releases all backend resources.
func (r *Registry) Close() error {
	for _, b := range r.backends {
		if err := b.Close(); err != nil {
			return err
		}
	}
	return nil
}

// List returns names of all registered backends.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	return names
}
