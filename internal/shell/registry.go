package shell

import (
	"sync"

	"github.com/aliasforge/aliasforge/internal/errors"
)

// Shell identifiers for the supported shells.
const (
	Zsh        = "zsh"
	Bash       = "bash"
	Fish       = "fish"
	PowerShell = "powershell"
	Cmd        = "cmd"
)

// ErrShellAlreadyRegistered is returned when attempting to register a
// shell with a name that is already in use.
var ErrShellAlreadyRegistered = errors.New("shell already registered")

// order is the deterministic listing order for registered shells.
var order = []string{Zsh, Bash, Fish, PowerShell, Cmd}

// Registry manages shell grammar registration and lookup.
// It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	shells map[string]Shell
}

// NewRegistry creates a new empty shell registry.
func NewRegistry() *Registry {
	return &Registry{
		shells: make(map[string]Shell),
	}
}

// Register adds a shell grammar to the registry.
// Returns ErrShellAlreadyRegistered if the name is already taken.
func (r *Registry) Register(s Shell) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.shells[s.Name()]; exists {
		return errors.Wrapf(ErrShellAlreadyRegistered, "%s", s.Name())
	}

	r.shells[s.Name()] = s
	return nil
}

// Get returns the shell grammar for the given identifier.
// Returns errors.ErrUnknownShell if no such shell is registered.
func (r *Registry) Get(name string) (Shell, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, exists := r.shells[name]
	if !exists {
		return nil, errors.Wrapf(errors.ErrUnknownShell, "%q", name)
	}
	return s, nil
}

// All returns all registered shells in deterministic order.
func (r *Registry) All() []Shell {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]Shell, 0, len(r.shells))
	for _, name := range order {
		if s, registered := r.shells[name]; registered {
			results = append(results, s)
		}
	}
	return results
}

// defaultRegistry holds the built-in shell grammars.
var defaultRegistry = NewRegistry()

func init() {
	for _, s := range []Shell{
		&zshShell{},
		&bashShell{},
		&fishShell{},
		&powerShell{},
		&cmdShell{},
	} {
		if err := defaultRegistry.Register(s); err != nil {
			panic(err)
		}
	}
}

// Get returns the built-in shell grammar for the given identifier.
func Get(name string) (Shell, error) {
	return defaultRegistry.Get(name)
}

// All returns the built-in shells in deterministic order.
func All() []Shell {
	return defaultRegistry.All()
}

// IDs returns the identifiers of the built-in shells in deterministic order.
func IDs() []string {
	ids := make([]string, len(order))
	copy(ids, order)
	return ids
}

// Valid reports whether name is a known shell identifier.
func Valid(name string) bool {
	_, err := defaultRegistry.Get(name)
	return err == nil
}
