package cli

import (
	"io"
	"sync"

	"github.com/agentx-labs/cratekit/internal/registry"
)

// boundCreator is the creator held by the process-wide registry. Each
// command binds the create command and its own writers before running an
// action.
type boundCreator struct {
	mu      sync.Mutex
	command string
	stdout  io.Writer
	stderr  io.Writer
}

func (b *boundCreator) bind(command string, stdout, stderr io.Writer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.command, b.stdout, b.stderr = command, stdout, stderr
}

func (b *boundCreator) CreateProject(dir, name string, vcs bool) error {
	b.mu.Lock()
	command, stdout, stderr := b.command, b.stdout, b.stderr
	b.mu.Unlock()
	return newCreator(command, stdout, stderr).CreateProject(dir, name, vcs)
}

var (
	registryOnce sync.Once
	actions      *registry.Registry
	creator      = &boundCreator{}
)

// actionRegistry returns the registry shared by every command in the process.
func actionRegistry() *registry.Registry {
	registryOnce.Do(func() {
		actions = registry.Default(creator)
	})
	return actions
}
