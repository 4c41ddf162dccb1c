// Package registry indexes commands by name and alias.
package registry

import (
	"fmt"
	"iter"
	"slices"
	"sync"

	"github.com/zephyrtronium/msgcmd/command"
	"github.com/zephyrtronium/msgcmd/message"
)

// Registry is a set of commands sharing a prefix, synchronized with a mutex.
type Registry struct {
	prefix string

	mu    sync.Mutex
	names map[string]*command.Command
	cmds  []*command.Command
}

// New returns an empty registry for commands invoked with prefix.
func New(prefix string) *Registry {
	return &Registry{
		prefix: prefix,
		names:  make(map[string]*command.Command),
	}
}

// Prefix returns the prefix of commands in the registry.
func (r *Registry) Prefix() string {
	return r.prefix
}

// Add adds a command. It is an error if the command's name or any of its
// aliases already invokes another command.
func (r *Registry) Add(c *command.Command) error {
	names := append([]string{c.Name()}, c.Aliases()...)
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, name := range names {
		if other := r.names[name]; other != nil {
			return fmt.Errorf("name %q is already used by %q", name, other.Name())
		}
	}
	for _, name := range names {
		r.names[name] = c
	}
	r.cmds = append(r.cmds, c)
	return nil
}

// Lookup returns the command invoked by name, which may be an alias.
func (r *Registry) Lookup(name string) (*command.Command, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.names[name]
	return c, ok
}

// Remove removes the command invoked by name along with all its aliases.
// It reports whether there was such a command.
func (r *Registry) Remove(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.names[name]
	if c == nil {
		return false
	}
	delete(r.names, c.Name())
	for _, a := range c.Aliases() {
		delete(r.names, a)
	}
	r.cmds = slices.DeleteFunc(r.cmds, func(x *command.Command) bool { return x == c })
	return true
}

// Len returns the number of commands in the registry.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cmds)
}

// All iterates over the commands in the order they were added.
// The registry may be modified during iteration without affecting it.
func (r *Registry) All() iter.Seq[*command.Command] {
	return func(yield func(*command.Command) bool) {
		r.mu.Lock()
		cmds := slices.Clone(r.cmds)
		r.mu.Unlock()
		for _, c := range cmds {
			if !yield(c) {
				return
			}
		}
	}
}

// Match parses text and returns the command it invokes.
// The boolean result is false if text does not begin with the prefix or
// names no command in the registry.
func (r *Registry) Match(text string) (*command.Command, message.Parsed, bool) {
	p := message.Parse(text, r.prefix)
	if !p.Prefixed || p.Name == "" {
		return nil, p, false
	}
	c, ok := r.Lookup(p.Name)
	return c, p, ok
}
