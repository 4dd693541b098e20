package command

import (
	"github.com/sandevgo/assistbot/internal/core"
)

// Registry maps command names to handlers. It is filled at startup and
// only read afterwards, so lookups need no locking.
type Registry struct {
	commands map[string]core.Handler
	order    []string
	unknown  core.Handler
	echo     core.Handler
}

func NewRegistry(handlers ...core.Handler) *Registry {
	r := &Registry{
		commands: make(map[string]core.Handler),
		unknown:  NewUnknownCommand(),
		echo:     NewEcho(),
	}

	for _, h := range handlers {
		r.Register(h)
	}
	return r
}

// Register inserts h or replaces the handler already registered under its name.
func (r *Registry) Register(h core.Handler) {
	if _, exists := r.commands[h.Name()]; !exists {
		r.order = append(r.order, h.Name())
	}
	r.commands[h.Name()] = h
}

func (r *Registry) Lookup(name string) (core.Handler, bool) {
	h, ok := r.commands[name]
	return h, ok
}

func (r *Registry) UnknownCommand() core.Handler {
	return r.unknown
}

func (r *Registry) PlainText() core.Handler {
	return r.echo
}

// List returns the handlers in registration order.
func (r *Registry) List() []core.Handler {
	res := make([]core.Handler, 0, len(r.order))
	for _, name := range r.order {
		res = append(res, r.commands[name])
	}
	return res
}
