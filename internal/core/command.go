package core

import "context"

// Request carries the parsed input for one handler invocation.
type Request struct {
	ChatID          int64
	Args            []string
	Text            string
	UserDisplayName string
}

// Handler produces the replies for one command or fallback case.
// Failures are turned into replies; a handler never returns an error.
type Handler interface {
	Name() string
	Description() string
	// Usage is the command syntax, e.g. "/weather <city>".
	Usage() string
	// MinArgs is the number of arguments required before Handle is called.
	MinArgs() int
	// UsageHint is the reply sent when fewer than MinArgs arguments were given.
	UsageHint() string
	Handle(ctx context.Context, req Request) []OutboundMessage
}

type Registry interface {
	Lookup(name string) (Handler, bool)
	UnknownCommand() Handler
	PlainText() Handler
	List() []Handler
}

// Sink delivers outbound messages to the chat platform.
type Sink interface {
	Send(ctx context.Context, msg OutboundMessage) error
}

type Dispatcher interface {
	Dispatch(ctx context.Context, update Update, sink Sink) error
}
