package chat

import "context"

// Backend generates a reply from the full ordered conversation history.
// Implementations surface failures as opaque errors; the session prints them
// and keeps the loop alive.
type Backend interface {
	Generate(ctx context.Context, history []Turn, params GenParams) (string, error)
}
