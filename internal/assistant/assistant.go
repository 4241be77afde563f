// Package assistant abstracts the LLM backing the farming chatbot.
package assistant

import "context"

// Completer produces a single completion for a prompt. Implementations are
// expected to be safe for concurrent use.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
