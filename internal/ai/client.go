// Package ai talks to the chat-completion backend that synthesizes quiz
// questions, and turns its free-form output into validated structures.
package ai

import "context"

// Generator defines the interface for the question-generation backend.
type Generator interface {
	// Chat submits a system framing message plus a user instruction and
	// returns the assistant's raw text content.
	Chat(ctx context.Context, system, user string) (string, error)

	// ListModels returns the names of the models the backend can serve.
	// Doubles as a cheap liveness probe.
	ListModels(ctx context.Context) ([]string, error)
}
