package sitemd

import "context"

// TokenCounter counts LLM tokens in text. Used to report how much of a
// model's context window a converted corpus will occupy.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
