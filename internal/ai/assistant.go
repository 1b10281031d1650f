package ai

import (
	"context"
)

// Counselor answers free-text career questions. Chat never fails: problems
// talking to the model are reported as the reply text.
type Counselor interface {
	Chat(ctx context.Context, message string) string
}
