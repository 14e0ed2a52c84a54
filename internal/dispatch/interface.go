package dispatch

import "context"

// UseCase drives one conversation turn through classification, consequence
// evaluation, the confirmation state machine, and execution.
type UseCase interface {
	// ProcessTurn appends the user utterance to the session, advances the
	// state machine to completion, and appends the assistant reply. The
	// session must not be processed by another turn concurrently.
	// imageHint is a best-effort trip ID from an uploaded image, 0 if none.
	ProcessTurn(ctx context.Context, sess *Session, userText string, imageHint int64) error
}
