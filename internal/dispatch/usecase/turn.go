package usecase

import (
	"context"
	"fmt"
	"strings"

	"fleet-dispatch/internal/dispatch"
)

// ProcessTurn advances the session state machine through exactly one full
// traversal: confirmation handling or classification, consequence check,
// then either a confirmation prompt or execution.
func (uc *implUseCase) ProcessTurn(ctx context.Context, sess *dispatch.Session, userText string, imageHint int64) error {
	if sess == nil {
		return dispatch.ErrNilSession
	}

	if userText != "" {
		sess.Append(dispatch.RoleUser, userText)
	}
	if imageHint != 0 {
		sess.ImageHint = imageHint
	}

	lower := strings.ToLower(userText)

	if sess.AwaitingConfirmation {
		switch {
		case affirmRe.MatchString(lower):
			sess.AwaitingConfirmation = false
			sess.ConfirmationOverride = true
			sess.NeedsConfirmation = false
		case denyRe.MatchString(lower) || strings.Contains(lower, "don't") || strings.Contains(lower, "do not"):
			sess.ClearPending()
			sess.Append(dispatch.RoleAssistant, MsgCancelled)
			return nil
		default:
			sess.Append(dispatch.RoleAssistant, MsgClarify)
			return nil
		}
	} else {
		cmd := uc.router.Classify(ctx, userText)
		sess.NeedsConfirmation = false
		sess.ConfirmationMessage = ""
		sess.ConfirmationOverride = false
		if cmd == nil {
			sess.Pending = nil
			sess.Append(dispatch.RoleAssistant, MsgCapabilities)
			return nil
		}
		sess.Pending = cmd
	}

	uc.checkConsequences(ctx, sess)

	if sess.NeedsConfirmation {
		msg := sess.ConfirmationMessage
		if msg == "" {
			msg = fallbackConfirmMsg
		}
		sess.Append(dispatch.RoleAssistant, msg+confirmPromptSuffix)
		sess.NeedsConfirmation = false
		sess.AwaitingConfirmation = true
		return nil
	}

	if sess.Pending == nil {
		uc.resetTransient(sess)
		return nil
	}

	msg, err := uc.execute(ctx, sess.Pending)
	if err != nil {
		uc.l.Warnf(ctx, "%s: executing %s: %v", LogPrefixProcessTurn, sess.Pending.Action(), err)
		msg = fmt.Sprintf("Sorry, I ran into an error executing %s: %v", sess.Pending.Action(), err)
	}
	sess.Append(dispatch.RoleAssistant, msg)
	uc.resetTransient(sess)
	return nil
}

// resetTransient clears everything scoped to the finished action,
// unconditionally, whether execution succeeded or failed.
func (uc *implUseCase) resetTransient(sess *dispatch.Session) {
	sess.ClearPending()
	sess.ImageHint = 0
}
