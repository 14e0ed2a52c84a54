package usecase

import "regexp"

// Assistant messages. The wording is part of the conversational contract;
// operator-facing clients match on it.
const (
	MsgCapabilities = "I can help with: listing vehicles/drivers/routes/paths/stops/trips, showing stops for a route/path, checking trip status, assigning vehicles/drivers, removing assignments, or creating new items. What would you like to do?"
	MsgCancelled    = "Understood. I have cancelled that request."
	MsgClarify      = "Please confirm with yes or no, or say cancel to stop the previous action."

	confirmPromptSuffix = " Please respond with yes or no."
	fallbackConfirmMsg  = "This action requires confirmation."
)

// Log prefixes
const (
	LogPrefixProcessTurn = "dispatch.usecase.ProcessTurn"
)

// Affirmation and negation vocabularies for confirmation replies.
var (
	affirmRe = regexp.MustCompile(`\b(yes|yep|yeah|sure|confirm|proceed|okay|ok|go ahead)\b`)
	denyRe   = regexp.MustCompile(`\b(no|nope|cancel|stop|abort|nevermind|never mind)\b`)
)
