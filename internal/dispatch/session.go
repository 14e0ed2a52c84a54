package dispatch

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of the conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Session is the unit of conversation continuity. Its mutable fields are
// owned exclusively by the turn currently processing it; the caller must
// serialize turns per session ID (see internal/session).
type Session struct {
	ID       string
	Messages []Message
	Context  string

	// Pending is the classified command awaiting execution. It is non-nil
	// whenever NeedsConfirmation or AwaitingConfirmation is true.
	Pending Command

	// NeedsConfirmation is true only in the turn where a risk was just
	// detected. Never true at the same time as AwaitingConfirmation.
	NeedsConfirmation bool

	// ConfirmationMessage is the human-readable risk explanation, present
	// only while a confirmation is being asked or waited on.
	ConfirmationMessage string

	// AwaitingConfirmation is true strictly between the turn the prompt was
	// issued and the turn the operator answers it.
	AwaitingConfirmation bool

	// ConfirmationOverride is true for exactly one turn after an affirmative
	// answer, telling the consequence evaluator to skip re-evaluation.
	ConfirmationOverride bool

	// ImageHint is the trip ID guessed from an uploaded screenshot, zero
	// when absent. Cleared with the other transient fields after execution.
	ImageHint int64
}

// NewSession returns an empty session for the given identifier.
func NewSession(id string) *Session {
	return &Session{ID: id}
}

// Append adds one message to the session history.
func (s *Session) Append(role, content string) {
	s.Messages = append(s.Messages, Message{Role: role, Content: content})
}

// LastAssistantMessage returns the most recent assistant reply, or "".
func (s *Session) LastAssistantMessage() string {
	for i := len(s.Messages) - 1; i >= 0; i-- {
		if s.Messages[i].Role == RoleAssistant {
			return s.Messages[i].Content
		}
	}
	return ""
}

// ClearPending drops the pending command and every confirmation flag.
func (s *Session) ClearPending() {
	s.Pending = nil
	s.NeedsConfirmation = false
	s.ConfirmationMessage = ""
	s.AwaitingConfirmation = false
	s.ConfirmationOverride = false
}
