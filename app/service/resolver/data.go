package resolver

// Intent is the classified purpose of a single user message within the
// booking conversation.
type Intent string

const (
	IntentConfirm Intent = "confirm"
	IntentDecline Intent = "decline"
	IntentPropose Intent = "propose"
	IntentChat    Intent = "chat"
)

type Request struct {
	Message   string `json:"message"`
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
}

type Result struct {
	UserID               string  `json:"user_id"`
	Input                string  `json:"input"`
	Reply                string  `json:"reply"`
	AppointmentCandidate *string `json:"appointment_candidate"`
	Intent               Intent  `json:"intent"`
	NeedsConfirmation    bool    `json:"needs_confirmation"`
}
