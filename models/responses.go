package models

// Outcome_Kind classifies the result of a remote generation attempt.
type Outcome_Kind string

const (
	// Outcome_Success means the remote model returned usable text.
	Outcome_Success Outcome_Kind = "success"
	// Outcome_Unavailable means no credential or transport was configured,
	// so no call was attempted.
	Outcome_Unavailable Outcome_Kind = "unavailable"
	// Outcome_Failure means a call was attempted and raised an error or
	// returned empty text.
	Outcome_Failure Outcome_Kind = "failure"
)

// Generation_Outcome is the normalized result of one generation attempt.
// Exactly one kind is set per call; non-success kinds carry a reason or
// error for logging only, and both route to the template fallback.
type Generation_Outcome struct {
	Kind   Outcome_Kind
	Text   string
	Reason string
	Err    error
}

// Success wraps remote model text in a successful outcome.
func Success(text string) Generation_Outcome {
	return Generation_Outcome{Kind: Outcome_Success, Text: text}
}

// Unavailable marks a call that was never attempted.
func Unavailable(reason string) Generation_Outcome {
	return Generation_Outcome{Kind: Outcome_Unavailable, Reason: reason}
}

// Failure marks an attempted call that errored or came back empty.
func Failure(err error) Generation_Outcome {
	return Generation_Outcome{Kind: Outcome_Failure, Err: err}
}

// Chat_Response is the outbound payload for the chat endpoints.
type Chat_Response struct {
	Response   string `json:"response"`
	Powered_By string `json:"powered_by"`
}

// Wikipedia_Info is the subset of a lookup result surfaced to clients.
type Wikipedia_Info struct {
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail"`
}

// Historical_Info_Response is the outbound payload for /api/historical-info.
type Historical_Info_Response struct {
	Information string          `json:"information"`
	Wikipedia   *Wikipedia_Info `json:"wikipedia"`
	Sources     []string        `json:"sources"`
	Confidence  string          `json:"confidence"`
	Powered_By  string          `json:"powered_by"`
}
