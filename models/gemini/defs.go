package gemini

// Wire types for the generateContent REST endpoint.

type Gemini_Request_Body struct {
	Contents []Gemini_Content `json:"contents"`
}

type Gemini_Content struct {
	Role  string        `json:"role,omitempty"`
	Parts []Gemini_Part `json:"parts"`
}

type Gemini_Part struct {
	Text string `json:"text"`
}

type Gemini_Response struct {
	Candidates []Candidate `json:"candidates"`
	Error      *APIError   `json:"error,omitempty"`
}

type Candidate struct {
	Content      Gemini_Content `json:"content"`
	FinishReason string         `json:"finishReason,omitempty"`
}

type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}
