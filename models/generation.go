package models

// Message is one role-tagged turn for chat-completion style transports.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Generation_Request is the composed outbound request handed to a
// generation transport. Prompt serves single-turn transports; Messages
// serves chat-completion transports. Both are always populated so any
// transport can pick the shape it speaks.
type Generation_Request struct {
	Prompt   string
	Messages []Message
}
