package chi

// chatMessage is one conversation turn on the wire.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the body of POST /api/chat.
type chatRequest struct {
	Messages    []chatMessage `json:"messages"`
	RequestType string        `json:"requestType,omitempty"`
}

// footnoteItem is a reference lifted out of the answer text.
type footnoteItem struct {
	Number    int    `json:"number"`
	Reference string `json:"reference"`
	Note      string `json:"note,omitempty"`
}

// chatResponse is the body of a successful POST /api/chat.
type chatResponse struct {
	Content        string         `json:"content"`
	Type           string         `json:"type"`
	HasMoreDetails bool           `json:"hasMoreDetails"`
	Footnotes      []footnoteItem `json:"footnotes,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// failureResponse is the 500 body. It still carries a displayable answer.
type failureResponse struct {
	Error   string `json:"error"`
	Content string `json:"content"`
	Type    string `json:"type"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
