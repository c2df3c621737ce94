package http

// WebhookRequest is the part of the NLU platform's webhook payload the
// assistant reads.
type WebhookRequest struct {
	ResponseID  string      `json:"responseId"`
	Session     string      `json:"session"`
	QueryResult QueryResult `json:"queryResult"`
}

// QueryResult describes the classified user turn.
type QueryResult struct {
	QueryText      string          `json:"queryText"`
	Action         string          `json:"action"`
	Parameters     map[string]any  `json:"parameters"`
	Intent         Intent          `json:"intent"`
	OutputContexts []OutputContext `json:"outputContexts"`
}

// Intent identifies the matched intent.
type Intent struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

// OutputContext is an active conversation context. Its name carries the
// session id.
type OutputContext struct {
	Name          string         `json:"name"`
	LifespanCount int            `json:"lifespanCount"`
	Parameters    map[string]any `json:"parameters"`
}

// Error is the body of every non-200 response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
