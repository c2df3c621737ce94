package dispatcher

// Fulfillment is the reply for one turn. The zero value is the empty reply,
// which lets the NLU agent answer with its own configured response.
type Fulfillment struct {
	FulfillmentText string `json:"fulfillmentText,omitempty"`
}

// Text builds a reply carrying s.
func Text(s string) Fulfillment {
	return Fulfillment{FulfillmentText: s}
}

// Empty builds the empty reply.
func Empty() Fulfillment {
	return Fulfillment{}
}

// IsEmpty reports whether the reply carries no text.
func (f Fulfillment) IsEmpty() bool {
	return f.FulfillmentText == ""
}
