package models

// EvidenceItem is a tracked evidence request owned by a case. An empty
// dateReceived means the request is still outstanding.
type EvidenceItem struct {
	ID            string `json:"id" bson:"id"`
	Description   string `json:"description" bson:"description"`
	DateRequested string `json:"dateRequested" bson:"dateRequested"` // YYYY-MM-DD
	RequestedFrom string `json:"requestedFrom,omitempty" bson:"requestedFrom,omitempty"`
	DateReceived  string `json:"dateReceived,omitempty" bson:"dateReceived,omitempty"`
	Notes         string `json:"notes,omitempty" bson:"notes,omitempty"`
}
