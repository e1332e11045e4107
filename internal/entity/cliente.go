package entity

// ClienteOption is one entry of the customer directory snapshot used for name
// resolution. The directory is refreshed by a collaborator; this engine only
// reads it.
type ClienteOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
