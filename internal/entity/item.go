package entity

import "github.com/google/uuid"

// Item is a line item belonging to a job. A job with zero items is still a
// valid job.
type Item struct {
	ID          uuid.UUID `json:"id"`
	FolhaObraID uuid.UUID `json:"folha_obra_id"`
	Descricao   string    `json:"descricao"`
	Codigo      string    `json:"codigo"`
	Quantidade  *int64    `json:"quantidade,omitempty"`
}
