package entity

import "github.com/google/uuid"

// LogisticsEntry is a delivery record belonging to an item. A job counts as
// completed only when every item has at least one entry and every entry is
// concluido.
type LogisticsEntry struct {
	ID        uuid.UUID `json:"id"`
	ItemID    uuid.UUID `json:"item_id"`
	Concluido bool      `json:"concluido"`
}
