package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Job represents a production work order (folha de obra) for data transfer
// between layers. The engine only reads jobs; it never creates or mutates them.
type Job struct {
	ID           uuid.UUID        `json:"id"`
	NumeroFO     string           `json:"numero_fo"`
	NumeroORC    *string          `json:"numero_orc,omitempty"`
	NomeCampanha string           `json:"nome_campanha"`
	Cliente      string           `json:"cliente"`
	IDCliente    *string          `json:"id_cliente,omitempty"`
	CustomerID   *int64           `json:"customer_id,omitempty"`
	Prioridade   bool             `json:"prioridade"`
	Pendente     bool             `json:"pendente"`
	Notas        *string          `json:"notas,omitempty"`
	DataIn       *time.Time       `json:"data_in,omitempty"`
	EuroTotal    *decimal.Decimal `json:"euro_tota,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}
