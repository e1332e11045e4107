package producao

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imxdigital/producao-tracker/internal/entity"
)

func TestResolveClientes(t *testing.T) {
	options := []entity.ClienteOption{
		{Value: "42", Label: "Tipografia Norte"},
		{Value: "43", Label: "Litografia Sul"},
		{Value: "44", Label: "Litografia Sul"}, // duplicate label, first wins
	}

	id42 := int64(42)
	id99 := int64(99)
	byID := &entity.Job{CustomerID: &id42, Cliente: "norte lda"}
	byLabel := &entity.Job{Cliente: "Litografia Sul"}
	unknownID := &entity.Job{CustomerID: &id99, Cliente: "Cliente Desconhecido"}
	unmatched := &entity.Job{Cliente: "Gráfica Avulsa"}
	empty := &entity.Job{}

	ResolveClientes([]*entity.Job{byID, byLabel, unknownID, unmatched, empty}, options)

	assert.Equal(t, "Tipografia Norte", byID.Cliente)
	require.NotNil(t, byID.IDCliente)
	assert.Equal(t, "42", *byID.IDCliente)

	assert.Equal(t, "Litografia Sul", byLabel.Cliente)
	require.NotNil(t, byLabel.IDCliente)
	assert.Equal(t, "43", *byLabel.IDCliente, "first directory entry wins on duplicate labels")

	assert.Equal(t, "Cliente Desconhecido", unknownID.Cliente, "unknown id keeps the raw name")
	assert.Nil(t, unknownID.IDCliente, "an id miss never falls back to the label")

	assert.Equal(t, "Gráfica Avulsa", unmatched.Cliente)
	assert.Nil(t, unmatched.IDCliente)

	assert.Empty(t, empty.Cliente)
	assert.Nil(t, empty.IDCliente)
}

func TestResolveClientesEmptyDirectory(t *testing.T) {
	job := &entity.Job{Cliente: "Tipografia Norte"}
	ResolveClientes([]*entity.Job{job}, nil)
	assert.Equal(t, "Tipografia Norte", job.Cliente)
	assert.Nil(t, job.IDCliente)
}
