package state_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturia/internal/application/state"
	"github.com/jhoicas/facturia/internal/domain/entity"
	"github.com/jhoicas/facturia/pkg/logger"
)

// memKV almacén en memoria para los tests del shell.
type memKV struct {
	data map[string]string
}

func newMemKV() *memKV { return &memKV{data: map[string]string{}} }

func (m *memKV) Get(key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Set(key, value string) error {
	m.data[key] = value
	return nil
}

func TestNewShell_AlmacenVacioInicializaColeccionesVacias(t *testing.T) {
	shell := state.NewShell(newMemKV(), logger.Nop())

	assert.Empty(t, shell.Customers())
	assert.Empty(t, shell.Documents())
	assert.Equal(t, state.ViewDashboard, shell.ActiveView(), "la vista inicial es el dashboard")
}

func TestNewShell_ValorCorruptoDegradaAVacio(t *testing.T) {
	kv := newMemKV()
	kv.data["customers"] = "{{{corrupto"

	shell := state.NewShell(kv, logger.Nop())

	assert.Empty(t, shell.Customers(), "un valor corrupto degrada a colección vacía, nunca a error")
}

func TestShell_MutacionesPersistenWriteThrough(t *testing.T) {
	kv := newMemKV()
	shell := state.NewShell(kv, logger.Nop())

	shell.AppendCustomer(entity.Customer{ID: "c1", Name: "Acme", Email: "a@b.com", CreatedAt: time.Now()})
	shell.AppendDocument(entity.Document{
		ID:         "d1",
		CustomerID: "c1",
		Type:       entity.TypeInvoice,
		Date:       time.Now(),
		LineItems: []entity.LineItem{
			{ID: "li1", Description: "X", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100)},
		},
	})

	// Las dos claves quedan escritas con los nombres de campo del formato
	// persistido original.
	require.Contains(t, kv.data, "customers")
	require.Contains(t, kv.data, "documents")
	assert.Contains(t, kv.data["documents"], `"customerId":"c1"`)
	assert.Contains(t, kv.data["documents"], `"lineItems"`)
	assert.Contains(t, kv.data["documents"], `"unitPrice"`)

	// Un shell nuevo sobre el mismo almacén recarga el estado completo.
	reloaded := state.NewShell(kv, logger.Nop())
	require.Len(t, reloaded.Customers(), 1)
	require.Len(t, reloaded.Documents(), 1)
	assert.Equal(t, "Acme", reloaded.Customers()[0].Name)
}

func TestShell_Navigate(t *testing.T) {
	shell := state.NewShell(newMemKV(), logger.Nop())
	shell.Navigate(state.ViewCreator)
	assert.Equal(t, state.ViewCreator, shell.ActiveView())
}

func TestShell_CustomerReferenced(t *testing.T) {
	shell := state.NewShell(newMemKV(), logger.Nop())
	shell.AppendCustomer(entity.Customer{ID: "c1", Name: "Acme", Email: "a@b.com"})
	shell.AppendDocument(entity.Document{ID: "d1", CustomerID: "c1", Type: entity.TypeQuotation, Date: time.Now()})

	assert.True(t, shell.CustomerReferenced("c1"))
	assert.False(t, shell.CustomerReferenced("c2"))
}

func TestShell_RemoveCustomer(t *testing.T) {
	shell := state.NewShell(newMemKV(), logger.Nop())
	shell.AppendCustomer(entity.Customer{ID: "c1", Name: "Acme", Email: "a@b.com"})

	assert.True(t, shell.RemoveCustomer("c1"))
	assert.False(t, shell.RemoveCustomer("c1"), "eliminar dos veces devuelve false")
	assert.Empty(t, shell.Customers())
}
