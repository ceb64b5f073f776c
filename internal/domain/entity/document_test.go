package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/facturia/internal/domain/entity"
)

func TestLineTotal_CantidadPorPrecio(t *testing.T) {
	li := entity.LineItem{
		ID:        "li-1",
		Quantity:  decimal.NewFromInt(3),
		UnitPrice: decimal.NewFromInt(40),
	}
	assert.True(t, li.LineTotal().Equal(decimal.NewFromInt(120)),
		"el total de línea debe ser cantidad × precio unitario")
}

func TestLineTotal_CantidadCero(t *testing.T) {
	li := entity.LineItem{Quantity: decimal.Zero, UnitPrice: decimal.NewFromInt(99)}
	assert.True(t, li.LineTotal().IsZero(), "cantidad 0 debe dar total 0")
}

func TestLineTotal_PrecioCero(t *testing.T) {
	li := entity.LineItem{Quantity: decimal.NewFromInt(7), UnitPrice: decimal.Zero}
	assert.True(t, li.LineTotal().IsZero(), "precio 0 debe dar total 0")
}

// Las cantidades fraccionarias no deben introducir deriva de coma flotante:
// 2.5 × 10 = 25 exacto.
func TestLineTotal_CantidadFraccionaria(t *testing.T) {
	li := entity.LineItem{
		Quantity:  decimal.RequireFromString("2.5"),
		UnitPrice: decimal.NewFromInt(10),
	}
	assert.True(t, li.LineTotal().Equal(decimal.NewFromInt(25)),
		"2.5 × 10 debe ser exactamente 25")
}

func TestDocumentTotal_SumaDeLineas(t *testing.T) {
	doc := entity.Document{
		ID:         "doc-1",
		CustomerID: "c1",
		Type:       entity.TypeInvoice,
		Date:       time.Now(),
		LineItems: []entity.LineItem{
			{ID: "a", Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(50)},
			{ID: "b", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(120)},
		},
	}
	assert.True(t, doc.Total().Equal(decimal.NewFromInt(620)),
		"el total del documento debe ser la suma de los totales de línea")
}

// Un documento sin líneas no puede guardarse, pero construido directamente
// su total derivado es 0.
func TestDocumentTotal_SinLineas(t *testing.T) {
	doc := entity.Document{ID: "doc-vacio", Type: entity.TypeQuotation}
	assert.True(t, doc.Total().IsZero(), "un documento sin líneas tiene total 0")
}
