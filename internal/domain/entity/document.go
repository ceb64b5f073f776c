package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentType tipo de documento comercial.
type DocumentType string

const (
	TypeInvoice   DocumentType = "Invoice"
	TypeQuotation DocumentType = "Quotation"
)

// LineItem es una línea facturable dentro de un documento.
// El ID es único dentro del documento que la contiene.
type LineItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// LineTotal devuelve cantidad × precio unitario.
func (li LineItem) LineTotal() decimal.Decimal {
	return li.Quantity.Mul(li.UnitPrice)
}

// Document representa una factura o cotización ya guardada.
// Inmutable después de guardarse; el orden de las líneas se preserva tal como
// fueron insertadas porque es relevante para la presentación.
type Document struct {
	ID         string       `json:"id"`
	CustomerID string       `json:"customerId"`
	Type       DocumentType `json:"type"`
	Date       time.Time    `json:"date"`
	LineItems  []LineItem   `json:"lineItems"`
}

// Total suma los totales de línea. Se deriva en cada llamada, nunca se
// almacena, así el documento persistido no puede quedar desincronizado de
// sus líneas.
func (d Document) Total() decimal.Decimal {
	total := decimal.Zero
	for _, li := range d.LineItems {
		total = total.Add(li.LineTotal())
	}
	return total
}
