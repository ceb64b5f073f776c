package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest datos para registrar un cliente nuevo.
type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address"`
}

// CustomerResponse proyección de un cliente hacia la capa de presentación.
type CustomerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address,omitempty"`
}

// DraftLineItem es una línea candidata devuelta por el generador de borradores
// con IA. No lleva ID: el caso de uso asigna uno nuevo al aplicarla al borrador.
type DraftLineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// DocumentResponse proyección de un documento recién guardado.
type DocumentResponse struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customerId"`
	Type       string          `json:"type"`
	Date       string          `json:"date"`
	Total      decimal.Decimal `json:"total"`
}
