package dto

import "github.com/shopspring/decimal"

// DocumentRow una fila del dashboard: documento resuelto y listo para mostrar.
type DocumentRow struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customerName"`
	Date         string          `json:"date"`  // formato 02/01/2006
	Total        decimal.Decimal `json:"total"` // redondeado a 2 decimales
}

// DashboardSummary particiona la colección de documentos por tipo.
// La unión de ambas particiones es exactamente la colección original,
// en el mismo orden de inserción.
type DashboardSummary struct {
	Invoices   []DocumentRow `json:"invoices"`
	Quotations []DocumentRow `json:"quotations"`
}
