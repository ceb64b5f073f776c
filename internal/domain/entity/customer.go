package entity

import "time"

// UnknownCustomerName es el nombre centinela que se muestra cuando un documento
// referencia a un cliente que ya no existe en la colección.
const UnknownCustomerName = "Unknown"

// Customer representa un cliente al que se le factura o cotiza.
// Inmutable una vez creado; la colección de clientes es append-only.
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
