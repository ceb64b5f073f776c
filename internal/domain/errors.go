package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrCustomerReferenced = errors.New("el cliente tiene documentos asociados")
	ErrGenerationInFlight = errors.New("ya hay una generación con IA en curso")
)
