package ports

import (
	"context"

	"github.com/jhoicas/facturia/internal/application/dto"
	"github.com/jhoicas/facturia/internal/domain/entity"
)

// DraftService define el puerto de salida hacia el servicio de generación
// estructurada con IA. Cualquier adaptador (Gemini, OpenAI, mock) debe
// implementar esta interfaz; la capa de aplicación solo conoce este contrato.
type DraftService interface {
	// GenerateLineItems convierte una petición en texto libre en una lista de
	// líneas candidatas para un documento del tipo indicado. Cualquier
	// desviación del esquema esperado es un error; nunca devuelve una lista
	// vacía con error nil. El contexto debe llevar un timeout para evitar
	// bloqueos en la llamada externa.
	GenerateLineItems(ctx context.Context, docType entity.DocumentType, prompt string) ([]dto.DraftLineItem, error)
}
