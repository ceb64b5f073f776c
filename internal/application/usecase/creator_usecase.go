package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturia/internal/application/dto"
	"github.com/jhoicas/facturia/internal/application/ports"
	"github.com/jhoicas/facturia/internal/application/state"
	"github.com/jhoicas/facturia/internal/domain"
	"github.com/jhoicas/facturia/internal/domain/entity"
	"github.com/jhoicas/facturia/pkg/logger"
)

// defaultGenerateTimeout límite por llamada al generador de borradores.
// Garantiza que el indicador de carga siempre se apaga aunque el servicio
// nunca responda.
const defaultGenerateTimeout = 10 * time.Second

// Campos editables de una línea del borrador.
const (
	FieldDescription = "description"
	FieldQuantity    = "quantity"
	FieldUnitPrice   = "unitPrice"
)

// Draft es el documento en curso, aún sin guardar.
type Draft struct {
	Type       entity.DocumentType
	CustomerID string
	LineItems  []entity.LineItem
}

// CreatorUseCase mantiene el borrador del Document Creator y lo convierte en
// un documento persistido. Las generaciones con IA son single-flight: una
// segunda invocación mientras hay una en vuelo se rechaza, y un resultado que
// llega tras un Reset o un guardado se descarta por token de generación.
type CreatorUseCase struct {
	mu     sync.Mutex // protege draft, loading y genToken
	shell  *state.Shell
	drafts ports.DraftService
	log    *logger.Logger

	draft      Draft
	loading    bool
	genToken   uint64
	genTimeout time.Duration
}

// NewCreatorUseCase construye el caso de uso con un borrador vacío de factura.
func NewCreatorUseCase(shell *state.Shell, drafts ports.DraftService, log *logger.Logger) *CreatorUseCase {
	return &CreatorUseCase{
		shell:      shell,
		drafts:     drafts,
		log:        log,
		draft:      Draft{Type: entity.TypeInvoice},
		genTimeout: defaultGenerateTimeout,
	}
}

// Draft devuelve una copia del borrador actual.
func (uc *CreatorUseCase) Draft() Draft {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.snapshotLocked()
}

// Loading indica si hay una generación con IA en vuelo.
func (uc *CreatorUseCase) Loading() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.loading
}

// SetType cambia el tipo del documento en curso.
func (uc *CreatorUseCase) SetType(t entity.DocumentType) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.draft.Type = t
}

// SetCustomer selecciona el cliente del documento en curso.
func (uc *CreatorUseCase) SetCustomer(id string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.draft.CustomerID = id
}

// SelectDefaultCustomer selecciona el primer cliente de la lista si hay
// clientes y todavía no se eligió ninguno. Conveniencia de una sola vez.
func (uc *CreatorUseCase) SelectDefaultCustomer() {
	customers := uc.shell.Customers()
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.draft.CustomerID == "" && len(customers) > 0 {
		uc.draft.CustomerID = customers[0].ID
	}
}

// AddLineItem agrega una línea vacía (cantidad 1, precio 0) y devuelve su ID.
func (uc *CreatorUseCase) AddLineItem() string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	item := entity.LineItem{
		ID:       uuid.NewString(),
		Quantity: decimal.NewFromInt(1),
	}
	uc.draft.LineItems = append(uc.draft.LineItems, item)
	return item.ID
}

// RemoveLineItem elimina la línea indicada. Un ID desconocido no hace nada.
func (uc *CreatorUseCase) RemoveLineItem(id string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	for i, li := range uc.draft.LineItems {
		if li.ID == id {
			uc.draft.LineItems = append(uc.draft.LineItems[:i], uc.draft.LineItems[i+1:]...)
			return
		}
	}
}

// UpdateLineItem reemplaza únicamente el campo indicado de la línea que
// coincide con id, dejando el ID y el resto de los campos intactos. Un ID
// desconocido no hace nada; un campo desconocido o un valor numérico
// inválido es un error de validación.
func (uc *CreatorUseCase) UpdateLineItem(id, field, value string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	for i := range uc.draft.LineItems {
		if uc.draft.LineItems[i].ID != id {
			continue
		}
		switch field {
		case FieldDescription:
			uc.draft.LineItems[i].Description = value
		case FieldQuantity:
			q, err := decimal.NewFromString(value)
			if err != nil {
				return fmt.Errorf("%w: cantidad %q", domain.ErrInvalidInput, value)
			}
			uc.draft.LineItems[i].Quantity = q
		case FieldUnitPrice:
			p, err := decimal.NewFromString(value)
			if err != nil {
				return fmt.Errorf("%w: precio unitario %q", domain.ErrInvalidInput, value)
			}
			uc.draft.LineItems[i].UnitPrice = p
		default:
			return fmt.Errorf("%w: campo %q", domain.ErrInvalidInput, field)
		}
		return nil
	}
	return nil
}

// GenerateDraft pide al servicio de IA líneas candidatas para el tipo de
// documento actual y, si la llamada tiene éxito, reemplaza las líneas del
// borrador asignando IDs nuevos. Ante cualquier fallo el borrador queda
// intacto y el error se devuelve al caller para mostrarlo al usuario. El
// indicador de carga se apaga siempre, con éxito o sin él.
func (uc *CreatorUseCase) GenerateDraft(ctx context.Context, prompt string) error {
	uc.mu.Lock()
	if uc.loading {
		uc.mu.Unlock()
		return domain.ErrGenerationInFlight
	}
	if strings.TrimSpace(prompt) == "" {
		uc.mu.Unlock()
		return fmt.Errorf("%w: la petición está vacía", domain.ErrInvalidInput)
	}
	uc.loading = true
	uc.genToken++
	token := uc.genToken
	docType := uc.draft.Type
	timeout := uc.genTimeout
	uc.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	items, err := uc.drafts.GenerateLineItems(ctx, docType, prompt)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if token != uc.genToken {
		// El borrador cambió de generación mientras esta llamada estaba en
		// vuelo (Reset o guardado): el resultado ya no aplica.
		uc.log.Debug().Msg("resultado de generación obsoleto descartado")
		return nil
	}
	uc.loading = false
	if err != nil {
		uc.log.Warn().Err(err).Msg("generación de borrador fallida")
		return fmt.Errorf("generación con IA: %w", err)
	}

	lineItems := make([]entity.LineItem, 0, len(items))
	for _, it := range items {
		lineItems = append(lineItems, entity.LineItem{
			ID:          uuid.NewString(),
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	uc.draft.LineItems = lineItems
	uc.log.Info().Int("items", len(lineItems)).Msg("borrador generado con IA")
	return nil
}

// SaveDocument valida el borrador, lo convierte en un documento con ID y
// fecha nuevos, lo agrega a la colección persistida y navega al dashboard.
// Una validación fallida no cambia ningún estado.
func (uc *CreatorUseCase) SaveDocument() (*dto.DocumentResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.draft.CustomerID == "" {
		return nil, fmt.Errorf("%w: seleccione un cliente", domain.ErrInvalidInput)
	}
	if len(uc.draft.LineItems) == 0 {
		return nil, fmt.Errorf("%w: el documento no tiene líneas", domain.ErrInvalidInput)
	}
	if _, ok := uc.shell.CustomerByID(uc.draft.CustomerID); !ok {
		return nil, fmt.Errorf("%w: el cliente seleccionado no existe", domain.ErrInvalidInput)
	}
	seen := make(map[string]struct{}, len(uc.draft.LineItems))
	for _, li := range uc.draft.LineItems {
		if _, dup := seen[li.ID]; dup {
			return nil, fmt.Errorf("%w: línea duplicada %s", domain.ErrInvalidInput, li.ID)
		}
		seen[li.ID] = struct{}{}
	}

	doc := entity.Document{
		ID:         uuid.NewString(),
		CustomerID: uc.draft.CustomerID,
		Type:       uc.draft.Type,
		Date:       time.Now(),
		LineItems:  append([]entity.LineItem(nil), uc.draft.LineItems...),
	}
	uc.shell.AppendDocument(doc)
	uc.log.Info().
		Str("document_id", doc.ID).
		Str("type", string(doc.Type)).
		Msg("documento guardado")

	uc.resetLocked()
	uc.shell.Navigate(state.ViewDashboard)

	return &dto.DocumentResponse{
		ID:         doc.ID,
		CustomerID: doc.CustomerID,
		Type:       string(doc.Type),
		Date:       doc.Date.Format(time.RFC3339),
		Total:      doc.Total().Round(2),
	}, nil
}

// Reset descarta el borrador y cualquier generación pendiente.
func (uc *CreatorUseCase) Reset() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.resetLocked()
}

func (uc *CreatorUseCase) resetLocked() {
	uc.draft = Draft{Type: entity.TypeInvoice}
	uc.loading = false
	uc.genToken++ // invalida resultados de generaciones en vuelo
}

func (uc *CreatorUseCase) snapshotLocked() Draft {
	return Draft{
		Type:       uc.draft.Type,
		CustomerID: uc.draft.CustomerID,
		LineItems:  append([]entity.LineItem(nil), uc.draft.LineItems...),
	}
}
