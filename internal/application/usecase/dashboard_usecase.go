package usecase

import (
	"github.com/jhoicas/facturia/internal/application/dto"
	"github.com/jhoicas/facturia/internal/application/state"
	"github.com/jhoicas/facturia/internal/domain/entity"
	"github.com/jhoicas/facturia/pkg/logger"
)

// dashboardDateLayout formato de fecha mostrado en el dashboard.
const dashboardDateLayout = "02/01/2006"

// DashboardUseCase componente de solo lectura: deriva el resumen del
// dashboard a partir de las colecciones, sin capacidad de mutación.
type DashboardUseCase struct {
	shell *state.Shell
	log   *logger.Logger
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(shell *state.Shell, log *logger.Logger) *DashboardUseCase {
	return &DashboardUseCase{shell: shell, log: log}
}

// Summary particiona los documentos por tipo preservando el orden de
// inserción, resuelve el nombre del cliente de cada documento (centinela
// "Unknown" si la referencia quedó colgante) y deriva el total por documento.
func (uc *DashboardUseCase) Summary() dto.DashboardSummary {
	documents := uc.shell.Documents()
	customers := uc.shell.Customers()

	namesByID := make(map[string]string, len(customers))
	for _, c := range customers {
		namesByID[c.ID] = c.Name
	}

	summary := dto.DashboardSummary{
		Invoices:   []dto.DocumentRow{},
		Quotations: []dto.DocumentRow{},
	}
	for _, d := range documents {
		name, ok := namesByID[d.CustomerID]
		if !ok {
			name = entity.UnknownCustomerName
		}
		row := dto.DocumentRow{
			ID:           d.ID,
			CustomerName: name,
			Date:         d.Date.Format(dashboardDateLayout),
			Total:        d.Total().Round(2),
		}
		switch d.Type {
		case entity.TypeInvoice:
			summary.Invoices = append(summary.Invoices, row)
		case entity.TypeQuotation:
			summary.Quotations = append(summary.Quotations, row)
		default:
			// Un tipo no reconocido solo puede venir de datos persistidos
			// viejos o corruptos: no se clasifica a ciegas.
			uc.log.Warn().
				Str("document_id", d.ID).
				Str("type", string(d.Type)).
				Msg("documento con tipo desconocido omitido del dashboard")
		}
	}
	return summary
}
