package usecase

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jhoicas/facturia/internal/application/dto"
	"github.com/jhoicas/facturia/internal/application/state"
	"github.com/jhoicas/facturia/internal/domain"
	"github.com/jhoicas/facturia/internal/domain/entity"
	"github.com/jhoicas/facturia/pkg/logger"
)

// CustomerUseCase casos de uso para la gestión de clientes.
type CustomerUseCase struct {
	shell    *state.Shell
	validate *validator.Validate
	log      *logger.Logger
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(shell *state.Shell, log *logger.Logger) *CustomerUseCase {
	return &CustomerUseCase{
		shell:    shell,
		validate: validator.New(),
		log:      log,
	}
}

// Add valida los campos obligatorios (nombre y email), crea el cliente con un
// ID nuevo y lo agrega a la colección persistida. Una validación fallida
// aborta la operación sin cambio de estado.
func (uc *CustomerUseCase) Add(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	customer := entity.Customer{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Address:   in.Address,
		CreatedAt: time.Now(),
	}
	uc.shell.AppendCustomer(customer)
	uc.log.Info().Str("customer_id", customer.ID).Msg("cliente creado")
	return &dto.CustomerResponse{
		ID:      customer.ID,
		Name:    customer.Name,
		Email:   customer.Email,
		Address: customer.Address,
	}, nil
}

// List devuelve los clientes en orden de inserción.
func (uc *CustomerUseCase) List() []dto.CustomerResponse {
	customers := uc.shell.Customers()
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, dto.CustomerResponse{
			ID:      c.ID,
			Name:    c.Name,
			Email:   c.Email,
			Address: c.Address,
		})
	}
	return out
}

// Delete elimina un cliente siempre que ningún documento lo referencie.
// Mantener la integridad referencial aquí evita referencias colgantes en
// documentos ya guardados.
func (uc *CustomerUseCase) Delete(id string) error {
	if _, ok := uc.shell.CustomerByID(id); !ok {
		return domain.ErrNotFound
	}
	if uc.shell.CustomerReferenced(id) {
		return domain.ErrCustomerReferenced
	}
	uc.shell.RemoveCustomer(id)
	uc.log.Info().Str("customer_id", id).Msg("cliente eliminado")
	return nil
}
