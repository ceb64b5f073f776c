package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturia/internal/application/dto"
	"github.com/jhoicas/facturia/internal/application/state"
	"github.com/jhoicas/facturia/internal/application/usecase"
	"github.com/jhoicas/facturia/internal/domain/entity"
	"github.com/jhoicas/facturia/pkg/logger"
)

// memKV almacén en memoria para los tests de casos de uso.
type memKV struct {
	data map[string]string
}

func newMemKV() *memKV { return &memKV{data: map[string]string{}} }

func (m *memKV) Get(key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Set(key, value string) error {
	m.data[key] = value
	return nil
}

// draftServiceFunc adaptador función → ports.DraftService.
type draftServiceFunc func(ctx context.Context, docType entity.DocumentType, prompt string) ([]dto.DraftLineItem, error)

func (f draftServiceFunc) GenerateLineItems(ctx context.Context, docType entity.DocumentType, prompt string) ([]dto.DraftLineItem, error) {
	return f(ctx, docType, prompt)
}

// blockingDraftService se queda esperando en release para poder observar el
// estado del caso de uso con una generación en vuelo.
type blockingDraftService struct {
	started chan struct{}
	release chan struct{}
	items   []dto.DraftLineItem
	err     error
}

func newBlockingDraftService(items []dto.DraftLineItem, err error) *blockingDraftService {
	return &blockingDraftService{
		started: make(chan struct{}),
		release: make(chan struct{}),
		items:   items,
		err:     err,
	}
}

func (b *blockingDraftService) GenerateLineItems(ctx context.Context, _ entity.DocumentType, _ string) ([]dto.DraftLineItem, error) {
	close(b.started)
	select {
	case <-b.release:
		return b.items, b.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// ── constructores de fixtures ─────────────────────────────────────────────────

func newTestShell(t *testing.T) *state.Shell {
	t.Helper()
	return state.NewShell(newMemKV(), logger.Nop())
}

func addCustomer(t *testing.T, uc *usecase.CustomerUseCase, name, email string) dto.CustomerResponse {
	t.Helper()
	c, err := uc.Add(dto.CreateCustomerRequest{Name: name, Email: email})
	require.NoError(t, err)
	return *c
}

func sampleDraftItems() []dto.DraftLineItem {
	return []dto.DraftLineItem{
		{Description: "Design", Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(50)},
		{Description: "Hosting", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(120)},
	}
}
