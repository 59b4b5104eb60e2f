package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/bin-inventory-api/internal/application/dto"
	"github.com/jhoicas/bin-inventory-api/internal/application/scan"
	"github.com/jhoicas/bin-inventory-api/internal/domain"
	"github.com/jhoicas/bin-inventory-api/internal/domain/binstock"
	"github.com/jhoicas/bin-inventory-api/internal/domain/repository"
)

var _ scan.StatusLookup = (*StatusUseCase)(nil)

// StatusUseCase consultas de estado de stock: estado base para las sesiones de escaneo
// e historial de movimientos.
type StatusUseCase struct {
	materialRepo repository.MaterialRepository
	movementRepo repository.StockMovementRepository
}

// NewStatusUseCase construye el caso de uso.
func NewStatusUseCase(materialRepo repository.MaterialRepository, movementRepo repository.StockMovementRepository) *StatusUseCase {
	return &StatusUseCase{materialRepo: materialRepo, movementRepo: movementRepo}
}

// Status implementa scan.StatusLookup.
func (uc *StatusUseCase) Status(ctx context.Context, materialCode string) (binstock.MaterialStockState, error) {
	code := strings.TrimSpace(materialCode)
	if code == "" {
		return binstock.MaterialStockState{}, binstock.ErrEmptyIdentifier
	}
	m, err := uc.materialRepo.GetByCode(ctx, code)
	if err != nil {
		return binstock.MaterialStockState{}, fmt.Errorf("consultar material %s: %w", code, err)
	}
	if m == nil {
		return binstock.MaterialStockState{}, fmt.Errorf("%s: %w", code, binstock.ErrMaterialNotFound)
	}
	return m.StockState(), nil
}

// GetStatus respuesta de GET /api/materials/status?code=.
func (uc *StatusUseCase) GetStatus(ctx context.Context, materialCode string) (*dto.MaterialStatusResponse, error) {
	st, err := uc.Status(ctx, materialCode)
	if err != nil {
		return nil, err
	}
	return &dto.MaterialStatusResponse{
		PackQuantity:    st.PackQuantity,
		MaxBinQty:       st.MaxBinQty,
		MinBinQty:       st.MinBinQty,
		CurrentQuantity: st.CurrentQuantity,
	}, nil
}

// Movements historial de movimientos de un material, más recientes primero.
func (uc *StatusUseCase) Movements(ctx context.Context, materialID string, page dto.PageRequest) ([]dto.StockMovementResponse, error) {
	page.DefaultPage()
	m, err := uc.materialRepo.GetByID(ctx, materialID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.movementRepo.ListByMaterial(ctx, materialID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(list), nil
}

// Batch movimientos registrados en un guardado.
func (uc *StatusUseCase) Batch(ctx context.Context, batchID string) ([]dto.StockMovementResponse, error) {
	list, err := uc.movementRepo.ListByBatch(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, domain.ErrNotFound
	}
	return toMovementResponses(list), nil
}
