package inventory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/bin-inventory-api/internal/application/dto"
	"github.com/jhoicas/bin-inventory-api/internal/domain"
	"github.com/jhoicas/bin-inventory-api/internal/domain/binstock"
	"github.com/jhoicas/bin-inventory-api/internal/domain/entity"
	"github.com/jhoicas/bin-inventory-api/internal/domain/repository"
	"github.com/jhoicas/bin-inventory-api/pkg/logger"
)

// TokenResult resultado de aplicar un token "{code}_{IN|OUT}".
type TokenResult struct {
	Token  string
	Code   binstock.ScanCode
	Before int
	After  int
	Status binstock.Status
	Err    error
}

// CommitError guardado rechazado: se hizo Rollback y ningún token se aplicó.
type CommitError struct {
	Results []TokenResult
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("guardado rechazado: %d de %d tokens con error", e.Failed(), len(e.Results))
}

// Failed cantidad de tokens con error.
func (e *CommitError) Failed() int {
	n := 0
	for _, r := range e.Results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

// Unwrap expone los errores por token para errors.Is.
func (e *CommitError) Unwrap() []error {
	var errs []error
	for _, r := range e.Results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errs
}

// CommitResult guardado aplicado.
type CommitResult struct {
	BatchID string
	Results []TokenResult
}

// ScanCommitUseCase aplica un lote de tokens de escaneo en una sola transacción.
// Cada material se bloquea (SELECT FOR UPDATE) la primera vez que aparece en el lote y
// los tokens siguientes del mismo material parten de la cantidad que dejó el anterior.
type ScanCommitUseCase struct {
	txRunner TxRunner
	log      *logger.Logger
	now      func() time.Time
}

// NewScanCommitUseCase construye el caso de uso.
func NewScanCommitUseCase(txRunner TxRunner, log *logger.Logger) *ScanCommitUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ScanCommitUseCase{txRunner: txRunner, log: log, now: time.Now}
}

type lockedMaterial struct {
	material *entity.Material
	state    binstock.MaterialStockState
}

// Commit valida y aplica tokens canónicos. Un token sin sufijo se rechaza: la inferencia
// solo existe en la sesión de escaneo, al servidor llega el movimiento ya decidido.
func (uc *ScanCommitUseCase) Commit(ctx context.Context, tokens []string, userID string) (*CommitResult, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: lista de escaneos vacía", domain.ErrInvalidInput)
	}

	results := make([]TokenResult, len(tokens))
	parseFailed := false
	for i, tok := range tokens {
		results[i].Token = tok
		code, err := binstock.ParseScan(tok)
		if err == nil && !code.Explicit() {
			err = binstock.ErrMalformedSuffix
		}
		if err != nil {
			results[i].Err = err
			parseFailed = true
			continue
		}
		results[i].Code = code
		results[i].Token = code.Token()
	}
	if parseFailed {
		return nil, &CommitError{Results: results}
	}

	batchID := uuid.New().String()
	now := uc.now()

	err := uc.txRunner.Run(ctx, func(materialRepo repository.MaterialRepository, movementRepo repository.StockMovementRepository) error {
		// Bloqueo en orden de código: dos lotes concurrentes toman las filas en el mismo orden.
		locked := make(map[string]*lockedMaterial)
		var order []*lockedMaterial
		for _, ident := range lockOrder(results) {
			m, err := materialRepo.GetByCodeForUpdate(ctx, ident)
			if err != nil {
				return fmt.Errorf("bloquear material %s: %w", ident, err)
			}
			if m == nil {
				continue
			}
			lm := &lockedMaterial{material: m, state: m.StockState()}
			locked[ident] = lm
			order = append(order, lm)
		}

		failed := false
		for i := range results {
			r := &results[i]
			lm, ok := locked[r.Code.Identifier]
			if !ok {
				r.Err = binstock.ErrMaterialNotFound
				failed = true
				continue
			}

			res := binstock.ResolveCode(r.Code, lm.state)
			r.Before = lm.state.CurrentQuantity
			r.After = res.Preview.CurrentQuantity
			r.Status = binstock.Classify(res.Preview.BinConfiguration, r.After).Status
			lm.state = res.Preview
			if res.Err != nil {
				r.Err = res.Err
				failed = true
				continue
			}

			mov := &entity.StockMovement{
				ID:             uuid.New().String(),
				BatchID:        batchID,
				MaterialID:     lm.material.ID,
				MaterialCode:   lm.material.Code,
				Type:           string(res.Movement),
				Quantity:       r.After - r.Before,
				QuantityBefore: r.Before,
				QuantityAfter:  r.After,
				FillRatio:      binstock.Classify(res.Preview.BinConfiguration, r.After).FillRatio(),
				CreatedAt:      now,
				CreatedBy:      userID,
			}
			if err := movementRepo.Create(ctx, mov); err != nil {
				return fmt.Errorf("registrar movimiento %s: %w", r.Token, err)
			}
		}
		if failed {
			return &CommitError{Results: results}
		}

		for _, lm := range order {
			if err := materialRepo.UpdateQuantity(ctx, lm.material.ID, lm.state.CurrentQuantity); err != nil {
				return fmt.Errorf("actualizar cantidad %s: %w", lm.material.Code, err)
			}
		}
		return nil
	})

	var cerr *CommitError
	switch {
	case errors.As(err, &cerr):
		uc.log.Warn().Str("batch_id", batchID).Int("tokens", len(tokens)).Int("failed", cerr.Failed()).
			Msg("guardado de escaneos rechazado")
		return nil, cerr
	case err != nil:
		uc.log.Error().Err(err).Str("batch_id", batchID).Msg("guardado de escaneos fallido")
		return nil, err
	}

	uc.log.Info().Str("batch_id", batchID).Int("tokens", len(tokens)).Str("user_id", userID).
		Msg("escaneos guardados")
	return &CommitResult{BatchID: batchID, Results: results}, nil
}

// lockOrder identificadores distintos del lote, ordenados.
func lockOrder(results []TokenResult) []string {
	seen := make(map[string]bool, len(results))
	idents := make([]string, 0, len(results))
	for _, r := range results {
		if !seen[r.Code.Identifier] {
			seen[r.Code.Identifier] = true
			idents = append(idents, r.Code.Identifier)
		}
	}
	sort.Strings(idents)
	return idents
}

// ToScanResults vista HTTP de los resultados por token.
func ToScanResults(results []TokenResult) []dto.ScanResultDTO {
	out := make([]dto.ScanResultDTO, 0, len(results))
	for _, r := range results {
		item := dto.ScanResultDTO{
			Token:    r.Token,
			Material: r.Code.Identifier,
			Movement: string(r.Code.Movement),
			Before:   r.Before,
			Quantity: r.After,
		}
		if r.Status != "" {
			item.Remark = r.Status.Remark()
		}
		if r.Err != nil {
			item.Error = r.Err.Error()
		}
		out = append(out, item)
	}
	return out
}

func toMovementResponses(list []*entity.StockMovement) []dto.StockMovementResponse {
	out := make([]dto.StockMovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.StockMovementResponse{
			ID:             m.ID,
			BatchID:        m.BatchID,
			MaterialCode:   m.MaterialCode,
			Type:           m.Type,
			Quantity:       m.Quantity,
			QuantityBefore: m.QuantityBefore,
			QuantityAfter:  m.QuantityAfter,
			FillRatio:      m.FillRatio,
			CreatedBy:      m.CreatedBy,
			CreatedAt:      m.CreatedAt,
		})
	}
	return out
}
