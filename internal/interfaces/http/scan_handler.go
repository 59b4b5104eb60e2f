package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/bin-inventory-api/internal/application/dto"
	"github.com/jhoicas/bin-inventory-api/internal/application/inventory"
	"github.com/jhoicas/bin-inventory-api/internal/application/scan"
	"github.com/jhoicas/bin-inventory-api/internal/domain/binstock"
	"github.com/jhoicas/bin-inventory-api/pkg/logger"
)

// ScanCommitter guardado atómico de tokens (inventory.ScanCommitUseCase).
type ScanCommitter interface {
	Commit(ctx context.Context, tokens []string, userID string) (*inventory.CommitResult, error)
}

// ScanHandler escaneo de bins: guardado directo, vista previa y sesiones con estado.
type ScanHandler struct {
	store  *scan.SessionStore
	commit ScanCommitter
	status StatusService
	log    *logger.Logger
}

// NewScanHandler construye el handler.
func NewScanHandler(store *scan.SessionStore, commit ScanCommitter, status StatusService, log *logger.Logger) *ScanHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &ScanHandler{store: store, commit: commit, status: status, log: log}
}

// ── Guardado y vista previa ─────────────────────────────────────────────────

// Commit godoc
// @Summary      Guardar escaneos (todo o nada)
// @Description  Recibe tokens canónicos "{code}_IN" / "{code}_OUT". Si algún token falla no se aplica ninguno.
// @Tags         scan
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  []string  true  "Tokens de escaneo"
// @Success      201   {object}  dto.ScanCommitResponse
// @Failure      400   {object}  dto.ScanCommitErrorResponse
// @Failure      409   {object}  dto.ScanCommitErrorResponse
// @Router       /api/materials/scan/auto [post]
func (h *ScanHandler) Commit(c *fiber.Ctx) error {
	var tokens []string
	if err := c.BodyParser(&tokens); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "se espera un arreglo de tokens"})
	}
	return h.commitTokens(c, tokens)
}

func (h *ScanHandler) commitTokens(c *fiber.Ctx, tokens []string) error {
	out, err := h.commit.Commit(c.UserContext(), tokens, actor(c))
	if err != nil {
		return writeCommitError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toCommitResponse(out))
}

// Preview godoc
// @Summary      Vista previa de escaneos
// @Description  Resuelve los códigos en orden como lo haría una sesión, sin guardar nada.
// @Tags         scan
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScanPreviewRequest  true  "Códigos escaneados"
// @Success      200   {object}  dto.ScanSessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/materials/scan/preview [post]
func (h *ScanHandler) Preview(c *fiber.Ctx) error {
	var in dto.ScanPreviewRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.Codes) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "codes es requerido"})
	}
	s := h.store.Transient()
	first := s.Entries()[0].ID
	_ = s.UpdateRawCode(first, in.Codes[0])
	for _, code := range in.Codes[1:] {
		s.Append(code)
	}
	s.ResolveAll(c.UserContext())
	return c.JSON(toSessionResponse("", s))
}

// Batch godoc
// @Summary      Movimientos de un guardado
// @Tags         scan
// @Security     Bearer
// @Produce      json
// @Param        batchId  path  string  true  "ID del lote"
// @Success      200  {array}   dto.StockMovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materials/scan/batches/{batchId} [get]
func (h *ScanHandler) Batch(c *fiber.Ctx) error {
	id := c.Params("batchId")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "batchId es requerido"})
	}
	out, err := h.status.Batch(c.UserContext(), id)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// ── Sesiones ────────────────────────────────────────────────────────────────

// CreateSession godoc
// @Summary      Abrir sesión de escaneo
// @Tags         scan-sessions
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.ScanSessionResponse
// @Router       /api/scan-sessions [post]
func (h *ScanHandler) CreateSession(c *fiber.Ctx) error {
	id, s := h.store.Create()
	h.log.Debug().Str("session_id", id.String()).Str("user", actor(c)).Msg("sesión de escaneo abierta")
	return c.Status(fiber.StatusCreated).JSON(toSessionResponse(id.String(), s))
}

// GetSession godoc
// @Summary      Estado de una sesión de escaneo
// @Tags         scan-sessions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      200  {object}  dto.ScanSessionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/scan-sessions/{id} [get]
func (h *ScanHandler) GetSession(c *fiber.Ctx) error {
	id, s, ok := h.session(c)
	if !ok {
		return nil
	}
	return c.JSON(toSessionResponse(id, s))
}

// DeleteSession godoc
// @Summary      Descartar sesión de escaneo
// @Tags         scan-sessions
// @Security     Bearer
// @Param        id   path  string  true  "ID de la sesión"
// @Success      204
// @Router       /api/scan-sessions/{id} [delete]
func (h *ScanHandler) DeleteSession(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id de sesión inválido"})
	}
	h.store.Delete(id)
	return c.SendStatus(fiber.StatusNoContent)
}

// AppendEntry godoc
// @Summary      Agregar fila a la sesión
// @Tags         scan-sessions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la sesión"
// @Param        body  body  dto.AppendEntryRequest  true  "Código escaneado"
// @Success      201   {object}  dto.ScanSessionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/scan-sessions/{id}/entries [post]
func (h *ScanHandler) AppendEntry(c *fiber.Ctx) error {
	id, s, ok := h.session(c)
	if !ok {
		return nil
	}
	var in dto.AppendEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	entryID := s.Append(in.RawCode)
	if in.Resolve {
		_ = s.ResolveEntry(c.UserContext(), entryID)
	}
	return c.Status(fiber.StatusCreated).JSON(toSessionResponse(id, s))
}

// UpdateEntry godoc
// @Summary      Editar el código de una fila
// @Description  La fila vuelve a idle hasta que se resuelva de nuevo.
// @Tags         scan-sessions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id       path  string                  true  "ID de la sesión"
// @Param        entryId  path  int                     true  "ID de la fila"
// @Param        body     body  dto.UpdateEntryRequest  true  "Código"
// @Success      200  {object}  dto.ScanSessionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/scan-sessions/{id}/entries/{entryId} [put]
func (h *ScanHandler) UpdateEntry(c *fiber.Ctx) error {
	id, s, ok := h.session(c)
	if !ok {
		return nil
	}
	entryID, err := c.ParamsInt("entryId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "entryId inválido"})
	}
	var in dto.UpdateEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := s.UpdateRawCode(entryID, in.RawCode); err != nil {
		return entryError(c, err)
	}
	return c.JSON(toSessionResponse(id, s))
}

// RemoveEntry godoc
// @Summary      Quitar fila de la sesión
// @Description  Las filas restantes del mismo material se recalculan.
// @Tags         scan-sessions
// @Security     Bearer
// @Produce      json
// @Param        id       path  string  true  "ID de la sesión"
// @Param        entryId  path  int     true  "ID de la fila"
// @Success      200  {object}  dto.ScanSessionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/scan-sessions/{id}/entries/{entryId} [delete]
func (h *ScanHandler) RemoveEntry(c *fiber.Ctx) error {
	return h.entryAction(c, func(s *scan.Session, entryID int) error {
		return s.Remove(c.UserContext(), entryID)
	})
}

// ResolveEntry godoc
// @Summary      Resolver una fila (al perder el foco)
// @Tags         scan-sessions
// @Security     Bearer
// @Produce      json
// @Param        id       path  string  true  "ID de la sesión"
// @Param        entryId  path  int     true  "ID de la fila"
// @Success      200  {object}  dto.ScanSessionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/scan-sessions/{id}/entries/{entryId}/resolve [post]
func (h *ScanHandler) ResolveEntry(c *fiber.Ctx) error {
	return h.entryAction(c, func(s *scan.Session, entryID int) error {
		return s.ResolveEntry(c.UserContext(), entryID)
	})
}

// ConfirmEntry godoc
// @Summary      Confirmar un movimiento inferido
// @Tags         scan-sessions
// @Security     Bearer
// @Produce      json
// @Param        id       path  string  true  "ID de la sesión"
// @Param        entryId  path  int     true  "ID de la fila"
// @Success      200  {object}  dto.ScanSessionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/scan-sessions/{id}/entries/{entryId}/confirm [post]
func (h *ScanHandler) ConfirmEntry(c *fiber.Ctx) error {
	return h.entryAction(c, func(s *scan.Session, entryID int) error {
		return s.Confirm(entryID)
	})
}

// Finalize godoc
// @Summary      Guardar la sesión
// @Description  Rechaza si hay filas inválidas, pendientes o sin confirmar, o si otro guardado de la sesión está en curso. Tras guardar se quitan las filas guardadas.
// @Tags         scan-sessions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la sesión"
// @Success      201  {object}  dto.ScanCommitResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ScanCommitErrorResponse
// @Router       /api/scan-sessions/{id}/finalize [post]
func (h *ScanHandler) Finalize(c *fiber.Ctx) error {
	id, s, ok := h.session(c)
	if !ok {
		return nil
	}
	batch, err := s.Finalize()
	if err != nil {
		var ferr *scan.FinalizeError
		switch {
		case errors.As(err, &ferr):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SESSION_NOT_READY", Message: ferr.Error()})
		case errors.Is(err, scan.ErrCommitInProgress):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "COMMIT_IN_PROGRESS", Message: err.Error()})
		case errors.Is(err, scan.ErrNothingToCommit):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return writeDomainError(c, err)
	}
	tokens := make([]string, len(batch.Commands))
	for i, cmd := range batch.Commands {
		tokens[i] = cmd.Token()
	}
	out, err := h.commit.Commit(c.UserContext(), tokens, actor(c))
	if err != nil {
		s.Abort(batch)
		return writeCommitError(c, err)
	}
	s.Committed(batch)
	h.log.Info().Str("session_id", id).Str("batch_id", out.BatchID).Int("tokens", len(tokens)).Msg("sesión de escaneo guardada")
	return c.Status(fiber.StatusCreated).JSON(toCommitResponse(out))
}

// ── helpers ─────────────────────────────────────────────────────────────────

// session resuelve :id. Con ok == false la respuesta de error ya está escrita.
func (h *ScanHandler) session(c *fiber.Ctx) (id string, s *scan.Session, ok bool) {
	sid, err := uuid.Parse(c.Params("id"))
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id de sesión inválido"})
		return "", nil, false
	}
	s, err = h.store.Get(sid)
	if err != nil {
		_ = c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		return "", nil, false
	}
	return sid.String(), s, true
}

func (h *ScanHandler) entryAction(c *fiber.Ctx, fn func(s *scan.Session, entryID int) error) error {
	id, s, ok := h.session(c)
	if !ok {
		return nil
	}
	entryID, err := c.ParamsInt("entryId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "entryId inválido"})
	}
	if err := fn(s, entryID); err != nil {
		return entryError(c, err)
	}
	return c.JSON(toSessionResponse(id, s))
}

// writeCommitError 400 si algún token no tiene forma canónica, 409 si el lote no se pudo aplicar.
func writeCommitError(c *fiber.Ctx, err error) error {
	var cerr *inventory.CommitError
	if !errors.As(err, &cerr) {
		return writeDomainError(c, err)
	}
	status, code := fiber.StatusConflict, "SCAN_REJECTED"
	if errors.Is(err, binstock.ErrEmptyScan) || errors.Is(err, binstock.ErrEmptyIdentifier) || errors.Is(err, binstock.ErrMalformedSuffix) {
		status, code = fiber.StatusBadRequest, "INVALID_SCAN"
	}
	return c.Status(status).JSON(dto.ScanCommitErrorResponse{
		Code:    code,
		Message: cerr.Error(),
		Results: inventory.ToScanResults(cerr.Results),
	})
}

func toCommitResponse(out *inventory.CommitResult) dto.ScanCommitResponse {
	return dto.ScanCommitResponse{BatchID: out.BatchID, Results: inventory.ToScanResults(out.Results)}
}

func entryError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, scan.ErrEntryNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, scan.ErrNotConfirmable):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	}
	return writeDomainError(c, err)
}

func toSessionResponse(id string, s *scan.Session) dto.ScanSessionResponse {
	entries := s.Entries()
	out := dto.ScanSessionResponse{
		ID:                   id,
		RequiresConfirmation: s.RequiresConfirmation(),
		Entries:              make([]dto.ScanEntryDTO, 0, len(entries)),
	}
	for _, e := range entries {
		row := dto.ScanEntryDTO{
			ID:        e.ID,
			RawCode:   e.RawCode,
			Status:    string(e.Status),
			Movement:  string(e.Movement),
			Inferred:  e.Inferred,
			Confirmed: e.Confirmed,
		}
		if e.Status == scan.StatusResolved {
			row.Token = scan.MovementCommand{Identifier: e.Identifier(), Movement: e.Movement}.Token()
		}
		if e.Preview != nil {
			preview := dto.StockStateDTO(*e.Preview)
			qty := e.Preview.CurrentQuantity
			row.Preview = &preview
			row.Quantity = &qty
		}
		if e.Err != nil {
			row.Error = e.Err.Error()
		}
		switch e.Status {
		case scan.StatusResolved:
			out.Valid++
		case scan.StatusInvalid:
			out.Invalid++
		default:
			if strings.TrimSpace(e.RawCode) != "" {
				out.Pending++
			}
		}
		out.Entries = append(out.Entries, row)
	}
	return out
}
