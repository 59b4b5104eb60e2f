// Package scan implementa la sesión de escaneo por lotes: una lista ordenada de filas
// pendientes de guardar en la que los escaneos repetidos de un mismo material encadenan
// su cantidad proyectada.
package scan

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/bin-inventory-api/internal/domain/binstock"
	"github.com/jhoicas/bin-inventory-api/pkg/logger"
)

// EntryStatus estado de una fila de escaneo.
//
//	idle --(código no vacío, pierde foco)--> pending --(lookup + validación)--> resolved | invalid
//
// Cualquier edición del código devuelve la fila a idle.
type EntryStatus string

const (
	StatusIdle     EntryStatus = "idle"
	StatusPending  EntryStatus = "pending"
	StatusResolved EntryStatus = "resolved"
	StatusInvalid  EntryStatus = "invalid"
)

const defaultLookupTimeout = 5 * time.Second

var (
	ErrEntryNotFound    = errors.New("fila de escaneo no encontrada")
	ErrNotConfirmable   = errors.New("la fila no tiene un movimiento inferido resuelto")
	ErrNothingToCommit  = errors.New("no hay escaneos válidos para guardar")
	ErrSessionNotFound  = errors.New("sesión de escaneo no encontrada o expirada")
	ErrCommitInProgress = errors.New("la sesión ya se está guardando")
)

// FinalizeError rechazo de Finalize: no se permite guardar parcialmente.
type FinalizeError struct {
	Invalid     int
	Pending     int
	Unconfirmed int
}

func (e *FinalizeError) Error() string {
	parts := make([]string, 0, 3)
	if e.Invalid > 0 {
		parts = append(parts, fmt.Sprintf("%d inválidas", e.Invalid))
	}
	if e.Pending > 0 {
		parts = append(parts, fmt.Sprintf("%d pendientes", e.Pending))
	}
	if e.Unconfirmed > 0 {
		parts = append(parts, fmt.Sprintf("%d sin confirmar", e.Unconfirmed))
	}
	return "filas por corregir: " + strings.Join(parts, ", ")
}

// ScanEntry fila de la sesión. Las copias que devuelve Session son instantáneas.
type ScanEntry struct {
	ID        int
	RawCode   string
	Status    EntryStatus
	Movement  binstock.Movement
	Inferred  bool
	Confirmed bool
	Preview   *binstock.MaterialStockState // cantidad proyectada tras aplicar esta fila y las anteriores del mismo material
	Err       error

	revision uint64
}

// Identifier material de la fila, o "" si el código no se puede interpretar.
func (e ScanEntry) Identifier() string {
	code, err := binstock.ParseScan(e.RawCode)
	if err != nil {
		return ""
	}
	return code.Identifier
}

func (e *ScanEntry) reset() {
	e.Status = StatusIdle
	e.Movement = binstock.MovementNone
	e.Inferred = false
	e.Confirmed = false
	e.Preview = nil
	e.Err = nil
}

// MovementCommand movimiento aceptado, listo para el payload de guardado.
type MovementCommand struct {
	Identifier string
	Movement   binstock.Movement
}

// Token forma canónica "{code}_{IN|OUT}"; el sufijo se escribe siempre, aunque se haya inferido.
func (c MovementCommand) Token() string {
	return binstock.ScanCode{Identifier: c.Identifier, Movement: c.Movement}.Token()
}

// Option configura una Session.
type Option func(*Session)

// WithConfirmation exige confirmar los movimientos inferidos antes de Finalize.
func WithConfirmation(required bool) Option {
	return func(s *Session) { s.requireConfirmation = required }
}

// WithLookupTimeout limita cada consulta de estado base.
func WithLookupTimeout(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.lookupTimeout = d
		}
	}
}

// WithLogger inyecta el logger.
func WithLogger(l *logger.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// Session lista ordenada y mutable de filas para un guardado. Nunca está vacía.
// Las consultas al StatusLookup se hacen fuera del lock; al volver solo se aplican
// a las filas que no cambiaron desde que se lanzó la consulta.
type Session struct {
	mu                  sync.Mutex
	lookup              StatusLookup
	log                 *logger.Logger
	requireConfirmation bool
	lookupTimeout       time.Duration
	entries             []*ScanEntry
	nextID              int
	revision            uint64
	touched             time.Time
	committing          bool
	now                 func() time.Time
}

// NewSession crea una sesión con una fila vacía.
func NewSession(lookup StatusLookup, opts ...Option) *Session {
	s := &Session{
		lookup:        lookup,
		log:           logger.Nop(),
		lookupTimeout: defaultLookupTimeout,
		now:           time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	s.entries = []*ScanEntry{s.newEntry("")}
	s.touched = s.now()
	return s
}

func (s *Session) newEntry(raw string) *ScanEntry {
	s.nextID++
	s.revision++
	return &ScanEntry{ID: s.nextID, RawCode: raw, Status: StatusIdle, revision: s.revision}
}

func (s *Session) find(id int) (int, *ScanEntry) {
	for i, e := range s.entries {
		if e.ID == id {
			return i, e
		}
	}
	return -1, nil
}

// LastActivity momento de la última operación sobre la sesión.
func (s *Session) LastActivity() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touched
}

// RequiresConfirmation indica si los movimientos inferidos deben confirmarse.
func (s *Session) RequiresConfirmation() bool {
	return s.requireConfirmation
}

// Entries copia de las filas en orden.
func (s *Session) Entries() []ScanEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ScanEntry, len(s.entries))
	for i, e := range s.entries {
		out[i] = *e
		if e.Preview != nil {
			p := *e.Preview
			out[i].Preview = &p
		}
	}
	return out
}

// Entry copia de una fila.
func (s *Session) Entry(id int) (ScanEntry, error) {
	for _, e := range s.Entries() {
		if e.ID == id {
			return e, nil
		}
	}
	return ScanEntry{}, ErrEntryNotFound
}

// Append agrega una fila idle al final y devuelve su ID.
func (s *Session) Append(raw string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.newEntry(raw)
	s.entries = append(s.entries, e)
	s.touched = s.now()
	return e.ID
}

// UpdateRawCode cambia el código de una fila y la devuelve a idle, invalidando su resolución
// y cualquier consulta en vuelo que la afecte.
func (s *Session) UpdateRawCode(id int, raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, e := s.find(id)
	if e == nil {
		return ErrEntryNotFound
	}
	s.revision++
	e.RawCode = raw
	e.revision = s.revision
	e.reset()
	s.touched = s.now()
	return nil
}

// Remove elimina una fila. Si la sesión queda vacía vuelve a una única fila idle.
// Las filas restantes del mismo material se re-resuelven desde un estado base fresco.
func (s *Session) Remove(ctx context.Context, id int) error {
	s.mu.Lock()
	i, e := s.find(id)
	if e == nil {
		s.mu.Unlock()
		return ErrEntryNotFound
	}
	ident := e.Identifier()
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	if len(s.entries) == 0 {
		s.entries = []*ScanEntry{s.newEntry("")}
	}
	s.touched = s.now()
	s.mu.Unlock()

	if ident != "" {
		s.ResolveGroup(ctx, ident)
	}
	return nil
}

// ResolveEntry valida la fila cuando pierde el foco: error de formato → invalid;
// código vacío → sigue idle; en otro caso resuelve todo el grupo de su material.
func (s *Session) ResolveEntry(ctx context.Context, id int) error {
	s.mu.Lock()
	_, e := s.find(id)
	if e == nil {
		s.mu.Unlock()
		return ErrEntryNotFound
	}
	code, err := binstock.ParseScan(e.RawCode)
	switch {
	case errors.Is(err, binstock.ErrEmptyScan):
		e.reset()
		s.mu.Unlock()
		return nil
	case err != nil:
		e.reset()
		e.Status = StatusInvalid
		e.Err = err
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	s.ResolveGroup(ctx, code.Identifier)
	return nil
}

// ResolveGroup consulta una vez el estado base del material y pliega el resolvedor sobre
// todas sus filas en orden de lista: cada fila parte de la cantidad que dejó la anterior.
func (s *Session) ResolveGroup(ctx context.Context, identifier string) {
	s.resolve(ctx, []string{identifier})
}

// ResolveAll resuelve todas las filas. Las consultas de materiales distintos corren en paralelo;
// dentro de cada material se respeta el orden de la lista.
func (s *Session) ResolveAll(ctx context.Context) {
	s.mu.Lock()
	var idents []string
	seen := map[string]bool{}
	for _, e := range s.entries {
		code, err := binstock.ParseScan(e.RawCode)
		switch {
		case errors.Is(err, binstock.ErrEmptyScan):
			continue
		case err != nil:
			e.reset()
			e.Status = StatusInvalid
			e.Err = err
			continue
		}
		if !seen[code.Identifier] {
			seen[code.Identifier] = true
			idents = append(idents, code.Identifier)
		}
	}
	s.mu.Unlock()

	s.resolve(ctx, idents)
}

type groupRequest struct {
	identifier string
	revisions  map[int]uint64 // filas capturadas al lanzar la consulta
	base       binstock.MaterialStockState
	err        error
}

func (s *Session) resolve(ctx context.Context, identifiers []string) {
	if len(identifiers) == 0 {
		return
	}

	s.mu.Lock()
	reqs := make([]*groupRequest, 0, len(identifiers))
	for _, ident := range identifiers {
		req := &groupRequest{identifier: ident, revisions: map[int]uint64{}}
		for _, e := range s.entries {
			if e.Identifier() == ident {
				req.revisions[e.ID] = e.revision
				e.Status = StatusPending
				e.Err = nil
			}
		}
		if len(req.revisions) > 0 {
			reqs = append(reqs, req)
		}
	}
	s.touched = s.now()
	s.mu.Unlock()

	var g errgroup.Group
	g.SetLimit(8)
	for _, req := range reqs {
		req := req
		g.Go(func() error {
			lctx, cancel := context.WithTimeout(ctx, s.lookupTimeout)
			defer cancel()
			req.base, req.err = s.lookup.Status(lctx, req.identifier)
			return nil
		})
	}
	_ = g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, req := range reqs {
		s.apply(req)
	}
}

// apply pliega el resultado de una consulta sobre las filas que siguen vigentes.
func (s *Session) apply(req *groupRequest) {
	var lookupErr error
	if req.err != nil {
		lookupErr = req.err
		if !errors.Is(req.err, binstock.ErrMaterialNotFound) {
			s.log.Warn().Err(req.err).Str("material", req.identifier).Msg("consulta de estado base fallida")
		}
	}

	running := req.base.CurrentQuantity
	applied := 0
	for _, e := range s.entries {
		rev, ok := req.revisions[e.ID]
		if !ok || rev != e.revision {
			// Editada o agregada después de lanzar la consulta: resultado obsoleto.
			continue
		}
		code, err := binstock.ParseScan(e.RawCode)
		if err != nil || code.Identifier != req.identifier {
			continue
		}
		applied++
		if lookupErr != nil {
			e.reset()
			e.Status = StatusInvalid
			e.Err = lookupErr
			continue
		}

		res := binstock.ResolveCode(code, req.base.WithQuantity(running))
		running = res.Preview.CurrentQuantity

		preview := res.Preview
		e.Movement = res.Movement
		e.Inferred = res.Inferred
		e.Confirmed = false
		e.Preview = &preview
		e.Err = res.Err
		e.Status = StatusResolved
		if res.Err != nil {
			e.Status = StatusInvalid
		}
	}

	s.log.Debug().
		Str("material", req.identifier).
		Int("rows", applied).
		Int("running_quantity", running).
		Msg("grupo de escaneo resuelto")
}

// Confirm confirma el movimiento inferido de una fila resuelta.
func (s *Session) Confirm(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, e := s.find(id)
	if e == nil {
		return ErrEntryNotFound
	}
	if e.Status != StatusResolved || !e.Inferred {
		return ErrNotConfirmable
	}
	e.Confirmed = true
	s.touched = s.now()
	return nil
}

// Finalized lote tomado por Finalize. Mientras no se cierre con Committed o Abort
// la sesión rechaza otro Finalize.
type Finalized struct {
	Commands []MovementCommand

	revisions map[int]uint64 // filas incluidas en el lote
}

// Finalize devuelve los movimientos aceptados en orden de lista y marca la sesión como
// guardando. Rechaza todo si alguna fila está inválida, pendiente (incluye idle con código
// sin validar) o, si la sesión lo exige, con un movimiento inferido sin confirmar.
// Las filas vacías se ignoran.
func (s *Session) Finalize() (*Finalized, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.committing {
		return nil, ErrCommitInProgress
	}

	var ferr FinalizeError
	out := &Finalized{
		Commands:  make([]MovementCommand, 0, len(s.entries)),
		revisions: make(map[int]uint64, len(s.entries)),
	}
	for _, e := range s.entries {
		if strings.TrimSpace(e.RawCode) == "" {
			continue
		}
		switch e.Status {
		case StatusInvalid:
			ferr.Invalid++
		case StatusPending, StatusIdle:
			ferr.Pending++
		case StatusResolved:
			if e.Inferred && !e.Confirmed && s.requireConfirmation {
				ferr.Unconfirmed++
				continue
			}
			out.Commands = append(out.Commands, MovementCommand{Identifier: e.Identifier(), Movement: e.Movement})
			out.revisions[e.ID] = e.revision
		}
	}
	if ferr.Invalid+ferr.Pending+ferr.Unconfirmed > 0 {
		return nil, &ferr
	}
	if len(out.Commands) == 0 {
		return nil, ErrNothingToCommit
	}
	s.committing = true
	s.touched = s.now()
	return out, nil
}

// Committed cierra un lote guardado: quita solo las filas del lote que no cambiaron desde
// Finalize. Las agregadas o editadas durante el guardado se conservan.
func (s *Session) Committed(f *Finalized) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.entries[:0]
	for _, e := range s.entries {
		if rev, ok := f.revisions[e.ID]; ok && rev == e.revision {
			continue
		}
		kept = append(kept, e)
	}
	s.entries = kept
	if len(s.entries) == 0 {
		s.entries = []*ScanEntry{s.newEntry("")}
	}
	s.committing = false
	s.touched = s.now()
}

// Abort libera la sesión tras un guardado fallido; las filas quedan como estaban.
func (s *Session) Abort(*Finalized) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.committing = false
	s.touched = s.now()
}
