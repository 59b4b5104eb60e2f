package scan_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bin-inventory-api/internal/application/scan"
	"github.com/jhoicas/bin-inventory-api/internal/domain/binstock"
)

// ──── Mock StatusLookup ────────────────────────────────────────────────────

type mockLookup struct{ mock.Mock }

func (m *mockLookup) Status(ctx context.Context, code string) (binstock.MaterialStockState, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(binstock.MaterialStockState), args.Error(1)
}

func stock(qty, pack, max, min int) binstock.MaterialStockState {
	return binstock.MaterialStockState{
		BinConfiguration: binstock.BinConfiguration{PackQuantity: pack, MaxBinQty: max, MinBinQty: min},
		CurrentQuantity:  qty,
	}
}

// newSession crea una sesión con las filas dadas (la primera reutiliza la fila vacía inicial).
func newSession(t *testing.T, lookup scan.StatusLookup, codes ...string) (*scan.Session, []int) {
	t.Helper()
	s := scan.NewSession(lookup, scan.WithConfirmation(true))
	ids := make([]int, 0, len(codes))
	for i, c := range codes {
		if i == 0 {
			first := s.Entries()[0].ID
			require.NoError(t, s.UpdateRawCode(first, c))
			ids = append(ids, first)
			continue
		}
		ids = append(ids, s.Append(c))
	}
	return s, ids
}

func previews(t *testing.T, s *scan.Session) []int {
	t.Helper()
	var out []int
	for _, e := range s.Entries() {
		require.NotNil(t, e.Preview, "fila %d sin preview", e.ID)
		out = append(out, e.Preview.CurrentQuantity)
	}
	return out
}

// ──── Resolución por grupo ─────────────────────────────────────────────────

func TestSession_EncadenaCantidadDelMismoMaterial(t *testing.T) {
	lookup := new(mockLookup)
	lookup.On("Status", mock.Anything, "M1").Return(stock(0, 5, 20, 0), nil).Once()

	s, ids := newSession(t, lookup, "M1_IN", "M1_IN", "M1_OUT")
	require.NoError(t, s.ResolveEntry(context.Background(), ids[2]))

	assert.Equal(t, []int{5, 10, 5}, previews(t, s))
	for _, e := range s.Entries() {
		assert.Equal(t, scan.StatusResolved, e.Status)
		assert.NoError(t, e.Err)
	}
	lookup.AssertNumberOfCalls(t, "Status", 1)
}

func TestSession_Overflow(t *testing.T) {
	lookup := new(mockLookup)
	lookup.On("Status", mock.Anything, "M1").Return(stock(18, 5, 20, 0), nil)

	s, ids := newSession(t, lookup, "M1_IN")
	require.NoError(t, s.ResolveEntry(context.Background(), ids[0]))

	e, err := s.Entry(ids[0])
	require.NoError(t, err)
	assert.Equal(t, scan.StatusInvalid, e.Status)
	assert.ErrorIs(t, e.Err, binstock.ErrOverflowAboveMax)
	assert.Equal(t, 23, e.Preview.CurrentQuantity)
}

// Una fila inválida no corta la cadena: la siguiente parte de la cantidad proyectada.
func TestSession_CantidadAcumuladaSigueTrasFilaInvalida(t *testing.T) {
	lookup := new(mockLookup)
	lookup.On("Status", mock.Anything, "M1").Return(stock(15, 5, 20, 0), nil)

	s, ids := newSession(t, lookup, "M1_IN", "M1_IN", "M1_OUT")
	require.NoError(t, s.ResolveEntry(context.Background(), ids[0]))

	assert.Equal(t, []int{20, 25, 20}, previews(t, s))
	entries := s.Entries()
	assert.Equal(t, scan.StatusResolved, entries[0].Status)
	assert.Equal(t, scan.StatusInvalid, entries[1].Status)
	assert.Equal(t, scan.StatusResolved, entries[2].Status)
}

func TestSession_InfiereOutConBinLleno(t *testing.T) {
	lookup := new(mockLookup)
	lookup.On("Status", mock.Anything, "M1").Return(stock(20, 5, 20, 0), nil)

	s, ids := newSession(t, lookup, "M1")
	require.NoError(t, s.ResolveEntry(context.Background(), ids[0]))

	e, err := s.Entry(ids[0])
	require.NoError(t, err)
	assert.Equal(t, scan.StatusResolved, e.Status)
	assert.Equal(t, binstock.MovementOUT, e.Movement)
	assert.True(t, e.Inferred)
	assert.False(t, e.Confirmed)
	assert.Equal(t, 15, e.Preview.CurrentQuantity)
}

func TestSession_MaterialNoEncontrado(t *testing.T) {
	lookup := new(mockLookup)
	lookup.On("Status", mock.Anything, "X9").
		Return(binstock.MaterialStockState{}, fmt.Errorf("X9: %w", binstock.ErrMaterialNotFound))

	s, ids := newSession(t, lookup, "X9_IN", "X9_OUT")
	require.NoError(t, s.ResolveEntry(context.Background(), ids[0]))

	for _, e := range s.Entries() {
		assert.Equal(t, scan.StatusInvalid, e.Status)
		assert.ErrorIs(t, e.Err, binstock.ErrMaterialNotFound)
		assert.Nil(t, e.Preview)
	}
}

func TestSession_ErrorDeFormatoNoConsulta(t *testing.T) {
	lookup := new(mockLookup)

	s, ids := newSession(t, lookup, "M_1", "")
	require.NoError(t, s.ResolveEntry(context.Background(), ids[0]))
	require.NoError(t, s.ResolveEntry(context.Background(), ids[1]))

	entries := s.Entries()
	assert.Equal(t, scan.StatusInvalid, entries[0].Status)
	assert.ErrorIs(t, entries[0].Err, binstock.ErrMalformedSuffix)
	assert.Equal(t, scan.StatusIdle, entries[1].Status)
	lookup.AssertNotCalled(t, "Status", mock.Anything, mock.Anything)
}

// Los errores de una fila no bloquean a las demás.
func TestSession_ResolveAll_MaterialesIndependientes(t *testing.T) {
	lookup := new(mockLookup)
	lookup.On("Status", mock.Anything, "M1").Return(stock(0, 5, 20, 0), nil)
	lookup.On("Status", mock.Anything, "M2").Return(stock(10, 2, 10, 2), nil)
	lookup.On("Status", mock.Anything, "X9").
		Return(binstock.MaterialStockState{}, binstock.ErrMaterialNotFound)

	s, _ := newSession(t, lookup, "M1_IN", "M2_OUT", "X9_IN", "M1_IN", "M2")
	s.ResolveAll(context.Background())

	entries := s.Entries()
	require.Len(t, entries, 5)
	assert.Equal(t, 5, entries[0].Preview.CurrentQuantity)
	assert.Equal(t, 8, entries[1].Preview.CurrentQuantity)
	assert.Equal(t, scan.StatusInvalid, entries[2].Status)
	assert.Equal(t, 10, entries[3].Preview.CurrentQuantity)
	// M2 quedó en 8 (< max), se infiere IN
	assert.Equal(t, binstock.MovementIN, entries[4].Movement)
	assert.Equal(t, 10, entries[4].Preview.CurrentQuantity)
	lookup.AssertNumberOfCalls(t, "Status", 3)
}

// ──── Edición y borrado ────────────────────────────────────────────────────

func TestSession_UpdateRawCodeVuelveAIdle(t *testing.T) {
	lookup := new(mockLookup)
	lookup.On("Status", mock.Anything, "M1").Return(stock(0, 5, 20, 0), nil)

	s, ids := newSession(t, lookup, "M1_IN")
	require.NoError(t, s.ResolveEntry(context.Background(), ids[0]))
	require.NoError(t, s.UpdateRawCode(ids[0], "M1_OUT"))

	e, err := s.Entry(ids[0])
	require.NoError(t, err)
	assert.Equal(t, scan.StatusIdle, e.Status)
	assert.Equal(t, "M1_OUT", e.RawCode)
	assert.Nil(t, e.Preview)
	assert.NoError(t, e.Err)
}

// Borrar la fila intermedia recalcula la tercera contra la primera solamente.
func TestSession_RemoveRecalculaGrupo(t *testing.T) {
	lookup := new(mockLookup)
	lookup.On("Status", mock.Anything, "M1").Return(stock(0, 5, 20, 0), nil)

	s, ids := newSession(t, lookup, "M1_IN", "M1_IN", "M1_IN")
	require.NoError(t, s.ResolveEntry(context.Background(), ids[0]))
	require.Equal(t, []int{5, 10, 15}, previews(t, s))

	require.NoError(t, s.Remove(context.Background(), ids[1]))

	entries := s.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, ids[0], entries[0].ID)
	assert.Equal(t, ids[2], entries[1].ID)
	assert.Equal(t, []int{5, 10}, previews(t, s))
	lookup.AssertNumberOfCalls(t, "Status", 2)
}

func TestSession_NuncaVacia(t *testing.T) {
	lookup := new(mockLookup)
	s := scan.NewSession(lookup)

	entries := s.Entries()
	require.Len(t, entries, 1)
	first := entries[0].ID

	require.NoError(t, s.Remove(context.Background(), first))

	entries = s.Entries()
	require.Len(t, entries, 1)
	assert.NotEqual(t, first, entries[0].ID)
	assert.Equal(t, scan.StatusIdle, entries[0].Status)
	assert.Empty(t, entries[0].RawCode)
	lookup.AssertNotCalled(t, "Status", mock.Anything, mock.Anything)
}

func TestSession_FilaInexistente(t *testing.T) {
	s := scan.NewSession(new(mockLookup))
	ctx := context.Background()

	assert.ErrorIs(t, s.UpdateRawCode(99, "M1"), scan.ErrEntryNotFound)
	assert.ErrorIs(t, s.Remove(ctx, 99), scan.ErrEntryNotFound)
	assert.ErrorIs(t, s.ResolveEntry(ctx, 99), scan.ErrEntryNotFound)
	assert.ErrorIs(t, s.Confirm(99), scan.ErrEntryNotFound)
	_, err := s.Entry(99)
	assert.ErrorIs(t, err, scan.ErrEntryNotFound)
}

// Una respuesta que llega después de editar la fila no la sobrescribe.
func TestSession_DescartaResultadoObsoleto(t *testing.T) {
	lookup := new(mockLookup)
	var s *scan.Session
	var ids []int
	lookup.On("Status", mock.Anything, "M1").
		Run(func(mock.Arguments) {
			// edición mientras la consulta está en vuelo
			assert.NoError(t, s.UpdateRawCode(ids[1], "M1_OUT"))
		}).
		Return(stock(0, 5, 20, 0), nil).Once()

	s, ids = newSession(t, lookup, "M1_IN", "M1_IN")
	require.NoError(t, s.ResolveEntry(context.Background(), ids[0]))

	entries := s.Entries()
	assert.Equal(t, scan.StatusResolved, entries[0].Status)
	assert.Equal(t, 5, entries[0].Preview.CurrentQuantity)
	assert.Equal(t, scan.StatusIdle, entries[1].Status)
	assert.Equal(t, "M1_OUT", entries[1].RawCode)
	assert.Nil(t, entries[1].Preview)
}

// ──── Confirmación y Finalize ──────────────────────────────────────────────

func TestSession_FinalizeSinFilas(t *testing.T) {
	s := scan.NewSession(new(mockLookup))
	_, err := s.Finalize()
	assert.ErrorIs(t, err, scan.ErrNothingToCommit)
}

func TestSession_FinalizeRechazaInvalidasYPendientes(t *testing.T) {
	lookup := new(mockLookup)
	lookup.On("Status", mock.Anything, "M1").Return(stock(18, 5, 20, 0), nil)

	s, ids := newSession(t, lookup, "M1_IN", "M2_IN", "")
	require.NoError(t, s.ResolveEntry(context.Background(), ids[0]))

	batch, err := s.Finalize()
	assert.Nil(t, batch)
	var ferr *scan.FinalizeError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, 1, ferr.Invalid)
	assert.Equal(t, 1, ferr.Pending)
	assert.Equal(t, 0, ferr.Unconfirmed)
	assert.Contains(t, err.Error(), "1 inválidas")
}

func TestSession_ConfirmacionDeMovimientoInferido(t *testing.T) {
	lookup := new(mockLookup)
	lookup.On("Status", mock.Anything, "M1").Return(stock(20, 5, 20, 0), nil)
	lookup.On("Status", mock.Anything, "M2").Return(stock(0, 5, 20, 0), nil)

	s, ids := newSession(t, lookup, "M1", "M2_IN")
	s.ResolveAll(context.Background())

	_, err := s.Finalize()
	var ferr *scan.FinalizeError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, 1, ferr.Unconfirmed)

	assert.ErrorIs(t, s.Confirm(ids[1]), scan.ErrNotConfirmable)
	require.NoError(t, s.Confirm(ids[0]))

	batch, err := s.Finalize()
	require.NoError(t, err)
	cmds := batch.Commands
	require.Len(t, cmds, 2)
	assert.Equal(t, "M1_OUT", cmds[0].Token())
	assert.Equal(t, "M2_IN", cmds[1].Token())
}

func TestSession_SinConfirmacionObligatoria(t *testing.T) {
	lookup := new(mockLookup)
	lookup.On("Status", mock.Anything, "M1").Return(stock(3, 5, 20, 0), nil)

	s := scan.NewSession(lookup, scan.WithConfirmation(false))
	id := s.Entries()[0].ID
	require.NoError(t, s.UpdateRawCode(id, "M1"))
	require.NoError(t, s.ResolveEntry(context.Background(), id))

	batch, err := s.Finalize()
	require.NoError(t, err)
	require.Len(t, batch.Commands, 1)
	assert.Equal(t, "M1_IN", batch.Commands[0].Token())
}

// Los tokens de Finalize vuelven a interpretarse como el mismo (material, movimiento).
func TestSession_FinalizeTokensCanonicos(t *testing.T) {
	lookup := new(mockLookup)
	lookup.On("Status", mock.Anything, "mat-7").Return(stock(5, 5, 20, 0), nil)

	s, _ := newSession(t, lookup, " mat-7_in ", "mat-7_Out", "")
	s.ResolveAll(context.Background())

	batch, err := s.Finalize()
	require.NoError(t, err)
	cmds := batch.Commands
	require.Len(t, cmds, 2)
	for _, c := range cmds {
		back, err := binstock.ParseScan(c.Token())
		require.NoError(t, err)
		assert.Equal(t, c.Identifier, back.Identifier)
		assert.Equal(t, c.Movement, back.Movement)
	}
	assert.Equal(t, "mat-7_IN", cmds[0].Token())
	assert.Equal(t, "mat-7_OUT", cmds[1].Token())
}

func TestSession_FinalizeEnCursoRechazaOtro(t *testing.T) {
	lookup := new(mockLookup)
	lookup.On("Status", mock.Anything, "M1").Return(stock(0, 5, 20, 0), nil)

	s, _ := newSession(t, lookup, "M1_IN")
	s.ResolveAll(context.Background())

	batch, err := s.Finalize()
	require.NoError(t, err)

	_, err = s.Finalize()
	assert.ErrorIs(t, err, scan.ErrCommitInProgress)

	s.Abort(batch)
	again, err := s.Finalize()
	require.NoError(t, err)
	assert.Equal(t, batch.Commands, again.Commands)
}

func TestSession_CommittedQuitaSoloLoteGuardado(t *testing.T) {
	lookup := new(mockLookup)
	lookup.On("Status", mock.Anything, "M1").Return(stock(0, 5, 20, 0), nil)

	s, ids := newSession(t, lookup, "M1_IN", "M1_IN")
	s.ResolveAll(context.Background())

	batch, err := s.Finalize()
	require.NoError(t, err)
	require.Len(t, batch.Commands, 2)

	// durante el guardado: una fila editada y una agregada
	require.NoError(t, s.UpdateRawCode(ids[1], "M1_OUT"))
	added := s.Append("M2_IN")

	s.Committed(batch)
	entries := s.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, ids[1], entries[0].ID)
	assert.Equal(t, "M1_OUT", entries[0].RawCode)
	assert.Equal(t, added, entries[1].ID)

	_, err = s.Finalize()
	var ferr *scan.FinalizeError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, 2, ferr.Pending)
}

func TestSession_CommittedDejaFilaVacia(t *testing.T) {
	lookup := new(mockLookup)
	lookup.On("Status", mock.Anything, "M1").Return(stock(0, 5, 20, 0), nil)

	s := scan.NewSession(lookup)
	id := s.Entries()[0].ID
	require.NoError(t, s.UpdateRawCode(id, "M1_IN"))
	require.NoError(t, s.ResolveEntry(context.Background(), id))

	batch, err := s.Finalize()
	require.NoError(t, err)
	s.Committed(batch)

	entries := s.Entries()
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].RawCode)
	assert.Equal(t, scan.StatusIdle, entries[0].Status)
}
