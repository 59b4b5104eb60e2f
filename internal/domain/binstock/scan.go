package binstock

import (
	"errors"
	"fmt"
	"strings"
)

// Movement dirección de un escaneo.
type Movement string

const (
	MovementNone Movement = ""
	MovementIN   Movement = "IN"  // reposición: +pack
	MovementOUT  Movement = "OUT" // despacho: -pack
)

// Delta variación de cantidad que aplica el movimiento para un pack dado.
func (m Movement) Delta(pack int) int {
	switch m {
	case MovementIN:
		return pack
	case MovementOUT:
		return -pack
	}
	return 0
}

const (
	scanDelimiter = "_"
	suffixIN      = "_IN"
	suffixOUT     = "_OUT"
)

// Tipos de error de escaneo. Todos se corrigen editando o quitando la fila.
var (
	ErrEmptyScan            = errors.New("escaneo vacío")
	ErrEmptyIdentifier      = errors.New("material ID vacío")
	ErrMalformedSuffix      = errors.New("formato incorrecto (requiere _IN / _OUT)")
	ErrMaterialNotFound     = errors.New("material no encontrado")
	ErrOverflowAboveMax     = errors.New("stock supera el máximo")
	ErrUnderflowBelowZero   = errors.New("stock menor que 0")
	ErrUnconfiguredMaterial = errors.New("material sin configuración de bins")
)

// ResolutionError error de resolución con la cantidad proyectada (para mostrarla en la fila).
type ResolutionError struct {
	Kind     error
	Quantity int
	Max      int
}

func (e *ResolutionError) Error() string {
	switch e.Kind {
	case ErrOverflowAboveMax:
		return fmt.Sprintf("%s (%d / %d)", e.Kind, e.Quantity, e.Max)
	case ErrUnderflowBelowZero:
		return fmt.Sprintf("%s (%d)", e.Kind, e.Quantity)
	}
	return e.Kind.Error()
}

func (e *ResolutionError) Unwrap() error { return e.Kind }

// ScanCode forma interna (unión etiquetada) de un escaneo: identificador + movimiento opcional.
// El formato "{code}_{IN|OUT}" solo existe en el borde del sistema.
type ScanCode struct {
	Identifier string
	Movement   Movement // MovementNone: debe inferirse
}

// Explicit indica si el movimiento vino en el sufijo.
func (c ScanCode) Explicit() bool { return c.Movement != MovementNone }

// Token forma canónica "{identifier}_{IN|OUT}". Vacío si el movimiento no está definido.
func (c ScanCode) Token() string {
	if c.Movement == MovementNone {
		return ""
	}
	return c.Identifier + "_" + string(c.Movement)
}

// ParseScan interpreta el texto escaneado.
//
//	"MAT-001_IN" / "mat-001_out" → movimiento explícito (sufijo sin distinguir mayúsculas)
//	"MAT-001"                    → movimiento a inferir
//	"MAT_001"                    → ErrMalformedSuffix
//	"_IN"                        → ErrEmptyIdentifier
//	"   "                        → ErrEmptyScan
func ParseScan(raw string) (ScanCode, error) {
	code := strings.TrimSpace(raw)
	if code == "" {
		return ScanCode{}, ErrEmptyScan
	}
	for _, s := range []struct {
		suffix string
		mov    Movement
	}{{suffixIN, MovementIN}, {suffixOUT, MovementOUT}} {
		// el corte usa la longitud en bytes del sufijo ASCII
		if n := len(code) - len(s.suffix); n >= 0 && strings.EqualFold(code[n:], s.suffix) {
			id := code[:n]
			if id == "" {
				return ScanCode{}, ErrEmptyIdentifier
			}
			return ScanCode{Identifier: id, Movement: s.mov}, nil
		}
	}

	if strings.Contains(code, scanDelimiter) {
		return ScanCode{}, ErrMalformedSuffix
	}
	return ScanCode{Identifier: code}, nil
}

// InferMovement heurística para escaneos sin sufijo: bin lleno → OUT, si no → IN.
// Solo es una sugerencia; el movimiento real debería ser explícito.
func InferMovement(state MaterialStockState) Movement {
	if state.CurrentQuantity >= state.MaxBinQty {
		return MovementOUT
	}
	return MovementIN
}

// ScanResolution resultado de aplicar un escaneo sobre un estado base.
type ScanResolution struct {
	Code     ScanCode
	Movement Movement
	Inferred bool
	Preview  MaterialStockState // estado proyectado tras el movimiento
	Err      error              // nil si el movimiento es válido
}

// Valid indica si el movimiento puede confirmarse.
func (r ScanResolution) Valid() bool { return r.Err == nil }

// Token forma canónica del movimiento resuelto.
func (r ScanResolution) Token() string {
	return ScanCode{Identifier: r.Code.Identifier, Movement: r.Movement}.Token()
}

// ResolveScan interpreta raw y lo aplica sobre base. Idempotente: mismos argumentos, mismo resultado.
func ResolveScan(raw string, base MaterialStockState) ScanResolution {
	code, err := ParseScan(raw)
	if err != nil {
		return ScanResolution{Err: err}
	}
	return ResolveCode(code, base)
}

// ResolveCode aplica un código ya interpretado sobre base.
// La cantidad proyectada se devuelve siempre, incluso cuando el resultado es inválido.
func ResolveCode(code ScanCode, base MaterialStockState) ScanResolution {
	res := ScanResolution{Code: code, Preview: base}
	if !base.Configured() {
		res.Err = &ResolutionError{Kind: ErrUnconfiguredMaterial, Quantity: base.CurrentQuantity, Max: base.MaxBinQty}
		return res
	}

	res.Movement = code.Movement
	if !code.Explicit() {
		res.Movement = InferMovement(base)
		res.Inferred = true
	}

	qty := base.CurrentQuantity + res.Movement.Delta(base.PackQuantity)
	res.Preview = base.WithQuantity(qty)

	switch {
	case qty > base.MaxBinQty:
		res.Err = &ResolutionError{Kind: ErrOverflowAboveMax, Quantity: qty, Max: base.MaxBinQty}
	case qty < 0:
		res.Err = &ResolutionError{Kind: ErrUnderflowBelowZero, Quantity: qty, Max: base.MaxBinQty}
	}
	return res
}
