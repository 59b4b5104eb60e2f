// Package labels genera las hojas de etiquetas de escaneo de un material:
// un QR "{code}_IN" y otro "{code}_OUT" por copia.
package labels

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/bin-inventory-api/internal/domain"
	"github.com/jhoicas/bin-inventory-api/internal/domain/binstock"
	"github.com/jhoicas/bin-inventory-api/internal/domain/entity"
	"github.com/jhoicas/bin-inventory-api/internal/domain/repository"
)

// MaxCopies límite de pares de etiquetas por hoja.
const MaxCopies = 24

// Label una etiqueta: el token que codifica el QR y su leyenda.
type Label struct {
	Token    string
	Movement binstock.Movement
	Caption  string
}

// Sheet datos para imprimir las etiquetas de un material.
type Sheet struct {
	Material *entity.Material
	Copies   int
	Pairs    [][2]Label // [IN, OUT] por copia
}

// LabelGenerator puerto de salida: renderiza la hoja y devuelve los bytes del PDF.
type LabelGenerator interface {
	GenerateLabelSheet(ctx context.Context, sheet Sheet) ([]byte, error)
}

// UseCase descarga de etiquetas.
type UseCase struct {
	repo      repository.MaterialRepository
	generator LabelGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.MaterialRepository, generator LabelGenerator) *UseCase {
	return &UseCase{repo: repo, generator: generator}
}

// BuildSheet arma las etiquetas de un material. Solo materiales con bins configurados.
func BuildSheet(m *entity.Material, copies int) (Sheet, error) {
	if copies <= 0 {
		copies = 1
	}
	if copies > MaxCopies {
		return Sheet{}, fmt.Errorf("%w: máximo %d copias", domain.ErrInvalidInput, MaxCopies)
	}
	if !m.BinConfiguration().Configured() {
		return Sheet{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, binstock.ErrUnconfiguredMaterial)
	}
	in := binstock.ScanCode{Identifier: m.Code, Movement: binstock.MovementIN}
	out := binstock.ScanCode{Identifier: m.Code, Movement: binstock.MovementOUT}
	pair := [2]Label{
		{Token: in.Token(), Movement: in.Movement, Caption: fmt.Sprintf("IN  +%d", m.PackQuantity)},
		{Token: out.Token(), Movement: out.Movement, Caption: fmt.Sprintf("OUT  -%d", m.PackQuantity)},
	}
	s := Sheet{Material: m, Copies: copies, Pairs: make([][2]Label, copies)}
	for i := range s.Pairs {
		s.Pairs[i] = pair
	}
	return s, nil
}

// Download genera el PDF de etiquetas del material.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si el material no existe.
//   - domain.ErrInvalidInput     si el material no tiene bins configurados o copies excede MaxCopies.
func (uc *UseCase) Download(ctx context.Context, materialID string, copies int) ([]byte, string, error) {
	m, err := uc.repo.GetByID(ctx, materialID)
	if err != nil {
		return nil, "", fmt.Errorf("labels: obtener material: %w", err)
	}
	if m == nil {
		return nil, "", domain.ErrNotFound
	}
	sheet, err := BuildSheet(m, copies)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.generator.GenerateLabelSheet(ctx, sheet)
	if err != nil {
		return nil, "", fmt.Errorf("labels: generar pdf: %w", err)
	}
	filename := fmt.Sprintf("etiquetas_%s.pdf", sanitizeFilename(m.Code))
	return pdf, filename, nil
}

func sanitizeFilename(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		}
		return '-'
	}, s)
}
