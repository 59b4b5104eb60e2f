package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/bin-inventory-api/internal/application/dto"
	"github.com/jhoicas/bin-inventory-api/internal/domain"
	"github.com/jhoicas/bin-inventory-api/internal/domain/binstock"
	"github.com/jhoicas/bin-inventory-api/internal/domain/entity"
	"github.com/jhoicas/bin-inventory-api/internal/domain/repository"
	"github.com/jhoicas/bin-inventory-api/pkg/logger"
)

// MaterialUseCase casos de uso CRUD del maestro de materiales.
// La cantidad actual se mueve con escaneos; aquí solo se fija al crear o por corrección administrativa.
type MaterialUseCase struct {
	repo repository.MaterialRepository
	log  *logger.Logger
}

// NewMaterialUseCase construye el caso de uso.
func NewMaterialUseCase(repo repository.MaterialRepository, log *logger.Logger) *MaterialUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &MaterialUseCase{repo: repo, log: log}
}

// Create crea un material. Acepta maxBinQty directo o totalBins (max = pack * totalBins).
func (uc *MaterialUseCase) Create(ctx context.Context, in dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	in.Code = strings.TrimSpace(in.Code)
	in.VendorCode = strings.TrimSpace(in.VendorCode)
	if in.TotalBins > 0 {
		in.MaxBinQty = in.PackQuantity * in.TotalBins
	}
	m := &entity.Material{
		Code:            in.Code,
		Description:     in.Description,
		Location:        in.Location,
		VendorCode:      in.VendorCode,
		PIC:             in.PIC,
		PackQuantity:    in.PackQuantity,
		MaxBinQty:       in.MaxBinQty,
		MinBinQty:       in.MinBinQty,
		CurrentQuantity: in.CurrentQuantity,
	}
	if err := validateMaterial(m); err != nil {
		return nil, err
	}

	existing, err := uc.repo.GetByCode(ctx, m.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	m.ID = uuid.New().String()
	m.CreatedAt = now
	m.UpdatedAt = now
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	uc.log.Info().Str("material", m.Code).Int("max_bin_qty", m.MaxBinQty).Msg("material creado")
	return toMaterialResponse(m), nil
}

// GetByID obtiene un material por ID.
func (uc *MaterialUseCase) GetByID(ctx context.Context, id string) (*dto.MaterialResponse, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	return toMaterialResponse(m), nil
}

// Update actualiza un material. Si se envía totalBins, recalcula maxBinQty con el pack resultante.
func (uc *MaterialUseCase) Update(ctx context.Context, id string, in dto.UpdateMaterialRequest) (*dto.MaterialResponse, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	if in.Code != nil && strings.TrimSpace(*in.Code) != m.Code {
		code := strings.TrimSpace(*in.Code)
		other, err := uc.repo.GetByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != m.ID {
			return nil, domain.ErrDuplicate
		}
		m.Code = code
	}
	if in.Description != nil {
		m.Description = *in.Description
	}
	if in.Location != nil {
		m.Location = *in.Location
	}
	if in.VendorCode != nil {
		m.VendorCode = strings.TrimSpace(*in.VendorCode)
	}
	if in.PIC != nil {
		m.PIC = *in.PIC
	}
	if in.PackQuantity != nil {
		m.PackQuantity = *in.PackQuantity
	}
	if in.MaxBinQty != nil {
		m.MaxBinQty = *in.MaxBinQty
	}
	if in.TotalBins != nil && *in.TotalBins > 0 {
		m.MaxBinQty = m.PackQuantity * *in.TotalBins
	}
	if in.MinBinQty != nil {
		m.MinBinQty = *in.MinBinQty
	}
	if in.CurrentQuantity != nil {
		m.CurrentQuantity = *in.CurrentQuantity
	}
	if err := validateMaterial(m); err != nil {
		return nil, err
	}
	m.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return toMaterialResponse(m), nil
}

// List lista materiales con su clasificación de llenado.
func (uc *MaterialUseCase) List(ctx context.Context, f dto.MaterialListFilter) (*dto.MaterialListResponse, error) {
	f.DefaultPage()
	if f.Remark != "" && !validRemark(f.Remark) {
		return nil, fmt.Errorf("%w: remark %q", domain.ErrInvalidInput, f.Remark)
	}
	list, total, err := uc.repo.List(ctx, repository.MaterialFilter{
		Search:     strings.TrimSpace(f.Search),
		VendorCode: f.VendorCode,
		Remark:     f.Remark,
		Limit:      f.Limit,
		Offset:     f.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.MaterialResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMaterialResponse(m))
	}
	return &dto.MaterialListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset, Total: total},
	}, nil
}

// Delete elimina un material por ID.
func (uc *MaterialUseCase) Delete(ctx context.Context, id string) error {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func validRemark(r string) bool {
	switch r {
	case binstock.StatusShortage.Remark(), binstock.StatusPreShortage.Remark(),
		binstock.StatusOk.Remark(), binstock.StatusInvalid.Remark(), binstock.StatusUnconfigured.Remark():
		return true
	}
	return false
}

// validateMaterial reglas del formulario de alta/edición: código y vendor obligatorios,
// pack > 0, min >= 0, max >= min.
func validateMaterial(m *entity.Material) error {
	if m.Code == "" || m.VendorCode == "" {
		return fmt.Errorf("%w: material y vendorCode son obligatorios", domain.ErrInvalidInput)
	}
	if strings.Contains(m.Code, "_") {
		// el código viaja en etiquetas "{code}_IN"; un "_" lo haría ambiguo
		return fmt.Errorf("%w: el código de material no puede contener '_'", domain.ErrInvalidInput)
	}
	if err := m.BinConfiguration().Validate(); err != nil {
		return err
	}
	if m.MaxBinQty == 0 {
		return fmt.Errorf("%w: maxBinQty (o totalBins) debe ser mayor que 0", domain.ErrInvalidInput)
	}
	if m.CurrentQuantity < 0 || m.CurrentQuantity > m.MaxBinQty {
		return fmt.Errorf("%w: currentQuantity fuera de [0, %d]", domain.ErrInvalidInput, m.MaxBinQty)
	}
	return nil
}

func toMaterialResponse(m *entity.Material) *dto.MaterialResponse {
	if m == nil {
		return nil
	}
	return &dto.MaterialResponse{
		ID:              m.ID,
		Code:            m.Code,
		Description:     m.Description,
		Location:        m.Location,
		VendorCode:      m.VendorCode,
		PIC:             m.PIC,
		PackQuantity:    m.PackQuantity,
		MaxBinQty:       m.MaxBinQty,
		MinBinQty:       m.MinBinQty,
		CurrentQuantity: m.CurrentQuantity,
		Status:          dto.NewBinStatusDTO(binstock.Classify(m.BinConfiguration(), m.CurrentQuantity)),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
