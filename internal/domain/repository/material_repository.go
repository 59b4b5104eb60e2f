package repository

import (
	"context"

	"github.com/jhoicas/bin-inventory-api/internal/domain/entity"
)

// MaterialFilter filtros de listado de materiales.
type MaterialFilter struct {
	Search     string // coincide con code o description (ILIKE)
	VendorCode string
	Remark     string // shortage | preshortage | ok | invalid | N/A; vacío = todos
	Limit      int
	Offset     int
}

// MaterialRepository define el puerto de persistencia para Material (DIP).
type MaterialRepository interface {
	Create(ctx context.Context, material *entity.Material) error
	GetByID(ctx context.Context, id string) (*entity.Material, error)
	GetByCode(ctx context.Context, code string) (*entity.Material, error)
	// GetByCodeForUpdate bloquea la fila (SELECT FOR UPDATE); solo dentro de una transacción.
	GetByCodeForUpdate(ctx context.Context, code string) (*entity.Material, error)
	Update(ctx context.Context, material *entity.Material) error
	UpdateQuantity(ctx context.Context, id string, quantity int) error
	List(ctx context.Context, filter MaterialFilter) ([]*entity.Material, int, error)
	Delete(ctx context.Context, id string) error
}
