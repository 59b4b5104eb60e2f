package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bin-inventory-api/internal/domain/binstock"
)

// CreateMaterialRequest body para POST /api/materials.
// Si TotalBins > 0, MaxBinQty se calcula como PackQuantity * TotalBins.
type CreateMaterialRequest struct {
	Code            string `json:"material"`
	Description     string `json:"materialDescription"`
	Location        string `json:"lokasi"`
	VendorCode      string `json:"vendorCode"`
	PIC             string `json:"pic"`
	PackQuantity    int    `json:"packQuantity"`
	MaxBinQty       int    `json:"maxBinQty"`
	TotalBins       int    `json:"totalBins,omitempty"`
	MinBinQty       int    `json:"minBinQty"`
	CurrentQuantity int    `json:"currentQuantity"`
}

// UpdateMaterialRequest body para PUT /api/materials/:id. Los campos nil no se modifican.
type UpdateMaterialRequest struct {
	Code            *string `json:"material"`
	Description     *string `json:"materialDescription"`
	Location        *string `json:"lokasi"`
	VendorCode      *string `json:"vendorCode"`
	PIC             *string `json:"pic"`
	PackQuantity    *int    `json:"packQuantity"`
	MaxBinQty       *int    `json:"maxBinQty"`
	TotalBins       *int    `json:"totalBins,omitempty"`
	MinBinQty       *int    `json:"minBinQty"`
	CurrentQuantity *int    `json:"currentQuantity"`
}

// MaterialListFilter query de GET /api/materials.
type MaterialListFilter struct {
	PageRequest
	Search     string `query:"search"`
	VendorCode string `query:"vendorCode"`
	Remark     string `query:"remark"` // shortage | preshortage | ok | invalid | N/A
}

// BinStatusDTO clasificación de llenado de un material.
type BinStatusDTO struct {
	Remark    string                 `json:"remark"`
	Color     string                 `json:"color"`
	Label     string                 `json:"label"`
	TotalBins int                    `json:"totalBins"`
	FillRatio decimal.Decimal        `json:"fillRatio"`
	Bins      []binstock.FillSegment `json:"bins"`
}

// NewBinStatusDTO arma la vista de una clasificación.
func NewBinStatusDTO(c binstock.Classification) BinStatusDTO {
	return BinStatusDTO{
		Remark:    c.Remark(),
		Color:     c.Status.Color(),
		Label:     c.Label(),
		TotalBins: c.Config.TotalBins(),
		FillRatio: c.FillRatio(),
		Bins:      c.Bins,
	}
}

// MaterialResponse salida de un material con su clasificación.
type MaterialResponse struct {
	ID              string       `json:"id"`
	Code            string       `json:"material"`
	Description     string       `json:"materialDescription"`
	Location        string       `json:"lokasi"`
	VendorCode      string       `json:"vendorCode"`
	PIC             string       `json:"pic"`
	PackQuantity    int          `json:"packQuantity"`
	MaxBinQty       int          `json:"maxBinQty"`
	MinBinQty       int          `json:"minBinQty"`
	CurrentQuantity int          `json:"currentQuantity"`
	Status          BinStatusDTO `json:"status"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

// MaterialListResponse lista paginada de materiales.
type MaterialListResponse struct {
	Items []MaterialResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// MaterialStatusResponse respuesta de GET /api/materials/status?code=.
type MaterialStatusResponse struct {
	PackQuantity    int `json:"packQuantity"`
	MaxBinQty       int `json:"maxBinQty"`
	MinBinQty       int `json:"minBinQty"`
	CurrentQuantity int `json:"currentQuantity"`
}

// StockMovementResponse un movimiento registrado.
type StockMovementResponse struct {
	ID             string          `json:"id"`
	BatchID        string          `json:"batchId"`
	MaterialCode   string          `json:"material"`
	Type           string          `json:"type"`
	Quantity       int             `json:"quantity"`
	QuantityBefore int             `json:"quantityBefore"`
	QuantityAfter  int             `json:"quantityAfter"`
	FillRatio      decimal.Decimal `json:"fillRatio"`
	CreatedBy      string          `json:"createdBy"`
	CreatedAt      time.Time       `json:"createdAt"`
}
