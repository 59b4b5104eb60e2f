package dto

import "github.com/jhoicas/bin-inventory-api/internal/domain/binstock"

// ScanPreviewRequest body para POST /api/materials/scan/preview.
type ScanPreviewRequest struct {
	Codes []string `json:"codes"`
}

// ScanEntryDTO una fila de la sesión de escaneo.
type ScanEntryDTO struct {
	ID        int           `json:"id"`
	RawCode   string        `json:"rawCode"`
	Status    string        `json:"status"` // idle | pending | resolved | invalid
	Movement  string        `json:"movement,omitempty"`
	Inferred  bool          `json:"inferred"`
	Confirmed bool          `json:"confirmed"`
	Token     string        `json:"token,omitempty"`
	Preview   *BinStatusDTO `json:"preview,omitempty"`
	Quantity  *int          `json:"quantity,omitempty"` // cantidad proyectada
	Error     string        `json:"error,omitempty"`
}

// ScanSessionResponse estado completo de una sesión.
type ScanSessionResponse struct {
	ID                   string         `json:"id,omitempty"`
	RequiresConfirmation bool           `json:"requiresConfirmation"`
	Entries              []ScanEntryDTO `json:"entries"`
	Valid                int            `json:"valid"`
	Invalid              int            `json:"invalid"`
	Pending              int            `json:"pending"`
}

// AppendEntryRequest body para POST /api/scan-sessions/:id/entries.
type AppendEntryRequest struct {
	RawCode string `json:"rawCode"`
	Resolve bool   `json:"resolve"` // resolver al agregar (escáner que envía Enter)
}

// UpdateEntryRequest body para PUT /api/scan-sessions/:id/entries/:entryId.
type UpdateEntryRequest struct {
	RawCode string `json:"rawCode"`
}

// ScanResultDTO resultado por token de un guardado.
type ScanResultDTO struct {
	Token    string `json:"token"`
	Material string `json:"material,omitempty"`
	Movement string `json:"movement,omitempty"`
	Before   int    `json:"before"`
	Quantity int    `json:"quantity"`
	Remark   string `json:"remark,omitempty"`
	Error    string `json:"error,omitempty"`
}

// ScanCommitResponse respuesta de POST /api/materials/scan/auto.
type ScanCommitResponse struct {
	BatchID string          `json:"batchId"`
	Results []ScanResultDTO `json:"results"`
}

// ScanCommitErrorResponse guardado rechazado: ningún token se aplicó.
type ScanCommitErrorResponse struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Results []ScanResultDTO `json:"results"`
}

// StockStateDTO atajo para exponer un estado proyectado.
func StockStateDTO(s binstock.MaterialStockState) BinStatusDTO {
	return NewBinStatusDTO(binstock.Classify(s.BinConfiguration, s.CurrentQuantity))
}
