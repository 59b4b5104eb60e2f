package entity

// Roles válidos del tablero.
const (
	RoleAdmin  = "Admin"           // gestiona maestro de materiales y escanea
	RolePIC    = "PIC"             // responsable de material: escanea
	RoleVendor = "External/Vendor" // solo lectura

	RoleProductionPlanning = "Production Planning" // solo lectura
)

// Principal identidad de solo lectura extraída del token (no se persiste en este servicio).
type Principal struct {
	UserID      string
	Username    string
	Role        string
	CompanyName string
	VendorType  string
}

// HasRole indica si el principal tiene alguno de los roles.
func (p Principal) HasRole(roles ...string) bool {
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}
