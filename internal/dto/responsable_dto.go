package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearResponsableRequest struct {
	Cedula         int64   `json:"cedula"          validate:"required,min=1,max=99999999"`
	NombreCompleto string  `json:"nombre_completo" validate:"required,min=3,max=255"`
	Especialidad   *string `json:"especialidad"    validate:"omitempty,max=100"`
	Email          string  `json:"email"           validate:"required,email,max=100"`
	Telefono       *string `json:"telefono"        validate:"omitempty,max=50"`
}

type EditarResponsableRequest struct {
	Cedula         *int64  `json:"cedula"          validate:"omitempty,min=1,max=99999999"`
	NombreCompleto *string `json:"nombre_completo" validate:"omitempty,min=3,max=255"`
	Especialidad   *string `json:"especialidad"    validate:"omitempty,max=100"`
	Email          *string `json:"email"           validate:"omitempty,email,max=100"`
	Telefono       *string `json:"telefono"        validate:"omitempty,max=50"`
}

type AsignarProyectoRequest struct {
	ProyectoID    uint    `json:"proyecto_id"    validate:"required"`
	ResponsableID uint    `json:"responsable_id" validate:"required"`
	Rol           *string `json:"rol"            validate:"omitempty,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ResponsableResponse struct {
	ID             uint    `json:"id"`
	Cedula         int64   `json:"cedula"`
	NombreCompleto string  `json:"nombre_completo"`
	Especialidad   *string `json:"especialidad"`
	Email          string  `json:"email"`
	Telefono       *string `json:"telefono"`
}

// StaffResponse is a project-staff listing row: a responsable plus the rol it
// holds within that project.
type StaffResponse struct {
	ResponsableResponse
	Rol *string `json:"rol"`
}
