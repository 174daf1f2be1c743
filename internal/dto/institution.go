package dto

// ── institution / unit DTOs ──

// CreateInstitutionRequest creates an institution owned by the caller.
type CreateInstitutionRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// InstitutionResponse is the institution view.
type InstitutionResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Confirmed bool   `json:"confirmed"`
}

// InstitutionWithUnitsResponse adds the institution's units.
type InstitutionWithUnitsResponse struct {
	InstitutionResponse
	Units []UnitResponse `json:"units"`
}

// CreateUnitRequest creates a unit under the caller's institution.
type CreateUnitRequest struct {
	Name       string `json:"name"        binding:"required,min=1,max=100"`
	Phone      string `json:"phone"       binding:"omitempty,max=45"`
	Address    string `json:"address"     binding:"omitempty,max=200"`
	State      string `json:"state"       binding:"omitempty,max=45"`
	City       string `json:"city"        binding:"omitempty,max=45"`
	District   string `json:"district"    binding:"omitempty,max=45"`
	PostalCode string `json:"postal_code" binding:"omitempty,max=45"`
}

// UnitResponse is the unit view.
type UnitResponse struct {
	ID            string `json:"id"`
	InstitutionID string `json:"institution_id"`
	Name          string `json:"name"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
	State         string `json:"state,omitempty"`
	City          string `json:"city,omitempty"`
	District      string `json:"district,omitempty"`
	PostalCode    string `json:"postal_code,omitempty"`
	Confirmed     bool   `json:"confirmed"`
}

// AffiliationResponse is the professor-unit affiliation view.
type AffiliationResponse struct {
	UnitID      string `json:"unit_id"`
	ProfessorID string `json:"professor_id"`
}
