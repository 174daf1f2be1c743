package dto

// ── user DTOs ──
//
// Response types are deliberately flat and non-cyclic: each endpoint shapes
// its own view instead of dumping entity graphs with back-references.

// UserResponse is the basic user view without role profiles.
type UserResponse struct {
	ID         string `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name,omitempty"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	AvatarLink string `json:"avatar_link,omitempty"`
	Role       string `json:"role,omitempty"`
	Confirmed  bool   `json:"confirmed"`
}

// UserWithProfileResponse is the current-user view including the role
// profile matching the user's role.
type UserWithProfileResponse struct {
	UserResponse
	Professor   *ProfessorResponse   `json:"professor,omitempty"`
	Student     *StudentResponse     `json:"student,omitempty"`
	Institution *InstitutionResponse `json:"institution,omitempty"`
}

// ProfessorResponse is the professor-profile view.
type ProfessorResponse struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
}

// StudentResponse is the student-profile view.
type StudentResponse struct {
	ID             string `json:"id"`
	UserID         string `json:"user_id"`
	EnrollmentCode string `json:"enrollment_code,omitempty"`
}
