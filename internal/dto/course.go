package dto

// ── course / class DTOs ──

// CreateCourseRequest creates a course under a unit.
type CreateCourseRequest struct {
	UnitID      string `json:"unit_id"     binding:"required,uuid"`
	Name        string `json:"name"        binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"omitempty"`
}

// CourseResponse is the course view.
type CourseResponse struct {
	ID          string  `json:"id"`
	UnitID      *string `json:"unit_id,omitempty"`
	ProfessorID *string `json:"professor_id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Confirmed   bool    `json:"confirmed"`
}

// CreateClassRequest creates a class owned by the calling professor.
type CreateClassRequest struct {
	Name     string `json:"name"      binding:"required,min=1,max=45"`
	StartsOn string `json:"starts_on" binding:"omitempty,datetime=2006-01-02"`
	EndsOn   string `json:"ends_on"   binding:"omitempty,datetime=2006-01-02"`
	Period   string `json:"period"    binding:"omitempty,max=45"`
}

// ClassResponse is the class view.
type ClassResponse struct {
	ID          string `json:"id"`
	ProfessorID string `json:"professor_id"`
	Name        string `json:"name"`
	StartsOn    string `json:"starts_on,omitempty"`
	EndsOn      string `json:"ends_on,omitempty"`
	Period      string `json:"period,omitempty"`
}

// EnrollmentResponse is the class-student join view.
type EnrollmentResponse struct {
	ClassID   string `json:"class_id"`
	StudentID string `json:"student_id"`
}

// ClassCourseResponse is the class-course join view.
type ClassCourseResponse struct {
	ClassID  string `json:"class_id"`
	CourseID string `json:"course_id"`
}
