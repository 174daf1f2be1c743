package dto

// DirectoryResponse is the full directory dump. Every collection uses the
// flat per-endpoint views, so the payload contains no cyclic references.
// The dump is unpaginated.
type DirectoryResponse struct {
	Users                []UserResponse                `json:"users"`
	Professors           []ProfessorResponse           `json:"professors"`
	Students             []StudentResponse             `json:"students"`
	Institutions         []InstitutionResponse         `json:"institutions"`
	Units                []UnitResponse                `json:"units"`
	Courses              []CourseResponse              `json:"courses"`
	Classes              []ClassResponse               `json:"classes"`
	ClassStudents        []EnrollmentResponse          `json:"class_students"`
	ClassCourses         []ClassCourseResponse         `json:"class_courses"`
	ProfessorUnits       []AffiliationResponse         `json:"professor_units"`
	ProfessorInvitations []ProfessorInvitationResponse `json:"professor_invitations"`
	StudentInvitations   []StudentInvitationResponse   `json:"student_invitations"`
	Invites              []InviteResponse              `json:"invites"`
}
