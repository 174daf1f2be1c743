package dto

// ── invitation DTOs ──

// InviteProfessorRequest invites a registered professor to a unit.
type InviteProfessorRequest struct {
	UnitID string `json:"unit_id" binding:"required,uuid"`
	Email  string `json:"email"   binding:"required,email"`
}

// InviteStudentRequest invites an email (registered or not) to a class.
type InviteStudentRequest struct {
	ClassID string `json:"class_id" binding:"required,uuid"`
	Email   string `json:"email"    binding:"required,email"`
}

// RespondInvitationRequest accepts or declines a pending invitation.
type RespondInvitationRequest struct {
	Decision string `json:"decision" binding:"required,oneof=accept decline"`
}

// ProfessorInvitationResponse is the professor-invitation view.
type ProfessorInvitationResponse struct {
	ID           string  `json:"id"`
	UnitID       string  `json:"unit_id"`
	ProfessorID  *string `json:"professor_id,omitempty"`
	InvitedEmail string  `json:"invited_email"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
	RespondedAt  string  `json:"responded_at,omitempty"`
}

// StudentInvitationResponse is the student-invitation view.
type StudentInvitationResponse struct {
	ID           string  `json:"id"`
	ClassID      string  `json:"class_id"`
	StudentID    *string `json:"student_id,omitempty"`
	InvitedEmail string  `json:"invited_email"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
	RespondedAt  string  `json:"responded_at,omitempty"`
}

// InviteResponse is the flat view of an invite envelope: the kind tag plus
// the id of the wrapped invitation.
type InviteResponse struct {
	ID           string `json:"id"`
	Kind         string `json:"kind"`
	InvitationID string `json:"invitation_id"`
	CreatedAt    string `json:"created_at"`
}

// DuplicateInvitationResponse carries the existing invitation's id when a
// duplicate invite is attempted.
type DuplicateInvitationResponse struct {
	ExistingID string `json:"existing_id"`
}
