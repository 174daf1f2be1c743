package model

import "time"

// InviteKind discriminates which invitation an envelope wraps.
type InviteKind string

const (
	InviteKindProfessor InviteKind = "professor"
	InviteKindStudent   InviteKind = "student"
)

// Invite is the polymorphic envelope giving messages a single reference type
// for "this message is about an invitation". Exactly one of the two
// references is populated; a CHECK constraint backs this at the storage
// layer, and the constructors below are the only sanctioned way to build one.
type Invite struct {
	InviteID              string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"invite_id"`
	ProfessorInvitationID *string   `gorm:"type:uuid"                                      json:"professor_invitation_id,omitempty"`
	StudentInvitationID   *string   `gorm:"type:uuid"                                      json:"student_invitation_id,omitempty"`
	CreatedAt             time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`

	ProfessorInvitation *ProfessorInvitation `gorm:"foreignKey:ProfessorInvitationID;references:InvitationID" json:"professor_invitation,omitempty"`
	StudentInvitation   *StudentInvitation   `gorm:"foreignKey:StudentInvitationID;references:InvitationID"   json:"student_invitation,omitempty"`
}

// TableName sets the table name.
func (Invite) TableName() string { return "invites" }

// NewProfessorInvite builds an envelope wrapping a professor invitation.
func NewProfessorInvite(invitationID string) *Invite {
	return &Invite{ProfessorInvitationID: &invitationID}
}

// NewStudentInvite builds an envelope wrapping a student invitation.
func NewStudentInvite(invitationID string) *Invite {
	return &Invite{StudentInvitationID: &invitationID}
}

// Kind reports which invitation type the envelope wraps.
func (i *Invite) Kind() InviteKind {
	if i.ProfessorInvitationID != nil {
		return InviteKindProfessor
	}
	return InviteKindStudent
}

// RefID returns the id of the wrapped invitation.
func (i *Invite) RefID() string {
	if i.ProfessorInvitationID != nil {
		return *i.ProfessorInvitationID
	}
	if i.StudentInvitationID != nil {
		return *i.StudentInvitationID
	}
	return ""
}
