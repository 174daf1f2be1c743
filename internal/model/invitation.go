package model

import "time"

// Invitation lifecycle. Pending is initial; accepted and declined are
// terminal, no transition leaves a terminal state.
const (
	InvitationStatusPending  = "pending"
	InvitationStatusAccepted = "accepted"
	InvitationStatusDeclined = "declined"
)

// ProfessorInvitation maps to the professor_invitations table: a unit
// inviting a registered professor by email. At most one invitation may exist
// per (unit, invited email), enforced by a unique index.
type ProfessorInvitation struct {
	InvitationID string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"    json:"invitation_id"`
	UnitID       string     `gorm:"type:uuid;not null;uniqueIndex:uniq_unit_invitee"  json:"unit_id"`
	ProfessorID  *string    `gorm:"type:uuid"                                         json:"professor_id,omitempty"`
	InvitedEmail string     `gorm:"type:varchar(255);not null;uniqueIndex:uniq_unit_invitee" json:"invited_email"`
	Status       string     `gorm:"type:varchar(20);not null;default:'pending'"       json:"status"`
	CreatedAt    time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"                json:"created_at"`
	RespondedAt  *time.Time `json:"responded_at,omitempty"`

	Unit      *Unit      `gorm:"foreignKey:UnitID;references:UnitID"           json:"unit,omitempty"`
	Professor *Professor `gorm:"foreignKey:ProfessorID;references:ProfessorID" json:"professor,omitempty"`
}

// TableName sets the table name.
func (ProfessorInvitation) TableName() string { return "professor_invitations" }

// StudentInvitation maps to the student_invitations table: a class inviting a
// student by email. StudentID stays null until the invited email belongs to a
// registered student; inviting an unregistered email is allowed.
type StudentInvitation struct {
	InvitationID string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"    json:"invitation_id"`
	ClassID      string     `gorm:"type:uuid;not null;uniqueIndex:uniq_class_invitee" json:"class_id"`
	StudentID    *string    `gorm:"type:uuid"                                         json:"student_id,omitempty"`
	InvitedEmail string     `gorm:"type:varchar(255);not null;uniqueIndex:uniq_class_invitee" json:"invited_email"`
	Status       string     `gorm:"type:varchar(20);not null;default:'pending'"       json:"status"`
	CreatedAt    time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"                json:"created_at"`
	RespondedAt  *time.Time `json:"responded_at,omitempty"`

	Class   *Class   `gorm:"foreignKey:ClassID;references:ClassID"     json:"class,omitempty"`
	Student *Student `gorm:"foreignKey:StudentID;references:StudentID" json:"student,omitempty"`
}

// TableName sets the table name.
func (StudentInvitation) TableName() string { return "student_invitations" }
