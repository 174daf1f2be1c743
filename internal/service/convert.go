package service

import (
	stderrors "errors"
	"time"

	"gorm.io/gorm"

	"turmalink/backend/internal/dto"
	"turmalink/backend/internal/model"
)

// Model to DTO conversion helpers shared across services.

func isUniqueViolation(err error) bool {
	return stderrors.Is(err, gorm.ErrDuplicatedKey)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func toUserResponse(u *model.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:         u.UserID,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Email:      u.Email,
		Phone:      u.Phone,
		AvatarLink: u.AvatarLink,
		Role:       u.Role,
		Confirmed:  u.Confirmed,
	}
}

func toProfessorResponse(p *model.Professor) *dto.ProfessorResponse {
	return &dto.ProfessorResponse{ID: p.ProfessorID, UserID: p.UserID}
}

func toStudentResponse(s *model.Student) *dto.StudentResponse {
	return &dto.StudentResponse{
		ID:             s.StudentID,
		UserID:         s.UserID,
		EnrollmentCode: s.EnrollmentCode,
	}
}

func toInstitutionResponse(i *model.Institution) *dto.InstitutionResponse {
	return &dto.InstitutionResponse{
		ID:        i.InstitutionID,
		UserID:    i.UserID,
		Name:      i.Name,
		Confirmed: i.Confirmed,
	}
}

func toUnitResponse(u *model.Unit) *dto.UnitResponse {
	return &dto.UnitResponse{
		ID:            u.UnitID,
		InstitutionID: u.InstitutionID,
		Name:          u.Name,
		Phone:         u.Phone,
		Address:       u.Address,
		State:         u.State,
		City:          u.City,
		District:      u.District,
		PostalCode:    u.PostalCode,
		Confirmed:     u.Confirmed,
	}
}

func toCourseResponse(c *model.Course) *dto.CourseResponse {
	return &dto.CourseResponse{
		ID:          c.CourseID,
		UnitID:      c.UnitID,
		ProfessorID: c.ProfessorID,
		Name:        c.Name,
		Description: c.Description,
		Confirmed:   c.Confirmed,
	}
}

func toClassResponse(c *model.Class) *dto.ClassResponse {
	return &dto.ClassResponse{
		ID:          c.ClassID,
		ProfessorID: c.ProfessorID,
		Name:        c.Name,
		StartsOn:    formatDate(c.StartsOn),
		EndsOn:      formatDate(c.EndsOn),
		Period:      c.Period,
	}
}

func toProfessorInvitationResponse(inv *model.ProfessorInvitation) *dto.ProfessorInvitationResponse {
	resp := &dto.ProfessorInvitationResponse{
		ID:           inv.InvitationID,
		UnitID:       inv.UnitID,
		ProfessorID:  inv.ProfessorID,
		InvitedEmail: inv.InvitedEmail,
		Status:       inv.Status,
		CreatedAt:    formatTime(inv.CreatedAt),
	}
	if inv.RespondedAt != nil {
		resp.RespondedAt = formatTime(*inv.RespondedAt)
	}
	return resp
}

func toStudentInvitationResponse(inv *model.StudentInvitation) *dto.StudentInvitationResponse {
	resp := &dto.StudentInvitationResponse{
		ID:           inv.InvitationID,
		ClassID:      inv.ClassID,
		StudentID:    inv.StudentID,
		InvitedEmail: inv.InvitedEmail,
		Status:       inv.Status,
		CreatedAt:    formatTime(inv.CreatedAt),
	}
	if inv.RespondedAt != nil {
		resp.RespondedAt = formatTime(*inv.RespondedAt)
	}
	return resp
}

func toInviteResponse(i *model.Invite) *dto.InviteResponse {
	return &dto.InviteResponse{
		ID:           i.InviteID,
		Kind:         string(i.Kind()),
		InvitationID: i.RefID(),
		CreatedAt:    formatTime(i.CreatedAt),
	}
}

func toMessageResponse(m *model.Message) *dto.MessageResponse {
	resp := &dto.MessageResponse{
		ID:          m.MessageID,
		RecipientID: m.RecipientID,
		Kind:        m.Kind,
		Status:      m.Status,
		InviteID:    m.InviteID,
		CreatedAt:   formatTime(m.CreatedAt),
	}
	if m.Body != nil {
		resp.Body = *m.Body
	}
	if m.Sender != nil {
		resp.Sender = toUserResponse(m.Sender)
	}
	return resp
}
