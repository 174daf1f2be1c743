package service

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"turmalink/backend/internal/dto"
)

// ExportService renders the directory dump as an .xlsx workbook, one sheet
// per collection.
type ExportService interface {
	ExportDirectory(ctx context.Context) ([]byte, error)
}

type exportService struct {
	directory DirectoryService
	logger    *zap.Logger
}

// NewExportService creates the ExportService.
func NewExportService(directory DirectoryService, logger *zap.Logger) ExportService {
	return &exportService{directory: directory, logger: logger}
}

func (s *exportService) ExportDirectory(ctx context.Context) ([]byte, error) {
	dump, err := s.directory.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := s.writeUsers(f, dump.Users); err != nil {
		return nil, err
	}
	if err := s.writeInstitutions(f, dump.Institutions); err != nil {
		return nil, err
	}
	if err := s.writeUnits(f, dump.Units); err != nil {
		return nil, err
	}
	if err := s.writeCourses(f, dump.Courses); err != nil {
		return nil, err
	}
	if err := s.writeClasses(f, dump.Classes); err != nil {
		return nil, err
	}
	if err := s.writeInvitations(f, dump.ProfessorInvitations, dump.StudentInvitations); err != nil {
		return nil, err
	}

	// the default sheet excelize creates is replaced by Users
	f.DeleteSheet("Sheet1")

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("render workbook failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("directory exported",
		zap.Int("users", len(dump.Users)),
		zap.Int("institutions", len(dump.Institutions)),
	)
	return buf.Bytes(), nil
}

func (s *exportService) writeUsers(f *excelize.File, users []dto.UserResponse) error {
	const sheet = "Users"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	header := []interface{}{"ID", "First Name", "Last Name", "Email", "Phone", "Role", "Confirmed"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, u := range users {
		row := []interface{}{u.ID, u.FirstName, u.LastName, u.Email, u.Phone, u.Role, u.Confirmed}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func (s *exportService) writeInstitutions(f *excelize.File, institutions []dto.InstitutionResponse) error {
	const sheet = "Institutions"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	header := []interface{}{"ID", "Owner User ID", "Name", "Confirmed"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, inst := range institutions {
		row := []interface{}{inst.ID, inst.UserID, inst.Name, inst.Confirmed}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func (s *exportService) writeUnits(f *excelize.File, units []dto.UnitResponse) error {
	const sheet = "Units"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	header := []interface{}{"ID", "Institution ID", "Name", "City", "State", "Confirmed"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, u := range units {
		row := []interface{}{u.ID, u.InstitutionID, u.Name, u.City, u.State, u.Confirmed}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func (s *exportService) writeCourses(f *excelize.File, courses []dto.CourseResponse) error {
	const sheet = "Courses"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	header := []interface{}{"ID", "Unit ID", "Professor ID", "Name", "Confirmed"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, c := range courses {
		unitID, professorID := "", ""
		if c.UnitID != nil {
			unitID = *c.UnitID
		}
		if c.ProfessorID != nil {
			professorID = *c.ProfessorID
		}
		row := []interface{}{c.ID, unitID, professorID, c.Name, c.Confirmed}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func (s *exportService) writeClasses(f *excelize.File, classes []dto.ClassResponse) error {
	const sheet = "Classes"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	header := []interface{}{"ID", "Professor ID", "Name", "Starts On", "Ends On", "Period"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, c := range classes {
		row := []interface{}{c.ID, c.ProfessorID, c.Name, c.StartsOn, c.EndsOn, c.Period}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func (s *exportService) writeInvitations(f *excelize.File, professor []dto.ProfessorInvitationResponse, student []dto.StudentInvitationResponse) error {
	const sheet = "Invitations"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	header := []interface{}{"ID", "Kind", "Target", "Invited Email", "Status", "Created At", "Responded At"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	rowNum := 2
	for _, inv := range professor {
		row := []interface{}{inv.ID, "professor", inv.UnitID, inv.InvitedEmail, inv.Status, inv.CreatedAt, inv.RespondedAt}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", rowNum), &row); err != nil {
			return err
		}
		rowNum++
	}
	for _, inv := range student {
		row := []interface{}{inv.ID, "student", inv.ClassID, inv.InvitedEmail, inv.Status, inv.CreatedAt, inv.RespondedAt}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", rowNum), &row); err != nil {
			return err
		}
		rowNum++
	}
	return nil
}
