package repository

import (
	"context"

	"gorm.io/gorm"
)

// TxManager runs a function inside a database transaction. The function
// receives a Repository clone scoped to that transaction; every write made
// through the clone commits or rolls back as one unit. Returning an error
// (or panicking) rolls the transaction back.
type TxManager interface {
	Transaction(ctx context.Context, fn func(txRepo *Repository) error) error
}

// Repository aggregates every entity repository.
type Repository struct {
	Tx TxManager

	User                UserRepository
	Professor           ProfessorRepository
	Student             StudentRepository
	Institution         InstitutionRepository
	Unit                UnitRepository
	Course              CourseRepository
	Class               ClassRepository
	ProfessorUnit       ProfessorUnitRepository
	ProfessorInvitation ProfessorInvitationRepository
	StudentInvitation   StudentInvitationRepository
	Invite              InviteRepository
	Message             MessageRepository
}

// NewRepository creates the repository aggregate over a gorm connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Tx:                  &gormTxManager{db: db},
		User:                NewUserRepo(db),
		Professor:           NewProfessorRepo(db),
		Student:             NewStudentRepo(db),
		Institution:         NewInstitutionRepo(db),
		Unit:                NewUnitRepo(db),
		Course:              NewCourseRepo(db),
		Class:               NewClassRepo(db),
		ProfessorUnit:       NewProfessorUnitRepo(db),
		ProfessorInvitation: NewProfessorInvitationRepo(db),
		StudentInvitation:   NewStudentInvitationRepo(db),
		Invite:              NewInviteRepo(db),
		Message:             NewMessageRepo(db),
	}
}

type gormTxManager struct {
	db *gorm.DB
}

func (m *gormTxManager) Transaction(ctx context.Context, fn func(txRepo *Repository) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}
