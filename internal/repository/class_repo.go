package repository

import (
	"context"

	"gorm.io/gorm"

	"turmalink/backend/internal/model"
)

// ClassRepository is the class ("turma") data-access interface, including
// the enrollment and course join tables.
type ClassRepository interface {
	Create(ctx context.Context, class *model.Class) error
	GetByID(ctx context.Context, id string) (*model.Class, error)
	List(ctx context.Context) ([]model.Class, error)
	AddStudent(ctx context.Context, enrollment *model.ClassStudent) error
	ListStudents(ctx context.Context, classID string) ([]model.ClassStudent, error)
	ListAllEnrollments(ctx context.Context) ([]model.ClassStudent, error)
	AddCourse(ctx context.Context, link *model.ClassCourse) error
	ListAllCourseLinks(ctx context.Context) ([]model.ClassCourse, error)
}

type classRepo struct {
	db *gorm.DB
}

// NewClassRepo creates the gorm-backed ClassRepository.
func NewClassRepo(db *gorm.DB) ClassRepository {
	return &classRepo{db: db}
}

func (r *classRepo) Create(ctx context.Context, class *model.Class) error {
	return r.db.WithContext(ctx).Create(class).Error
}

func (r *classRepo) GetByID(ctx context.Context, id string) (*model.Class, error) {
	var class model.Class
	err := r.db.WithContext(ctx).
		Where("class_id = ?", id).
		First(&class).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *classRepo) List(ctx context.Context) ([]model.Class, error) {
	var classes []model.Class
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&classes).Error
	if err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *classRepo) AddStudent(ctx context.Context, enrollment *model.ClassStudent) error {
	return r.db.WithContext(ctx).Create(enrollment).Error
}

func (r *classRepo) ListStudents(ctx context.Context, classID string) ([]model.ClassStudent, error) {
	var enrollments []model.ClassStudent
	err := r.db.WithContext(ctx).
		Where("class_id = ?", classID).
		Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (r *classRepo) ListAllEnrollments(ctx context.Context) ([]model.ClassStudent, error) {
	var enrollments []model.ClassStudent
	err := r.db.WithContext(ctx).Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (r *classRepo) AddCourse(ctx context.Context, link *model.ClassCourse) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *classRepo) ListAllCourseLinks(ctx context.Context) ([]model.ClassCourse, error) {
	var links []model.ClassCourse
	err := r.db.WithContext(ctx).Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}
