package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"turmalink/backend/internal/model"
	"turmalink/backend/internal/repository"
)

// memDB is the shared in-memory store backing the mock repositories. All
// maps key by primary id; join tables live as slices.
type memDB struct {
	mu sync.Mutex

	users                map[string]*model.User
	professors           map[string]*model.Professor
	students             map[string]*model.Student
	institutions         map[string]*model.Institution
	units                map[string]*model.Unit
	courses              map[string]*model.Course
	classes              map[string]*model.Class
	classStudents        []model.ClassStudent
	classCourses         []model.ClassCourse
	professorUnits       []model.ProfessorUnit
	professorInvitations map[string]*model.ProfessorInvitation
	studentInvitations   map[string]*model.StudentInvitation
	invites              map[string]*model.Invite
	messages             map[string]*model.Message

	seq int
}

func newMemDB() *memDB {
	return &memDB{
		users:                make(map[string]*model.User),
		professors:           make(map[string]*model.Professor),
		students:             make(map[string]*model.Student),
		institutions:         make(map[string]*model.Institution),
		units:                make(map[string]*model.Unit),
		courses:              make(map[string]*model.Course),
		classes:              make(map[string]*model.Class),
		professorInvitations: make(map[string]*model.ProfessorInvitation),
		studentInvitations:   make(map[string]*model.StudentInvitation),
		invites:              make(map[string]*model.Invite),
		messages:             make(map[string]*model.Message),
	}
}

func (db *memDB) nextID(prefix string) string {
	db.seq++
	return fmt.Sprintf("%s-%04d", prefix, db.seq)
}

// snapshot deep-copies every collection so a failed transaction can be
// rolled back.
func (db *memDB) snapshot() *memDB {
	cp := newMemDB()
	cp.seq = db.seq
	for k, v := range db.users {
		u := *v
		cp.users[k] = &u
	}
	for k, v := range db.professors {
		p := *v
		cp.professors[k] = &p
	}
	for k, v := range db.students {
		s := *v
		cp.students[k] = &s
	}
	for k, v := range db.institutions {
		i := *v
		cp.institutions[k] = &i
	}
	for k, v := range db.units {
		u := *v
		cp.units[k] = &u
	}
	for k, v := range db.courses {
		c := *v
		cp.courses[k] = &c
	}
	for k, v := range db.classes {
		c := *v
		cp.classes[k] = &c
	}
	cp.classStudents = append([]model.ClassStudent(nil), db.classStudents...)
	cp.classCourses = append([]model.ClassCourse(nil), db.classCourses...)
	cp.professorUnits = append([]model.ProfessorUnit(nil), db.professorUnits...)
	for k, v := range db.professorInvitations {
		inv := *v
		cp.professorInvitations[k] = &inv
	}
	for k, v := range db.studentInvitations {
		inv := *v
		cp.studentInvitations[k] = &inv
	}
	for k, v := range db.invites {
		i := *v
		cp.invites[k] = &i
	}
	for k, v := range db.messages {
		m := *v
		cp.messages[k] = &m
	}
	return cp
}

func (db *memDB) restore(from *memDB) {
	db.users = from.users
	db.professors = from.professors
	db.students = from.students
	db.institutions = from.institutions
	db.units = from.units
	db.courses = from.courses
	db.classes = from.classes
	db.classStudents = from.classStudents
	db.classCourses = from.classCourses
	db.professorUnits = from.professorUnits
	db.professorInvitations = from.professorInvitations
	db.studentInvitations = from.studentInvitations
	db.invites = from.invites
	db.messages = from.messages
	db.seq = from.seq
}

// attachProfiles fills the user's role-profile associations the way the real
// repository's preloads do.
func (db *memDB) attachProfiles(u *model.User) *model.User {
	out := *u
	out.Professor, out.Student, out.Institution = nil, nil, nil
	for _, p := range db.professors {
		if p.UserID == out.UserID {
			cp := *p
			out.Professor = &cp
		}
	}
	for _, s := range db.students {
		if s.UserID == out.UserID {
			cp := *s
			out.Student = &cp
		}
	}
	for _, i := range db.institutions {
		if i.UserID == out.UserID {
			cp := *i
			out.Institution = &cp
		}
	}
	return &out
}

// newTestRepo builds a Repository aggregate over mock repositories plus the
// backing store for direct assertions.
func newTestRepo() (*repository.Repository, *memDB) {
	db := newMemDB()
	repo := &repository.Repository{
		User:                &memUserRepo{db},
		Professor:           &memProfessorRepo{db},
		Student:             &memStudentRepo{db},
		Institution:         &memInstitutionRepo{db},
		Unit:                &memUnitRepo{db},
		Course:              &memCourseRepo{db},
		Class:               &memClassRepo{db},
		ProfessorUnit:       &memProfessorUnitRepo{db},
		ProfessorInvitation: &memProfessorInvitationRepo{db},
		StudentInvitation:   &memStudentInvitationRepo{db},
		Invite:              &memInviteRepo{db},
		Message:             &memMessageRepo{db: db},
	}
	repo.Tx = &memTxManager{db: db, repo: repo}
	return repo, db
}

// memTxManager mimics transactional semantics by snapshotting the store and
// restoring it when the function fails.
type memTxManager struct {
	db   *memDB
	repo *repository.Repository
}

func (m *memTxManager) Transaction(ctx context.Context, fn func(txRepo *repository.Repository) error) error {
	before := m.db.snapshot()
	if err := fn(m.repo); err != nil {
		m.db.restore(before)
		return err
	}
	return nil
}

// ── users ──

type memUserRepo struct{ db *memDB }

func (r *memUserRepo) Create(ctx context.Context, user *model.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, u := range r.db.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.UserID == "" {
		user.UserID = r.db.nextID("user")
	}
	user.CreatedAt = time.Now()
	cp := *user
	r.db.users[user.UserID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	u, ok := r.db.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r.db.attachProfiles(u), nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, u := range r.db.users {
		if u.Email == email {
			return r.db.attachProfiles(u), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) Update(ctx context.Context, user *model.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.users[user.UserID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *user
	r.db.users[user.UserID] = &cp
	return nil
}

func (r *memUserRepo) List(ctx context.Context) ([]model.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := make([]model.User, 0, len(r.db.users))
	for _, u := range r.db.users {
		out = append(out, *u)
	}
	return out, nil
}

// ── professors ──

type memProfessorRepo struct{ db *memDB }

func (r *memProfessorRepo) Create(ctx context.Context, professor *model.Professor) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, p := range r.db.professors {
		if p.UserID == professor.UserID {
			return gorm.ErrDuplicatedKey
		}
	}
	if professor.ProfessorID == "" {
		professor.ProfessorID = r.db.nextID("prof")
	}
	cp := *professor
	r.db.professors[professor.ProfessorID] = &cp
	return nil
}

func (r *memProfessorRepo) GetByID(ctx context.Context, id string) (*model.Professor, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	p, ok := r.db.professors[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memProfessorRepo) GetByUserID(ctx context.Context, userID string) (*model.Professor, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, p := range r.db.professors {
		if p.UserID == userID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memProfessorRepo) List(ctx context.Context) ([]model.Professor, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := make([]model.Professor, 0, len(r.db.professors))
	for _, p := range r.db.professors {
		out = append(out, *p)
	}
	return out, nil
}

// ── students ──

type memStudentRepo struct{ db *memDB }

func (r *memStudentRepo) Create(ctx context.Context, student *model.Student) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, s := range r.db.students {
		if s.UserID == student.UserID {
			return gorm.ErrDuplicatedKey
		}
	}
	if student.StudentID == "" {
		student.StudentID = r.db.nextID("stud")
	}
	cp := *student
	r.db.students[student.StudentID] = &cp
	return nil
}

func (r *memStudentRepo) GetByID(ctx context.Context, id string) (*model.Student, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	s, ok := r.db.students[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *memStudentRepo) GetByUserID(ctx context.Context, userID string) (*model.Student, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, s := range r.db.students {
		if s.UserID == userID {
			cp := *s
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memStudentRepo) List(ctx context.Context) ([]model.Student, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := make([]model.Student, 0, len(r.db.students))
	for _, s := range r.db.students {
		out = append(out, *s)
	}
	return out, nil
}

// ── institutions ──

type memInstitutionRepo struct{ db *memDB }

func (r *memInstitutionRepo) Create(ctx context.Context, institution *model.Institution) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, i := range r.db.institutions {
		if i.UserID == institution.UserID {
			return gorm.ErrDuplicatedKey
		}
	}
	if institution.InstitutionID == "" {
		institution.InstitutionID = r.db.nextID("inst")
	}
	cp := *institution
	r.db.institutions[institution.InstitutionID] = &cp
	return nil
}

func (r *memInstitutionRepo) GetByID(ctx context.Context, id string) (*model.Institution, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	i, ok := r.db.institutions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *i
	return &cp, nil
}

func (r *memInstitutionRepo) GetByUserID(ctx context.Context, userID string) (*model.Institution, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, i := range r.db.institutions {
		if i.UserID == userID {
			cp := *i
			cp.Units = nil
			for _, u := range r.db.units {
				if u.InstitutionID == cp.InstitutionID {
					cp.Units = append(cp.Units, *u)
				}
			}
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memInstitutionRepo) List(ctx context.Context) ([]model.Institution, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := make([]model.Institution, 0, len(r.db.institutions))
	for _, i := range r.db.institutions {
		out = append(out, *i)
	}
	return out, nil
}

// ── units ──

type memUnitRepo struct{ db *memDB }

func (r *memUnitRepo) Create(ctx context.Context, unit *model.Unit) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if unit.UnitID == "" {
		unit.UnitID = r.db.nextID("unit")
	}
	cp := *unit
	r.db.units[unit.UnitID] = &cp
	return nil
}

func (r *memUnitRepo) GetByID(ctx context.Context, id string) (*model.Unit, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	u, ok := r.db.units[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUnitRepo) ListByInstitution(ctx context.Context, institutionID string) ([]model.Unit, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []model.Unit
	for _, u := range r.db.units {
		if u.InstitutionID == institutionID {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *memUnitRepo) List(ctx context.Context) ([]model.Unit, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := make([]model.Unit, 0, len(r.db.units))
	for _, u := range r.db.units {
		out = append(out, *u)
	}
	return out, nil
}

// ── courses ──

type memCourseRepo struct{ db *memDB }

func (r *memCourseRepo) Create(ctx context.Context, course *model.Course) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if course.CourseID == "" {
		course.CourseID = r.db.nextID("course")
	}
	cp := *course
	r.db.courses[course.CourseID] = &cp
	return nil
}

func (r *memCourseRepo) GetByID(ctx context.Context, id string) (*model.Course, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	c, ok := r.db.courses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memCourseRepo) List(ctx context.Context) ([]model.Course, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := make([]model.Course, 0, len(r.db.courses))
	for _, c := range r.db.courses {
		out = append(out, *c)
	}
	return out, nil
}

// ── classes ──

type memClassRepo struct{ db *memDB }

func (r *memClassRepo) Create(ctx context.Context, class *model.Class) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if class.ClassID == "" {
		class.ClassID = r.db.nextID("class")
	}
	cp := *class
	r.db.classes[class.ClassID] = &cp
	return nil
}

func (r *memClassRepo) GetByID(ctx context.Context, id string) (*model.Class, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	c, ok := r.db.classes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memClassRepo) List(ctx context.Context) ([]model.Class, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := make([]model.Class, 0, len(r.db.classes))
	for _, c := range r.db.classes {
		out = append(out, *c)
	}
	return out, nil
}

func (r *memClassRepo) AddStudent(ctx context.Context, enrollment *model.ClassStudent) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, e := range r.db.classStudents {
		if e.ClassID == enrollment.ClassID && e.StudentID == enrollment.StudentID {
			return gorm.ErrDuplicatedKey
		}
	}
	r.db.classStudents = append(r.db.classStudents, *enrollment)
	return nil
}

func (r *memClassRepo) ListStudents(ctx context.Context, classID string) ([]model.ClassStudent, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []model.ClassStudent
	for _, e := range r.db.classStudents {
		if e.ClassID == classID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memClassRepo) ListAllEnrollments(ctx context.Context) ([]model.ClassStudent, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return append([]model.ClassStudent(nil), r.db.classStudents...), nil
}

func (r *memClassRepo) AddCourse(ctx context.Context, link *model.ClassCourse) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, l := range r.db.classCourses {
		if l.ClassID == link.ClassID && l.CourseID == link.CourseID {
			return gorm.ErrDuplicatedKey
		}
	}
	r.db.classCourses = append(r.db.classCourses, *link)
	return nil
}

func (r *memClassRepo) ListAllCourseLinks(ctx context.Context) ([]model.ClassCourse, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return append([]model.ClassCourse(nil), r.db.classCourses...), nil
}

// ── professor units ──

type memProfessorUnitRepo struct{ db *memDB }

func (r *memProfessorUnitRepo) Upsert(ctx context.Context, affiliation *model.ProfessorUnit) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, a := range r.db.professorUnits {
		if a.UnitID == affiliation.UnitID && a.ProfessorID == affiliation.ProfessorID {
			return nil
		}
	}
	r.db.professorUnits = append(r.db.professorUnits, *affiliation)
	return nil
}

func (r *memProfessorUnitRepo) Exists(ctx context.Context, unitID, professorID string) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, a := range r.db.professorUnits {
		if a.UnitID == unitID && a.ProfessorID == professorID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memProfessorUnitRepo) List(ctx context.Context) ([]model.ProfessorUnit, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return append([]model.ProfessorUnit(nil), r.db.professorUnits...), nil
}

// ── professor invitations ──

type memProfessorInvitationRepo struct{ db *memDB }

func (r *memProfessorInvitationRepo) Create(ctx context.Context, invitation *model.ProfessorInvitation) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, inv := range r.db.professorInvitations {
		if inv.UnitID == invitation.UnitID && inv.InvitedEmail == invitation.InvitedEmail {
			return gorm.ErrDuplicatedKey
		}
	}
	if invitation.InvitationID == "" {
		invitation.InvitationID = r.db.nextID("pinv")
	}
	invitation.CreatedAt = time.Now()
	cp := *invitation
	r.db.professorInvitations[invitation.InvitationID] = &cp
	return nil
}

func (r *memProfessorInvitationRepo) GetByID(ctx context.Context, id string) (*model.ProfessorInvitation, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	inv, ok := r.db.professorInvitations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *inv
	return &cp, nil
}

func (r *memProfessorInvitationRepo) GetByIDForUpdate(ctx context.Context, id string) (*model.ProfessorInvitation, error) {
	return r.GetByID(ctx, id)
}

func (r *memProfessorInvitationRepo) FindByUnitAndEmail(ctx context.Context, unitID, email string) (*model.ProfessorInvitation, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, inv := range r.db.professorInvitations {
		if inv.UnitID == unitID && inv.InvitedEmail == email {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memProfessorInvitationRepo) UpdateStatusIfPending(ctx context.Context, id, status string, respondedAt time.Time) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	inv, ok := r.db.professorInvitations[id]
	if !ok || inv.Status != model.InvitationStatusPending {
		return 0, nil
	}
	inv.Status = status
	inv.RespondedAt = &respondedAt
	return 1, nil
}

func (r *memProfessorInvitationRepo) List(ctx context.Context) ([]model.ProfessorInvitation, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := make([]model.ProfessorInvitation, 0, len(r.db.professorInvitations))
	for _, inv := range r.db.professorInvitations {
		out = append(out, *inv)
	}
	return out, nil
}

// ── student invitations ──

type memStudentInvitationRepo struct{ db *memDB }

func (r *memStudentInvitationRepo) Create(ctx context.Context, invitation *model.StudentInvitation) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, inv := range r.db.studentInvitations {
		if inv.ClassID == invitation.ClassID && inv.InvitedEmail == invitation.InvitedEmail {
			return gorm.ErrDuplicatedKey
		}
	}
	if invitation.InvitationID == "" {
		invitation.InvitationID = r.db.nextID("sinv")
	}
	invitation.CreatedAt = time.Now()
	cp := *invitation
	r.db.studentInvitations[invitation.InvitationID] = &cp
	return nil
}

func (r *memStudentInvitationRepo) GetByID(ctx context.Context, id string) (*model.StudentInvitation, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	inv, ok := r.db.studentInvitations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *inv
	return &cp, nil
}

func (r *memStudentInvitationRepo) GetByIDForUpdate(ctx context.Context, id string) (*model.StudentInvitation, error) {
	return r.GetByID(ctx, id)
}

func (r *memStudentInvitationRepo) FindByClassAndEmail(ctx context.Context, classID, email string) (*model.StudentInvitation, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, inv := range r.db.studentInvitations {
		if inv.ClassID == classID && inv.InvitedEmail == email {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memStudentInvitationRepo) UpdateStatusIfPending(ctx context.Context, id, status string, respondedAt time.Time) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	inv, ok := r.db.studentInvitations[id]
	if !ok || inv.Status != model.InvitationStatusPending {
		return 0, nil
	}
	inv.Status = status
	inv.RespondedAt = &respondedAt
	return 1, nil
}

func (r *memStudentInvitationRepo) List(ctx context.Context) ([]model.StudentInvitation, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := make([]model.StudentInvitation, 0, len(r.db.studentInvitations))
	for _, inv := range r.db.studentInvitations {
		out = append(out, *inv)
	}
	return out, nil
}

// ── invites ──

type memInviteRepo struct{ db *memDB }

func (r *memInviteRepo) Create(ctx context.Context, invite *model.Invite) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if invite.InviteID == "" {
		invite.InviteID = r.db.nextID("env")
	}
	invite.CreatedAt = time.Now()
	cp := *invite
	r.db.invites[invite.InviteID] = &cp
	return nil
}

func (r *memInviteRepo) GetByID(ctx context.Context, id string) (*model.Invite, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	i, ok := r.db.invites[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *i
	return &cp, nil
}

func (r *memInviteRepo) List(ctx context.Context) ([]model.Invite, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := make([]model.Invite, 0, len(r.db.invites))
	for _, i := range r.db.invites {
		out = append(out, *i)
	}
	return out, nil
}

// ── messages ──

type memMessageRepo struct {
	db *memDB

	// failCreate forces Create to fail, for atomicity tests.
	failCreate error
}

func (r *memMessageRepo) Create(ctx context.Context, message *model.Message) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if message.MessageID == "" {
		message.MessageID = r.db.nextID("msg")
	}
	message.CreatedAt = time.Now()
	cp := *message
	r.db.messages[message.MessageID] = &cp
	return nil
}

func (r *memMessageRepo) GetByID(ctx context.Context, id string) (*model.Message, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	m, ok := r.db.messages[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *memMessageRepo) MarkReadIfSent(ctx context.Context, id string) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	m, ok := r.db.messages[id]
	if !ok || m.Status != model.MessageStatusSent {
		return 0, nil
	}
	m.Status = model.MessageStatusRead
	return 1, nil
}

func (r *memMessageRepo) ListByRecipient(ctx context.Context, recipientID string) ([]model.Message, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []model.Message
	for _, m := range r.db.messages {
		if m.RecipientID == recipientID {
			cp := *m
			if sender, ok := r.db.users[cp.SenderID]; ok {
				u := *sender
				cp.Sender = &u
			}
			out = append(out, cp)
		}
	}
	return out, nil
}

func (r *memMessageRepo) ListByInvite(ctx context.Context, inviteID string) ([]model.Message, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []model.Message
	for _, m := range r.db.messages {
		if m.InviteID != nil && *m.InviteID == inviteID {
			out = append(out, *m)
		}
	}
	return out, nil
}
