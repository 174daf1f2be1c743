package model

import "time"

// User roles. A user without a role has not finished registration.
const (
	RoleProfessor   = "professor"
	RoleStudent     = "student"
	RoleInstitution = "institution"
)

// User maps to the users table.
type User struct {
	UserID       string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	FirstName    string     `gorm:"type:varchar(100);not null"                     json:"first_name"`
	LastName     string     `gorm:"type:varchar(100)"                              json:"last_name,omitempty"`
	Email        string     `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	Phone        string     `gorm:"type:varchar(45)"                               json:"phone,omitempty"`
	PasswordHash string     `gorm:"type:varchar(255)"                              json:"-"`
	AvatarLink   string     `gorm:"type:varchar(250);default:'/assets/user-no_image.png'" json:"avatar_link,omitempty"`
	Role         string     `gorm:"type:varchar(20)"                               json:"role,omitempty"`
	Gender       string     `gorm:"type:varchar(20)"                               json:"gender,omitempty"`
	BirthDate    *time.Time `gorm:"type:date"                                      json:"birth_date,omitempty"`
	Confirmed    bool       `gorm:"not null;default:false"                         json:"confirmed"`
	BaseModel

	// associations
	Professor   *Professor   `gorm:"foreignKey:UserID;references:UserID" json:"professor,omitempty"`
	Student     *Student     `gorm:"foreignKey:UserID;references:UserID" json:"student,omitempty"`
	Institution *Institution `gorm:"foreignKey:UserID;references:UserID" json:"institution,omitempty"`
}

// TableName sets the table name.
func (User) TableName() string { return "users" }

// Professor is the 1:1 role profile created when a user's role is set to
// professor. It is never created directly by a caller.
type Professor struct {
	ProfessorID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"professor_id"`
	UserID      string `gorm:"type:uuid;not null;uniqueIndex"                 json:"user_id"`
	BaseModel

	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

// TableName sets the table name.
func (Professor) TableName() string { return "professors" }

// Student is the 1:1 role profile created when a user's role is set to
// student.
type Student struct {
	StudentID      string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"student_id"`
	UserID         string `gorm:"type:uuid;not null;uniqueIndex"                 json:"user_id"`
	EnrollmentCode string `gorm:"type:varchar(100)"                              json:"enrollment_code,omitempty"`
	BaseModel

	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

// TableName sets the table name.
func (Student) TableName() string { return "students" }
