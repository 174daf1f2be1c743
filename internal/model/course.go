package model

import "time"

// Course maps to the courses table.
type Course struct {
	CourseID    string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"course_id"`
	UnitID      *string `gorm:"type:uuid;index"                                json:"unit_id,omitempty"`
	ProfessorID *string `gorm:"type:uuid"                                      json:"professor_id,omitempty"`
	Name        string  `gorm:"type:varchar(100);not null"                     json:"name"`
	Description string  `gorm:"type:text"                                      json:"description,omitempty"`
	Confirmed   bool    `gorm:"not null;default:false"                         json:"confirmed"`
	BaseModel

	Unit      *Unit      `gorm:"foreignKey:UnitID;references:UnitID"           json:"unit,omitempty"`
	Professor *Professor `gorm:"foreignKey:ProfessorID;references:ProfessorID" json:"professor,omitempty"`
}

// TableName sets the table name.
func (Course) TableName() string { return "courses" }

// Class maps to the classes table ("turma"): a professor's group of enrolled
// students.
type Class struct {
	ClassID     string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"class_id"`
	ProfessorID string     `gorm:"type:uuid;not null;index"                       json:"professor_id"`
	Name        string     `gorm:"type:varchar(45);not null"                      json:"name"`
	StartsOn    *time.Time `gorm:"type:date"                                      json:"starts_on,omitempty"`
	EndsOn      *time.Time `gorm:"type:date"                                      json:"ends_on,omitempty"`
	Period      string     `gorm:"type:varchar(45)"                               json:"period,omitempty"`
	BaseModel

	Professor *Professor     `gorm:"foreignKey:ProfessorID;references:ProfessorID" json:"professor,omitempty"`
	Students  []ClassStudent `gorm:"foreignKey:ClassID;references:ClassID"         json:"students,omitempty"`
	Courses   []ClassCourse  `gorm:"foreignKey:ClassID;references:ClassID"         json:"courses,omitempty"`
}

// TableName sets the table name.
func (Class) TableName() string { return "classes" }

// ClassStudent is the class enrollment join table.
type ClassStudent struct {
	ClassID   string    `gorm:"type:uuid;primaryKey"               json:"class_id"`
	StudentID string    `gorm:"type:uuid;primaryKey"               json:"student_id"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	Class   *Class   `gorm:"foreignKey:ClassID;references:ClassID"     json:"class,omitempty"`
	Student *Student `gorm:"foreignKey:StudentID;references:StudentID" json:"student,omitempty"`
}

// TableName sets the table name.
func (ClassStudent) TableName() string { return "class_students" }

// ClassCourse associates a class with a course.
type ClassCourse struct {
	ClassID   string    `gorm:"type:uuid;primaryKey"               json:"class_id"`
	CourseID  string    `gorm:"type:uuid;primaryKey"               json:"course_id"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	Class  *Class  `gorm:"foreignKey:ClassID;references:ClassID"   json:"class,omitempty"`
	Course *Course `gorm:"foreignKey:CourseID;references:CourseID" json:"course,omitempty"`
}

// TableName sets the table name.
func (ClassCourse) TableName() string { return "class_courses" }
