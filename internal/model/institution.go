package model

import "time"

// Institution maps to the institutions table. Owned 1:1 by a user.
type Institution struct {
	InstitutionID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"institution_id"`
	UserID        string `gorm:"type:uuid;not null;uniqueIndex"                 json:"user_id"`
	Name          string `gorm:"type:varchar(100);not null"                     json:"name"`
	Confirmed     bool   `gorm:"not null;default:false"                         json:"confirmed"`
	BaseModel

	User  *User  `gorm:"foreignKey:UserID;references:UserID"               json:"user,omitempty"`
	Units []Unit `gorm:"foreignKey:InstitutionID;references:InstitutionID" json:"units,omitempty"`
}

// TableName sets the table name.
func (Institution) TableName() string { return "institutions" }

// Unit maps to the units table. An institution's organizational sub-location.
type Unit struct {
	UnitID        string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"unit_id"`
	InstitutionID string `gorm:"type:uuid;not null;index"                       json:"institution_id"`
	Name          string `gorm:"type:varchar(100);not null"                     json:"name"`
	Phone         string `gorm:"type:varchar(45)"                               json:"phone,omitempty"`
	Address       string `gorm:"type:varchar(200)"                              json:"address,omitempty"`
	State         string `gorm:"type:varchar(45)"                               json:"state,omitempty"`
	City          string `gorm:"type:varchar(45)"                               json:"city,omitempty"`
	District      string `gorm:"type:varchar(45)"                               json:"district,omitempty"`
	PostalCode    string `gorm:"type:varchar(45)"                               json:"postal_code,omitempty"`
	Confirmed     bool   `gorm:"not null;default:false"                         json:"confirmed"`
	BaseModel

	Institution *Institution `gorm:"foreignKey:InstitutionID;references:InstitutionID" json:"institution,omitempty"`
	Courses     []Course     `gorm:"foreignKey:UnitID;references:UnitID"               json:"courses,omitempty"`
}

// TableName sets the table name.
func (Unit) TableName() string { return "units" }

// ProfessorUnit is the affiliation join table. Rows are created only as the
// side effect of an accepted professor invitation.
type ProfessorUnit struct {
	UnitID      string    `gorm:"type:uuid;primaryKey"               json:"unit_id"`
	ProfessorID string    `gorm:"type:uuid;primaryKey"               json:"professor_id"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	Unit      *Unit      `gorm:"foreignKey:UnitID;references:UnitID"           json:"unit,omitempty"`
	Professor *Professor `gorm:"foreignKey:ProfessorID;references:ProfessorID" json:"professor,omitempty"`
}

// TableName sets the table name.
func (ProfessorUnit) TableName() string { return "professor_units" }
