package user

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Role string

const (
	RolePhysician Role = "PHYSICIAN"
	RoleInvestor  Role = "INVESTOR"
	RoleAdmin     Role = "ADMIN"
)

var ErrNotFound = errors.New("user not found")

// User is the identity record behind the Ax-User-Id header. Authentication
// itself is handled upstream; this service only resolves the id and checks
// the role.
type User struct {
	ID     uint64 `gorm:"primaryKey;column:id" json:"-"`
	UserID string `gorm:"size:32;uniqueIndex:ux_users_user_id" json:"user_id"`
	Email  string `gorm:"size:255;uniqueIndex" json:"email"`
	Name   string `gorm:"size:255" json:"name"`
	Role   Role   `gorm:"size:32" json:"role"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }

// PhysicianProfile mirrors the latest intake context for a physician. It is
// upserted whenever an application is submitted.
type PhysicianProfile struct {
	ID      uint64 `gorm:"primaryKey;column:id" json:"-"`
	UserRef uint64 `gorm:"column:user_ref;uniqueIndex:ux_physician_profiles_user" json:"-"`

	Degree            string           `gorm:"size:32" json:"degree"`
	Specialty         string           `gorm:"size:128" json:"specialty"`
	YearsInPractice   *int             `json:"years_in_practice"`
	EstimatedIncome   *decimal.Decimal `gorm:"type:decimal(18,2)" json:"estimated_income"`
	MedicalSchoolDebt *decimal.Decimal `gorm:"type:decimal(18,2)" json:"medical_school_debt"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PhysicianProfile) TableName() string { return "physician_profiles" }
