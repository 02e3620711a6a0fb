package models

// User represents an account with access to the club portal
type User struct {
	BaseModel
	Email        string   `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string   `json:"-" gorm:"not null;size:100"`
	FirstName    string   `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName     string   `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	Role         UserRole `json:"role" gorm:"type:varchar(20);not null;default:'member'" validate:"required"`
	IsActive     bool     `json:"is_active" gorm:"default:true"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the administrator role
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
