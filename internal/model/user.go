package model

// User is an API caller. Passwords are stored as bcrypt hashes only.
type User struct {
	Base
	Username     string `gorm:"type:varchar(65);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Name         string `gorm:"type:varchar(255)"`
	Role         string `gorm:"type:varchar(30);not null;default:'staff'"`
	Active       bool   `gorm:"not null;default:true"`
}
