package models

import "time"

const (
	RoleAdmin   = "admin"
	RoleMember  = "member"
	RoleTrainee = "trainee"
)

type Account struct {
	ID                 uint   `gorm:"primaryKey"`
	Name               string `gorm:"not null"`
	Email              string `gorm:"uniqueIndex;not null"`
	Cargo              string `gorm:"not null"`
	Role               string `gorm:"not null;default:trainee"`
	PasswordHash       string `gorm:"not null"`
	ResetCodeHash      string
	ResetCodeExpiresAt *time.Time
	CreatedAt          time.Time `gorm:"not null"`
}

type SeedAccount struct {
	Name     string
	Email    string
	Cargo    string
	Password string
}

// DefaultSeedAccounts returns the demo registry loaded into an empty database.
// Roles are not listed here: they are derived from the email at seed time.
func DefaultSeedAccounts() []SeedAccount {
	return []SeedAccount{
		{Name: "Admin Info", Email: "admin@infoej.com.br", Cargo: "Administrador", Password: "admin123"},
		{Name: "Maria Silva", Email: "maria@infoej.com.br", Cargo: "Analista de Vendas", Password: "123456"},
		{Name: "João Trainee", Email: "joao@gmail.com", Cargo: "Trainee", Password: "123456"},
	}
}
