package entity

import "time"

// User representa un usuario con acceso al panel de la droguería.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
