package entity

import "time"

// User usuario de la API (email único, password con bcrypt).
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
