package entity

import "time"

// User représente un compte utilisateur. PasswordHash est vide pour les
// comptes créés uniquement via lien magique.
type User struct {
	ID            string
	Email         string
	DisplayName   string
	PasswordHash  string // hash bcrypt, jamais en clair après persistance
	EmailVerified bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
