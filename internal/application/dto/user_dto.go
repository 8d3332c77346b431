package dto

import "time"

// RegisterRequest entrée d'inscription par mot de passe.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// LoginRequest entrée de connexion par mot de passe.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// MagicLinkRequest entrée de connexion sans mot de passe.
type MagicLinkRequest struct {
	Email string `json:"email"`
}

// MagicLinkResponse accusé d'envoi du lien de connexion.
type MagicLinkResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

// UserResponse sortie d'un utilisateur (sans hash de mot de passe).
type UserResponse struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	DisplayName   string    `json:"display_name,omitempty"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
}

// SessionResponse jeton de session et utilisateur associé.
type SessionResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UpdateDisplayNameRequest mise à jour du nom affiché.
type UpdateDisplayNameRequest struct {
	DisplayName string `json:"display_name"`
}

// UpdatePasswordRequest changement de mot de passe ; le mot de passe courant
// sert de ré-authentification.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}
