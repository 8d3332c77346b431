package repository

import "github.com/hugolinos1/freezy-api/internal/domain/entity"

// SettingsRepository définit le port de persistance pour Settings (DIP).
// Get retourne (nil, nil) quand l'utilisateur n'a pas encore de paramètres.
type SettingsRepository interface {
	Get(userID string) (*entity.Settings, error)
	Upsert(settings *entity.Settings) error
}
