package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/hugolinos1/freezy-api/internal/domain/entity"
	"github.com/hugolinos1/freezy-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implémentation du port SettingsRepository sur SQLite.
type SettingsRepo struct {
	db *sql.DB
}

// NewSettingsRepository construit l'adaptateur de persistance pour les
// paramètres.
func NewSettingsRepository(db *sql.DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

// Get obtient les paramètres d'un utilisateur, (nil, nil) s'ils n'existent
// pas encore.
func (r *SettingsRepo) Get(userID string) (*entity.Settings, error) {
	var s entity.Settings
	var updatedAt string
	err := r.db.QueryRow(`SELECT user_id, drawer_count, updated_at FROM settings WHERE user_id = ?`, userID).
		Scan(&s.UserID, &s.DrawerCount, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	s.UpdatedAt = parseTime(updatedAt)
	return &s, nil
}

// Upsert crée ou remplace les paramètres d'un utilisateur.
func (r *SettingsRepo) Upsert(settings *entity.Settings) error {
	query := `
		INSERT INTO settings (user_id, drawer_count, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET drawer_count = excluded.drawer_count, updated_at = excluded.updated_at`
	_, err := r.db.Exec(query, settings.UserID, settings.DrawerCount, formatTime(settings.UpdatedAt))
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}
