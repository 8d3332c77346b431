package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hugolinos1/freezy-api/internal/domain/entity"
	"github.com/hugolinos1/freezy-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implémentation du port SettingsRepository sur PostgreSQL.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construit l'adaptateur de persistance pour les
// paramètres. Passer un pool ou une tx (Querier).
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get obtient les paramètres d'un utilisateur, (nil, nil) s'ils n'existent
// pas encore.
func (r *SettingsRepo) Get(userID string) (*entity.Settings, error) {
	query := `SELECT user_id, drawer_count, updated_at FROM settings WHERE user_id = $1`
	var s entity.Settings
	err := r.q.QueryRow(context.Background(), query, userID).Scan(&s.UserID, &s.DrawerCount, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

// Upsert crée ou remplace les paramètres d'un utilisateur.
func (r *SettingsRepo) Upsert(settings *entity.Settings) error {
	query := `
		INSERT INTO settings (user_id, drawer_count, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET drawer_count = $2, updated_at = $3`
	_, err := r.q.Exec(context.Background(), query, settings.UserID, settings.DrawerCount, settings.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}
