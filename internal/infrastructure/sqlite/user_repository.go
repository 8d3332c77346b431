package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/hugolinos1/freezy-api/internal/domain"
	"github.com/hugolinos1/freezy-api/internal/domain/entity"
	"github.com/hugolinos1/freezy-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implémentation du port UserRepository sur SQLite.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepository construit l'adaptateur de persistance pour les
// utilisateurs.
func NewUserRepository(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create persiste un nouvel utilisateur.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, email, display_name, password_hash, email_verified, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.Exec(query,
		user.ID, user.Email, user.DisplayName, user.PasswordHash, user.EmailVerified,
		formatTime(user.CreatedAt), formatTime(user.UpdatedAt),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtient un utilisateur par ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.get(`SELECT id, email, display_name, password_hash, email_verified, created_at, updated_at
		FROM users WHERE id = ?`, id)
}

// GetByEmail obtient un utilisateur par email.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.get(`SELECT id, email, display_name, password_hash, email_verified, created_at, updated_at
		FROM users WHERE email = ? LIMIT 1`, email)
}

func (r *UserRepo) get(query string, arg any) (*entity.User, error) {
	var u entity.User
	var createdAt, updatedAt string
	err := r.db.QueryRow(query, arg).Scan(
		&u.ID, &u.Email, &u.DisplayName, &u.PasswordHash, &u.EmailVerified,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	u.CreatedAt = parseTime(createdAt)
	u.UpdatedAt = parseTime(updatedAt)
	return &u, nil
}

// Update met à jour un utilisateur.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET email = ?, display_name = ?, password_hash = ?, email_verified = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.Exec(query,
		user.Email, user.DisplayName, user.PasswordHash, user.EmailVerified,
		formatTime(user.UpdatedAt), user.ID,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete supprime un utilisateur par ID.
func (r *UserRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
