package repository

import "github.com/hugolinos1/freezy-api/internal/domain/entity"

// UserRepository définit le port de persistance pour User (DIP).
// Les lectures retournent (nil, nil) quand l'utilisateur n'existe pas.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
}
