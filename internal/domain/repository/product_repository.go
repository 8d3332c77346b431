package repository

import "github.com/hugolinos1/freezy-api/internal/domain/entity"

// ProductRepository définit le port de persistance pour Product (DIP).
// Toutes les opérations sont cantonnées au périmètre d'un utilisateur.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(userID, id string) (*entity.Product, error)
	ListByUser(userID string) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(userID, id string) error
}
