package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hugolinos1/freezy-api/internal/domain/entity"
	"github.com/hugolinos1/freezy-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implémentation du port ProductRepository sur PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construit l'adaptateur de persistance pour les
// produits. Passer un pool ou une tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nouveau produit.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, user_id, name, type, entry_date, quantity, weight, drawer, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.UserID, product.Name, product.Type, product.EntryDate,
		product.Quantity, product.Weight, product.Drawer, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtient un produit par ID, cantonné au périmètre de l'utilisateur.
func (r *ProductRepo) GetByID(userID, id string) (*entity.Product, error) {
	query := `
		SELECT id, user_id, name, type, entry_date, quantity, weight, drawer, created_at, updated_at
		FROM products WHERE user_id = $1 AND id = $2`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, userID, id).Scan(
		&p.ID, &p.UserID, &p.Name, &p.Type, &p.EntryDate,
		&p.Quantity, &p.Weight, &p.Drawer, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ListByUser liste tous les produits d'un utilisateur, du plus ancien au
// plus récent (ordre d'insertion stable pour les vues groupées).
func (r *ProductRepo) ListByUser(userID string) ([]*entity.Product, error) {
	query := `
		SELECT id, user_id, name, type, entry_date, quantity, weight, drawer, created_at, updated_at
		FROM products WHERE user_id = $1 ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Type, &p.EntryDate,
			&p.Quantity, &p.Weight, &p.Drawer, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update met à jour un produit existant.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $3, type = $4, entry_date = $5, quantity = $6, weight = $7, drawer = $8, updated_at = $9
		WHERE user_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		product.UserID, product.ID, product.Name, product.Type, product.EntryDate,
		product.Quantity, product.Weight, product.Drawer, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete supprime un produit du périmètre de l'utilisateur.
func (r *ProductRepo) Delete(userID, id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
