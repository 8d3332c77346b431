package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/hugolinos1/freezy-api/internal/domain/entity"
	"github.com/hugolinos1/freezy-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implémentation du port ProductRepository sur SQLite.
type ProductRepo struct {
	db *sql.DB
}

// NewProductRepository construit l'adaptateur de persistance pour les
// produits.
func NewProductRepository(db *sql.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// Create persiste un nouveau produit.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, user_id, name, type, entry_date, quantity, weight, drawer, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.Exec(query,
		product.ID, product.UserID, product.Name, product.Type, product.EntryDate,
		product.Quantity, nullInt(product.Weight), product.Drawer,
		formatTime(product.CreatedAt), formatTime(product.UpdatedAt),
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
		FROM products WHERE user_id = ? AND id = ?`
	p, err := scanProduct(r.db.QueryRow(query, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// ListByUser liste tous les produits d'un utilisateur, du plus ancien au
// plus récent.
func (r *ProductRepo) ListByUser(userID string) ([]*entity.Product, error) {
	query := `
		SELECT id, user_id, name, type, entry_date, quantity, weight, drawer, created_at, updated_at
		FROM products WHERE user_id = ? ORDER BY created_at ASC`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update met à jour un produit existant.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = ?, type = ?, entry_date = ?, quantity = ?, weight = ?, drawer = ?, updated_at = ?
		WHERE user_id = ? AND id = ?`
	_, err := r.db.Exec(query,
		product.Name, product.Type, product.EntryDate, product.Quantity,
		nullInt(product.Weight), product.Drawer, formatTime(product.UpdatedAt),
		product.UserID, product.ID,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete supprime un produit du périmètre de l'utilisateur.
func (r *ProductRepo) Delete(userID, id string) error {
	_, err := r.db.Exec(`DELETE FROM products WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// rowScanner commun à *sql.Row et *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*entity.Product, error) {
	var p entity.Product
	var weight sql.NullInt64
	var createdAt, updatedAt string
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Type, &p.EntryDate,
		&p.Quantity, &weight, &p.Drawer, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	p.Weight = intPtr(weight)
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)
	return &p, nil
}
