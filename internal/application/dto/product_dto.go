package dto

import "time"

// CreateProductRequest entrée pour ajouter un produit. EntryDate vide est
// datée du jour ; Type vide ou inconnu tombe dans Autres.
type CreateProductRequest struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	EntryDate string `json:"entry_date"`
	Quantity  int    `json:"quantity"`
	Weight    *int   `json:"weight"`
	Drawer    int    `json:"drawer"`
}

// UpdateProductRequest entrée pour modifier un produit (champs pointeurs :
// seuls les champs fournis sont modifiés).
type UpdateProductRequest struct {
	Name      *string `json:"name"`
	Type      *string `json:"type"`
	EntryDate *string `json:"entry_date"`
	Quantity  *int    `json:"quantity"`
	Weight    *int    `json:"weight"`
	Drawer    *int    `json:"drawer"`
}

// ProductResponse sortie d'un produit.
type ProductResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	EntryDate string    `json:"entry_date"`
	Quantity  int       `json:"quantity"`
	Weight    *int      `json:"weight,omitempty"`
	Drawer    int       `json:"drawer"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductListResponse liste complète des produits de l'utilisateur.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// ProductBucket un compartiment de la vue groupée.
type ProductBucket struct {
	Key      string            `json:"key"`
	Products []ProductResponse `json:"products"`
}

// GroupedProductsResponse partition des produits par type ou par tiroir.
type GroupedProductsResponse struct {
	Mode    string          `json:"mode"` // "type" | "drawer"
	Buckets []ProductBucket `json:"buckets"`
}
