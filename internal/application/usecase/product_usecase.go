package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/hugolinos1/freezy-api/internal/application/dto"
	"github.com/hugolinos1/freezy-api/internal/domain"
	"github.com/hugolinos1/freezy-api/internal/domain/entity"
	"github.com/hugolinos1/freezy-api/internal/domain/inventory"
	"github.com/hugolinos1/freezy-api/internal/domain/repository"
)

// Modes de regroupement de la vue d'inventaire.
const (
	GroupByType   = "type"
	GroupByDrawer = "drawer"
)

// ProductUseCase CRUD et projections sur les produits d'un utilisateur.
type ProductUseCase struct {
	repo         repository.ProductRepository
	settingsRepo repository.SettingsRepository
}

// NewProductUseCase construit le cas d'usage.
func NewProductUseCase(repo repository.ProductRepository, settingsRepo repository.SettingsRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, settingsRepo: settingsRepo}
}

// Create ajoute un produit. Les champs obligatoires absents sont signalés
// nommément (aucun appel au stockage dans ce cas) ; un type vide ou inconnu
// tombe dans Autres ; la date d'entrée vide est datée du jour.
func (uc *ProductUseCase) Create(userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	var missing []string
	if in.Name == "" {
		missing = append(missing, "nom du produit")
	}
	if in.Quantity == 0 {
		missing = append(missing, "quantité")
	}
	if in.Drawer == 0 {
		missing = append(missing, "numéro de tiroir")
	}
	if len(missing) > 0 {
		return nil, &domain.MissingFieldsError{Fields: missing}
	}
	if in.Quantity < 0 || in.Drawer < 0 || (in.Weight != nil && *in.Weight <= 0) {
		return nil, domain.ErrInvalidInput
	}
	if !entity.IsValidFoodType(in.Type) {
		in.Type = entity.TypeAutres
	}
	if in.EntryDate == "" {
		in.EntryDate = time.Now().Format(time.RFC3339)
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      in.Name,
		Type:      in.Type,
		EntryDate: in.EntryDate,
		Quantity:  in.Quantity,
		Weight:    in.Weight,
		Drawer:    in.Drawer,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List retourne la liste complète des produits de l'utilisateur. Pas de
// pagination : la liste est chargée entière en début de session.
func (uc *ProductUseCase) List(userID string) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// ListGrouped retourne la partition des produits par type d'aliment ou par
// tiroir (1..N, N = nombre de tiroirs courant).
func (uc *ProductUseCase) ListGrouped(userID, mode string) (*dto.GroupedProductsResponse, error) {
	if mode != GroupByType && mode != GroupByDrawer {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	var buckets []inventory.Bucket
	if mode == GroupByType {
		buckets = inventory.GroupByType(list)
	} else {
		drawerCount := entity.DefaultDrawerCount
		if settings, err := uc.settingsRepo.Get(userID); err == nil && settings != nil {
			drawerCount = settings.DrawerCount
		}
		buckets = inventory.GroupByDrawer(list, drawerCount)
	}
	out := &dto.GroupedProductsResponse{Mode: mode, Buckets: make([]dto.ProductBucket, 0, len(buckets))}
	for _, b := range buckets {
		items := make([]dto.ProductResponse, 0, len(b.Products))
		for _, p := range b.Products {
			items = append(items, *toProductResponse(p))
		}
		out.Buckets = append(out.Buckets, dto.ProductBucket{Key: b.Key, Products: items})
	}
	return out, nil
}

// Update modifie un produit existant (champs fournis seulement). Retourne
// (nil, nil) si le produit n'existe pas dans le périmètre de l'utilisateur.
func (uc *ProductUseCase) Update(userID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, &domain.MissingFieldsError{Fields: []string{"nom du produit"}}
		}
		product.Name = *in.Name
	}
	if in.Type != nil {
		if !entity.IsValidFoodType(*in.Type) {
			return nil, domain.ErrInvalidInput
		}
		product.Type = *in.Type
	}
	if in.EntryDate != nil {
		product.EntryDate = *in.EntryDate
	}
	if in.Quantity != nil {
		if *in.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Quantity = *in.Quantity
	}
	if in.Weight != nil {
		if *in.Weight <= 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Weight = in.Weight
	}
	if in.Drawer != nil {
		if *in.Drawer < 1 {
			return nil, domain.ErrInvalidInput
		}
		product.Drawer = *in.Drawer
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete supprime un produit du périmètre de l'utilisateur. Le stockage est
// touché en premier : le client ne retire l'élément de son état qu'après
// confirmation.
func (uc *ProductUseCase) Delete(userID, id string) error {
	product, err := uc.repo.GetByID(userID, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(userID, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Type:      p.Type,
		EntryDate: p.EntryDate,
		Quantity:  p.Quantity,
		Weight:    p.Weight,
		Drawer:    p.Drawer,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
