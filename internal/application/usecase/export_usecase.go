package usecase

import (
	"time"

	"github.com/hugolinos1/freezy-api/internal/domain"
	"github.com/hugolinos1/freezy-api/internal/domain/export"
	"github.com/hugolinos1/freezy-api/internal/domain/repository"
)

// ExportUseCase export CSV de l'inventaire.
type ExportUseCase struct {
	repo repository.ProductRepository
}

// NewExportUseCase construit le cas d'usage.
func NewExportUseCase(repo repository.ProductRepository) *ExportUseCase {
	return &ExportUseCase{repo: repo}
}

// CSV sérialise l'inventaire courant de l'utilisateur. Retourne
// ErrEmptyInventory quand il n'y a rien à exporter (l'export est désactivé
// sur liste vide).
func (uc *ExportUseCase) CSV(userID string) (filename, content string, err error) {
	list, err := uc.repo.ListByUser(userID)
	if err != nil {
		return "", "", err
	}
	if len(list) == 0 {
		return "", "", domain.ErrEmptyInventory
	}
	return export.Filename(time.Now()), export.CSV(list), nil
}
