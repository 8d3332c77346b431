package usecase_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugolinos1/freezy-api/internal/application/dto"
	"github.com/hugolinos1/freezy-api/internal/application/usecase"
	"github.com/hugolinos1/freezy-api/internal/domain"
	"github.com/hugolinos1/freezy-api/internal/domain/entity"
	"github.com/hugolinos1/freezy-api/internal/domain/export"
)

func TestExportCSV_InventaireVideRefuse(t *testing.T) {
	repo := &memProductRepo{}
	uc := usecase.NewExportUseCase(repo)

	_, _, err := uc.CSV(testUserID)
	assert.ErrorIs(t, err, domain.ErrEmptyInventory, "l'export est désactivé sur inventaire vide")
}

func TestExportCSV_ContenuEtNomDeFichier(t *testing.T) {
	repo := &memProductRepo{}
	productUC := usecase.NewProductUseCase(repo, newMemSettingsRepo())
	_, err := productUC.Create(testUserID, dto.CreateProductRequest{
		Name: "Poulet", Type: entity.TypeViande, EntryDate: "2024-01-01", Quantity: 2, Drawer: 1,
	})
	require.NoError(t, err)

	uc := usecase.NewExportUseCase(repo)
	filename, content, err := uc.CSV(testUserID)
	require.NoError(t, err)

	today := time.Now().Format("2006-01-02")
	assert.Equal(t, "freezer_inventory_"+today+".csv", filename)
	assert.True(t, strings.HasPrefix(content, export.Header), "le contenu commence par l'en-tête fixe")
	assert.Contains(t, content, "\nPoulet;Viande;2024-01-01;2;;1")
}

func TestExportCSV_PerimetreUtilisateur(t *testing.T) {
	repo := &memProductRepo{}
	productUC := usecase.NewProductUseCase(repo, newMemSettingsRepo())
	_, err := productUC.Create("autre-utilisateur", dto.CreateProductRequest{Name: "Poulet", Quantity: 1, Drawer: 1})
	require.NoError(t, err)

	uc := usecase.NewExportUseCase(repo)
	_, _, err = uc.CSV(testUserID)
	assert.ErrorIs(t, err, domain.ErrEmptyInventory, "les produits des autres utilisateurs ne s'exportent pas")
}
