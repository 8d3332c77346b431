package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugolinos1/freezy-api/internal/application/dto"
	"github.com/hugolinos1/freezy-api/internal/application/usecase"
	"github.com/hugolinos1/freezy-api/internal/domain"
	"github.com/hugolinos1/freezy-api/internal/domain/entity"
)

func newSettingsUseCase() (*usecase.SettingsUseCase, *memSettingsRepo) {
	repo := newMemSettingsRepo()
	return usecase.NewSettingsUseCase(repo), repo
}

func TestSettingsGet_ValeurParDefautPersistee(t *testing.T) {
	uc, repo := newSettingsUseCase()

	out, err := uc.Get(testUserID)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultDrawerCount, out.DrawerCount, "5 tiroirs par défaut")

	stored, err := repo.Get(testUserID)
	require.NoError(t, err)
	require.NotNil(t, stored, "la première lecture persiste la valeur par défaut")
	assert.Equal(t, entity.DefaultDrawerCount, stored.DrawerCount)
}

func TestSettingsUpdate_ValeurDirecte(t *testing.T) {
	uc, _ := newSettingsUseCase()

	out, err := uc.Update(testUserID, dto.UpdateSettingsRequest{DrawerCount: 8})
	require.NoError(t, err)
	assert.Equal(t, 8, out.DrawerCount)
}

func TestSettingsUpdate_ZeroRefuse(t *testing.T) {
	uc, _ := newSettingsUseCase()
	_, err := uc.Update(testUserID, dto.UpdateSettingsRequest{DrawerCount: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestIncrementDrawers_SansBorneSuperieure(t *testing.T) {
	uc, _ := newSettingsUseCase()

	var out *dto.SettingsResponse
	var err error
	for i := 0; i < 20; i++ {
		out, err = uc.IncrementDrawers(testUserID)
		require.NoError(t, err)
	}
	assert.Equal(t, entity.DefaultDrawerCount+20, out.DrawerCount, "aucune borne supérieure sur le nombre de tiroirs")
}

func TestDecrementDrawers_PlancherAUn(t *testing.T) {
	uc, _ := newSettingsUseCase()

	var out *dto.SettingsResponse
	var err error
	for i := 0; i < 10; i++ {
		out, err = uc.DecrementDrawers(testUserID)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, out.DrawerCount, "descendre sous 1 tiroir est un no-op")

	out, err = uc.IncrementDrawers(testUserID)
	require.NoError(t, err)
	assert.Equal(t, 2, out.DrawerCount, "l'incrément repart du plancher")
}
