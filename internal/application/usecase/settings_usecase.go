package usecase

import (
	"time"

	"github.com/hugolinos1/freezy-api/internal/application/dto"
	"github.com/hugolinos1/freezy-api/internal/domain"
	"github.com/hugolinos1/freezy-api/internal/domain/entity"
	"github.com/hugolinos1/freezy-api/internal/domain/repository"
)

// SettingsUseCase gestion du nombre de tiroirs.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construit le cas d'usage.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get retourne les paramètres de l'utilisateur, créés avec la valeur par
// défaut à la première lecture s'ils n'existent pas.
func (uc *SettingsUseCase) Get(userID string) (*dto.SettingsResponse, error) {
	settings, err := uc.getOrCreate(userID)
	if err != nil {
		return nil, err
	}
	return &dto.SettingsResponse{DrawerCount: settings.DrawerCount}, nil
}

// Update fixe directement le nombre de tiroirs (>= 1).
func (uc *SettingsUseCase) Update(userID string, in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	if in.DrawerCount < 1 {
		return nil, domain.ErrInvalidInput
	}
	settings := &entity.Settings{UserID: userID, DrawerCount: in.DrawerCount, UpdatedAt: time.Now()}
	if err := uc.repo.Upsert(settings); err != nil {
		return nil, err
	}
	return &dto.SettingsResponse{DrawerCount: settings.DrawerCount}, nil
}

// IncrementDrawers ajoute un tiroir, sans borne supérieure.
func (uc *SettingsUseCase) IncrementDrawers(userID string) (*dto.SettingsResponse, error) {
	return uc.adjustDrawers(userID, +1)
}

// DecrementDrawers retire un tiroir, plancher à 1 (descendre sous 1 est un
// no-op).
func (uc *SettingsUseCase) DecrementDrawers(userID string) (*dto.SettingsResponse, error) {
	return uc.adjustDrawers(userID, -1)
}

func (uc *SettingsUseCase) adjustDrawers(userID string, delta int) (*dto.SettingsResponse, error) {
	settings, err := uc.getOrCreate(userID)
	if err != nil {
		return nil, err
	}
	count := settings.DrawerCount + delta
	if count < 1 {
		count = 1
	}
	if count != settings.DrawerCount {
		settings.DrawerCount = count
		settings.UpdatedAt = time.Now()
		if err := uc.repo.Upsert(settings); err != nil {
			return nil, err
		}
	}
	return &dto.SettingsResponse{DrawerCount: settings.DrawerCount}, nil
}

func (uc *SettingsUseCase) getOrCreate(userID string) (*entity.Settings, error) {
	settings, err := uc.repo.Get(userID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &entity.Settings{UserID: userID, DrawerCount: entity.DefaultDrawerCount, UpdatedAt: time.Now()}
		if err := uc.repo.Upsert(settings); err != nil {
			return nil, err
		}
	}
	return settings, nil
}
