package auth

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hugolinos1/freezy-api/internal/application/dto"
	"github.com/hugolinos1/freezy-api/internal/domain"
	"github.com/hugolinos1/freezy-api/internal/domain/entity"
	"github.com/hugolinos1/freezy-api/internal/domain/repository"
	"github.com/hugolinos1/freezy-api/pkg/jwt"
)

// minPasswordLen longueur minimale d'un mot de passe (règle héritée de
// Firebase Auth).
const minPasswordLen = 6

// JWTConfig configuration pour la génération des jetons.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase cas d'usage d'authentification : les deux variantes
// d'établissement de session (mot de passe et lien magique) plus la gestion
// du profil.
type AuthUseCase struct {
	userRepo repository.UserRepository
	mailer   Mailer
	jwtCfg   JWTConfig
	baseURL  string
}

// NewAuthUseCase construit le cas d'usage d'auth. baseURL sert à fabriquer
// les URLs de vérification (<baseURL>/verify?token=...).
func NewAuthUseCase(userRepo repository.UserRepository, mailer Mailer, jwtCfg JWTConfig, baseURL string) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, mailer: mailer, jwtCfg: jwtCfg, baseURL: baseURL}
}

// Register crée un compte par mot de passe : valide email et mot de passe,
// hashe avec bcrypt, persiste, puis envoie l'email de vérification (au
// mieux : un échec d'envoi ne bloque pas l'inscription).
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return nil, domain.ErrInvalidEmail
	}
	if len(in.Password) < minPasswordLen {
		return nil, domain.ErrWeakPassword
	}
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		DisplayName:  in.DisplayName,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	_ = uc.sendVerification(user.Email, jwt.VerificationSignup)
	return toUserResponse(user), nil
}

// Login vérifie email/mot de passe et retourne un jeton de session.
// Utilisateur inconnu et mauvais mot de passe se confondent côté client
// (identifiants incorrects).
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.SessionResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == "" {
		return nil, domain.ErrInvalidCredential
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredential
	}
	return uc.newSession(user)
}

// RequestMagicLink fabrique un jeton de vérification d'une heure et envoie
// le lien par email. Le compte peut ne pas exister encore : il sera créé à
// la vérification.
func (uc *AuthUseCase) RequestMagicLink(email string) (*dto.MagicLinkResponse, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domain.ErrInvalidEmail
	}
	typ := jwt.VerificationLogin
	existing, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		typ = jwt.VerificationSignup
	}
	if err := uc.sendVerification(email, typ); err != nil {
		return nil, fmt.Errorf("impossible d'envoyer l'email de connexion: %w", err)
	}
	return &dto.MagicLinkResponse{
		Message: "Vérifiez votre email pour le lien de connexion",
		Email:   email,
	}, nil
}

// VerifyMagicLink valide le jeton du lien, crée le compte à la volée si
// l'email est inconnu, marque l'email vérifié et ouvre une session.
func (uc *AuthUseCase) VerifyMagicLink(token string) (*dto.SessionResponse, error) {
	email, _, err := jwt.ParseVerification(uc.jwtCfg.Secret, token)
	if err != nil {
		if err == jwt.ErrExpired {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if user == nil {
		user = &entity.User{
			ID:            uuid.New().String(),
			Email:         email,
			EmailVerified: true,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := uc.userRepo.Create(user); err != nil {
			return nil, err
		}
	} else if !user.EmailVerified {
		user.EmailVerified = true
		user.UpdatedAt = now
		if err := uc.userRepo.Update(user); err != nil {
			return nil, err
		}
	}
	return uc.newSession(user)
}

// GetUser retourne l'utilisateur courant.
func (uc *AuthUseCase) GetUser(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// UpdateDisplayName met à jour le nom affiché.
func (uc *AuthUseCase) UpdateDisplayName(userID, displayName string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	user.DisplayName = displayName
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// UpdatePassword change le mot de passe après ré-authentification avec le
// mot de passe courant. Échoue avec ErrInvalidCredential si le courant ne
// correspond pas, y compris pour un compte sans mot de passe.
func (uc *AuthUseCase) UpdatePassword(userID string, in dto.UpdatePasswordRequest) error {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if user.PasswordHash == "" {
		return domain.ErrInvalidCredential
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrInvalidCredential
	}
	if len(in.NewPassword) < minPasswordLen {
		return domain.ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now()
	return uc.userRepo.Update(user)
}

func (uc *AuthUseCase) sendVerification(email, typ string) error {
	token, err := jwt.GenerateVerification(uc.jwtCfg.Secret, email, typ, uc.jwtCfg.Issuer)
	if err != nil {
		return err
	}
	url := fmt.Sprintf("%s/verify?token=%s", uc.baseURL, token)
	return uc.mailer.SendVerificationEmail(email, url, typ)
}

func (uc *AuthUseCase) newSession(user *entity.User) (*dto.SessionResponse, error) {
	token, err := jwt.GenerateSession(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.SessionResponse{Token: token, User: *toUserResponse(user)}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		DisplayName:   u.DisplayName,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
	}
}
