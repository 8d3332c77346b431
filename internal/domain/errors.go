package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Erreurs de domaine (sans dépendances externes).
var (
	ErrNotFound           = errors.New("ressource introuvable")
	ErrUserNotFound       = errors.New("utilisateur introuvable")
	ErrEmailAlreadyExists = errors.New("cet email est déjà utilisé")
	ErrInvalidEmail       = errors.New("email invalide")
	ErrWeakPassword       = errors.New("le mot de passe doit contenir au moins 6 caractères")
	ErrInvalidCredential  = errors.New("identifiants incorrects")
	ErrTokenInvalid       = errors.New("lien de connexion invalide")
	ErrTokenExpired       = errors.New("lien de connexion expiré")
	ErrInvalidInput       = errors.New("entrée invalide")
	ErrUnauthorized       = errors.New("non autorisé")
	ErrEmptyInventory     = errors.New("aucun produit à exporter")
)

// MissingFieldsError signale les champs obligatoires absents d'un formulaire,
// nommés en clair pour l'utilisateur ("nom du produit", "quantité", ...).
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("champs requis manquants: %s", strings.Join(e.Fields, ", "))
}
