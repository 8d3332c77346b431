package entity

import "time"

// Types d'aliments valides (six valeurs fixes, Autres sert de fourre-tout).
const (
	TypePoisson  = "Poisson"
	TypeViande   = "Viande"
	TypeLegumes  = "Légumes"
	TypeFruits   = "Fruits"
	TypeDesserts = "Desserts"
	TypeAutres   = "Autres"
)

// FoodTypes liste les types dans l'ordre d'affichage (Autres en dernier).
var FoodTypes = []string{TypePoisson, TypeViande, TypeLegumes, TypeFruits, TypeDesserts, TypeAutres}

// IsValidFoodType indique si s est un des six types connus.
func IsValidFoodType(s string) bool {
	for _, t := range FoodTypes {
		if t == s {
			return true
		}
	}
	return false
}

// Product représente un aliment stocké dans le congélateur d'un utilisateur.
// EntryDate est conservée telle que saisie (chaîne horodatée) ; Weight est
// optionnel (grammes).
type Product struct {
	ID        string
	UserID    string
	Name      string
	Type      string // un des six FoodTypes
	EntryDate string
	Quantity  int
	Weight    *int // grammes, nil si non renseigné
	Drawer    int  // numéro de tiroir, >= 1
	CreatedAt time.Time
	UpdatedAt time.Time
}
