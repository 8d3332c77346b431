package entity

import "time"

// DefaultDrawerCount nombre de tiroirs par défaut d'un nouveau compte.
const DefaultDrawerCount = 5

// Settings paramètres du congélateur, un exemplaire par utilisateur.
// Créés implicitement à la première lecture s'ils n'existent pas.
type Settings struct {
	UserID      string
	DrawerCount int // >= 1
	UpdatedAt   time.Time
}
