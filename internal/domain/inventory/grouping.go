// Package inventory contient les projections pures sur la liste de produits
// (regroupement par type d'aliment ou par tiroir). Aucun accès au stockage :
// l'entrée est la liste déjà chargée, la sortie une partition ordonnée.
package inventory

import (
	"strconv"

	"github.com/hugolinos1/freezy-api/internal/domain/entity"
)

// Bucket un compartiment de la vue groupée. Key est le libellé du type
// d'aliment ou le numéro de tiroir ("1".."N").
type Bucket struct {
	Key      string
	Products []*entity.Product
}

// GroupByType partitionne les produits en six compartiments fixes, dans
// l'ordre d'affichage (Autres en dernier). Un produit au type inconnu tombe
// dans Autres ; chaque produit apparaît dans exactement un compartiment.
func GroupByType(products []*entity.Product) []Bucket {
	byType := make(map[string][]*entity.Product, len(entity.FoodTypes))
	for _, p := range products {
		key := p.Type
		if !entity.IsValidFoodType(key) {
			key = entity.TypeAutres
		}
		byType[key] = append(byType[key], p)
	}
	buckets := make([]Bucket, 0, len(entity.FoodTypes))
	for _, t := range entity.FoodTypes {
		buckets = append(buckets, Bucket{Key: t, Products: byType[t]})
	}
	return buckets
}

// GroupByDrawer partitionne les produits en exactement drawerCount
// compartiments numérotés 1..N, vides inclus. Les produits dont le tiroir
// sort de cet intervalle n'apparaissent pas dans cette vue (ils restent
// visibles dans la liste à plat et la vue par type).
func GroupByDrawer(products []*entity.Product, drawerCount int) []Bucket {
	if drawerCount < 1 {
		drawerCount = 1
	}
	byDrawer := make(map[int][]*entity.Product)
	for _, p := range products {
		byDrawer[p.Drawer] = append(byDrawer[p.Drawer], p)
	}
	buckets := make([]Bucket, 0, drawerCount)
	for d := 1; d <= drawerCount; d++ {
		buckets = append(buckets, Bucket{Key: strconv.Itoa(d), Products: byDrawer[d]})
	}
	return buckets
}
