package inventory_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugolinos1/freezy-api/internal/domain/entity"
	"github.com/hugolinos1/freezy-api/internal/domain/inventory"
)

func product(name, typ string, drawer int) *entity.Product {
	return &entity.Product{Name: name, Type: typ, Drawer: drawer}
}

// ──────────────────────────────────────────────────────────────────────────────
// GroupByType — six compartiments fixes, Autres en dernier
// ──────────────────────────────────────────────────────────────────────────────

func TestGroupByType_SixCompartimentsDansLOrdre(t *testing.T) {
	buckets := inventory.GroupByType(nil)

	require.Len(t, buckets, 6, "la vue par type a toujours six compartiments, même vides")
	keys := make([]string, 0, len(buckets))
	for _, b := range buckets {
		keys = append(keys, b.Key)
	}
	assert.Equal(t, []string{"Poisson", "Viande", "Légumes", "Fruits", "Desserts", "Autres"}, keys,
		"l'ordre d'affichage est fixe, Autres en dernier")
}

func TestGroupByType_ChaqueProduitDansUnSeulCompartiment(t *testing.T) {
	products := []*entity.Product{
		product("saumon", entity.TypePoisson, 1),
		product("poulet", entity.TypeViande, 1),
		product("steak", entity.TypeViande, 2),
		product("glace", entity.TypeDesserts, 3),
	}

	buckets := inventory.GroupByType(products)

	total := 0
	for _, b := range buckets {
		total += len(b.Products)
	}
	assert.Equal(t, len(products), total, "la partition ne duplique ni ne perd de produit")

	byKey := map[string][]*entity.Product{}
	for _, b := range buckets {
		byKey[b.Key] = b.Products
	}
	assert.Len(t, byKey[entity.TypeViande], 2)
	assert.Len(t, byKey[entity.TypePoisson], 1)
	assert.Len(t, byKey[entity.TypeDesserts], 1)
	assert.Empty(t, byKey[entity.TypeFruits])
}

func TestGroupByType_TypeInconnuTombeDansAutres(t *testing.T) {
	products := []*entity.Product{
		product("mystère", "Surgelés", 1),
		product("sans type", "", 2),
	}

	buckets := inventory.GroupByType(products)

	var autres []*entity.Product
	for _, b := range buckets {
		if b.Key == entity.TypeAutres {
			autres = b.Products
		}
	}
	assert.Len(t, autres, 2, "un type inconnu ou vide est rangé dans Autres")
}

// ──────────────────────────────────────────────────────────────────────────────
// GroupByDrawer — exactement 1..N, vides inclus, hors intervalle masqué
// ──────────────────────────────────────────────────────────────────────────────

func TestGroupByDrawer_ExactementNCompartiments(t *testing.T) {
	buckets := inventory.GroupByDrawer(nil, 5)

	require.Len(t, buckets, 5)
	for i, b := range buckets {
		assert.Equal(t, strconv.Itoa(i+1), b.Key)
		assert.Empty(t, b.Products)
	}
}

func TestGroupByDrawer_ProduitsRangesParTiroir(t *testing.T) {
	products := []*entity.Product{
		product("a", entity.TypePoisson, 1),
		product("b", entity.TypeViande, 1),
		product("c", entity.TypeFruits, 3),
	}

	buckets := inventory.GroupByDrawer(products, 3)

	require.Len(t, buckets, 3)
	assert.Len(t, buckets[0].Products, 2)
	assert.Empty(t, buckets[1].Products)
	assert.Len(t, buckets[2].Products, 1)
}

func TestGroupByDrawer_HorsIntervalleMasqueDeLaVue(t *testing.T) {
	// Un produit rangé dans le tiroir 7 alors que le congélateur n'en compte
	// plus que 5 reste en base, mais n'apparaît pas dans la vue par tiroir.
	products := []*entity.Product{
		product("visible", entity.TypeViande, 2),
		product("orphelin", entity.TypeViande, 7),
	}

	buckets := inventory.GroupByDrawer(products, 5)

	total := 0
	for _, b := range buckets {
		total += len(b.Products)
	}
	assert.Equal(t, 1, total, "le produit hors intervalle est masqué de cette vue")
}

func TestGroupByDrawer_PlancherAUnCompartiment(t *testing.T) {
	buckets := inventory.GroupByDrawer(nil, 0)
	assert.Len(t, buckets, 1, "un drawerCount invalide retombe sur un seul compartiment")
}
