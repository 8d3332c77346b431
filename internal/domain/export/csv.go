// Package export sérialise l'inventaire au format CSV historique de
// l'application : séparateur point-virgule, en-tête fixe en français, pas de
// quoting ni de retour à la ligne final. encoding/csv ne sait pas reproduire
// ce format (quoting automatique, terminateur de ligne), d'où la
// construction manuelle.
package export

import (
	"strconv"
	"strings"
	"time"

	"github.com/hugolinos1/freezy-api/internal/domain/entity"
)

// Header en-tête CSV, ordre des colonnes fixe.
const Header = "Nom;Type;Date d'entrée;Quantité;Poids;Tiroir"

// CSV sérialise les produits : une ligne d'en-tête puis une ligne par
// produit, champs joints par ";". Le poids absent laisse la colonne vide.
func CSV(products []*entity.Product) string {
	var b strings.Builder
	b.WriteString(Header)
	for _, p := range products {
		weight := ""
		if p.Weight != nil {
			weight = strconv.Itoa(*p.Weight)
		}
		b.WriteByte('\n')
		b.WriteString(strings.Join([]string{
			p.Name,
			p.Type,
			p.EntryDate,
			strconv.Itoa(p.Quantity),
			weight,
			strconv.Itoa(p.Drawer),
		}, ";"))
	}
	return b.String()
}

// Filename nom du fichier exporté, daté du jour : freezer_inventory_<date>.csv.
func Filename(now time.Time) string {
	return "freezer_inventory_" + now.Format("2006-01-02") + ".csv"
}
