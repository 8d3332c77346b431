// Package voice analyse une transcription libre (reconnaissance vocale
// française, côté client) et en déduit un brouillon de produit. C'est une
// heuristique au mieux, pas une grammaire : une phrase ambiguë produit un
// remplissage partiel que l'utilisateur corrige à la main.
package voice

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/hugolinos1/freezy-api/internal/domain/entity"
)

// Draft brouillon de produit issu d'une transcription. Les champs pointeurs
// restent nil quand l'heuristique n'a rien reconnu.
type Draft struct {
	Name     string
	Type     string
	Quantity *int
	Weight   *int // grammes
	Drawer   *int
}

// foldAccents retire les diacritiques : les transcriptions vocales rendent
// parfois "legumes" pour "Légumes".
var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func fold(s string) string {
	out, _, err := transform.String(foldAccents, s)
	if err != nil {
		return s
	}
	return out
}

// Analyze applique l'heuristique sur la transcription :
//   - les trois premiers mots forment le nom ;
//   - le premier mot égal à un libellé de type connu (insensible à la casse
//     et aux accents) donne le type, Autres sinon ;
//   - le mot qui suit une occurrence de "tiroir" donne le numéro de tiroir ;
//   - le premier mot entièrement numérique, hors valeur de tiroir, donne la
//     quantité ;
//   - le premier mot contenant la lettre "g" et débutant par des chiffres
//     donne le poids (aucune validation d'unité).
func Analyze(text string) Draft {
	words := strings.Fields(strings.ToLower(text))
	draft := Draft{Type: entity.TypeAutres}
	if len(words) == 0 {
		return draft
	}

	n := 3
	if len(words) < n {
		n = len(words)
	}
	draft.Name = strings.Join(words[:n], " ")

	for _, t := range entity.FoodTypes {
		label := fold(strings.ToLower(t))
		for _, w := range words {
			if fold(w) == label {
				draft.Type = t
				break
			}
		}
		if draft.Type == t {
			break
		}
	}

	// Tiroir d'abord : sa valeur ne doit pas être reprise comme quantité.
	drawerValueIdx := -1
	for i, w := range words {
		if strings.Contains(w, "tiroir") && i < len(words)-1 {
			if v, ok := leadingInt(words[i+1]); ok {
				draft.Drawer = &v
				drawerValueIdx = i + 1
			}
			break
		}
	}

	for i, w := range words {
		if i == drawerValueIdx {
			continue
		}
		if v, err := strconv.Atoi(w); err == nil {
			draft.Quantity = &v
			break
		}
	}

	for _, w := range words {
		if !strings.ContainsRune(w, 'g') {
			continue
		}
		if v, ok := leadingInt(w); ok {
			draft.Weight = &v
		}
		break
	}

	return draft
}

// leadingInt parse le préfixe numérique d'un mot ("500g" -> 500), à la
// manière de parseInt côté navigateur.
func leadingInt(s string) (int, bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, false
	}
	v, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, false
	}
	return v, true
}
