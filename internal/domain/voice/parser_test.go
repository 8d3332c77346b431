package voice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugolinos1/freezy-api/internal/domain/entity"
	"github.com/hugolinos1/freezy-api/internal/domain/voice"
)

// ──────────────────────────────────────────────────────────────────────────────
// Analyze — heuristique sur transcription française. Les phrases de test
// reprennent les énoncés typiques dictés dans l'application.
// ──────────────────────────────────────────────────────────────────────────────

func TestAnalyze_PhraseComplete(t *testing.T) {
	draft := voice.Analyze("Poulet rôti viande 2 500g tiroir 3")

	assert.Equal(t, "poulet rôti viande", draft.Name, "le nom reprend les trois premiers mots, en minuscules")
	assert.Equal(t, entity.TypeViande, draft.Type)
	require.NotNil(t, draft.Quantity)
	assert.Equal(t, 2, *draft.Quantity)
	require.NotNil(t, draft.Weight)
	assert.Equal(t, 500, *draft.Weight)
	require.NotNil(t, draft.Drawer)
	assert.Equal(t, 3, *draft.Drawer)
}

func TestAnalyze_ValeurDeTiroirPasRepriseCommeQuantite(t *testing.T) {
	// "3" suit "tiroir" : c'est le numéro de tiroir, pas la quantité.
	draft := voice.Analyze("poulet rôti deux tiroir 3")

	assert.Equal(t, "poulet rôti deux", draft.Name)
	assert.Nil(t, draft.Quantity, "le mot après tiroir ne doit pas devenir la quantité")
	require.NotNil(t, draft.Drawer)
	assert.Equal(t, 3, *draft.Drawer)
}

func TestAnalyze_TypeInsensibleALaCasseEtAuxAccents(t *testing.T) {
	// La reconnaissance vocale rend souvent "legumes" sans accent.
	draft := voice.Analyze("haricots verts legumes 1 tiroir 2")
	assert.Equal(t, entity.TypeLegumes, draft.Type)

	draft = voice.Analyze("crevettes POISSON 4")
	assert.Equal(t, entity.TypePoisson, draft.Type)
}

func TestAnalyze_TypeInconnuTombeDansAutres(t *testing.T) {
	draft := voice.Analyze("pizza quatre fromages 1 tiroir 5")
	assert.Equal(t, entity.TypeAutres, draft.Type)
}

func TestAnalyze_PoidsPrefixeNumeriqueAvecG(t *testing.T) {
	draft := voice.Analyze("saumon poisson 250g tiroir 1")

	require.NotNil(t, draft.Weight)
	assert.Equal(t, 250, *draft.Weight)
}

func TestAnalyze_PhraseCourte(t *testing.T) {
	draft := voice.Analyze("glace")

	assert.Equal(t, "glace", draft.Name, "moins de trois mots : le nom reprend ce qu'il y a")
	assert.Equal(t, entity.TypeAutres, draft.Type)
	assert.Nil(t, draft.Quantity)
	assert.Nil(t, draft.Weight)
	assert.Nil(t, draft.Drawer)
}

func TestAnalyze_TranscriptionVide(t *testing.T) {
	draft := voice.Analyze("   ")

	assert.Empty(t, draft.Name)
	assert.Equal(t, entity.TypeAutres, draft.Type)
	assert.Nil(t, draft.Quantity)
	assert.Nil(t, draft.Weight)
	assert.Nil(t, draft.Drawer)
}

func TestAnalyze_TiroirEnFinDePhraseSansValeur(t *testing.T) {
	draft := voice.Analyze("steak haché viande 2 tiroir")
	assert.Nil(t, draft.Drawer, "tiroir sans mot suivant ne donne pas de numéro")
	require.NotNil(t, draft.Quantity)
	assert.Equal(t, 2, *draft.Quantity)
}

func TestAnalyze_TiroirSuiviDunMotNonNumerique(t *testing.T) {
	draft := voice.Analyze("poulet viande tiroir bas 2")
	assert.Nil(t, draft.Drawer)
	require.NotNil(t, draft.Quantity)
	assert.Equal(t, 2, *draft.Quantity, "la quantité reste détectée ailleurs dans la phrase")
}
