package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugolinos1/freezy-api/internal/application/auth"
	"github.com/hugolinos1/freezy-api/internal/application/dto"
	"github.com/hugolinos1/freezy-api/internal/application/usecase"
	"github.com/hugolinos1/freezy-api/internal/domain"
	"github.com/hugolinos1/freezy-api/internal/domain/entity"
	apphttp "github.com/hugolinos1/freezy-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Application de test complète : routeur réel, stockage en mémoire.
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	users map[string]*entity.User
}

func (r *memUserRepo) Create(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

type memProductRepo struct {
	products []*entity.Product
}

func (r *memProductRepo) Create(p *entity.Product) error {
	r.products = append(r.products, p)
	return nil
}

func (r *memProductRepo) GetByID(userID, id string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.UserID == userID && p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) ListByUser(userID string) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0)
	for _, p := range r.products {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	for i, old := range r.products {
		if old.UserID == p.UserID && old.ID == p.ID {
			r.products[i] = p
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memProductRepo) Delete(userID, id string) error {
	for i, p := range r.products {
		if p.UserID == userID && p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type memSettingsRepo struct {
	settings map[string]*entity.Settings
}

func (r *memSettingsRepo) Get(userID string) (*entity.Settings, error) {
	return r.settings[userID], nil
}

func (r *memSettingsRepo) Upsert(s *entity.Settings) error {
	r.settings[s.UserID] = s
	return nil
}

type noopMailer struct{}

func (noopMailer) SendVerificationEmail(email, verificationURL, typ string) error { return nil }

// buildAPI assemble l'API complète sur des repositories en mémoire.
func buildAPI() *fiber.App {
	userRepo := &memUserRepo{users: map[string]*entity.User{}}
	productRepo := &memProductRepo{}
	settingsRepo := &memSettingsRepo{settings: map[string]*entity.Settings{}}

	authUC := auth.NewAuthUseCase(userRepo, noopMailer{}, auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	}, "http://localhost:8080")
	productUC := usecase.NewProductUseCase(productRepo, settingsRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	exportUC := usecase.NewExportUseCase(productRepo)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:     authUC,
		ProductUC:  productUC,
		SettingsUC: settingsUC,
		ExportUC:   exportUC,
		JWTSecret:  testJWTSecret,
	})
	return app
}

// registerAndLogin crée un compte et retourne le header Authorization.
func registerAndLogin(t *testing.T, app *fiber.App) string {
	t.Helper()
	doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": "marie@example.com", "password": "secret123", "display_name": "Marie",
	})
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "marie@example.com", "password": "secret123",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var session dto.SessionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&session))
	return "Bearer " + session.Token
}

func doJSON(t *testing.T, app *fiber.App, method, path, authHeader string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Produits
// ──────────────────────────────────────────────────────────────────────────────

func TestProducts_CycleComplet(t *testing.T) {
	app := buildAPI()
	token := registerAndLogin(t, app)

	// Création
	resp := doJSON(t, app, http.MethodPost, "/api/products", token, map[string]interface{}{
		"name": "Poulet", "type": "Viande", "entry_date": "2024-01-01",
		"quantity": 2, "weight": 500, "drawer": 1,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.ProductResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	require.NotEmpty(t, created.ID)

	// Liste
	resp = doJSON(t, app, http.MethodGet, "/api/products", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.ProductListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	resp.Body.Close()
	assert.Equal(t, 1, list.Total)

	// Mise à jour partielle
	resp = doJSON(t, app, http.MethodPut, "/api/products/"+created.ID, token, map[string]interface{}{
		"quantity": 5,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated dto.ProductResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	resp.Body.Close()
	assert.Equal(t, 5, updated.Quantity)
	assert.Equal(t, "Poulet", updated.Name)

	// Suppression
	resp = doJSON(t, app, http.MethodDelete, "/api/products/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/api/products/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestProducts_ChampsManquantsListesDansLaReponse(t *testing.T) {
	app := buildAPI()
	token := registerAndLogin(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/products", token, map[string]interface{}{
		"type": "Viande",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, "VALIDATION", errResp.Code)
	assert.Equal(t, []string{"nom du produit", "quantité", "numéro de tiroir"}, errResp.Fields,
		"les champs manquants sont nommés dans la réponse pour l'affichage du formulaire")
}

func TestProducts_SansJetonRefuse(t *testing.T) {
	app := buildAPI()
	resp := doJSON(t, app, http.MethodGet, "/api/products", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProducts_VueGroupeeParTiroir(t *testing.T) {
	app := buildAPI()
	token := registerAndLogin(t, app)

	doJSON(t, app, http.MethodPost, "/api/products", token, map[string]interface{}{
		"name": "Saumon", "type": "Poisson", "quantity": 1, "drawer": 2,
	}).Body.Close()

	resp := doJSON(t, app, http.MethodGet, "/api/products/grouped?by=drawer", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var grouped dto.GroupedProductsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&grouped))
	assert.Equal(t, "drawer", grouped.Mode)
	require.Len(t, grouped.Buckets, entity.DefaultDrawerCount)
	assert.Len(t, grouped.Buckets[1].Products, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Paramètres et export
// ──────────────────────────────────────────────────────────────────────────────

func TestSettings_IncrementEtPlancher(t *testing.T) {
	app := buildAPI()
	token := registerAndLogin(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/settings/drawers/increment", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var settings dto.SettingsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&settings))
	resp.Body.Close()
	assert.Equal(t, entity.DefaultDrawerCount+1, settings.DrawerCount)

	for i := 0; i < 10; i++ {
		resp = doJSON(t, app, http.MethodPost, "/api/settings/drawers/decrement", token, nil)
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&settings))
		resp.Body.Close()
	}
	assert.Equal(t, 1, settings.DrawerCount, "le décrément s'arrête à 1 tiroir")
}

func TestExport_InventaireVide409(t *testing.T) {
	app := buildAPI()
	token := registerAndLogin(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/export/csv", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "EMPTY_INVENTORY")
}

func TestExport_EnTetesDeTelechargement(t *testing.T) {
	app := buildAPI()
	token := registerAndLogin(t, app)

	doJSON(t, app, http.MethodPost, "/api/products", token, map[string]interface{}{
		"name": "Poulet", "type": "Viande", "entry_date": "2024-01-01", "quantity": 2, "drawer": 1,
	}).Body.Close()

	resp := doJSON(t, app, http.MethodGet, "/api/export/csv", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment; filename=")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "freezer_inventory_")

	body, _ := io.ReadAll(resp.Body)
	assert.True(t, strings.HasPrefix(string(body), "Nom;Type;Date d'entrée;Quantité;Poids;Tiroir"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Analyse vocale
// ──────────────────────────────────────────────────────────────────────────────

func TestVoiceAnalyze_BrouillonComplet(t *testing.T) {
	app := buildAPI()
	token := registerAndLogin(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/voice/analyze", token, map[string]string{
		"transcript": "Poulet rôti viande 2 500g tiroir 3",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var draft dto.VoiceDraftResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&draft))
	assert.Equal(t, "poulet rôti viande", draft.Name)
	assert.Equal(t, "Viande", draft.Type)
	require.NotNil(t, draft.Quantity)
	assert.Equal(t, 2, *draft.Quantity)
	require.NotNil(t, draft.Weight)
	assert.Equal(t, 500, *draft.Weight)
	require.NotNil(t, draft.Drawer)
	assert.Equal(t, 3, *draft.Drawer)
}

func TestVoiceAnalyze_TranscriptionManquante(t *testing.T) {
	app := buildAPI()
	token := registerAndLogin(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/voice/analyze", token, map[string]string{})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
