package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/hugolinos1/freezy-api/internal/interfaces/http"
	pkgjwt "github.com/hugolinos1/freezy-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testEmail     = "marie@example.com"
	testIssuer    = "freezy-test"
	testExpMin    = 60
)

// buildTestApp construit une application Fiber minimale avec le middleware
// d'auth et un handler qui renvoie les locals déposés.
func buildTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"email":   apphttp.GetEmail(c),
		})
	})
	return app
}

func sessionToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.GenerateSession(testJWTSecret, testUserID, testEmail, testIssuer, testExpMin)
	require.NoError(t, err, "un jeton de session valide doit se générer")
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_JetonValideChargeLesLocals(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, sessionToken(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testEmail, body["email"])
}

func TestAuthMiddleware_SansHeaderRetourne401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN",
		"la réponse doit porter le code MISSING_TOKEN")
}

func TestAuthMiddleware_JetonMalformeRetourne401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "Bearer jeton.invalide.ici")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestAuthMiddleware_MauvaisSchemaRetourne401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "Basic dXNlcjpwYXNz")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_JetonSigneAvecAutreSecret(t *testing.T) {
	app := buildTestApp()
	tok, err := pkgjwt.GenerateSession("autre-secret-completement-different", testUserID, testEmail, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_JetonExpire(t *testing.T) {
	app := buildTestApp()
	tok, err := pkgjwt.GenerateSession(testJWTSecret, testUserID, testEmail, testIssuer, -1)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "un jeton expiré doit être refusé")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests pkg/jwt — aller-retour session et vérification
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_SessionAllerRetour(t *testing.T) {
	tok, err := pkgjwt.GenerateSession(testJWTSecret, testUserID, testEmail, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, email, err := pkgjwt.ParseSession(testJWTSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testEmail, email)
}

func TestJWT_VerificationAllerRetour(t *testing.T) {
	tok, err := pkgjwt.GenerateVerification(testJWTSecret, testEmail, pkgjwt.VerificationLogin, testIssuer)
	require.NoError(t, err)

	email, typ, err := pkgjwt.ParseVerification(testJWTSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testEmail, email)
	assert.Equal(t, pkgjwt.VerificationLogin, typ)
}

func TestJWT_SecretVideRefuse(t *testing.T) {
	_, err := pkgjwt.GenerateSession("", testUserID, testEmail, testIssuer, testExpMin)
	assert.Error(t, err, "un secret vide ne doit jamais signer de jeton")
}
