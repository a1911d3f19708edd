package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartretail/internal/handlers"
	"smartretail/internal/middleware"
	"smartretail/internal/repositories"
	"smartretail/internal/services"
	"smartretail/internal/validation"
)

// setupApp builds a Fiber app over in-memory repositories with the full
// middleware and handler wiring.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	userRepo := repositories.NewMockUserRepository()
	productRepo := repositories.NewMockProductRepository()

	authService, err := services.NewAuthService(userRepo, "test_jwt_secret")
	require.NoError(t, err)
	productService := services.NewProductService(productRepo, nil)

	validate := validation.New()
	app := fiber.New()
	handlers.NewAuthHandler(authService, validate).RegisterRoutes(app)
	handlers.NewProductHandler(productService, validate).
		RegisterRoutes(app, middleware.AuthRequired(authService))
	return app
}

// doJSON performs a request with an optional JSON body and bearer token and
// decodes the JSON response into a generic envelope.
func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) (int, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp.StatusCode, envelope
}

// registerAndLogin registers a fresh user and returns a valid bearer token.
func registerAndLogin(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()

	code, _ := doJSON(t, app, http.MethodPost, "/users/register",
		map[string]interface{}{"name": "Ann", "email": email, "password": password}, "")
	require.Equal(t, http.StatusOK, code)

	code, envelope := doJSON(t, app, http.MethodPost, "/users/login",
		map[string]interface{}{"email": email, "password": password}, "")
	require.Equal(t, http.StatusOK, code)
	data := envelope["data"].(map[string]interface{})
	token, _ := data["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func validProductBody() map[string]interface{} {
	return map[string]interface{}{
		"name":        "Canvas Sneaker",
		"description": "Low-top canvas sneaker",
		"brand":       "Acme",
		"category":    "shoes",
		"price":       49.90,
		"stock":       12,
		"color":       "white",
		"size":        "42",
		"imageUrl":    "https://cdn.example.com/sneaker.png",
		"tags":        []string{"summer", "casual"},
	}
}

func TestRegister(t *testing.T) {
	app := setupApp(t)

	body := map[string]interface{}{"name": "Ann", "email": "ann@x.com", "password": "secret1"}
	code, envelope := doJSON(t, app, http.MethodPost, "/users/register", body, "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, envelope["status"])
	assert.Equal(t, "User registered successfully", envelope["message"])

	// Same email again, even with a different password.
	body["password"] = "another9"
	code, envelope = doJSON(t, app, http.MethodPost, "/users/register", body, "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, false, envelope["status"])
	assert.Equal(t, "User already exists", envelope["message"])
}

func TestRegisterValidation(t *testing.T) {
	app := setupApp(t)

	cases := []struct {
		name string
		body map[string]interface{}
	}{
		{"bad email", map[string]interface{}{"name": "Ann", "email": "not-an-email", "password": "secret1"}},
		{"short password", map[string]interface{}{"name": "Ann", "email": "ann@x.com", "password": "short"}},
		{"missing name", map[string]interface{}{"email": "ann@x.com", "password": "secret1"}},
		{"name too long", map[string]interface{}{
			"name": "This name is way too long to fit thirty characters",
			"email": "ann@x.com", "password": "secret1",
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, envelope := doJSON(t, app, http.MethodPost, "/users/register", tc.body, "")
			assert.Equal(t, http.StatusBadRequest, code)
			assert.Equal(t, false, envelope["status"])
			assert.Equal(t, "Invalid input data", envelope["message"])
			assert.NotEmpty(t, envelope["errors"])
		})
	}

	// Address is optional.
	code, _ := doJSON(t, app, http.MethodPost, "/users/register",
		map[string]interface{}{"name": "Ann", "email": "with-address@x.com", "password": "secret1", "address": "1 Main St"}, "")
	assert.Equal(t, http.StatusOK, code)
}

func TestLogin(t *testing.T) {
	app := setupApp(t)

	code, _ := doJSON(t, app, http.MethodPost, "/users/register",
		map[string]interface{}{"name": "Ann", "email": "ann@x.com", "password": "secret1"}, "")
	require.Equal(t, http.StatusOK, code)

	// Successful login echoes name and email and returns a token.
	code, envelope := doJSON(t, app, http.MethodPost, "/users/login",
		map[string]interface{}{"email": "ann@x.com", "password": "secret1"}, "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, envelope["success"])
	data := envelope["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "Ann", user["name"])
	assert.Equal(t, "ann@x.com", user["email"])

	// Wrong password and unknown email produce the same generic answer.
	code, envelope = doJSON(t, app, http.MethodPost, "/users/login",
		map[string]interface{}{"email": "ann@x.com", "password": "wrong1"}, "")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, false, envelope["success"])
	assert.Equal(t, "Invalid credentials", envelope["message"])

	code, envelope = doJSON(t, app, http.MethodPost, "/users/login",
		map[string]interface{}{"email": "ghost@x.com", "password": "secret1"}, "")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid credentials", envelope["message"])

	// Malformed email never reaches the credential check.
	code, envelope = doJSON(t, app, http.MethodPost, "/users/login",
		map[string]interface{}{"email": "nope", "password": "secret1"}, "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid input data", envelope["message"])
}

func TestCreateProduct(t *testing.T) {
	app := setupApp(t)
	token := registerAndLogin(t, app, "seller@x.com", "secret1")

	code, envelope := doJSON(t, app, http.MethodPost, "/product", validProductBody(), token)
	assert.Equal(t, http.StatusCreated, code)
	assert.Equal(t, true, envelope["status"])
	assert.Equal(t, "Product added successfully", envelope["message"])
	data := envelope["data"].(map[string]interface{})
	assert.NotEmpty(t, data["id"])
	assert.Equal(t, "Canvas Sneaker", data["name"])

	// The root creation path behaves identically.
	code, envelope = doJSON(t, app, http.MethodPost, "/", validProductBody(), token)
	assert.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Product added successfully", envelope["message"])
}

func TestCreateProduct_Boundaries(t *testing.T) {
	app := setupApp(t)
	token := registerAndLogin(t, app, "seller@x.com", "secret1")

	// Zero price and zero stock are legal.
	body := validProductBody()
	body["price"] = 0
	body["stock"] = 0
	code, _ := doJSON(t, app, http.MethodPost, "/product", body, token)
	assert.Equal(t, http.StatusCreated, code)

	rejected := []struct {
		name  string
		patch map[string]interface{}
	}{
		{"negative price", map[string]interface{}{"price": -1}},
		{"negative stock", map[string]interface{}{"stock": -1}},
		{"fractional stock", map[string]interface{}{"stock": 2.5}},
		{"bad image url", map[string]interface{}{"imageUrl": "not a url"}},
		{"missing brand", map[string]interface{}{"brand": ""}},
	}
	for _, tc := range rejected {
		t.Run(tc.name, func(t *testing.T) {
			body := validProductBody()
			for k, v := range tc.patch {
				body[k] = v
			}
			code, envelope := doJSON(t, app, http.MethodPost, "/product", body, token)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.Equal(t, false, envelope["status"])
			assert.Equal(t, "Invalid product data", envelope["message"])
		})
	}

	// Tags are optional.
	body = validProductBody()
	delete(body, "tags")
	code, _ = doJSON(t, app, http.MethodPost, "/product", body, token)
	assert.Equal(t, http.StatusCreated, code)
}

func TestDeleteProduct(t *testing.T) {
	app := setupApp(t)
	token := registerAndLogin(t, app, "seller@x.com", "secret1")

	code, envelope := doJSON(t, app, http.MethodPost, "/product", validProductBody(), token)
	require.Equal(t, http.StatusCreated, code)
	id := envelope["data"].(map[string]interface{})["id"].(string)

	// Delete once, then the second delete finds nothing.
	code, envelope = doJSON(t, app, http.MethodDelete, "/"+id, nil, token)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, envelope["status"])
	assert.Equal(t, "Product deleted successfully", envelope["message"])

	code, envelope = doJSON(t, app, http.MethodDelete, "/"+id, nil, token)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, false, envelope["status"])
	assert.Equal(t, "Product not found", envelope["message"])

	// An id that never existed.
	code, envelope = doJSON(t, app, http.MethodDelete, "/64b64b64b64b64b64b64b64b", nil, token)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Product not found", envelope["message"])
}

func TestProtectedRoutes(t *testing.T) {
	app := setupApp(t)

	paths := []struct {
		method, path string
		body         interface{}
	}{
		{http.MethodPost, "/product", validProductBody()},
		{http.MethodPost, "/", validProductBody()},
		{http.MethodDelete, "/64b64b64b64b64b64b64b64b", nil},
	}
	for _, p := range paths {
		code, envelope := doJSON(t, app, p.method, p.path, p.body, "")
		assert.Equal(t, http.StatusUnauthorized, code)
		assert.Equal(t, false, envelope["success"])
		assert.Equal(t, "Access token missing", envelope["message"])
	}

	// Garbage token.
	code, envelope := doJSON(t, app, http.MethodPost, "/product", validProductBody(), "garbage")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid or expired token", envelope["message"])

	// Public routes are reachable without a header.
	code, _ = doJSON(t, app, http.MethodPost, "/users/register",
		map[string]interface{}{"name": "Ann", "email": "public@x.com", "password": "secret1"}, "")
	assert.Equal(t, http.StatusOK, code)
}
