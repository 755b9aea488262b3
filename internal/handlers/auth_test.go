package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/sajibhasan/blogpost-api/internal/models"
	"github.com/sajibhasan/blogpost-api/internal/repositories/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func jsonRequest(method, payload string) *http.Request {
	req := httptest.NewRequest(method, "/", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func tokenFrom(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body["token"])
	return body["token"]
}

func TestSignupAndSignin(t *testing.T) {
	userRepo := mock.NewUserRepository()
	h := NewAuthHandler(userRepo, nil)

	t.Run("signup stores a hashed password and returns a token", func(t *testing.T) {
		c, rec := newContext(jsonRequest(http.MethodPost, `{"name":"Alice","email":"alice@example.com","password":"secretpass"}`))

		require.NoError(t, h.Signup(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		tokenFrom(t, rec)

		user, err := userRepo.GetUserByEmail(context.Background(), "alice@example.com")
		require.NoError(t, err)
		assert.NotEqual(t, "secretpass", user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secretpass")))
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		c, _ := newContext(jsonRequest(http.MethodPost, `{"name":"Alice","email":"alice@example.com","password":"secretpass"}`))

		err := h.Signup(c)
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusConflict, he.Code)
	})

	t.Run("signin with the right password issues a parseable token", func(t *testing.T) {
		c, rec := newContext(jsonRequest(http.MethodPost, `{"email":"alice@example.com","password":"secretpass"}`))

		require.NoError(t, h.SignIn(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		token := tokenFrom(t, rec)

		user, err := userRepo.GetUserByEmail(context.Background(), "alice@example.com")
		require.NoError(t, err)

		claims := &models.JwtCustomClaims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
			return []byte(h.jwtSecret), nil
		})
		require.NoError(t, err)
		assert.True(t, parsed.Valid)
		assert.Equal(t, user.ID.Hex(), claims.UserID)
		assert.Equal(t, "alice@example.com", claims.Email)
	})

	t.Run("signin with the wrong password is unauthorized", func(t *testing.T) {
		c, _ := newContext(jsonRequest(http.MethodPost, `{"email":"alice@example.com","password":"wrongpass"}`))

		err := h.SignIn(c)
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusUnauthorized, he.Code)
	})

	t.Run("signin for an unknown email is unauthorized", func(t *testing.T) {
		c, _ := newContext(jsonRequest(http.MethodPost, `{"email":"nobody@example.com","password":"secretpass"}`))

		err := h.SignIn(c)
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusUnauthorized, he.Code)
	})

	t.Run("invalid signup payload is rejected", func(t *testing.T) {
		c, _ := newContext(jsonRequest(http.MethodPost, `{"name":"A","email":"not-an-email","password":"x"}`))

		err := h.Signup(c)
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusBadRequest, he.Code)
	})
}
