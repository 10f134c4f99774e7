package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	raw, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return raw
}

func validClaims() Claims {
	return Claims{
		UserID:   "user-1",
		FamilyID: "family-1",
		Email:    "cook@example.com",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}
}

func TestParseValidToken(t *testing.T) {
	v := NewVerifier(testSecret)
	raw := signToken(t, testSecret, validClaims())

	claims, err := v.Parse(raw)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "family-1", claims.FamilyID)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	v := NewVerifier(testSecret)
	raw := signToken(t, "other-secret", validClaims())

	_, err := v.Parse(raw)
	assert.Error(t, err)
}

func TestParseRejectsMissingClaims(t *testing.T) {
	v := NewVerifier(testSecret)
	claims := validClaims()
	claims.FamilyID = ""
	raw := signToken(t, testSecret, claims)

	_, err := v.Parse(raw)
	assert.Error(t, err)
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	v := NewVerifier(testSecret)
	router := gin.New()
	router.GET("/ping", v.Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"family": FamilyID(c), "user": UserID(c)})
	})

	// No token
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ping", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Valid token
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, validClaims()))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "family-1")

	// Garbage token
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/ping", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
