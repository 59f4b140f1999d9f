package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_jwt_secret_32_chars_minimum!"

func signToken(t *testing.T, userID uint, dur time.Duration, secret string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id":  userID,
		"username": "testuser",
		"exp":      time.Now().Add(dur).Unix(),
		"iat":      time.Now().Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func ginTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(JWTAuth(testSecret))
	r.GET("/protected", func(c *gin.Context) {
		claims := GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID, "username": claims.Username})
	})
	return r
}

func doProtected(r *gin.Engine, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth_SinToken(t *testing.T) {
	w := doProtected(ginTestRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Autenticacion requerida")
}

func TestJWTAuth_TokenValido(t *testing.T) {
	tok := signToken(t, 7, time.Hour, testSecret)
	w := doProtected(ginTestRouter(), tok)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
}

func TestJWTAuth_TokenExpirado(t *testing.T) {
	tok := signToken(t, 7, -time.Second, testSecret)
	w := doProtected(ginTestRouter(), tok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token invalido o expirado")
}

func TestJWTAuth_FirmaIncorrecta(t *testing.T) {
	tok := signToken(t, 7, time.Hour, "otro_secreto_distinto_32_chars!!")
	w := doProtected(ginTestRouter(), tok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_SinUserID(t *testing.T) {
	// Un token firmado sin user_id no identifica a nadie.
	claims := jwt.MapClaims{
		"username": "testuser",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	w := doProtected(ginTestRouter(), tok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
