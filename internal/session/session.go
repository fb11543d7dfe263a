// internal/session/session.go
package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"github.com/appdevg6/boost-web/internal/config"
	"github.com/appdevg6/boost-web/internal/models"
)

// Store keeps the signed-in identity in an HTTP-only cookie holding an HS256
// token. Absence of a session is a valid state, never an error.
type Store struct {
	secret     []byte
	cookieName string
	ttl        time.Duration
}

type identityClaims struct {
	UserID     int         `json:"user_id"`
	Username   string      `json:"username"`
	Firstname  string      `json:"firstname"`
	Middlename string      `json:"middlename,omitempty"`
	Lastname   string      `json:"lastname"`
	Email      string      `json:"email"`
	Phone      string      `json:"phone,omitempty"`
	Role       models.Role `json:"role"`
	jwt.RegisteredClaims
}

func NewStore(cfg config.SessionConfig) *Store {
	return &Store{
		secret:     []byte(cfg.SecretKey),
		cookieName: cfg.CookieName,
		ttl:        time.Duration(cfg.TTL) * time.Hour,
	}
}

// Save persists identity as the single active session, overwriting any prior
// session cookie.
func (s *Store) Save(c *gin.Context, identity *models.User) error {
	claims := identityClaims{
		UserID:     identity.UserID,
		Username:   identity.Username,
		Firstname:  identity.Firstname,
		Middlename: identity.Middlename,
		Lastname:   identity.Lastname,
		Email:      identity.Email,
		Phone:      identity.Phone,
		Role:       identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "boost-web",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return err
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     s.cookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Read returns the persisted identity, or (nil, false) when no valid session
// exists. It never returns an error; a tampered or expired cookie reads as
// anonymous.
func (s *Store) Read(c *gin.Context) (*models.User, bool) {
	cookie, err := c.Request.Cookie(s.cookieName)
	if err != nil || cookie.Value == "" {
		return nil, false
	}

	token, err := jwt.ParseWithClaims(cookie.Value, &identityClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(*identityClaims)
	if !ok {
		return nil, false
	}

	return &models.User{
		UserID:     claims.UserID,
		Username:   claims.Username,
		Firstname:  claims.Firstname,
		Middlename: claims.Middlename,
		Lastname:   claims.Lastname,
		Email:      claims.Email,
		Phone:      claims.Phone,
		Role:       claims.Role,
	}, true
}

// Clear removes the persisted identity.
func (s *Store) Clear(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     s.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
