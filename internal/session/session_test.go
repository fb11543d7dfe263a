// internal/session/session_test.go
package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appdevg6/boost-web/internal/config"
	"github.com/appdevg6/boost-web/internal/models"
)

func testConfig() config.SessionConfig {
	return config.SessionConfig{
		SecretKey:  "test-secret",
		CookieName: "boost_session",
		TTL:        1,
		FlashName:  "boost_flash",
	}
}

func newContext(w *httptest.ResponseRecorder, cookies ...*http.Cookie) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range cookies {
		c.Request.AddCookie(cookie)
	}
	return c
}

func identity() *models.User {
	return &models.User{
		UserID:    7,
		Username:  "ana_cruz",
		Firstname: "Ana",
		Lastname:  "Cruz",
		Email:     "ana@cit.edu",
		Phone:     "+639171234567",
		Role:      models.RoleStudent,
	}
}

func TestSaveThenReadRoundTrip(t *testing.T) {
	store := NewStore(testConfig())

	w := httptest.NewRecorder()
	require.NoError(t, store.Save(newContext(w), identity()))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].HttpOnly)

	c := newContext(httptest.NewRecorder(), cookies[0])
	got, ok := store.Read(c)

	require.True(t, ok)
	assert.Equal(t, 7, got.UserID)
	assert.Equal(t, "ana@cit.edu", got.Email)
	assert.Equal(t, models.RoleStudent, got.Role)
}

func TestReadWithoutCookieIsAnonymous(t *testing.T) {
	store := NewStore(testConfig())

	got, ok := store.Read(newContext(httptest.NewRecorder()))

	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestReadTamperedCookieIsAnonymous(t *testing.T) {
	store := NewStore(testConfig())

	w := httptest.NewRecorder()
	require.NoError(t, store.Save(newContext(w), identity()))
	cookie := w.Result().Cookies()[0]
	cookie.Value += "tampered"

	_, ok := store.Read(newContext(httptest.NewRecorder(), cookie))

	assert.False(t, ok)
}

func TestReadCookieSignedWithDifferentSecretIsAnonymous(t *testing.T) {
	store := NewStore(testConfig())
	other := NewStore(config.SessionConfig{SecretKey: "other-secret", CookieName: "boost_session", TTL: 1})

	w := httptest.NewRecorder()
	require.NoError(t, other.Save(newContext(w), identity()))

	_, ok := store.Read(newContext(httptest.NewRecorder(), w.Result().Cookies()[0]))

	assert.False(t, ok)
}

func TestSaveOverwritesPriorSession(t *testing.T) {
	store := NewStore(testConfig())

	w := httptest.NewRecorder()
	require.NoError(t, store.Save(newContext(w), identity()))

	second := identity()
	second.UserID = 9
	second.Role = models.RoleSeller
	w2 := httptest.NewRecorder()
	require.NoError(t, store.Save(newContext(w2), second))

	got, ok := store.Read(newContext(httptest.NewRecorder(), w2.Result().Cookies()[0]))
	require.True(t, ok)
	assert.Equal(t, 9, got.UserID)
	assert.Equal(t, models.RoleSeller, got.Role)
}

func TestClearExpiresCookie(t *testing.T) {
	store := NewStore(testConfig())

	w := httptest.NewRecorder()
	store.Clear(newContext(w))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "", cookies[0].Value)
	assert.True(t, cookies[0].MaxAge < 0)
}

func TestFlashSetThenPop(t *testing.T) {
	flashes := NewFlashStore(testConfig())

	w := httptest.NewRecorder()
	flashes.Set(newContext(w), "success", "Product deleted successfully!")

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	c := newContext(httptest.NewRecorder(), cookies...)
	got := flashes.Pop(c)

	require.Len(t, got, 1)
	assert.Equal(t, "success", got[0].Kind)
	assert.Equal(t, "Product deleted successfully!", got[0].Message)
}

func TestFlashPopWithoutCookieIsEmpty(t *testing.T) {
	flashes := NewFlashStore(testConfig())

	assert.Empty(t, flashes.Pop(newContext(httptest.NewRecorder())))
}
