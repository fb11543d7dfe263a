// internal/session/flash.go
package session

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"github.com/appdevg6/boost-web/internal/config"
)

// Flash carries one-shot notices across redirects, replacing the browser
// alert() calls of the mutation flows.
type Flash struct {
	Kind    string // "success" or "error"
	Message string
}

// FlashStore wraps a gorilla cookie store scoped to flash messages.
type FlashStore struct {
	store *sessions.CookieStore
	name  string
}

func NewFlashStore(cfg config.SessionConfig) *FlashStore {
	store := sessions.NewCookieStore([]byte(cfg.SecretKey))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
	}
	return &FlashStore{store: store, name: cfg.FlashName}
}

// Set queues a flash for the next rendered page.
func (f *FlashStore) Set(c *gin.Context, kind, message string) {
	sess, _ := f.store.Get(c.Request, f.name)
	sess.AddFlash(kind + "|" + message)
	sess.Save(c.Request, c.Writer)
}

// Pop consumes and returns all queued flashes.
func (f *FlashStore) Pop(c *gin.Context) []Flash {
	sess, err := f.store.Get(c.Request, f.name)
	if err != nil {
		return nil
	}
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	sess.Save(c.Request, c.Writer)

	flashes := make([]Flash, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			continue
		}
		kind, message := "success", s
		if idx := strings.IndexByte(s, '|'); idx >= 0 {
			kind, message = s[:idx], s[idx+1:]
		}
		flashes = append(flashes, Flash{Kind: kind, Message: message})
	}
	return flashes
}
