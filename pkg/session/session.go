// Package session remembers per-browser UI preferences (the active location
// tab) in a gorilla/sessions store.
//
// Session keys should be 32 or 64 bytes for HMAC authentication and 16, 24,
// or 32 bytes for AES encryption. Generate production keys with:
//
//	openssl rand -base64 32
package session

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/wherearethenoodles/pkg/cache"
	"github.com/ghuser/wherearethenoodles/pkg/config"
	"github.com/ghuser/wherearethenoodles/pkg/logger"
)

// CookieName is the name of the session cookie.
const CookieName = "wherearethenoodles_session"

const activeTabKey = "active_tab"

func cookieOptions(secure bool) *sessions.Options {
	return &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// NewStore returns a Redis-backed store when rc is non-nil and a signed,
// encrypted cookie store otherwise.
func NewStore(cfg *config.Config, rc *cache.RedisClient) sessions.Store {
	authKey := []byte(cfg.SessionAuthKey)
	encKey := []byte(cfg.SessionEncryptionKey)
	secure := cfg.Environment == config.EnvProduction
	if rc != nil {
		return NewRedisStore(rc.Client(), authKey, encKey, secure)
	}
	cs := sessions.NewCookieStore(authKey, encKey)
	cs.Options = cookieOptions(secure)
	return cs
}

// Preferences reads and writes the remembered tab. Session failures are
// logged and otherwise ignored; the tab is a convenience, not state.
type Preferences struct {
	store sessions.Store
	log   logger.Logger
}

// NewPreferences wraps store. A nil store disables remembering.
func NewPreferences(store sessions.Store, log logger.Logger) *Preferences {
	if log == nil {
		log = logger.Discard()
	}
	return &Preferences{store: store, log: log}
}

// ActiveTab returns the remembered tab, if any. Callers validate the value.
func (p *Preferences) ActiveTab(r *http.Request) (string, bool) {
	if p == nil || p.store == nil {
		return "", false
	}
	s, err := p.store.Get(r, CookieName)
	if err != nil {
		p.log.DebugContext(r.Context(), "session unreadable", "error", err)
		return "", false
	}
	tab, _ := s.Values[activeTabKey].(string)
	return tab, tab != ""
}

// SetActiveTab remembers tab. It must run before the response body is written.
func (p *Preferences) SetActiveTab(w http.ResponseWriter, r *http.Request, tab string) {
	if p == nil || p.store == nil || tab == "" {
		return
	}
	s, err := p.store.Get(r, CookieName)
	if err != nil {
		p.log.DebugContext(r.Context(), "session unreadable, starting a new one", "error", err)
	}
	if s == nil {
		return
	}
	if current, _ := s.Values[activeTabKey].(string); current == tab && !s.IsNew {
		return
	}
	s.Values[activeTabKey] = tab
	if err := s.Save(r, w); err != nil {
		p.log.WarnContext(r.Context(), "failed to save session", "error", err)
	}
}
