package sessions

import (
	"github.com/gorilla/sessions"
	"github.com/sirupsen/logrus"
	"github.com/volthome/storefront/app/configs"
)

var Store = newStore()

// newStore prefers the dedicated auth/enc keypair from the environment so
// session cookies are encrypted, falling back to the plain session key
// when the pair is not configured.
func newStore() *sessions.CookieStore {
	var store *sessions.CookieStore

	if keys, err := configs.LoadSessionKeysFromEnv(); err == nil {
		store = sessions.NewCookieStore(keys.AuthKey, keys.EncKey)
	} else {
		logrus.WithError(err).Warn("session keypair not configured, using unencrypted session cookies")
		store = sessions.NewCookieStore([]byte(configs.LoadENV.SessionKey))
	}

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   configs.LoadENV.AppEnv == "production",
	}
	return store
}
