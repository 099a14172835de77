package sessions

import (
	"net/http"

	"github.com/google/uuid"
)

const (
	SessionCartKey   = "cart_session"
	CartSessionIDKey = "cart_id"
)

// GetCartID returns the cart ID bound to the caller's session cookie,
// minting and persisting a fresh one for first-time visitors.
func GetCartID(w http.ResponseWriter, r *http.Request) (string, error) {
	session, err := Store.Get(r, SessionCartKey)
	if err != nil {
		return "", err
	}

	if cartID, ok := session.Values[CartSessionIDKey].(string); ok && cartID != "" {
		return cartID, nil
	}

	newCartID := uuid.New().String()
	session.Values[CartSessionIDKey] = newCartID
	if err := session.Save(r, w); err != nil {
		return "", err
	}

	return newCartID, nil
}
