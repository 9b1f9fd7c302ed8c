// Package uistate keeps per-visitor UI state (wishlist flags, theme, pending
// toast) in a signed and encrypted browser-session cookie.
package uistate

import (
	"encoding/gob"
	"errors"
	"net/http"
	"slices"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
)

func init() {
	gob.Register(uuid.UUID{})
	gob.Register(State{})
	gob.Register(Toast{})
}

// CookieName is the name of the UI state cookie.
const CookieName = "storefront_ui"

// Themes
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ErrSecretTooShort is returned when the cookie secret cannot provide both keys.
var ErrSecretTooShort = errors.New("ui state secret must be at least 64 bytes")

// Toast is a one-shot notification shown on the next rendered page.
type Toast struct {
	Title       string
	Description string
}

// State is the UI state of one visitor.
type State struct {
	VisitorID uuid.UUID
	Wishlist  []int
	Theme     string
	Flash     *Toast
}

// New returns empty UI state for a new visitor.
func New() *State {
	return &State{
		VisitorID: uuid.New(),
		Theme:     ThemeLight,
	}
}

// IsWishlisted reports whether the product id is on the wishlist.
func (s *State) IsWishlisted(id int) bool {
	return slices.Contains(s.Wishlist, id)
}

// ToggleWishlist adds or removes id and reports whether it is now wishlisted.
func (s *State) ToggleWishlist(id int) bool {
	if i := slices.Index(s.Wishlist, id); i >= 0 {
		s.Wishlist = slices.Delete(s.Wishlist, i, i+1)
		return false
	}
	s.Wishlist = append(s.Wishlist, id)
	return true
}

// WishlistCount returns the number of wishlisted products.
func (s *State) WishlistCount() int {
	return len(s.Wishlist)
}

// ToggleTheme switches between the light and dark theme.
func (s *State) ToggleTheme() {
	if s.Theme == ThemeDark {
		s.Theme = ThemeLight
		return
	}
	s.Theme = ThemeDark
}

// TakeFlash returns the pending toast, if any, and clears it.
func (s *State) TakeFlash() *Toast {
	t := s.Flash
	s.Flash = nil
	return t
}

// Store reads and writes the UI state cookie.
type Store struct {
	cookie *securecookie.SecureCookie
	name   string
	secure bool
}

// NewStore creates a new UI state store.
// The secret must be at least 64 bytes: first 32 for hash key, next 32 for block key.
func NewStore(secret string, secure bool) (*Store, error) {
	if len(secret) < 64 {
		return nil, ErrSecretTooShort
	}

	hashKey := []byte(secret)[:32]
	blockKey := []byte(secret)[32:64]

	return &Store{
		cookie: securecookie.New(hashKey, blockKey),
		name:   CookieName,
		secure: secure,
	}, nil
}

// Get retrieves the UI state from the request cookie.
func (s *Store) Get(r *http.Request) (*State, error) {
	cookie, err := r.Cookie(s.name)
	if err != nil {
		return nil, err
	}

	var state State
	if err := s.cookie.Decode(s.name, cookie.Value, &state); err != nil {
		return nil, err
	}
	if state.VisitorID == uuid.Nil {
		state.VisitorID = uuid.New()
	}
	if state.Theme == "" {
		state.Theme = ThemeLight
	}

	return &state, nil
}

// Load returns the request's UI state, or fresh state when the cookie is
// missing or cannot be decoded.
func (s *Store) Load(r *http.Request) *State {
	state, err := s.Get(r)
	if err != nil {
		return New()
	}
	return state
}

// Save writes the UI state cookie. The cookie has no Max-Age so it ends with
// the browser session.
func (s *Store) Save(w http.ResponseWriter, state *State) error {
	encoded, err := s.cookie.Encode(s.name, state)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}
