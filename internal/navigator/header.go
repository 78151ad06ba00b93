package navigator

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// HeaderSignals are the counts and flags the header reads from state the
// navigator does not own.
type HeaderSignals struct {
	CartItemCount int
	WishlistCount int
	SignedIn      bool
	UserEmail     string
}

// Header is what the top bar shows.
type Header struct {
	CurrentView   string `json:"current_view"`
	SearchQuery   string `json:"search_query"`
	CartBadge     int    `json:"cart_badge,omitempty"`
	ShowCartBadge bool   `json:"show_cart_badge"`
	ShowWishlist  bool   `json:"show_wishlist"`
	WishlistCount int    `json:"wishlist_count,omitempty"`
	SignedIn      bool   `json:"signed_in"`
	UserEmail     string `json:"user_email,omitempty"`
	UserInitial   string `json:"user_initial,omitempty"`
}

// Header gates header elements on the given signals: the cart badge hides at
// zero and the wishlist link and user initial appear only when signed in.
func (n *Navigator) Header(sig HeaderSignals) Header {
	h := Header{
		CurrentView:   n.current.Name().String(),
		SearchQuery:   n.query,
		ShowCartBadge: sig.CartItemCount > 0,
		SignedIn:      sig.SignedIn,
	}
	if h.ShowCartBadge {
		h.CartBadge = sig.CartItemCount
	}
	if sig.SignedIn {
		h.ShowWishlist = true
		h.WishlistCount = sig.WishlistCount
		h.UserEmail = sig.UserEmail
		h.UserInitial = initial(sig.UserEmail)
	}
	return h
}

func initial(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r))
}
