package controllers

import (
	"net/http"
	"testing"

	"github.com/booknest/storefront/internal/account"
	"github.com/booknest/storefront/internal/navigator"
	"github.com/booknest/storefront/pkg/enums"
)

const credentials = `{"name":"Ada Reader","email":"ada@example.com","phone":"555-0100","password":"secret"}`

func TestAccountSignInAndHeader(t *testing.T) {
	s := newShopper(t)
	logg := testLogger()

	resp := serve(t, AccountSignIn(logg), s, call{method: http.MethodPost, target: "/", body: credentials})
	expectStatus(t, resp, http.StatusOK)
	var profile account.Profile
	decodeData(t, resp, &profile)
	if !profile.SignedIn || profile.Email != "ada@example.com" {
		t.Fatalf("unexpected profile %+v", profile)
	}
	if got := s.View().CurrentView; got != enums.ViewNameHome {
		t.Fatalf("expected home after sign-in, got %s", got)
	}

	resp = serve(t, ViewHeader(logg), s, call{method: http.MethodGet, target: "/"})
	expectStatus(t, resp, http.StatusOK)
	var header navigator.Header
	decodeData(t, resp, &header)
	if !header.SignedIn || !header.ShowWishlist || header.UserInitial != "A" {
		t.Fatalf("unexpected signed-in header %+v", header)
	}
}

func TestAccountSignUpCreates(t *testing.T) {
	s := newShopper(t)
	resp := serve(t, AccountSignUp(testLogger()), s, call{method: http.MethodPost, target: "/", body: credentials})
	expectStatus(t, resp, http.StatusCreated)

	resp = serve(t, AccountGet(testLogger()), s, call{method: http.MethodGet, target: "/"})
	expectStatus(t, resp, http.StatusOK)
	var profile account.Profile
	decodeData(t, resp, &profile)
	if !profile.SignedIn || profile.Name != "Ada Reader" {
		t.Fatalf("unexpected profile %+v", profile)
	}
}

func TestAccountSignInRequiresEveryField(t *testing.T) {
	s := newShopper(t)
	resp := serve(t, AccountSignIn(testLogger()), s, call{
		method: http.MethodPost,
		target: "/",
		body:   `{"name":"Ada","email":"ada@example.com","phone":"","password":"secret"}`,
	})
	expectErrorCode(t, resp, http.StatusBadRequest, "VALIDATION_ERROR")
	if s.Account().SignedIn {
		t.Fatalf("incomplete form must not sign in")
	}
}

func TestNewsletterSubscribe(t *testing.T) {
	s := newShopper(t)
	logg := testLogger()

	resp := serve(t, NewsletterSubscribe(logg), s, call{method: http.MethodPost, target: "/", body: `{"email":" reader@example.com "}`})
	expectStatus(t, resp, http.StatusOK)
	var state navigator.State
	decodeData(t, resp, &state)
	if state.CurrentView != enums.ViewNameNewsletterConfirmation || state.NewsletterEmail != "reader@example.com" {
		t.Fatalf("unexpected state %+v", state)
	}

	resp = serve(t, NewsletterSubscribe(logg), s, call{method: http.MethodPost, target: "/", body: `{"email":"not-an-address"}`})
	expectErrorCode(t, resp, http.StatusBadRequest, "VALIDATION_ERROR")
}
