// Package account simulates shopper sign-in. No credential is checked or
// kept: a complete form signs the shopper in for the life of the session.
package account

import (
	"strings"

	"github.com/booknest/storefront/pkg/validation"
)

// Credentials is the sign-in and sign-up form.
type Credentials struct {
	Name     string `json:"name" validate:"notblank"`
	Email    string `json:"email" validate:"notblank"`
	Phone    string `json:"phone" validate:"notblank"`
	Password string `json:"password" validate:"notblank"`
}

// Profile is what the storefront remembers about a signed-in shopper.
type Profile struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	SignedIn bool   `json:"signed_in"`
}

// Account holds the signed-in flag for one session. Not safe for concurrent
// use.
type Account struct {
	profile Profile
}

func New() *Account {
	return &Account{}
}

func (a *Account) SignIn(c Credentials) (Profile, error) {
	return a.signIn(c)
}

// SignUp behaves like SignIn; there is no registry to add the shopper to.
func (a *Account) SignUp(c Credentials) (Profile, error) {
	return a.signIn(c)
}

func (a *Account) signIn(c Credentials) (Profile, error) {
	if err := validation.Struct(c); err != nil {
		return Profile{}, err
	}
	a.profile = Profile{
		Name:     strings.TrimSpace(c.Name),
		Email:    strings.TrimSpace(c.Email),
		Phone:    strings.TrimSpace(c.Phone),
		SignedIn: true,
	}
	return a.profile, nil
}

func (a *Account) Profile() Profile {
	return a.profile
}

func (a *Account) SignedIn() bool {
	return a.profile.SignedIn
}

func (a *Account) Email() string {
	return a.profile.Email
}
