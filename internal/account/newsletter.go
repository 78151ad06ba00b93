package account

import (
	"strings"

	"github.com/booknest/storefront/pkg/validation"
)

// NewsletterRequest is the footer subscription form.
type NewsletterRequest struct {
	Email string `json:"email" validate:"notblank,contains=@"`
}

// Subscribe accepts any address containing "@" and returns it trimmed.
// Nothing is sent or stored.
func Subscribe(req NewsletterRequest) (string, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := validation.Struct(req); err != nil {
		return "", err
	}
	return req.Email, nil
}
