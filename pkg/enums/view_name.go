package enums

import "fmt"

// ViewName names a screen the storefront can render.
type ViewName string

const (
	ViewNameHome                   ViewName = "home"
	ViewNameCatalogBrowse          ViewName = "catalog-browse"
	ViewNameBookDetail             ViewName = "book-detail"
	ViewNameCart                   ViewName = "cart"
	ViewNameCheckout               ViewName = "checkout"
	ViewNameOrderConfirmation      ViewName = "order-confirmation"
	ViewNameSignIn                 ViewName = "sign-in"
	ViewNameSignUp                 ViewName = "sign-up"
	ViewNameCategories             ViewName = "categories"
	ViewNameWishlist               ViewName = "wishlist"
	ViewNameOrderHistory           ViewName = "order-history"
	ViewNameUserProfile            ViewName = "user-profile"
	ViewNameNewsletterConfirmation ViewName = "newsletter-confirmation"
	ViewNameQuickLinks             ViewName = "quick-links"
)

var validViewNames = []ViewName{
	ViewNameHome,
	ViewNameCatalogBrowse,
	ViewNameBookDetail,
	ViewNameCart,
	ViewNameCheckout,
	ViewNameOrderConfirmation,
	ViewNameSignIn,
	ViewNameSignUp,
	ViewNameCategories,
	ViewNameWishlist,
	ViewNameOrderHistory,
	ViewNameUserProfile,
	ViewNameNewsletterConfirmation,
	ViewNameQuickLinks,
}

// String implements fmt.Stringer.
func (v ViewName) String() string {
	return string(v)
}

// IsValid reports whether the value is a known ViewName.
func (v ViewName) IsValid() bool {
	for _, candidate := range validViewNames {
		if candidate == v {
			return true
		}
	}
	return false
}

// ParseViewName converts raw input into a ViewName.
func ParseViewName(value string) (ViewName, error) {
	for _, candidate := range validViewNames {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid view name %q", value)
}
