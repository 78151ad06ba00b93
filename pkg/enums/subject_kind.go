package enums

import "fmt"

// SubjectKind identifies what a checkout pass is purchasing.
type SubjectKind string

const (
	SubjectKindBook SubjectKind = "book"
	SubjectKindCart SubjectKind = "cart"
)

var validSubjectKinds = []SubjectKind{
	SubjectKindBook,
	SubjectKindCart,
}

// String implements fmt.Stringer.
func (s SubjectKind) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SubjectKind.
func (s SubjectKind) IsValid() bool {
	for _, candidate := range validSubjectKinds {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSubjectKind converts raw input into a SubjectKind.
func ParseSubjectKind(value string) (SubjectKind, error) {
	for _, candidate := range validSubjectKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid subject kind %q", value)
}
