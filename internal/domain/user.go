package domain

import (
	"strings"
	"time"
	"unicode"
)

// UserRole enumerates the two account types.
type UserRole string

const (
	RoleApplicant UserRole = "applicant"
	RoleCompany   UserRole = "company"
)

// IsValid reports whether the role is a known value.
func (r UserRole) IsValid() bool {
	return r == RoleApplicant || r == RoleCompany
}

// User is the domain model for job-board accounts.
type User struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash string
	Role         UserRole
	IsActive     bool
	IsVerified   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanLogin reports whether the account may authenticate.
func (u *User) CanLogin() bool {
	return u.IsActive && u.IsVerified
}

// NormalizeFullName enforces the signup name rule: exactly a first and a last
// name, alphabetic only, separated by a single space. Returns the trimmed name.
func NormalizeFullName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrFullNameEmpty
	}
	parts := strings.Fields(name)
	if len(parts) != 2 {
		return "", ErrFullNameParts
	}
	for _, part := range parts {
		for _, r := range part {
			if !unicode.IsLetter(r) {
				return "", ErrFullNameChars
			}
		}
	}
	return parts[0] + " " + parts[1], nil
}
