// Package auth contains domain-level types for authentication.
// It is pure and free of transport/adapter concerns.
package auth

import "errors"

// Role represents a user's authorization role on the platform.
// Keep string form for easy persistence.
// Valid values are defined as constants below.
type Role string

const (
	RoleJobSeeker Role = "job_seeker"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

// Valid returns true if the Role is a known value.
func (r Role) Valid() bool {
	return r == RoleJobSeeker || r == RoleRecruiter || r == RoleAdmin
}

// Profile is the authenticated user's profile as returned by the platform API.
type Profile struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        Role   `json:"role"`
}

// Credentials carries the login form input. The password never appears in
// the state tree or in any persisted record.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks that the credentials are well-formed enough to submit.
func (c Credentials) Validate() error {
	if c.Email == "" {
		return errors.New("email is required")
	}
	if c.Password == "" {
		return errors.New("password is required")
	}
	return nil
}
