// Package auth models who is using the client. Nothing here verifies
// credentials: every Principal is unverified and CapStudy is not a security
// boundary.
package auth

import "strings"

// Capability is a permission a screen may require.
type Capability string

// CapStudy allows using the study screen.
const CapStudy Capability = "study"

// Principal is the identity the login or signup form produced.
type Principal struct {
	Email string
	Name  string

	caps map[Capability]bool
}

// Unverified returns a Principal for email holding only CapStudy. A blank
// email yields an anonymous guest.
func Unverified(email string) Principal {
	return Principal{
		Email: strings.TrimSpace(email),
		caps:  map[Capability]bool{CapStudy: true},
	}
}

// Verified always reports false; no credential is ever checked.
func (p Principal) Verified() bool { return false }

// Can reports whether p holds c.
func (p Principal) Can(c Capability) bool { return p.caps[c] }

// Display returns the header label for p.
func (p Principal) Display() string {
	who := p.Name
	if who == "" {
		who = p.Email
	}
	if who == "" {
		who = "guest"
	}
	if !p.Verified() {
		return who + " (unverified)"
	}
	return who
}

// Credentials is what the login form collects.
type Credentials struct {
	Email    string
	Password string
}

// Registration is what the signup form collects.
type Registration struct {
	Name     string
	Email    string
	Password string
}

// Login turns whatever the form held into an unverified Principal. It never
// fails and the password is discarded.
func Login(c Credentials) Principal {
	return Unverified(c.Email)
}

// Signup mirrors Login for the signup form and keeps the display name.
func Signup(r Registration) Principal {
	p := Login(Credentials{Email: r.Email, Password: r.Password})
	p.Name = strings.TrimSpace(r.Name)
	return p
}
