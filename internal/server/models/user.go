// Package models holds the identity records shared by the store, the
// services and the transport.
package models

// User is a registered identity. PasswordDigest is the opaque output of the
// password hasher and is serialized as "password" in snapshots.
type User struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	PasswordDigest string `json:"password"`
	Role           string `json:"role"`
}

// Public drops the digest.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email, Role: u.Role}
}

// PublicUser is the part of a user that may leave the service.
type PublicUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Principal is the authorized identity attached to a gated request.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// PrincipalOf builds the principal for a resolved user.
func PrincipalOf(u User) *Principal {
	return &Principal{ID: u.ID, Email: u.Email, Role: u.Role}
}
