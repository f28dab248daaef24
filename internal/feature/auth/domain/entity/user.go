// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered account in the system.
type User struct {
	// ID is the unique identifier for the user, assigned at creation.
	ID uint `gorm:"primaryKey" json:"id"`

	// Email is the login key, stored case-sensitively as given.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// PasswordHash encodes the salt and derived key together. It never
	// leaves the credential-store/hasher boundary and is excluded from
	// every serialized form.
	PasswordHash string `gorm:"size:512;not null" json:"-"`

	// Name is the display name shown to the user.
	Name string `gorm:"size:255;not null" json:"name"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp when the user was last updated.
	// Auth operations never touch it.
	UpdatedAt time.Time `json:"updated_at"`
}

// PublicUser is the projection of a User that is returned to clients.
type PublicUser struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Public returns the client-facing projection of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
