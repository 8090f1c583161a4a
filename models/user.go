package models

import "time"

// Role is the authorization level of a blog account.
type Role string

const (
	// RoleStandard is assigned to every newly registered account.
	RoleStandard Role = "standard"
	// RoleAdmin may edit posts of any author.
	RoleAdmin Role = "admin"
)

// User is the server-owned account record.
//
// Username is unique and never changes after creation. Email is unique but
// may be updated through the profile endpoint. PasswordHash holds the bcrypt
// hash and is never serialised to clients.
type User struct {
	// UserID is the database identifier; it is also the JWT subject.
	UserID int64 `json:"id"`

	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// Password carries the plain-text password on the inbound side only
	// (register/login bodies). It is cleared before the user leaves the
	// service layer.
	Password string `json:"password,omitempty"`

	// PasswordHash is the salted bcrypt hash stored in the database.
	PasswordHash string `json:"-"`

	// ProfilePicture is the object storage path, e.g. "/uploads/<name>".
	ProfilePicture string `json:"profilePicture"`

	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Projection returns the client-safe view of the user.
func (u User) Projection() UserProjection {
	return UserProjection{
		ID:             u.UserID,
		Username:       u.Username,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		ProfilePicture: u.ProfilePicture,
		Role:           u.Role,
		CreatedAt:      u.CreatedAt,
	}
}

// UserProjection is the reduced view of [User] that may leave the server.
// The client caches it in its persisted session under the "user" key.
type UserProjection struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName,omitempty"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	Role           Role      `json:"role,omitempty"`
	CreatedAt      time.Time `json:"createdAt,omitzero"`
}

// ProfileUpdate is a field-by-field mutation of the caller's own account.
// Nil fields are left untouched.
type ProfileUpdate struct {
	UserID int64 `json:"-"`

	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	Email       *string `json:"email,omitempty"`
	NewPassword *string `json:"newPassword,omitempty"`

	// passwordHash is filled by the service after hashing NewPassword.
	passwordHash *string
}

// SetPasswordHash records the hash that replaces the stored password.
func (p *ProfileUpdate) SetPasswordHash(hash string) {
	p.passwordHash = &hash
}

// PasswordHash returns the hash set by [ProfileUpdate.SetPasswordHash], or nil.
func (p ProfileUpdate) PasswordHash() *string {
	return p.passwordHash
}

// IsEmpty reports whether the update touches no column.
func (p ProfileUpdate) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil && p.passwordHash == nil
}
