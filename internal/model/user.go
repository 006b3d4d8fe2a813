package model

// UserID uniquely identifies a platform user.
// IDs are issued by the upstream account service; this backend only
// carries them.
type UserID string

// UserProfile holds the public display fields for a user
type UserProfile struct {
	UserID   UserID
	Username string
	Name     string
}
