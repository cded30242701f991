package domain

import "time"

// Profile is the public projection of an identity.
type Profile struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	Bio       *string   `json:"bio"`
	Website   *string   `json:"website"`
	AvatarURL *string   `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfileFields holds the caller-supplied fields of a profile upsert.
type ProfileFields struct {
	Username  string  `json:"username"`
	FullName  string  `json:"full_name"`
	Bio       *string `json:"bio"`
	Website   *string `json:"website"`
	AvatarURL *string `json:"avatar_url"`
}

// Identity is the authenticated caller as reported by the identity provider.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
