package model

const DefaultProfileUser = "me"

// Profile is one saved snapshot of a user's profile blob. Saves are
// append-only, so a user can have many rows.
type Profile struct {
	ID        int64  `db:"id" json:"id"`
	User      string `db:"user" json:"user"`
	Data      string `db:"data" json:"data"` // JSON text, opaque to the server
	UpdatedAt int64  `db:"updated_at" json:"updatedAt"`
}
