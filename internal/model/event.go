package model

// Event is a diary entry. Title, Body and Date are stored as given, absent
// values stay NULL.
type Event struct {
	ID        int64   `db:"id" json:"id"`
	Title     *string `db:"title" json:"title"`
	Body      *string `db:"body" json:"body"`
	Date      *string `db:"date" json:"date"`
	CreatedAt int64   `db:"created_at" json:"createdAt"`
}
