package model

const DefaultMimeType = "application/octet-stream"

// File is the metadata row of an uploaded file. Filename is the stored name
// on disk, Name is what the uploader asked to display.
type File struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Mime      string `db:"mime" json:"mime"`
	Size      int64  `db:"size" json:"size"`
	Filename  string `db:"filename" json:"filename"`
	CreatedAt int64  `db:"created_at" json:"createdAt"` // epoch milliseconds
}
