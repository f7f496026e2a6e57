// Package model defines the records kept by the stores.
//
// Models carry no JSON tags: the wire shape lives in
// internal/dto, so a storage column can change without touching the API.
package model

// Snack is the single managed resource. AuthorID references Principal.ID.
type Snack struct {
	ID       int64
	Title    string
	Body     string
	AuthorID int64
}
