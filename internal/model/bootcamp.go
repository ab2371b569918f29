// File: internal/model/bootcamp.go
package model

import "time"

// DefaultPhoto is the placeholder filename until an owner uploads one.
const DefaultPhoto = "no-photo.jpg"

type Bootcamp struct {
	ID          int       `db:"id" json:"id"`
	UserID      int       `db:"user_id" json:"user_id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Website     string    `db:"website" json:"website,omitempty"`
	Address     string    `db:"address" json:"address"`
	Latitude    float64   `db:"latitude" json:"latitude"`
	Longitude   float64   `db:"longitude" json:"longitude"`
	Careers     []string  `db:"careers" json:"careers"`
	Photo       string    `db:"photo" json:"photo"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
