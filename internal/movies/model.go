package movies

import (
	"time"
)

// Movie is a single cataloged favorite. Rating and Review stay nil until
// the user rates the record; Ranking is filled in per response by the
// ranking package and is never written back to the database.
type Movie struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"unique;not null"`
	Slug        string `gorm:"unique;not null"`
	Year        int    `gorm:"not null"`
	Description string `gorm:"not null"`
	Rating      *float64
	Ranking     *int `gorm:"-"`
	Review      *string
	ImageURL    string `gorm:"not null"`
	CreatedAt   time.Time
}
