package entity

import (
	"time"
)

// Coordinates is a resolved latitude/longitude pair for an address.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Place belongs to exactly one User; Creator is immutable after creation.
type Place struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Address     string      `json:"address"`
	Coordinates Coordinates `json:"coordinates"`
	Image       string      `json:"image"`
	Creator     string      `json:"creator"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
