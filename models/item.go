package models

import "time"

// MaxItemPhotos caps the photo list on items and returns.
const MaxItemPhotos = 3

// Item is a tool a member lends out inside one circle. Photos are stored
// inline as data URLs, at most MaxItemPhotos of them.
type Item struct {
	ID               string    `json:"id"`
	OwnerID          string    `json:"ownerId"`
	CircleID         string    `json:"circleId"`
	Title            string    `json:"title"`
	Category         string    `json:"category,omitempty"`
	Photos           []string  `json:"photos"`
	Note             string    `json:"note,omitempty"`
	ReplacementValue float64   `json:"rv,omitempty"`
	Availability     string    `json:"avail,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ClampPhotos truncates a photo list to the allowed maximum.
func ClampPhotos(photos []string) []string {
	if len(photos) > MaxItemPhotos {
		return photos[:MaxItemPhotos]
	}
	return photos
}
