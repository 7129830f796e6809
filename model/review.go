package model

import "time"

// CutReview is a text review of a cut. One review per (user, cut) pair.
type CutReview struct {
	ID        int       `json:"id"`
	CutID     int       `json:"cutId"`
	UserID    int       `json:"userId"`
	Contents  string    `json:"contents"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
