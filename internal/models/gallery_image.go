package models

import "time"

type GalleryImage struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	URL      string `gorm:"size:500;not null" json:"url"`
	Position int    `json:"position"`

	CreatedAt time.Time `json:"created_at"`
}
