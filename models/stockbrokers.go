package models

import "time"

// Stockbroker is a static reference row selectable on the
// acceptance form.
type Stockbroker struct {
	ID        uint      `json:"id" gorm:"primary_key"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Code      string    `json:"code" gorm:"type:varchar(20);not null;unique_index"`
	CreatedAt time.Time `json:"created_at"`
}
