package models

import "time"

// AdminUser gates the back-office surface. Placeholder credential row;
// requests authenticate with the shared admin secret header.
type AdminUser struct {
	ID           uint      `json:"id" gorm:"primary_key"`
	Username     string    `json:"username" gorm:"type:varchar(100);not null;unique_index"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255);not null"`
	Email        string    `json:"email" gorm:"type:varchar(255);not null;unique_index"`
	Role         string    `json:"role" gorm:"type:varchar(50);default:'admin'"`
	CreatedAt    time.Time `json:"created_at"`
}
