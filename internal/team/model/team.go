// Package model provides domain models and DTOs for the team module.
package model

import "time"

// Team represents an age-group team open for registration.
// Matches the teams table schema.
type Team struct {
	ID          uint      `gorm:"primaryKey;column:id" json:"id"`
	Name        string    `gorm:"column:name;not null" json:"name"`
	PriceCents  int       `gorm:"column:price_cents;not null;default:16000" json:"priceCents"`
	Capacity    int       `gorm:"column:capacity;not null;default:20" json:"capacity"`
	Description string    `gorm:"column:description" json:"description"`
	Open        bool      `gorm:"column:open;not null;default:true" json:"open"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}
