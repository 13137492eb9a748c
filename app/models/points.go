package models

import "time"

// PointsRecord is one row of the lookup table users query against. Rows
// are written exclusively by the admin bulk upload (insert-or-replace
// keyed by UserID); the query path never mutates them.
type PointsRecord struct {
	UserID      string    `gorm:"primaryKey;size:64" json:"user_id"`
	UserName    string    `gorm:"size:191" json:"user_name"`
	TotalPoints int       `gorm:"not null;default:0" json:"total_points"`
	ValidDays   int       `gorm:"not null;default:0" json:"valid_days"`
	LastUpdated time.Time `json:"last_updated"`
}

func (PointsRecord) TableName() string { return "user_points" }
