package models

import "time"

// Session is a bookable slot. Date holds the start of the salon-local day in UTC,
// StartTime and EndTime are absolute instants.
type Session struct {
	ID uint `gorm:"primaryKey" json:"id"`

	MasterID uint   `gorm:"index;not null" json:"master_id"`
	Master   Master `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ServiceID uint    `gorm:"index;not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Date        time.Time `gorm:"index;not null" json:"date"`
	StartTime   time.Time `gorm:"not null" json:"start_time"`
	EndTime     time.Time `gorm:"not null" json:"end_time"`
	IsAvailable bool      `gorm:"not null;default:true" json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
