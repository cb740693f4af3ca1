package models

import "gorm.io/gorm"

// Booking lifecycle. WAITING is the initial status; APPROVED, REJECTED
// and CANCELED are terminal. Bookings are never deleted.
const (
	StatusWaiting  = "WAITING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
	StatusCanceled = "CANCELED"
)

type Booking struct {
	gorm.Model
	ItemID   uint      `json:"itemID" gorm:"not null;index"`
	BookerID uint      `json:"bookerID" gorm:"not null;index"`
	Start    LocalTime `json:"start"`
	End      LocalTime `json:"end"`
	Status   string    `json:"status" gorm:"type:varchar(20);index"`

	Item   *Item `json:"item,omitempty" gorm:"foreignKey:ItemID"`
	Booker *User `json:"booker,omitempty" gorm:"foreignKey:BookerID"`
}
