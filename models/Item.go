package models

import "gorm.io/gorm"

// Item is something a user has listed for temporary sharing. The
// availability flag gates new bookings only; the booking engine never
// flips it.
type Item struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description" gorm:"type:text"`
	Available   *bool  `json:"available"`
	OwnerID     uint   `json:"ownerID" gorm:"not null;index"`
	RequestID   *uint  `json:"requestID" gorm:"index"` // set when the item answers an ItemRequest

	Owner *User `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
}
