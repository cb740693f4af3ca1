package models

import "gorm.io/gorm"

// ItemRequest is a wish for an item nobody has listed yet. Items created
// with a matching RequestID show up as replies.
type ItemRequest struct {
	gorm.Model
	Description string `json:"description" gorm:"type:text"`
	RequesterID uint   `json:"requesterID" gorm:"not null;index"`

	Requester *User `json:"requester,omitempty" gorm:"foreignKey:RequesterID"`
}
