package models

import "gorm.io/gorm"

type Comment struct {
	gorm.Model
	Text     string `json:"text" gorm:"type:text"`
	ItemID   uint   `json:"itemID" gorm:"not null;index"`
	AuthorID uint   `json:"authorID" gorm:"not null;index"`

	Author *User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}
