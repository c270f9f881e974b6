package models

import (
	"time"

	"gorm.io/datatypes"
)

// DefaultCoverPhoto is the cover used until a partner uploads one.
const DefaultCoverPhoto = "uploads/defaultCoverPhoto.jpg"

// Restaurant represents a partner-owned restaurant listing.
type Restaurant struct {
	ID                string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	PartnerID         string         `json:"partner" gorm:"index;type:varchar(36);not null"`
	RestaurantName    string         `json:"restaurantName" gorm:"type:varchar(150)"`
	RestaurantAddress string         `json:"restaurantAddress" gorm:"type:varchar(255)"`
	RestaurantContact string         `json:"restaurantContact" gorm:"type:varchar(32)"`
	VoucherMin        int            `json:"voucherMin"`
	VoucherMax        int            `json:"voucherMax"`
	About             string         `json:"about" gorm:"type:text"`
	OtherServices     string         `json:"otherServices" gorm:"type:text"`
	Cuisine           []string       `json:"cuisine" gorm:"serializer:json"`
	Type              []string       `json:"type" gorm:"serializer:json"`
	Dietary           []string       `json:"dietary" gorm:"serializer:json"`
	Features          []string       `json:"features" gorm:"serializer:json"`
	RestaurantMenu    datatypes.JSON `json:"restaurantMenu"`
	CoverPhoto        string         `json:"coverPhoto" gorm:"type:varchar(512)"`
	AmbiencePhotos    []string       `json:"ambiencePhotos" gorm:"serializer:json"`
	IsCompleteInfo    bool           `json:"isCompleteInfo" gorm:"default:false"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}
