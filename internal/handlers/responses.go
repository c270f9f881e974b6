package handlers

import (
	"time"

	"resto/internal/models"
	"resto/internal/storage"

	"gorm.io/datatypes"
)

type userProfileResponse struct {
	FullName string `json:"fullName"`
	Avatar   string `json:"avatar"`
	Email    string `json:"email"`
}

type partnerProfileResponse struct {
	FullName string `json:"fullName"`
	Avatar   string `json:"avatar"`
	Contact  string `json:"contact"`
}

type accountResponse struct {
	ID         string `json:"id"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Contact    string `json:"contact,omitempty"`
	Role       string `json:"role"`
	Avatar     string `json:"avatar"`
	IsVerified bool   `json:"isVerified"`
}

type restaurantResponse struct {
	ID                string         `json:"id"`
	Partner           string         `json:"partner"`
	RestaurantName    string         `json:"restaurantName"`
	RestaurantAddress string         `json:"restaurantAddress"`
	RestaurantContact string         `json:"restaurantContact"`
	VoucherMin        int            `json:"voucherMin"`
	VoucherMax        int            `json:"voucherMax"`
	About             string         `json:"about"`
	OtherServices     string         `json:"otherServices"`
	Cuisine           []string       `json:"cuisine"`
	Type              []string       `json:"type"`
	Dietary           []string       `json:"dietary"`
	Features          []string       `json:"features"`
	RestaurantMenu    datatypes.JSON `json:"restaurantMenu"`
	CoverPhoto        string         `json:"coverPhoto"`
	AmbiencePhotos    []string       `json:"ambiencePhotos"`
	IsCompleteInfo    bool           `json:"isCompleteInfo"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

func newRestaurantResponse(r *models.Restaurant, urls storage.URLRenderer) restaurantResponse {
	menu := r.RestaurantMenu
	if len(menu) == 0 {
		menu = datatypes.JSON("[]")
	}
	return restaurantResponse{
		ID:                r.ID,
		Partner:           r.PartnerID,
		RestaurantName:    r.RestaurantName,
		RestaurantAddress: r.RestaurantAddress,
		RestaurantContact: r.RestaurantContact,
		VoucherMin:        r.VoucherMin,
		VoucherMax:        r.VoucherMax,
		About:             r.About,
		OtherServices:     r.OtherServices,
		Cuisine:           nonNil(r.Cuisine),
		Type:              nonNil(r.Type),
		Dietary:           nonNil(r.Dietary),
		Features:          nonNil(r.Features),
		RestaurantMenu:    menu,
		CoverPhoto:        urls.Render(r.CoverPhoto),
		AmbiencePhotos:    urls.RenderAll(r.AmbiencePhotos),
		IsCompleteInfo:    r.IsCompleteInfo,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
