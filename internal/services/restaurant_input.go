package services

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"resto/internal/errs"
	"resto/internal/models"

	"gorm.io/datatypes"
)

// RestaurantInput carries restaurant form fields as submitted. A nil field
// was not supplied. Tag sets and the menu are JSON encoded text.
type RestaurantInput struct {
	RestaurantName    *string `json:"restaurantName" validate:"omitempty,max=150"`
	RestaurantAddress *string `json:"restaurantAddress" validate:"omitempty,max=255"`
	RestaurantContact *string `json:"restaurantContact" validate:"omitempty,max=32"`
	VoucherMin        *string `json:"voucherMin"`
	VoucherMax        *string `json:"voucherMax"`
	RestaurantMenu    *string `json:"restaurantMenu"`
	About             *string `json:"about" validate:"omitempty,max=5000"`
	OtherServices     *string `json:"otherServices" validate:"omitempty,max=2000"`
	Cuisine           *string `json:"cuisine"`
	Type              *string `json:"type"`
	Dietary           *string `json:"dietary"`
	Features          *string `json:"features"`
}

// applyTo copies every supplied field onto r. Tag sets and the menu replace
// the existing values wholesale.
func (in RestaurantInput) applyTo(r *models.Restaurant) error {
	setString(&r.RestaurantName, in.RestaurantName)
	setString(&r.RestaurantAddress, in.RestaurantAddress)
	setString(&r.RestaurantContact, in.RestaurantContact)
	setString(&r.About, in.About)
	setString(&r.OtherServices, in.OtherServices)

	if err := setVoucher(&r.VoucherMin, "voucherMin", in.VoucherMin); err != nil {
		return err
	}
	if err := setVoucher(&r.VoucherMax, "voucherMax", in.VoucherMax); err != nil {
		return err
	}

	tagSets := []struct {
		field string
		src   *string
		dst   *[]string
	}{
		{"cuisine", in.Cuisine, &r.Cuisine},
		{"type", in.Type, &r.Type},
		{"dietary", in.Dietary, &r.Dietary},
		{"features", in.Features, &r.Features},
	}
	for _, ts := range tagSets {
		if ts.src == nil {
			continue
		}
		tags, err := parseTags(ts.field, *ts.src)
		if err != nil {
			return err
		}
		*ts.dst = tags
	}

	if in.RestaurantMenu != nil {
		menu, err := parseMenu(*in.RestaurantMenu)
		if err != nil {
			return err
		}
		r.RestaurantMenu = menu
	}
	return nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setVoucher(dst *int, field string, src *string) error {
	if src == nil {
		return nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(*src))
	if err != nil {
		return errs.Wrap(errs.MalformedInput, fmt.Sprintf("Field '%s' must be an integer", field), err)
	}
	*dst = v
	return nil
}

// parseTags decodes a JSON array of strings. Blank text and null decode to
// an empty set.
func parseTags(field, text string) ([]string, error) {
	tags := []string{}
	if strings.TrimSpace(text) == "" {
		return tags, nil
	}
	if err := json.Unmarshal([]byte(text), &tags); err != nil {
		return nil, errs.Wrap(errs.MalformedInput, fmt.Sprintf("Field '%s' must be a JSON array of strings", field), err)
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}

// parseMenu decodes a JSON array of menu entries. Entries are kept as
// given; only the outer array shape is enforced.
func parseMenu(text string) (datatypes.JSON, error) {
	if strings.TrimSpace(text) == "" {
		return datatypes.JSON("[]"), nil
	}
	var entries []json.RawMessage
	if err := json.Unmarshal([]byte(text), &entries); err != nil {
		return nil, errs.Wrap(errs.MalformedInput, "Field 'restaurantMenu' must be a JSON array", err)
	}
	if entries == nil {
		entries = []json.RawMessage{}
	}
	normalized, err := json.Marshal(entries)
	if err != nil {
		return nil, errs.Wrap(errs.MalformedInput, "Field 'restaurantMenu' must be a JSON array", err)
	}
	return datatypes.JSON(normalized), nil
}
