package streetview

import (
	"net/url"
	"strconv"
	"strings"
)

// Location selects where a capture is taken from. Exactly one of Address,
// LatLng, or PanoID must be set.
type Location struct {
	Address string
	LatLng  string
	PanoID  string
}

// Validate checks that exactly one selector is present and that a
// coordinate pair, when given, parses as "lat,lng" within range.
func (l Location) Validate() error {
	count := 0
	if strings.TrimSpace(l.Address) != "" {
		count++
	}
	if strings.TrimSpace(l.LatLng) != "" {
		count++
	}
	if strings.TrimSpace(l.PanoID) != "" {
		count++
	}
	if count == 0 {
		return NewValidationError("one of address, lat_lng, or pano_id is required")
	}
	if count > 1 {
		return NewValidationError("only one of address, lat_lng, or pano_id may be provided")
	}
	if strings.TrimSpace(l.LatLng) != "" {
		if err := validateLatLng(l.LatLng); err != nil {
			return err
		}
	}
	return nil
}

// UsesRadius reports whether a search radius applies to this selector.
// Radius only constrains address and coordinate lookups; a panorama id
// addresses a specific capture directly.
func (l Location) UsesRadius() bool {
	return strings.TrimSpace(l.PanoID) == ""
}

// apply writes the selector into upstream query values.
func (l Location) apply(values url.Values) {
	switch {
	case strings.TrimSpace(l.PanoID) != "":
		values.Set("pano", strings.TrimSpace(l.PanoID))
	case strings.TrimSpace(l.LatLng) != "":
		values.Set("location", strings.TrimSpace(l.LatLng))
	default:
		values.Set("location", strings.TrimSpace(l.Address))
	}
}

// validateLatLng parses a "lat,lng" pair and checks coordinate ranges.
func validateLatLng(pair string) error {
	parts := strings.Split(strings.TrimSpace(pair), ",")
	if len(parts) != 2 {
		return NewValidationError("lat_lng must be a comma-separated latitude,longitude pair, got %q", pair)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return NewValidationError("lat_lng latitude %q is not a number", parts[0])
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return NewValidationError("lat_lng longitude %q is not a number", parts[1])
	}
	if lat < -90 || lat > 90 {
		return NewValidationError("latitude %v is outside [-90, 90]", lat)
	}
	if lng < -180 || lng > 180 {
		return NewValidationError("longitude %v is outside [-180, 180]", lng)
	}
	return nil
}
