package streetview

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// Fixed request defaults applied when a field is left unset.
const (
	DefaultSize    = "600x400"
	DefaultHeading = 0
	DefaultPitch   = 0
	DefaultFOV     = 90
	DefaultRadius  = 50

	// SourceDefault includes indoor and outdoor imagery.
	SourceDefault = "default"
	// SourceOutdoor restricts lookups to outdoor imagery.
	SourceOutdoor = "outdoor"
)

var sizePattern = regexp.MustCompile(`^\d+x\d+$`)

// ImageRequest describes one image fetch against the capture API.
type ImageRequest struct {
	Location Location
	Size     string
	Heading  float64
	Pitch    float64
	FOV      float64
	Radius   int
	Source   string
}

// ApplyDefaults fills unset fields with the fixed defaults. Heading and
// pitch default to zero, which the zero value already expresses.
func (r *ImageRequest) ApplyDefaults() {
	if strings.TrimSpace(r.Size) == "" {
		r.Size = DefaultSize
	}
	if r.FOV == 0 {
		r.FOV = DefaultFOV
	}
	if r.Radius == 0 {
		r.Radius = DefaultRadius
	}
	if strings.TrimSpace(r.Source) == "" {
		r.Source = SourceDefault
	}
}

// Validate checks the location selector and every numeric range. It never
// performs I/O.
func (r ImageRequest) Validate() error {
	if err := r.Location.Validate(); err != nil {
		return err
	}
	if !sizePattern.MatchString(r.Size) {
		return NewValidationError("size must be WIDTHxHEIGHT, got %q", r.Size)
	}
	if r.Heading < 0 || r.Heading > 360 {
		return NewValidationError("heading %v is outside [0, 360]", r.Heading)
	}
	if r.Pitch < -90 || r.Pitch > 90 {
		return NewValidationError("pitch %v is outside [-90, 90]", r.Pitch)
	}
	if r.FOV < 10 || r.FOV > 120 {
		return NewValidationError("fov %v is outside [10, 120]", r.FOV)
	}
	if r.Radius <= 0 {
		return NewValidationError("radius %d must be a positive integer", r.Radius)
	}
	if err := validateSource(r.Source); err != nil {
		return err
	}
	return nil
}

// query builds the upstream query string for the image endpoint.
func (r ImageRequest) query(apiKey string) url.Values {
	values := url.Values{}
	r.Location.apply(values)
	values.Set("size", r.Size)
	values.Set("heading", formatFloat(r.Heading))
	values.Set("pitch", formatFloat(r.Pitch))
	values.Set("fov", formatFloat(r.FOV))
	if r.Location.UsesRadius() {
		values.Set("radius", strconv.Itoa(r.Radius))
	}
	values.Set("source", r.Source)
	values.Set("key", apiKey)
	values.Set("return_error_code", "true")
	return values
}

// MetadataRequest describes one metadata lookup against the capture API.
type MetadataRequest struct {
	Location Location
	Radius   int
	Source   string
}

// ApplyDefaults fills unset fields with the fixed defaults.
func (r *MetadataRequest) ApplyDefaults() {
	if r.Radius == 0 {
		r.Radius = DefaultRadius
	}
	if strings.TrimSpace(r.Source) == "" {
		r.Source = SourceDefault
	}
}

// Validate checks the location selector, radius, and source filter.
func (r MetadataRequest) Validate() error {
	if err := r.Location.Validate(); err != nil {
		return err
	}
	if r.Radius <= 0 {
		return NewValidationError("radius %d must be a positive integer", r.Radius)
	}
	return validateSource(r.Source)
}

// query builds the upstream query string for the metadata endpoint.
func (r MetadataRequest) query(apiKey string) url.Values {
	values := url.Values{}
	r.Location.apply(values)
	if r.Location.UsesRadius() {
		values.Set("radius", strconv.Itoa(r.Radius))
	}
	values.Set("source", r.Source)
	values.Set("key", apiKey)
	values.Set("return_error_code", "true")
	return values
}

func validateSource(source string) error {
	switch source {
	case SourceDefault, SourceOutdoor:
		return nil
	default:
		return NewValidationError("source must be %q or %q, got %q", SourceDefault, SourceOutdoor, source)
	}
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
