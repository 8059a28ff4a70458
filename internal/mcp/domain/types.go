package domain

// FetchImageInput represents the MCP tool input for fetching an image.
// Exactly one of address, lat_lng, or pano_id must be provided.
type FetchImageInput struct {
	Filename string  `json:"filename" jsonschema:"file name to save the image as (e.g. tower.jpg)"`
	Address  string  `json:"address,omitempty" jsonschema:"free-text address or landmark to look up"`
	LatLng   string  `json:"lat_lng,omitempty" jsonschema:"comma-separated latitude,longitude pair (e.g. 40.7,-74.0)"`
	PanoID   string  `json:"pano_id,omitempty" jsonschema:"panorama identifier for a specific capture"`
	Size     string  `json:"size,omitempty" jsonschema:"image size as WIDTHxHEIGHT (default 600x400)"`
	Heading  float64 `json:"heading,omitempty" jsonschema:"compass heading in degrees, 0-360 (default 0)"`
	Pitch    float64 `json:"pitch,omitempty" jsonschema:"camera pitch in degrees, -90 to 90 (default 0)"`
	FOV      float64 `json:"fov,omitempty" jsonschema:"horizontal field of view in degrees, 10-120 (default 90)"`
	Radius   int     `json:"radius,omitempty" jsonschema:"search radius in meters for address and lat_lng lookups (default 50)"`
	Source   string  `json:"source,omitempty" jsonschema:"imagery source filter: default or outdoor"`
}

// SavedImageMetadata represents decoded properties of a saved image file.
type SavedImageMetadata struct {
	Width     int    `json:"width" jsonschema:"decoded pixel width"`
	Height    int    `json:"height" jsonschema:"decoded pixel height"`
	Format    string `json:"format" jsonschema:"decoded encoding format"`
	SizeBytes int64  `json:"size_bytes" jsonschema:"file size in bytes"`
}

// EffectiveParameters represents the parameters actually sent upstream.
// The requested size string may legitimately differ from the decoded pixel
// dimensions reported in SavedImageMetadata; the two are never conflated.
type EffectiveParameters struct {
	Address string  `json:"address,omitempty" jsonschema:"address selector, when used"`
	LatLng  string  `json:"lat_lng,omitempty" jsonschema:"coordinate selector, when used"`
	PanoID  string  `json:"pano_id,omitempty" jsonschema:"panorama selector, when used"`
	Size    string  `json:"size" jsonschema:"requested size as WIDTHxHEIGHT"`
	Heading float64 `json:"heading" jsonschema:"compass heading in degrees"`
	Pitch   float64 `json:"pitch" jsonschema:"camera pitch in degrees"`
	FOV     float64 `json:"fov" jsonschema:"horizontal field of view in degrees"`
	Radius  int     `json:"radius,omitempty" jsonschema:"search radius in meters; omitted for pano_id lookups"`
	Source  string  `json:"source" jsonschema:"imagery source filter"`
}

// FetchImageResult represents the MCP tool output for fetching an image.
type FetchImageResult struct {
	Filename   string              `json:"filename" jsonschema:"saved file name"`
	Path       string              `json:"path" jsonschema:"full path of the saved file"`
	Metadata   SavedImageMetadata  `json:"metadata" jsonschema:"decoded properties of the saved file"`
	Parameters EffectiveParameters `json:"parameters" jsonschema:"effective parameters used for the upstream request"`
}

// FetchMetadataInput represents the MCP tool input for a metadata lookup.
// Exactly one of address, lat_lng, or pano_id must be provided.
type FetchMetadataInput struct {
	Address string `json:"address,omitempty" jsonschema:"free-text address or landmark to look up"`
	LatLng  string `json:"lat_lng,omitempty" jsonschema:"comma-separated latitude,longitude pair"`
	PanoID  string `json:"pano_id,omitempty" jsonschema:"panorama identifier for a specific capture"`
	Radius  int    `json:"radius,omitempty" jsonschema:"search radius in meters for address and lat_lng lookups (default 50)"`
	Source  string `json:"source,omitempty" jsonschema:"imagery source filter: default or outdoor"`
}

// FetchMetadataResult represents the MCP tool output for a metadata lookup,
// returned verbatim from the capture API.
type FetchMetadataResult struct {
	Status    string   `json:"status" jsonschema:"upstream status code (e.g. OK, ZERO_RESULTS)"`
	Copyright string   `json:"copyright,omitempty" jsonschema:"imagery copyright string"`
	Date      string   `json:"date,omitempty" jsonschema:"capture date (YYYY-MM)"`
	PanoID    string   `json:"pano_id,omitempty" jsonschema:"panorama identifier of the capture"`
	Lat       *float64 `json:"lat,omitempty" jsonschema:"capture latitude"`
	Lng       *float64 `json:"lng,omitempty" jsonschema:"capture longitude"`
}

// CreateGalleryInput represents the MCP tool input for rendering a gallery
// page. Fragments are trusted HTML and are not sanitized.
type CreateGalleryInput struct {
	Filename  string   `json:"filename" jsonschema:"file name for the page; .html is appended when no extension is given"`
	Title     string   `json:"title,omitempty" jsonschema:"page title (default Street View Gallery)"`
	Fragments []string `json:"fragments" jsonschema:"HTML fragments embedded in order; at least one is required"`
}

// CreateGalleryResult represents the MCP tool output for a rendered page.
type CreateGalleryResult struct {
	Filename      string `json:"filename" jsonschema:"final page file name"`
	Path          string `json:"path" jsonschema:"full path of the written page"`
	Title         string `json:"title" jsonschema:"page title"`
	FragmentCount int    `json:"fragment_count" jsonschema:"number of fragments embedded"`
}

// ListImagesInput represents the MCP tool input for listing saved images.
type ListImagesInput struct{}

// SavedImageEntry represents one saved image in a listing.
type SavedImageEntry struct {
	Filename   string `json:"filename" jsonschema:"file name"`
	Path       string `json:"path" jsonschema:"full path of the file"`
	SizeBytes  int64  `json:"size_bytes" jsonschema:"file size in bytes"`
	Width      int    `json:"width,omitempty" jsonschema:"decoded pixel width; omitted when the file cannot be decoded"`
	Height     int    `json:"height,omitempty" jsonschema:"decoded pixel height; omitted when the file cannot be decoded"`
	Format     string `json:"format,omitempty" jsonschema:"decoded encoding format; omitted when the file cannot be decoded"`
	CreatedAt  string `json:"created_at" jsonschema:"RFC3339 timestamp when the file was created"`
	ModifiedAt string `json:"modified_at" jsonschema:"RFC3339 timestamp when the file was last modified"`
}

// ListImagesResult represents the MCP tool output for listing saved images.
type ListImagesResult struct {
	Count  int               `json:"count" jsonschema:"number of saved images"`
	Images []SavedImageEntry `json:"images" jsonschema:"saved images, most recently modified first"`
}
