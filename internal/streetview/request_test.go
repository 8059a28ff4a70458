package streetview

import (
	"errors"
	"testing"
)

func TestLocationValidate(t *testing.T) {
	tests := []struct {
		name     string
		location Location
		wantErr  bool
	}{
		{name: "address only", location: Location{Address: "Eiffel Tower, Paris"}},
		{name: "lat_lng only", location: Location{LatLng: "40.7,-74.0"}},
		{name: "pano_id only", location: Location{PanoID: "CAoSLEFGMVFp"}},
		{name: "no selector", location: Location{}, wantErr: true},
		{name: "address and lat_lng", location: Location{Address: "a", LatLng: "1,2"}, wantErr: true},
		{name: "address and pano_id", location: Location{Address: "a", PanoID: "p"}, wantErr: true},
		{name: "lat_lng and pano_id", location: Location{LatLng: "1,2", PanoID: "p"}, wantErr: true},
		{name: "all three", location: Location{Address: "a", LatLng: "1,2", PanoID: "p"}, wantErr: true},
		{name: "whitespace only selector", location: Location{Address: "   "}, wantErr: true},
		{name: "malformed pair", location: Location{LatLng: "40.7"}, wantErr: true},
		{name: "non-numeric latitude", location: Location{LatLng: "north,-74.0"}, wantErr: true},
		{name: "latitude out of range", location: Location{LatLng: "91,0"}, wantErr: true},
		{name: "longitude out of range", location: Location{LatLng: "0,181"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.location.Validate()
			if tt.wantErr {
				var vErr *ValidationError
				if !errors.As(err, &vErr) {
					t.Fatalf("expected ValidationError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestImageRequestValidate(t *testing.T) {
	valid := func() ImageRequest {
		r := ImageRequest{Location: Location{Address: "Tower Bridge, London"}}
		r.ApplyDefaults()
		return r
	}

	t.Run("defaults pass", func(t *testing.T) {
		if err := valid().Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	tests := []struct {
		name   string
		mutate func(*ImageRequest)
	}{
		{name: "heading above range", mutate: func(r *ImageRequest) { r.Heading = 361 }},
		{name: "heading below range", mutate: func(r *ImageRequest) { r.Heading = -1 }},
		{name: "pitch above range", mutate: func(r *ImageRequest) { r.Pitch = 91 }},
		{name: "pitch below range", mutate: func(r *ImageRequest) { r.Pitch = -91 }},
		{name: "fov below range", mutate: func(r *ImageRequest) { r.FOV = 5 }},
		{name: "fov above range", mutate: func(r *ImageRequest) { r.FOV = 121 }},
		{name: "negative radius", mutate: func(r *ImageRequest) { r.Radius = -1 }},
		{name: "malformed size", mutate: func(r *ImageRequest) { r.Size = "600by400" }},
		{name: "unknown source", mutate: func(r *ImageRequest) { r.Source = "indoor" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := valid()
			tt.mutate(&request)
			var vErr *ValidationError
			if err := request.Validate(); !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestImageRequestQuery(t *testing.T) {
	t.Run("address lookup carries radius", func(t *testing.T) {
		request := ImageRequest{Location: Location{Address: "Big Ben"}}
		request.ApplyDefaults()
		values := request.query("secret")
		if got := values.Get("location"); got != "Big Ben" {
			t.Errorf("expected location %q, got %q", "Big Ben", got)
		}
		if got := values.Get("radius"); got != "50" {
			t.Errorf("expected default radius 50, got %q", got)
		}
		if got := values.Get("return_error_code"); got != "true" {
			t.Errorf("expected return_error_code=true, got %q", got)
		}
		if got := values.Get("key"); got != "secret" {
			t.Errorf("expected key to be set, got %q", got)
		}
	})

	t.Run("pano lookup omits radius", func(t *testing.T) {
		request := ImageRequest{Location: Location{PanoID: "pano123"}}
		request.ApplyDefaults()
		values := request.query("secret")
		if got := values.Get("pano"); got != "pano123" {
			t.Errorf("expected pano %q, got %q", "pano123", got)
		}
		if _, present := values["radius"]; present {
			t.Error("expected radius to be omitted for pano lookups")
		}
		if _, present := values["location"]; present {
			t.Error("expected location to be omitted for pano lookups")
		}
	})
}

func TestMetadataRequestQuery(t *testing.T) {
	request := MetadataRequest{Location: Location{LatLng: "40.7,-74.0"}}
	request.ApplyDefaults()
	if err := request.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	values := request.query("secret")
	if got := values.Get("location"); got != "40.7,-74.0" {
		t.Errorf("expected location %q, got %q", "40.7,-74.0", got)
	}
	if got := values.Get("radius"); got != "50" {
		t.Errorf("expected default radius 50, got %q", got)
	}
}
