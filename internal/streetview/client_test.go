package streetview

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func TestClientFetchImage(t *testing.T) {
	t.Run("returns raw bytes", func(t *testing.T) {
		var gotQuery map[string][]string
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			w.Write([]byte("image-bytes"))
		}))
		defer upstream.Close()

		client := NewClient(Config{BaseURL: upstream.URL, APIKey: "secret"})
		body, err := client.FetchImage(context.Background(), ImageRequest{
			Location: Location{LatLng: "40.7,-74.0"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(body) != "image-bytes" {
			t.Errorf("expected upstream body, got %q", body)
		}
		if got := gotQuery["location"]; len(got) != 1 || got[0] != "40.7,-74.0" {
			t.Errorf("expected location query, got %v", got)
		}
		if got := gotQuery["key"]; len(got) != 1 || got[0] != "secret" {
			t.Errorf("expected key query, got %v", got)
		}
	})

	t.Run("rejects invalid input before the network", func(t *testing.T) {
		calls := 0
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
		}))
		defer upstream.Close()

		client := NewClient(Config{BaseURL: upstream.URL, APIKey: "secret"})
		_, err := client.FetchImage(context.Background(), ImageRequest{
			Location: Location{Address: "a", PanoID: "p"},
		})
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if calls != 0 {
			t.Errorf("expected no upstream calls, got %d", calls)
		}
	})

	t.Run("rejects missing api key before the network", func(t *testing.T) {
		calls := 0
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
		}))
		defer upstream.Close()

		client := NewClient(Config{BaseURL: upstream.URL})
		_, err := client.FetchImage(context.Background(), ImageRequest{
			Location: Location{Address: "Big Ben"},
		})
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if calls != 0 {
			t.Errorf("expected no upstream calls, got %d", calls)
		}
	})

	t.Run("wraps non-2xx as UpstreamError", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "no imagery here", http.StatusNotFound)
		}))
		defer upstream.Close()

		client := NewClient(Config{BaseURL: upstream.URL, APIKey: "secret"})
		_, err := client.FetchImage(context.Background(), ImageRequest{
			Location: Location{Address: "nowhere"},
		})
		var uErr *UpstreamError
		if !errors.As(err, &uErr) {
			t.Fatalf("expected UpstreamError, got %v", err)
		}
		if uErr.StatusCode != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", uErr.StatusCode)
		}
	})

	t.Run("wraps connection failure as NetworkError", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		upstream.Close()

		client := NewClient(Config{BaseURL: upstream.URL, APIKey: "secret"})
		_, err := client.FetchImage(context.Background(), ImageRequest{
			Location: Location{Address: "Big Ben"},
		})
		var nErr *NetworkError
		if !errors.As(err, &nErr) {
			t.Fatalf("expected NetworkError, got %v", err)
		}
	})
}

func TestClientFetchMetadata(t *testing.T) {
	t.Run("decodes metadata verbatim", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status":"OK","copyright":"© Google","date":"2021-03","pano_id":"abc123","location":{"lat":40.7,"lng":-74.0}}`))
		}))
		defer upstream.Close()

		client := NewClient(Config{BaseURL: upstream.URL, APIKey: "secret"})
		meta, err := client.FetchMetadata(context.Background(), MetadataRequest{
			Location: Location{Address: "New York"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if meta.Status != "OK" {
			t.Errorf("expected status OK, got %q", meta.Status)
		}
		if meta.PanoID != "abc123" {
			t.Errorf("expected pano_id abc123, got %q", meta.PanoID)
		}
		if meta.Location == nil || meta.Location.Lat != 40.7 || meta.Location.Lng != -74.0 {
			t.Errorf("expected location 40.7,-74.0, got %+v", meta.Location)
		}
	})

	t.Run("wraps malformed body as UpstreamError", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer upstream.Close()

		client := NewClient(Config{BaseURL: upstream.URL, APIKey: "secret"})
		_, err := client.FetchMetadata(context.Background(), MetadataRequest{
			Location: Location{Address: "New York"},
		})
		var uErr *UpstreamError
		if !errors.As(err, &uErr) {
			t.Fatalf("expected UpstreamError, got %v", err)
		}
	})

	t.Run("pano lookup omits radius", func(t *testing.T) {
		var sawRadius bool
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, sawRadius = r.URL.Query()["radius"]
			w.Write([]byte(`{"status":"OK"}`))
		}))
		defer upstream.Close()

		client := NewClient(Config{BaseURL: upstream.URL, APIKey: "secret"})
		_, err := client.FetchMetadata(context.Background(), MetadataRequest{
			Location: Location{PanoID: "pano123"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sawRadius {
			t.Error("expected radius to be omitted for pano lookups")
		}
	})
}

func TestClientTracesOutboundCalls(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))

	t.Run("records a client span per request", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"OK"}`))
		}))
		defer upstream.Close()

		client := NewClient(Config{BaseURL: upstream.URL, APIKey: "secret"})
		if _, err := client.FetchMetadata(context.Background(), MetadataRequest{
			Location: Location{Address: "New York"},
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		spans := recorder.Ended()
		if len(spans) != 1 {
			t.Fatalf("expected one span, got %d", len(spans))
		}
		if spans[0].Name() != "capture.get" {
			t.Errorf("expected span capture.get, got %q", spans[0].Name())
		}
		if spans[0].SpanKind() != trace.SpanKindClient {
			t.Errorf("expected client span kind, got %v", spans[0].SpanKind())
		}
	})

	t.Run("marks failed requests as errors", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "no imagery here", http.StatusNotFound)
		}))
		defer upstream.Close()

		client := NewClient(Config{BaseURL: upstream.URL, APIKey: "secret"})
		if _, err := client.FetchImage(context.Background(), ImageRequest{
			Location: Location{Address: "nowhere"},
		}); err == nil {
			t.Fatal("expected upstream failure")
		}

		spans := recorder.Ended()
		last := spans[len(spans)-1]
		if last.Status().Code != codes.Error {
			t.Errorf("expected error status, got %v", last.Status().Code)
		}
	})
}
