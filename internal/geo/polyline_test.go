package geo

import (
	"errors"
	"math"
	"testing"

	"fuel-route-service/internal/domain"
)

// Reference fixture from the encoded polyline format documentation.
const fixtureEncoded = "_p~iF~ps|U_ulLnnqC_mqNvxq`@"

var fixturePoints = []domain.Coordinates{
	{Lat: 38.5, Lon: -120.2},
	{Lat: 40.7, Lon: -120.95},
	{Lat: 43.252, Lon: -126.453},
}

func TestDecodePolylineFixture(t *testing.T) {
	points, err := DecodePolyline(fixtureEncoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(points) != len(fixturePoints) {
		t.Fatalf("decoded %d points, want %d", len(points), len(fixturePoints))
	}

	for i, want := range fixturePoints {
		got := points[i]
		if math.Abs(got.Lat-want.Lat) > 1e-6 || math.Abs(got.Lon-want.Lon) > 1e-6 {
			t.Errorf("point %d = %+v, want %+v", i, got, want)
		}
	}
}

func TestPolylineRoundTrip(t *testing.T) {
	original := []domain.Coordinates{
		{Lat: 38.5, Lon: -120.2},
		{Lat: 38.50001, Lon: -120.19999},
		{Lat: 0, Lon: 0},
		{Lat: -33.86785, Lon: 151.20732},
		{Lat: 64.14347, Lon: -21.92765},
	}

	decoded, err := DecodePolyline(EncodePolyline(original))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(decoded) != len(original) {
		t.Fatalf("round trip produced %d points, want %d", len(decoded), len(original))
	}

	// Coordinates survive within the 1e-5 quantization tolerance.
	for i, want := range original {
		got := decoded[i]
		if math.Abs(got.Lat-want.Lat) > 1e-5 || math.Abs(got.Lon-want.Lon) > 1e-5 {
			t.Errorf("point %d = %+v, want %+v", i, got, want)
		}
	}
}

func TestDecodePolylineEmpty(t *testing.T) {
	points, err := DecodePolyline("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 0 {
		t.Fatalf("empty input decoded %d points, want 0", len(points))
	}
}

func TestDecodePolylineMalformed(t *testing.T) {
	cases := []struct {
		name    string
		encoded string
	}{
		// A full latitude but no longitude chunks at all.
		{"missing longitude", "_p~iF"},
		// Continuation bit set on the final byte.
		{"unterminated chunk", fixtureEncoded + "_"},
		// Byte below the encoding range.
		{"invalid byte", "_p~iF~ps|U\x1f"},
	}

	for _, tc := range cases {
		_, err := DecodePolyline(tc.encoded)
		if err == nil {
			t.Errorf("%s: expected error, got none", tc.name)
			continue
		}

		var de *DecodeError
		if !errors.As(err, &de) {
			t.Errorf("%s: error %v is not a *DecodeError", tc.name, err)
		}
	}
}
