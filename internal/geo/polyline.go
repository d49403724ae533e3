package geo

import (
	"fmt"
	"math"
	"strings"

	"fuel-route-service/internal/domain"
)

// Scale factor of the Google encoded polyline format (1e-5 degrees).
const polylinePrecision = 1e5

// DecodeError reports a malformed encoded polyline.
type DecodeError struct {
	Offset int
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode polyline: offset %d: %s", e.Offset, e.Reason)
}

// DecodePolyline converts an encoded polyline string into an ordered
// sequence of coordinates.
//
// The input format is Google's Encoded Polyline Algorithm: 5-bit chunks,
// zig-zag sign encoding, coordinates scaled by 1e5 and delta-encoded
// against the previous point. Malformed input (a chunk run that reaches
// the end of the string without a terminator, or a byte outside the
// encoding range) returns a *DecodeError rather than a truncated result.
func DecodePolyline(encoded string) ([]domain.Coordinates, error) {
	var points []domain.Coordinates
	index, lat, lng := 0, 0, 0

	readDelta := func() (int, error) {
		shift, result := 0, 0
		for {
			if index >= len(encoded) {
				return 0, &DecodeError{Offset: index, Reason: "unterminated chunk sequence"}
			}
			b := int(encoded[index]) - 63
			if b < 0 {
				return 0, &DecodeError{Offset: index, Reason: fmt.Sprintf("byte %q outside encoding range", encoded[index])}
			}
			index++
			result |= (b & 0x1f) << shift
			shift += 5
			if b < 0x20 {
				break
			}
		}
		// Zig-zag: the low bit carries the sign.
		if result&1 != 0 {
			return ^(result >> 1), nil
		}
		return result >> 1, nil
	}

	for index < len(encoded) {
		dLat, err := readDelta()
		if err != nil {
			return nil, err
		}
		lat += dLat

		dLng, err := readDelta()
		if err != nil {
			return nil, err
		}
		lng += dLng

		points = append(points, domain.Coordinates{
			Lat: float64(lat) / polylinePrecision,
			Lon: float64(lng) / polylinePrecision,
		})
	}

	return points, nil
}

// EncodePolyline is the inverse of DecodePolyline. Coordinates are
// quantized to 1e-5 degrees, so decode(encode(points)) matches the input
// only within that tolerance.
func EncodePolyline(points []domain.Coordinates) string {
	var sb strings.Builder
	prevLat, prevLng := 0, 0

	writeDelta := func(delta int) {
		// Zig-zag encode, then emit 5-bit chunks low-to-high.
		v := delta << 1
		if delta < 0 {
			v = ^v
		}
		for v >= 0x20 {
			sb.WriteByte(byte((0x20 | (v & 0x1f)) + 63))
			v >>= 5
		}
		sb.WriteByte(byte(v + 63))
	}

	for _, p := range points {
		lat := int(math.Round(p.Lat * polylinePrecision))
		lng := int(math.Round(p.Lon * polylinePrecision))
		writeDelta(lat - prevLat)
		writeDelta(lng - prevLng)
		prevLat, prevLng = lat, lng
	}

	return sb.String()
}
