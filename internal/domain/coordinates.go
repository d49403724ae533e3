package domain

import "fmt"

// Immutable geographic coordinates in decimal degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Return coordinates as [lat, lng] for response payloads.
func (c Coordinates) LatLng() [2]float64 { return [2]float64{c.Lat, c.Lon} }

// Validate checks that the coordinates fall inside the WGS84 range.
func (c Coordinates) Validate() error {
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("validate coordinates: latitude %v out of range [-90, 90]", c.Lat)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("validate coordinates: longitude %v out of range [-180, 180]", c.Lon)
	}
	return nil
}
