package entity

import "math"

// earthRadiusKm is the sphere radius used for great-circle distances.
const earthRadiusKm = 6371.0

// Coordinates represents an immutable geographic point (latitude, longitude) in degrees.
type Coordinates struct {
	Lat float64 `json:"latitude"`
	Lon float64 `json:"longitude"`
}

// DistanceKm returns the haversine great-circle distance to other in kilometers.
//
// This is the single distance primitive shared by proximity filtering and
// route distance accumulation, so both always agree on the same metric.
func (c Coordinates) DistanceKm(other Coordinates) float64 {
	lat1 := toRadians(c.Lat)
	lat2 := toRadians(other.Lat)
	deltaLat := toRadians(other.Lat - c.Lat)
	deltaLon := toRadians(other.Lon - c.Lon)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)

	angle := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * angle
}

// CoordsToList returns the coordinates as [lat, lon] for wire compatibility.
func (c Coordinates) CoordsToList() []float64 {
	return []float64{c.Lat, c.Lon}
}

func toRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}
