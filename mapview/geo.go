package mapview

import "math"

const tileSize = 256

// Character cells are roughly twice as tall as they are wide.
const (
	cellWidthPx  = 8
	cellHeightPx = 16
)

type LatLng struct {
	Lat float64
	Lng float64
}

type point struct{ x, y float64 }

// project returns the Web Mercator pixel position of ll at zoom.
func project(ll LatLng, zoom int) point {
	scale := tileSize * math.Exp2(float64(zoom))
	lat := clampLat(ll.Lat) * math.Pi / 180
	x := (ll.Lng + 180) / 360 * scale
	y := (1 - math.Log(math.Tan(lat)+1/math.Cos(lat))/math.Pi) / 2 * scale
	return point{x, y}
}

func unproject(p point, zoom int) LatLng {
	scale := tileSize * math.Exp2(float64(zoom))
	lng := p.x/scale*360 - 180
	n := math.Pi - 2*math.Pi*p.y/scale
	lat := 180 / math.Pi * math.Atan(math.Sinh(n))
	return LatLng{Lat: lat, Lng: lng}
}

func clampLat(lat float64) float64 {
	const maxLat = 85.05112878
	if lat > maxLat {
		return maxLat
	}
	if lat < -maxLat {
		return -maxLat
	}
	return lat
}
