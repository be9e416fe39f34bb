package main

import (
	"github.com/andareed/memoria/mapview"
	"github.com/andareed/memoria/memorial"
)

const popupHint = "enter: ver ficha completa"

// mapSurface builds a mapview marker for each record. The marker key is the record's
// dataset index.
type mapSurface struct {
	*mapview.Map
	icon mapview.Icon
}

func newMapSurface(m *mapview.Map) *mapSurface {
	return &mapSurface{Map: m, icon: memorialIcon()}
}

func (s *mapSurface) PlaceMarker(index int, rec memorial.Record) {
	pos := mapview.LatLng{Lat: rec.Latitude, Lng: rec.Longitude}
	s.Place(index, mapview.NewMarker(pos, s.icon, popupFor(rec)))
}

func popupFor(rec memorial.Record) mapview.Popup {
	return mapview.Popup{
		Title:   rec.Name,
		Date:    rec.DateText,
		Address: rec.Location,
		Hint:    popupHint,
	}
}

func memorialIcon() mapview.Icon {
	return mapview.Icon{
		Glyph:    "●",
		Selected: "◉",
		Style:    markerStyle,
		Focus:    markerFocusStyle,
	}
}
