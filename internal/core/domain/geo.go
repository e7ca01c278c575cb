package domain

import (
	"github.com/mmcloughlin/geohash"
)

// GeoCellPrecision - длина ячейки geohash, сохраняемой у объявления (~150 м)
const GeoCellPrecision = 7

// GeoCell - ячейка geohash для координат; пустая строка без координат
func GeoCell(c *Coordinates) string {
	if c == nil || !c.IsValid() {
		return ""
	}
	return geohash.EncodeWithPrecision(c.Lat, c.Lng, GeoCellPrecision)
}

func (c Coordinates) IsValid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}
