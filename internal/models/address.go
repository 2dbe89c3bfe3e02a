package models

import (
	"bytes"
	"encoding/json"
)

// Coordinate is a point on the globe in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Address represents a stored postal address together with its geographic coordinates.
type Address struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Street    string  `json:"street"`
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Coordinate returns the position of the address.
func (a Address) Coordinate() Coordinate {
	return Coordinate{Latitude: a.Latitude, Longitude: a.Longitude}
}

// AddressInput is the payload used to create an address.
type AddressInput struct {
	Name      string   `json:"name" binding:"required" validate:"min=2,max=100"`
	Street    string   `json:"street" binding:"required" validate:"min=2,max=150"`
	City      string   `json:"city" binding:"required" validate:"min=2,max=100,cityname"`
	Latitude  *float64 `json:"latitude" binding:"required" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" binding:"required" validate:"required,gte=-180,lte=180"`
}

// Optional holds a JSON field that may be absent, null or set.
type Optional[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// Some returns an Optional carrying v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// UnmarshalJSON is only invoked when the key is present in the document.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// AddressPatch carries a partial update. Fields left unset are not touched.
type AddressPatch struct {
	Name      Optional[string]  `json:"name" swaggertype:"string"`
	Street    Optional[string]  `json:"street" swaggertype:"string"`
	City      Optional[string]  `json:"city" swaggertype:"string"`
	Latitude  Optional[float64] `json:"latitude" swaggertype:"number"`
	Longitude Optional[float64] `json:"longitude" swaggertype:"number"`
}

// Empty reports whether the patch carries no fields at all.
func (p AddressPatch) Empty() bool {
	return !p.Name.Set && !p.Street.Set && !p.City.Set && !p.Latitude.Set && !p.Longitude.Set
}

// Apply overwrites the fields of a that are set in the patch.
func (p AddressPatch) Apply(a *Address) {
	if p.Name.Set {
		a.Name = p.Name.Value
	}
	if p.Street.Set {
		a.Street = p.Street.Value
	}
	if p.City.Set {
		a.City = p.City.Value
	}
	if p.Latitude.Set {
		a.Latitude = p.Latitude.Value
	}
	if p.Longitude.Set {
		a.Longitude = p.Longitude.Value
	}
}

// NearbyQuery asks for every address within Distance kilometers of a point.
type NearbyQuery struct {
	Latitude  float64
	Longitude float64
	Distance  float64
}

// Coordinate returns the query origin.
func (q NearbyQuery) Coordinate() Coordinate {
	return Coordinate{Latitude: q.Latitude, Longitude: q.Longitude}
}
