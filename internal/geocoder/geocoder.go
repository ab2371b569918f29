// Package geocoder resolves postal codes to coordinates through an external
// provider, with a redis-backed lookup cache in front of it.
package geocoder

import "context"

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Geocoder interface {
	Geocode(ctx context.Context, postalCode string) (Location, error)
}

type Fake struct {
	GeocodeFn func(ctx context.Context, postalCode string) (Location, error)
}

func (f *Fake) Geocode(ctx context.Context, postalCode string) (Location, error) {
	if f.GeocodeFn != nil {
		return f.GeocodeFn(ctx, postalCode)
	}
	panic("unexpected Geocode")
}
