package handler

import (
	"bloodlink/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// pathUUID parses a UUID path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

// radiusParam reads the optional radius_km query parameter. Zero means the configured default.
func radiusParam(c echo.Context) (float64, error) {
	var radiusKm float64
	if err := echo.QueryParamsBinder(c).Float64("radius_km", &radiusKm).BindError(); err != nil {
		return 0, err
	}

	return radiusKm, nil
}

// CoordinatesRequest is a latitude/longitude pair in request bodies
type CoordinatesRequest struct {
	Lat *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lng *float64 `json:"lng" validate:"required,gte=-180,lte=180"`
}

func (r *CoordinatesRequest) toEntity() *entity.Coordinates {
	if r == nil {
		return nil
	}

	return &entity.Coordinates{Lat: *r.Lat, Lng: *r.Lng}
}
