// file: internals/features/hr/checkin/service/geofence.go
package service

import (
	"fmt"
	"math"

	"github.com/gofiber/fiber/v2"

	checkinModel "absenku_backend/internals/features/hr/checkin/model"
)

// radius bumi (meter), sama dengan kalkulasi jarak di modul HR lama
const earthRadiusMeters = 6371000.0

// HaversineDistanceMeters: jarak great-circle dua koordinat (meter).
func HaversineDistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(a))
}

// ValidateGeofence memastikan koordinat valid dan berada dalam radius cabang.
// Mengembalikan jarak (meter) untuk field audit di response.
func ValidateGeofence(latitude, longitude float64, settings *CheckinSettings, logType string) (float64, error) {
	if latitude < -90 || latitude > 90 {
		return 0, fiber.NewError(fiber.StatusBadRequest,
			"Invalid latitude value. Latitude must be between -90 and 90 degrees.")
	}
	if longitude < -180 || longitude > 180 {
		return 0, fiber.NewError(fiber.StatusBadRequest,
			"Invalid longitude value. Longitude must be between -180 and 180 degrees.")
	}

	distance := HaversineDistanceMeters(settings.BranchLatitude, settings.BranchLongitude, latitude, longitude)

	if distance > settings.BranchRadius {
		action := "check in"
		if logType == checkinModel.LogTypeOut {
			action = "check out"
		}
		return 0, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("You are %.2f meters away from the branch location. Please move within %d meters to %s.",
				distance, int(settings.BranchRadius), action))
	}

	return distance, nil
}
