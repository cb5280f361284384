package clock

import (
	"fmt"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/address"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/clock"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/pkg/geo"
)

// evaluateGeofence compares the reported position against the contract
// address. An address without coordinates cannot be checked, so the verdict
// fails open: Inside=true, Validated=false, flagged for manual review.
func evaluateGeofence(addr address.Address, latitude, longitude float64, allowedRadius int) clock.LocationCheckResult {
	if !addr.HasCoordinates() {
		alert := "endereco sem coordenadas, validacao manual necessaria"
		return clock.LocationCheckResult{
			Inside:        true,
			AllowedRadius: allowedRadius,
			Message:       "Address has no coordinates; location accepted pending manual review.",
			Alert:         &alert,
			Validated:     false,
		}
	}

	distance := geo.HaversineDistance(latitude, longitude, *addr.Latitude, *addr.Longitude)
	inside := distance <= float64(allowedRadius)

	result := clock.LocationCheckResult{
		Inside:         inside,
		DistanceMeters: &distance,
		AllowedRadius:  allowedRadius,
		Validated:      inside,
	}
	if inside {
		result.Message = fmt.Sprintf("Location within allowed area (%.1fm <= %dm).", distance, allowedRadius)
	} else {
		result.Message = fmt.Sprintf("Location outside allowed area (%.1fm > %dm).", distance, allowedRadius)
	}
	return result
}
