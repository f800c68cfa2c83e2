package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/barberflow/api/internal/httperr"
)

// maps ledger business codes onto HTTP statuses: validation 400,
// missing records 404, admission/state conflicts 409
func writeBusinessError(c *gin.Context, err error) {
	code := httperr.BusinessCode(err)

	switch code {
	case "invalid_date", "invalid_time_slot":
		httperr.BadRequest(c, code, "Invalid booking data.")
	case "barber_not_found", "service_not_found", "booking_not_found":
		httperr.NotFound(c, code, "Record not found.")
	case "day_off_conflict":
		httperr.Conflict(c, code, "The barber is off on that date.")
	case "slot_conflict":
		httperr.Conflict(c, code, "That time slot is already taken.")
	case "invalid_state":
		httperr.Conflict(c, code, "The booking cannot change to that status.")
	default:
		httperr.Internal(c, "internal_error", "Something went wrong.")
	}
}
