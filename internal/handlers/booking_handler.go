package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberflow/api/internal/httperr"
	"github.com/barberflow/api/internal/httpresp"
	"github.com/barberflow/api/internal/middleware"
	"github.com/barberflow/api/internal/models"
	ucBooking "github.com/barberflow/api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	db *gorm.DB

	createUC   *ucBooking.CreateBooking
	confirmUC  *ucBooking.ConfirmBooking
	cancelUC   *ucBooking.CancelBooking
	completeUC *ucBooking.CompleteBooking

	listCustomerUC *ucBooking.ListCustomerBookings
	scheduleUC     *ucBooking.BarberSchedule
	listAllUC      *ucBooking.ListAllBookings
}

func NewBookingHandler(
	db *gorm.DB,
	createUC *ucBooking.CreateBooking,
	confirmUC *ucBooking.ConfirmBooking,
	cancelUC *ucBooking.CancelBooking,
	completeUC *ucBooking.CompleteBooking,
	listCustomerUC *ucBooking.ListCustomerBookings,
	scheduleUC *ucBooking.BarberSchedule,
	listAllUC *ucBooking.ListAllBookings,
) *BookingHandler {
	return &BookingHandler{
		db:             db,
		createUC:       createUC,
		confirmUC:      confirmUC,
		cancelUC:       cancelUC,
		completeUC:     completeUC,
		listCustomerUC: listCustomerUC,
		scheduleUC:     scheduleUC,
		listAllUC:      listAllUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	BarberID  uint   `json:"barber_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	TimeSlot  string `json:"time_slot" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	bk, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		CustomerID: customerID,
		BarberID:   req.BarberID,
		ServiceID:  req.ServiceID,
		Date:       req.Date,
		TimeSlot:   req.TimeSlot,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, bk)
}

// ======================================================
// STATUS TRANSITIONS
// ======================================================

func (h *BookingHandler) Confirm(c *gin.Context) {
	bookingID, ok := h.parseID(c)
	if !ok {
		return
	}

	if !h.canManage(c, bookingID, false) {
		return
	}

	bk, err := h.confirmUC.Execute(c.Request.Context(), bookingID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, bk)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	bookingID, ok := h.parseID(c)
	if !ok {
		return
	}

	// customers may cancel their own booking
	if !h.canManage(c, bookingID, true) {
		return
	}

	bk, err := h.cancelUC.Execute(c.Request.Context(), bookingID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, bk)
}

func (h *BookingHandler) Complete(c *gin.Context) {
	bookingID, ok := h.parseID(c)
	if !ok {
		return
	}

	if !h.canManage(c, bookingID, false) {
		return
	}

	bk, err := h.completeUC.Execute(c.Request.Context(), bookingID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, bk)
}

// ======================================================
// LISTINGS
// ======================================================

func (h *BookingHandler) ListMine(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	out, err := h.listCustomerUC.Execute(c.Request.Context(), customerID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	httpresp.List(c, out)
}

func (h *BookingHandler) Schedule(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	date := c.Query("date")

	out, err := h.scheduleUC.Execute(c.Request.Context(), barberID, date)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, out)
}

func (h *BookingHandler) ListAll(c *gin.Context) {
	out, err := h.listAllUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// HELPERS
// ======================================================

func (h *BookingHandler) parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return 0, false
	}
	return uint(id), true
}

// canManage allows admins always, the booking's barber always, and the
// owning customer when allowCustomer is set.
func (h *BookingHandler) canManage(c *gin.Context, bookingID uint, allowCustomer bool) bool {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	if role == models.RoleAdmin {
		return true
	}

	var bk models.Booking
	if err := h.db.First(&bk, bookingID).Error; err != nil {
		httperr.NotFound(c, "booking_not_found", "Record not found.")
		return false
	}

	if role == models.RoleBarber && bk.BarberID == userID {
		return true
	}
	if allowCustomer && role == models.RoleCustomer && bk.CustomerID == userID {
		return true
	}

	httperr.Forbidden(c, "forbidden", "Not allowed to manage this booking.")
	return false
}
