package api

import (
	"context"
	"errors"
	"net/http"

	reqdto "adslot-booking/internal/handler/dto/request"
	resdto "adslot-booking/internal/handler/dto/response"
	"adslot-booking/internal/handler/httperr"
	"adslot-booking/internal/handler/middleware"
	"adslot-booking/internal/pkg/errs"
	"adslot-booking/internal/usecase/commands"
	"adslot-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Create a booking in the payment-pending state
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Failure 422 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errors.New("user id missing from context"), "Internal server error", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking date", nil)
		return
	}

	view, err := h.bookingCommands.Create(c.Request.Context(), params, userID)
	if err != nil {
		h.abortCommandError(c, err)
		return
	}

	response, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusCreated, response)
}

// @Summary Search bookings
// @Description Search bookings by tenant, booking number, applicant or status
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param tenantId query string false "Tenant ID"
// @Param bookingNo query string false "Booking number"
// @Param applicantName query string false "Applicant name"
// @Param mobileNumber query string false "Applicant mobile number"
// @Param status query string false "Booking status"
// @Success 200 {object} resdto.BookingSearchResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) Search(c *gin.Context) {
	var query reqdto.SearchBookingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	criteria, err := query.ToCriteria()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date filter", nil)
		return
	}

	views, err := h.bookingQueries.Search(c.Request.Context(), criteria)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	total, err := h.bookingQueries.Count(c.Request.Context(), criteria)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	bookings, err := resdto.FromBookingViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.BookingSearchResponse{
		Bookings:   bookings,
		TotalCount: total,
	})
}

// @Summary Update booking
// @Description Fill file references and queue the update for persistence
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param bookingNo path string true "Booking number"
// @Param request body reqdto.UpdateBookingRequest true "Update request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Failure 404 {object} httperr.Response
// @Router /bookings/{bookingNo} [put]
func (h *BookingHandler) Update(c *gin.Context) {
	h.update(c, h.bookingCommands.Update)
}

// @Summary Confirm booking payment
// @Description Stamp the payment and persist the confirmed booking synchronously
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param bookingNo path string true "Booking number"
// @Param request body reqdto.UpdateBookingRequest true "Update request with payment detail"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Failure 404 {object} httperr.Response
// @Router /bookings/{bookingNo}/payment [put]
func (h *BookingHandler) ConfirmPayment(c *gin.Context) {
	h.update(c, h.bookingCommands.UpdateSynchronously)
}

func (h *BookingHandler) update(
	c *gin.Context,
	apply func(ctx context.Context, params commands.UpdateBookingParams) (*queries.BookingView, error),
) {
	bookingNo := c.Param("bookingNo")
	if bookingNo == "" {
		httperr.AbortWithError(c, http.StatusBadRequest,
			errors.New("booking number missing"), "Booking number required", nil)
		return
	}

	var req reqdto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := apply(c.Request.Context(), req.ToParams(bookingNo))
	if err != nil {
		h.abortCommandError(c, err)
		return
	}

	response, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *BookingHandler) abortCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, errs.ErrInvalidTenant):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid tenant", nil)
	case errors.Is(err, errs.ErrMasterDataValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Slot not present in master data", nil)
	case errors.Is(err, errs.ErrMasterDataUnavailable):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Master data service unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
