package api

import (
	"errors"
	"net/http"

	reqdto "adslot-booking/internal/handler/dto/request"
	resdto "adslot-booking/internal/handler/dto/response"
	"adslot-booking/internal/handler/httperr"
	"adslot-booking/internal/handler/middleware"
	"adslot-booking/internal/pkg/errs"
	"adslot-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SlotHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewSlotHandler(availabilityQueries queries.AvailabilityQueries) *SlotHandler {
	return &SlotHandler{
		availabilityQueries: availabilityQueries,
	}
}

// @Summary Search slot availability
// @Description Compute per-day availability for an advertisement face over a date range
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SlotSearchRequest true "Slot search request"
// @Success 200 {array} resdto.SlotAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Router /slots/search [post]
func (h *SlotHandler) Search(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errors.New("user id missing from context"), "Internal server error", nil)
		return
	}

	var req reqdto.SlotSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	criteria, err := req.ToCriteria()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid search criteria", nil)
		return
	}

	views, err := h.availabilityQueries.SlotAvailability(c.Request.Context(), criteria, userID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidDateRange):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Date range too long", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	response, err := resdto.FromSlotAvailabilityViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, response)
}
