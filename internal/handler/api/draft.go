package api

import (
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

type DraftHandler struct {
	draftCommands  commands.DraftCommands
	bookingQueries queries.BookingQueries
}

func NewDraftHandler(draftCommands commands.DraftCommands, bookingQueries queries.BookingQueries) *DraftHandler {
	return &DraftHandler{
		draftCommands:  draftCommands,
		bookingQueries: bookingQueries,
	}
}

// @Summary Save draft application
// @Description Create or update the caller's draft booking application
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SaveDraftRequest true "Draft request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Failure 404 {object} httperr.Response
// @Router /drafts [post]
func (h *DraftHandler) Save(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errors.New("user id missing from context"), "Internal server error", nil)
		return
	}

	var req reqdto.SaveDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking date", nil)
		return
	}

	view, err := h.draftCommands.Save(c.Request.Context(), params, userID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Draft not found", nil)
		case errors.Is(err, errs.ErrInvalidTenant):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid tenant", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	response, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, response)
}

// @Summary List draft applications
// @Description List the caller's draft booking applications
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Router /drafts [get]
func (h *DraftHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errors.New("user id missing from context"), "Internal server error", nil)
		return
	}

	views, err := h.bookingQueries.DraftsByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response, err := resdto.FromBookingViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Delete draft application
// @Description Delete a draft; deleting an absent draft succeeds
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Router /drafts/{id} [delete]
func (h *DraftHandler) Delete(c *gin.Context) {
	if err := h.draftCommands.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid draft id", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
