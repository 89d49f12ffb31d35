//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"adslot-booking/internal/handler/api"
	resdto "adslot-booking/internal/handler/dto/response"
	"adslot-booking/internal/pkg/errs"
	"adslot-booking/internal/usecase/queries"
	"adslot-booking/tests/common/builder"
	"adslot-booking/tests/common/httptest"
	"adslot-booking/tests/common/testutil"
	queriesmock "adslot-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SlotHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
	handler     *api.SlotHandler
	userID      uuid.UUID
}

func (s *SlotHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.userID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewSlotHandler(s.mockQueries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("tenant_id", "pg.citya")
		c.Next()
	}

	s.router.POST("/slots/search", authMiddleware, s.handler.Search)
}

func (s *SlotHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSlotHandlerSuite(t *testing.T) {
	suite.Run(t, new(SlotHandlerTestSuite))
}

func (s *SlotHandlerTestSuite) TestSearch() {
	url := "/slots/search"

	reqBody := builder.NewBookingBuilder().BuildSlotSearchRequestDTO()
	returnViews := []queries.SlotAvailabilityView{
		builder.NewBookingBuilder().BuildAvailabilityView("AVAILABLE"),
		builder.NewBookingBuilder().BuildAvailabilityView("BOOKED"),
	}

	s.Run("success: returns per-day availability", func() {
		s.mockQueries.EXPECT().SlotAvailability(gomock.Any(), gomock.Any(), s.userID).
			Return(returnViews, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response []resdto.SlotAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("AVAILABLE", response[0].Status)
		s.Equal("BOOKED", response[1].Status)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: tenantId", mutate: testutil.Field("tenantId", nil)},
			{name: "missing field: adType", mutate: testutil.Field("adType", nil)},
			{name: "missing field: bookingStartDate", mutate: testutil.Field("bookingStartDate", nil)},
			{name: "missing field: bookingEndDate", mutate: testutil.Field("bookingEndDate", nil)},
			{name: "malformed start date", mutate: testutil.Field("bookingStartDate", "01/06/2026")},
			{name: "malformed booking id", mutate: testutil.Field("bookingId", "not-a-uuid")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 Bad Request when the range exceeds the cap", func() {
		s.mockQueries.EXPECT().SlotAvailability(gomock.Any(), gomock.Any(), s.userID).
			Return(nil, errs.ErrInvalidDateRange).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Date range too long")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().SlotAvailability(gomock.Any(), gomock.Any(), s.userID).
			Return(nil, errors.New("redis down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
