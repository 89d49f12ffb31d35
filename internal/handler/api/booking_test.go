//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"adslot-booking/internal/handler/api"
	resdto "adslot-booking/internal/handler/dto/response"
	"adslot-booking/internal/pkg/errs"
	"adslot-booking/internal/usecase/commands"
	"adslot-booking/internal/usecase/queries"
	"adslot-booking/tests/common/builder"
	"adslot-booking/tests/common/httptest"
	"adslot-booking/tests/common/testutil"
	commandsmock "adslot-booking/tests/mock/commands"
	queriesmock "adslot-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("tenant_id", "pg.citya")
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.Create)
	s.router.GET("/bookings", authMiddleware, s.handler.Search)
	s.router.PUT("/bookings/:bookingNo", authMiddleware, s.handler.Update)
	s.router.PUT("/bookings/:bookingNo/payment", authMiddleware, s.handler.ConfirmPayment)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
	returnView := builder.NewBookingBuilder().BuildView()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.BookingNo, response.BookingNo)
		s.Equal(returnView.ApplicantName, response.ApplicantName)
		s.Len(response.Slots, 1)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: tenantId", mutate: testutil.Field("tenantId", nil)},
			{name: "missing field: applicantName", mutate: testutil.Field("applicantName", nil)},
			{name: "missing field: mobileNumber", mutate: testutil.Field("mobileNumber", nil)},
			{name: "missing field: cartDetails", mutate: testutil.Field("cartDetails", nil)},
			{name: "empty cartDetails", mutate: testutil.Field("cartDetails", []any{})},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 Bad Request on unparsable booking date", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("cartDetails", []map[string]any{{
			"adType":      "Hoarding",
			"location":    "Main Road",
			"faceArea":    "20x10",
			"bookingDate": "10/06/2026",
		}}))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking date")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid tenant",
				commandsError:  errs.ErrInvalidTenant,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid tenant",
			},
			{
				name:           "slot outside master data",
				commandsError:  errs.ErrMasterDataValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "master data",
			},
			{
				name:           "master data service down",
				commandsError:  errs.ErrMasterDataUnavailable,
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "unavailable",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestSearch
// ================================================================================

func (s *BookingHandlerTestSuite) TestSearch() {
	returnView := builder.NewBookingBuilder().BuildView()

	s.Run("success: returns bookings with total count", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), gomock.Any()).
			Return([]*queries.BookingView{returnView}, nil).Times(1)
		s.mockQueries.EXPECT().Count(gomock.Any(), gomock.Any()).
			Return(1, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings?tenantId=pg.citya&status=BOOKED", nil, "bearer-token")

		var response resdto.BookingSearchResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(1, response.TotalCount)
		s.Len(response.Bookings, 1)
		s.Equal(returnView.BookingNo, response.Bookings[0].BookingNo)
	})

	s.Run("error: 400 Bad Request on malformed date filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings?fromDate=01-06-2026", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date filter")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *BookingHandlerTestSuite) TestUpdate() {
	bookingNo := "ADV-PG-20260601-A1B2C3D4"
	url := "/bookings/" + bookingNo

	reqBody := map[string]any{"permissionLetterFilestoreId": "letter-1"}
	returnView := builder.NewBookingBuilder().BuildView()

	s.Run("success: queues the update and returns 200 OK", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params commands.UpdateBookingParams) (*queries.BookingView, error) {
				s.Equal(bookingNo, params.BookingNo)
				s.Equal("letter-1", params.PermissionLetterFileID)
				s.Nil(params.Payment)
				return returnView, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.BookingNo, response.BookingNo)
	})

	s.Run("error: 404 Not Found for unknown booking number", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestConfirmPayment
// ================================================================================

func (s *BookingHandlerTestSuite) TestConfirmPayment() {
	bookingNo := "ADV-PG-20260601-A1B2C3D4"
	url := "/bookings/" + bookingNo + "/payment"

	reqBody := map[string]any{
		"payment": map[string]any{
			"receiptNo": "RCPT-1",
			"paidAt":    "2026-06-01T10:05:00Z",
		},
	}
	returnView := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.Status = "BOOKED"
	}).BuildView()

	s.Run("success: stamps the payment synchronously", func() {
		s.mockCommands.EXPECT().UpdateSynchronously(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params commands.UpdateBookingParams) (*queries.BookingView, error) {
				s.Equal(bookingNo, params.BookingNo)
				s.Require().NotNil(params.Payment)
				s.Equal("RCPT-1", params.Payment.ReceiptNo)
				return returnView, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("BOOKED", response.Status)
	})

	s.Run("error: 404 Not Found for unknown booking number", func() {
		s.mockCommands.EXPECT().UpdateSynchronously(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}
