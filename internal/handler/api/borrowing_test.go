//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"borrowing-service/internal/domain/borrowing"
	"borrowing-service/internal/handler/api"
	resdto "borrowing-service/internal/handler/dto/response"
	"borrowing-service/internal/handler/middleware"
	"borrowing-service/internal/pkg/errs"
	"borrowing-service/internal/usecase/commands"
	"borrowing-service/internal/usecase/queries"
	"borrowing-service/tests/common/builder"
	"borrowing-service/tests/common/httptest"
	"borrowing-service/tests/common/testutil"
	commandsmock "borrowing-service/tests/mock/commands"
	queriesmock "borrowing-service/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BorrowingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBorrowingCommands
	mockQueries  *queriesmock.MockBorrowingQueries
	handler      *api.BorrowingHandler
}

func (s *BorrowingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBorrowingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBorrowingQueries(s.mockCtrl)
	s.handler = api.NewBorrowingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/api/v1/borrowings", s.handler.Create)
	s.router.GET("/api/v1/borrowings", s.handler.ListByUser)
	s.router.GET("/api/v1/borrowings/:id", s.handler.Get)
	s.router.GET("/api/v1/book-units/:id/borrowings", s.handler.ListByBookUnit)
}

func (s *BorrowingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBorrowingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BorrowingHandlerTestSuite))
}

type testCaseBorrowing struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail map[string]string `json:"detail"`
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BorrowingHandlerTestSuite) TestCreate() {
	url := "/api/v1/borrowings"

	b := builder.NewBorrowingBuilder().WithID(17)
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildView()

	bound := []testCaseBorrowing{
		{name: "address length OK (10 chars)", mutate: testutil.Field("shippingAddress", strings.Repeat("a", 10)), expectCode: http.StatusCreated},
		{name: "address length OK (100 chars)", mutate: testutil.Field("shippingAddress", strings.Repeat("a", 100)), expectCode: http.StatusCreated},
		{name: "address length invalid (9 chars)", mutate: testutil.Field("shippingAddress", strings.Repeat("a", 9)), expectCode: http.StatusBadRequest},
		{name: "address length invalid (101 chars)", mutate: testutil.Field("shippingAddress", strings.Repeat("a", 101)), expectCode: http.StatusBadRequest},
		{name: "userId invalid (0)", mutate: testutil.Field("userId", 0), expectCode: http.StatusBadRequest},
		{name: "bookUnitId invalid (-1)", mutate: testutil.Field("bookUnitId", -1), expectCode: http.StatusBadRequest},
	}

	missing := []testCaseBorrowing{
		{name: "missing field: userId (required)", mutate: testutil.Field("userId", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: bookUnitId (required)", mutate: testutil.Field("bookUnitId", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: shippingAddress (required)", mutate: testutil.Field("shippingAddress", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: startDate (required)", mutate: testutil.Field("startDate", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: endDate (required)", mutate: testutil.Field("endDate", nil), expectCode: http.StatusBadRequest},
	}

	format := []testCaseBorrowing{
		{name: "startDate with slashes", mutate: testutil.Field("startDate", "2026/05/01"), expectCode: http.StatusBadRequest},
		{name: "endDate with time part", mutate: testutil.Field("endDate", "2026-05-01T10:00:00Z"), expectCode: http.StatusBadRequest},
		{name: "userId as string", mutate: testutil.Field("userId", "42"), expectCode: http.StatusBadRequest},
	}

	allValidationTestCases := [][]testCaseBorrowing{bound, missing, format}

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), b.BuildInput()).
			Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.BorrowingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(resdto.FromBorrowingView(returnView), body)
		s.Equal(reqBody.StartDate, body.StartDate)
		s.Equal(reqBody.ShippingAddress, body.ShippingAddress)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/v1/borrowings/17"})
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, testCaseGroup := range allValidationTestCases {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
							Return(returnView, nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
					}
				})
			}
		}
	})

	s.Run("error: binding failures name the offending field", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("shippingAddress", "too short"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)

		var body errorBody
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal("min=10", body.Detail["shippingAddress"])
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
			expectedField  string
		}{
			{
				name: "domain validation error",
				commandsError: errs.Mark(&commands.ValidationError{Field: "startDate", Err: borrowing.ErrStartInPast},
					errs.ErrValidation),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid request",
				expectedField:  "startDate",
			},
			{
				name:           "subscription does not cover the period",
				commandsError:  errs.Mark(borrowing.ErrSubscriptionEndsEarly, errs.ErrNotEligible),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    api.NotEligibleMessage,
			},
			{
				name:           "subscription check timed out",
				commandsError:  errs.Mark(errs.New("no reply"), errs.ErrCheckTimedOut),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
			{
				name:           "subscription check dispatch failed",
				commandsError:  errs.Mark(errs.New("broker down"), errs.ErrDispatchFailed),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), b.BuildInput()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
				if tc.expectedField != "" {
					var body errorBody
					s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
					s.Contains(body.Detail, tc.expectedField)
				}
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BorrowingHandlerTestSuite) TestGet() {
	view := builder.NewBorrowingBuilder().WithID(5).BuildView()

	s.Run("success: returns the borrowing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(5)).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/v1/borrowings/5", nil)
		var body resdto.BorrowingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(5), body.ID)
		s.Equal(view.ShippingAddress, body.ShippingAddress)
		s.Equal(view.CreatedAt.Format("2006-01-02"), body.CreatedAt)
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(6)).
			Return(nil, errs.Mark(errs.New("no rows"), errs.ErrBorrowingNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/v1/borrowings/6", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Borrowing not found")
	})

	s.Run("error: 400 on malformed id", func() {
		for _, id := range []string{"abc", "0", "-4"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/v1/borrowings/"+id, nil)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
		}
	})
}

// ================================================================================
// TestListByUser
// ================================================================================

func (s *BorrowingHandlerTestSuite) TestListByUser() {
	active := builder.NewBorrowingBuilder().WithID(1).BuildView()
	inactive := builder.NewBorrowingBuilder().WithID(2).AsInactive().BuildView()

	s.Run("success: without filter lists everything", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), int64(1001)).
			Return([]*queries.BorrowingView{active, inactive}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/v1/borrowings?userId=1001", nil)
		var body []resdto.BorrowingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
	})

	s.Run("success: active=true lists active borrowings", func() {
		s.mockQueries.EXPECT().ListActiveByUser(gomock.Any(), int64(1001)).
			Return([]*queries.BorrowingView{active}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/v1/borrowings?userId=1001&active=true", nil)
		var body []resdto.BorrowingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.True(body[0].Active)
	})

	s.Run("success: active=false lists inactive borrowings", func() {
		s.mockQueries.EXPECT().ListInactiveByUser(gomock.Any(), int64(1001)).
			Return([]*queries.BorrowingView{inactive}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/v1/borrowings?userId=1001&active=false", nil)
		var body []resdto.BorrowingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.False(body[0].Active)
	})

	s.Run("success: empty result is an empty array", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), int64(9)).Return([]*queries.BorrowingView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/v1/borrowings?userId=9", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: 400 without a valid userId", func() {
		for _, q := range []string{"", "?userId=0", "?userId=abc", "?userId=3&active=maybe"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/v1/borrowings"+q, nil)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
		}
	})

	s.Run("error: 500 when the store fails", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), int64(3)).
			Return(nil, errs.Mark(errs.New("timeout"), errs.ErrDatabaseOperationFailed))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/v1/borrowings?userId=3", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal error")
	})
}

// ================================================================================
// TestListByBookUnit
// ================================================================================

func (s *BorrowingHandlerTestSuite) TestListByBookUnit() {
	s.Run("success: lists borrowings of the book unit", func() {
		view := builder.NewBorrowingBuilder().WithBookUnitID(77).BuildView()
		s.mockQueries.EXPECT().ListByBookUnit(gomock.Any(), int64(77)).
			Return([]*queries.BorrowingView{view}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/v1/book-units/77/borrowings", nil)
		var body []resdto.BorrowingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(int64(77), body[0].BookUnitID)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/v1/book-units/x/borrowings", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}
