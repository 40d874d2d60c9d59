//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"savesphere/internal/domain/deal"
	"savesphere/internal/handler/api"
	resdto "savesphere/internal/handler/dto/response"
	"savesphere/internal/handler/middleware"
	"savesphere/internal/pkg/errs"
	"savesphere/internal/usecase/commands"
	"savesphere/internal/usecase/queries"
	"savesphere/tests/common/builder"
	"savesphere/tests/common/httptest"
	"savesphere/tests/common/testutil"
	commandsmock "savesphere/tests/mock/commands"
	queriesmock "savesphere/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const defaultUserID = "u1"

type DealHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockDealCommands
	mockQueries  *queriesmock.MockCatalogQueries
	handler      *api.DealHandler
}

func (s *DealHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockDealCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewDealHandler(s.mockCommands, s.mockQueries)

	identity := middleware.NewIdentityMiddleware(defaultUserID)
	s.router.Use(identity.ResolveUser())

	s.router.GET("/deals", s.handler.List)
	s.router.POST("/deals", s.handler.Post)
	s.router.GET("/deals/:id", s.handler.Get)
	s.router.POST("/deals/:id/verify", s.handler.Verify)
	s.router.POST("/deals/:id/flag", s.handler.Flag)
	s.router.GET("/categories", s.handler.Categories)
}

func (s *DealHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDealHandlerSuite(t *testing.T) {
	suite.Run(t, new(DealHandlerTestSuite))
}

// ================================================================================
// TestList
// ================================================================================

func (s *DealHandlerTestSuite) TestList() {
	views := []*queries.DealView{
		builder.NewDealBuilder().WithID("d1").BuildView(),
		builder.NewDealBuilder().WithID("d2").AsOnline().BuildView(),
	}

	s.Run("success: returns the catalog page", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.CatalogOptions{}).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/deals", nil, "")

		var response resdto.DealListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(2, response.Total)
		s.Equal("d1", response.Deals[0].ID)
	})

	s.Run("success: query params map onto catalog options", func() {
		category := "Groceries"
		expected := queries.CatalogOptions{
			Search:   "coffee",
			DealType: "in-store",
			Category: &category,
			Sort:     "distance",
			Origin:   &deal.Coordinates{Lat: 37.7749, Lng: -122.4194},
			Limit:    5,
		}
		s.mockQueries.EXPECT().List(gomock.Any(), expected).
			Return(views[:1], nil).Times(1)

		url := "/deals?search=coffee&deal_type=in-store&category=Groceries&sort=distance&lat=37.7749&lng=-122.4194&limit=5"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: half an origin is ignored", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.CatalogOptions{}).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/deals?lat=37.7749", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on invalid sort key", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrInvalidSort).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/deals?sort=cheapest", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid sort key")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("store exploded")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/deals", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal error")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *DealHandlerTestSuite) TestGet() {
	url := "/deals/d1"

	detail := &queries.DealDetailView{
		DealView:        *builder.NewDealBuilder().WithID("d1").BuildView(),
		RedemptionState: "code_shown",
		RedemptionCode:  "SS-AAAA11",
	}

	s.Run("success: returns 200 OK with the viewer's redemption state", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), "d1", defaultUserID).
			Return(detail, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.DealDetailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("d1", response.ID)
		s.Equal("code_shown", response.RedemptionState)
		s.Equal("SS-AAAA11", response.RedemptionCode)
	})

	s.Run("success: the acting user comes from the header", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), "d1", "u5").
			Return(detail, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "u5")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 Not Found for missing deal", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), "d1", defaultUserID).
			Return(nil, errs.ErrDealNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Deal not found")
	})
}

// ================================================================================
// TestPost
// ================================================================================

func (s *DealHandlerTestSuite) TestPost() {
	url := "/deals"
	reqBody := builder.NewDealBuilder().BuildPostRequestDTO()
	expectedResult := &commands.PostDealResult{DealID: "d-new", PointsDelta: 10, TotalPoints: 355}

	s.Run("success: returns 201 Created with the posting reward", func() {
		s.mockCommands.EXPECT().Post(gomock.Any(), defaultUserID, gomock.Any()).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.PostDealResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("d-new", response.DealID)
		s.Equal(10, response.PointsDelta)
		s.Equal(355, response.TotalPoints)
	})

	s.Run("error: 400 Bad Request on missing required fields", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: title (required)", mutate: testutil.Field("title", nil)},
			{name: "missing field: discount (required)", mutate: testutil.Field("discount", nil)},
			{name: "missing field: store (required)", mutate: testutil.Field("store", nil)},
			{name: "missing field: deal_type (required)", mutate: testutil.Field("deal_type", nil)},
			{name: "missing field: expires_at (required)", mutate: testutil.Field("expires_at", nil)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "type-specific validation failed",
				commandsError:  errs.Mark(errs.New("promo code is required for online deals"), errs.ErrValidationFailure),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Validation failed",
			},
			{
				name:           "poster not found",
				commandsError:  errs.ErrUserNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "User not found",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("store exploded"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Post(gomock.Any(), defaultUserID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestVerify
// ================================================================================

func (s *DealHandlerTestSuite) TestVerify() {
	url := "/deals/d1/verify"

	s.Run("success: returns 200 OK with the engagement result", func() {
		s.mockCommands.EXPECT().Verify(gomock.Any(), "d1", defaultUserID).
			Return(&commands.EngagementResult{DealID: "d1", Count: 13, Counted: true, PointsDelta: 5, TotalPoints: 350}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.EngagementResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(13, response.Count)
		s.True(response.Counted)
		s.Equal(5, response.PointsDelta)
	})

	s.Run("success: repeat verify reports counted=false", func() {
		s.mockCommands.EXPECT().Verify(gomock.Any(), "d1", defaultUserID).
			Return(&commands.EngagementResult{DealID: "d1", Count: 13, Counted: false, TotalPoints: 350}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.EngagementResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Counted)
		s.Zero(response.PointsDelta)
	})

	s.Run("error: 404 Not Found for missing deal", func() {
		s.mockCommands.EXPECT().Verify(gomock.Any(), "d1", defaultUserID).
			Return(nil, errs.ErrDealNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Deal not found")
	})
}

// ================================================================================
// TestFlag
// ================================================================================

func (s *DealHandlerTestSuite) TestFlag() {
	url := "/deals/d1/flag"

	s.Run("success: returns 200 OK with no points", func() {
		s.mockCommands.EXPECT().Flag(gomock.Any(), "d1", defaultUserID).
			Return(&commands.EngagementResult{DealID: "d1", Count: 1, Counted: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.EngagementResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(1, response.Count)
		s.Zero(response.PointsDelta)
	})

	s.Run("error: 404 Not Found for missing deal", func() {
		s.mockCommands.EXPECT().Flag(gomock.Any(), "d1", defaultUserID).
			Return(nil, errs.ErrDealNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Deal not found")
	})
}

// ================================================================================
// TestCategories
// ================================================================================

func (s *DealHandlerTestSuite) TestCategories() {
	s.Run("success: returns the category list", func() {
		s.mockQueries.EXPECT().Categories().
			Return([]string{"Groceries", "Electronics"}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/categories", nil, "")

		var response resdto.CategoriesResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal([]string{"Groceries", "Electronics"}, response.Categories)
	})
}
