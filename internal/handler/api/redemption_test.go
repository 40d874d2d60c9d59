//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"savesphere/internal/domain/redemption"
	"savesphere/internal/handler/api"
	resdto "savesphere/internal/handler/dto/response"
	"savesphere/internal/handler/middleware"
	"savesphere/internal/pkg/errs"
	"savesphere/internal/usecase/commands"
	"savesphere/tests/common/httptest"
	commandsmock "savesphere/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RedemptionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRedemptionCommands
	handler      *api.RedemptionHandler
}

func (s *RedemptionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRedemptionCommands(s.mockCtrl)
	s.handler = api.NewRedemptionHandler(s.mockCommands)

	identity := middleware.NewIdentityMiddleware(defaultUserID)
	s.router.Use(identity.ResolveUser())

	s.router.POST("/deals/:id/redemption/code", s.handler.ShowCode)
	s.router.POST("/deals/:id/redemption/redeem", s.handler.Redeem)
	s.router.POST("/deals/:id/redemption/receipt", s.handler.UploadReceipt)
}

func (s *RedemptionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRedemptionHandlerSuite(t *testing.T) {
	suite.Run(t, new(RedemptionHandlerTestSuite))
}

// ================================================================================
// TestShowCode
// ================================================================================

func (s *RedemptionHandlerTestSuite) TestShowCode() {
	url := "/deals/d1/redemption/code"

	s.Run("success: returns 200 OK with the shared code", func() {
		s.mockCommands.EXPECT().ShowCode(gomock.Any(), "d1", defaultUserID).
			Return(&commands.RedemptionResult{
				DealID: "d1", UserID: defaultUserID,
				State: redemption.StateCodeShown, Code: "SS-AAAA11",
				TotalPoints: 345,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.RedemptionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("code_shown", response.State)
		s.Equal("SS-AAAA11", response.Code)
		s.Zero(response.PointsDelta)
	})

	s.Run("error: 409 Conflict for online deals", func() {
		s.mockCommands.EXPECT().ShowCode(gomock.Any(), "d1", defaultUserID).
			Return(nil, errs.ErrWrongDealType).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Action not available for this deal type")
	})

	s.Run("error: 404 Not Found for missing deal", func() {
		s.mockCommands.EXPECT().ShowCode(gomock.Any(), "d1", defaultUserID).
			Return(nil, errs.ErrDealNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Deal not found")
	})
}

// ================================================================================
// TestRedeem
// ================================================================================

func (s *RedemptionHandlerTestSuite) TestRedeem() {
	url := "/deals/d1/redemption/redeem"

	s.Run("success: returns 200 OK with the points delta", func() {
		s.mockCommands.EXPECT().Redeem(gomock.Any(), "d1", "u3").
			Return(&commands.RedemptionResult{
				DealID: "d1", UserID: "u3",
				State:       redemption.StateReceiptPending,
				PointsDelta: redemption.PointsInStoreRedeem,
				TotalPoints: 355,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "u3")

		var response resdto.RedemptionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("receipt_pending", response.State)
		s.Equal(redemption.PointsInStoreRedeem, response.PointsDelta)
		s.Equal(355, response.TotalPoints)
	})

	s.Run("success: settled repeat comes back with zero delta", func() {
		s.mockCommands.EXPECT().Redeem(gomock.Any(), "d1", defaultUserID).
			Return(&commands.RedemptionResult{
				DealID: "d1", UserID: defaultUserID,
				State:       redemption.StateRedeemed,
				TotalPoints: 355,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.RedemptionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("redeemed", response.State)
		s.Zero(response.PointsDelta)
	})

	s.Run("error: 500 Internal Server Error on store failure", func() {
		s.mockCommands.EXPECT().Redeem(gomock.Any(), "d1", defaultUserID).
			Return(nil, errors.New("store exploded")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal error")
	})
}

// ================================================================================
// TestUploadReceipt
// ================================================================================

func (s *RedemptionHandlerTestSuite) TestUploadReceipt() {
	url := "/deals/d1/redemption/receipt"

	s.Run("success: returns 200 OK with the receipt bonus", func() {
		s.mockCommands.EXPECT().UploadReceipt(gomock.Any(), "d1", defaultUserID).
			Return(&commands.RedemptionResult{
				DealID: "d1", UserID: defaultUserID,
				State:       redemption.StateReceiptUploaded,
				PointsDelta: redemption.PointsReceiptUpload,
				TotalPoints: 365,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.RedemptionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("receipt_uploaded", response.State)
		s.Equal(redemption.PointsReceiptUpload, response.PointsDelta)
	})

	s.Run("error: 409 Conflict for online deals", func() {
		s.mockCommands.EXPECT().UploadReceipt(gomock.Any(), "d1", defaultUserID).
			Return(nil, errs.ErrWrongDealType).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Action not available for this deal type")
	})

	s.Run("error: 404 Not Found for missing user", func() {
		s.mockCommands.EXPECT().UploadReceipt(gomock.Any(), "d1", defaultUserID).
			Return(nil, errs.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}
