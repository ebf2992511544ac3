//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"seat-redeem/internal/handler/api"
	reqdto "seat-redeem/internal/handler/dto/request"
	resdto "seat-redeem/internal/handler/dto/response"
	"seat-redeem/internal/pkg/ptr"
	"seat-redeem/internal/usecase/commands"
	"seat-redeem/internal/usecase/queries"
	"seat-redeem/tests/common/httptest"
	"seat-redeem/tests/common/testutil"
	commandsmock "seat-redeem/tests/mock/commands"
	queriesmock "seat-redeem/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RedeemHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCommands  *commandsmock.MockRedemptionCommands
	mockResources *queriesmock.MockResourceQueries
	handler       *api.RedeemHandler
}

func (s *RedeemHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRedemptionCommands(s.mockCtrl)
	s.mockResources = queriesmock.NewMockResourceQueries(s.mockCtrl)
	s.handler = api.NewRedeemHandler(s.mockCommands, s.mockResources)

	s.router.POST("/redeem/verify", s.handler.Verify)
	s.router.POST("/redeem/confirm", s.handler.Confirm)
}

func (s *RedeemHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRedeemHandlerSuite(t *testing.T) {
	suite.Run(t, new(RedeemHandlerTestSuite))
}

// ================================================================================
// TestVerify
// ================================================================================

func (s *RedeemHandlerTestSuite) TestVerify() {
	url := "/redeem/verify"
	available := []*queries.AvailableResourceView{
		{ID: 1, Name: "pool-1", CurrentMembers: 2, MaxMembers: 5},
	}

	s.Run("success: valid voucher lists resources", func() {
		s.mockCommands.EXPECT().ValidateVoucher(gomock.Any(), "ABCD-1234").
			Return(commands.Validation{Valid: true}, nil).Times(1)
		s.mockResources.EXPECT().ListAvailable(gomock.Any()).
			Return(available, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.VerifyRequest{Code: "ABCD-1234"}, "")

		var response resdto.VerifyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Valid)
		s.Require().Len(response.Resources, 1)
		s.Equal("pool-1", response.Resources[0].Name)
	})

	s.Run("success: invalid voucher answers 200 without resources", func() {
		s.mockCommands.EXPECT().ValidateVoucher(gomock.Any(), "OLD-1").
			Return(commands.Validation{Code: commands.CodeVoucherExpired, Reason: "voucher expired"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.VerifyRequest{Code: "OLD-1"}, "")

		var response resdto.VerifyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Valid)
		s.Equal(string(commands.CodeVoucherExpired), response.Code)
		s.NotNil(response.Resources)
		s.Empty(response.Resources)
	})

	s.Run("error: 400 on malformed request", func() {
		cases := []struct {
			name string
			body any
		}{
			{name: "missing code", body: map[string]any{}},
			{name: "empty code", body: map[string]any{"code": ""}},
			{name: "code too long", body: map[string]any{"code": strings.Repeat("A", 65)}},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, tc.body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 500 when validation fails", func() {
		s.mockCommands.EXPECT().ValidateVoucher(gomock.Any(), gomock.Any()).
			Return(commands.Validation{}, errors.New("db down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.VerifyRequest{Code: "ABCD"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Verification failed")
	})

	s.Run("error: 500 when listing fails", func() {
		s.mockCommands.EXPECT().ValidateVoucher(gomock.Any(), gomock.Any()).
			Return(commands.Validation{Valid: true}, nil).Times(1)
		s.mockResources.EXPECT().ListAvailable(gomock.Any()).
			Return(nil, errors.New("db down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.VerifyRequest{Code: "ABCD"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to list resources")
	})
}

// ================================================================================
// TestConfirm
// ================================================================================

func (s *RedeemHandlerTestSuite) TestConfirm() {
	url := "/redeem/confirm"
	reqBody := reqdto.ConfirmRequest{Code: "ABCD-1234", Email: "member@example.com"}
	result := &commands.RedemptionResult{
		Success:  true,
		Message:  "joined pool-1",
		Attempts: 1,
		Grant:    &commands.GrantDetails{ResourceID: 1, ResourceName: "pool-1", ExternalAccountID: "acct-1"},
	}

	s.Run("success: returns 200 with grant details", func() {
		s.mockCommands.EXPECT().Redeem(gomock.Any(), commands.RedeemRequest{Code: "ABCD-1234", Email: "member@example.com"}).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.ConfirmResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Success)
		s.Equal("joined pool-1", response.Message)
		s.Nil(response.Error)
		s.Require().NotNil(response.Grant)
		s.Equal(int64(1), response.Grant.ResourceID)

		var raw map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &raw))
		s.Contains(raw, "grant_details")
		s.Contains(raw, "error")
		s.Nil(raw["error"])
	})

	s.Run("success: pinned resource is passed through", func() {
		s.mockCommands.EXPECT().Redeem(gomock.Any(), commands.RedeemRequest{Code: "ABCD-1234", Email: "member@example.com", ResourceID: ptr.Of(int64(7))}).
			Return(result, nil).Times(1)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("resource_id", 7))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: code", mutate: testutil.Field("code", nil)},
			{name: "missing field: email", mutate: testutil.Field("email", nil)},
			{name: "malformed email", mutate: testutil.Field("email", "not-an-email")},
			{name: "resource id zero", mutate: testutil.Field("resource_id", 0)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: failures map to statuses", func() {
		cases := []struct {
			code   commands.FailureCode
			status int
		}{
			{code: commands.CodeVoucherNotFound, status: http.StatusNotFound},
			{code: commands.CodeResourceNotFound, status: http.StatusNotFound},
			{code: commands.CodeInvalidEmail, status: http.StatusBadRequest},
			{code: commands.CodeVoucherExpired, status: http.StatusBadRequest},
			{code: commands.CodeVoucherAlreadyUsed, status: http.StatusBadRequest},
			{code: commands.CodeWarrantyRejected, status: http.StatusBadRequest},
			{code: commands.CodeResourceFull, status: http.StatusConflict},
			{code: commands.CodeNoResourceAvailable, status: http.StatusConflict},
			{code: commands.CodeGrantRetryable, status: http.StatusBadGateway},
			{code: commands.CodeGrantFatal, status: http.StatusBadGateway},
			{code: commands.CodeCredentialInvalid, status: http.StatusBadGateway},
			{code: commands.CodeSystemError, status: http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(string(tc.code), func() {
				s.mockCommands.EXPECT().Redeem(gomock.Any(), gomock.Any()).
					Return(nil, &commands.Failure{Code: tc.code, Reason: "because"}).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				s.Equal(tc.status, rec.Code)

				var response resdto.FailureResponse
				s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &response))
				s.False(response.Success)
				s.Equal(string(tc.code), response.Code)
				s.Equal("because", response.Error)
				s.Nil(response.Message)
				s.Nil(response.Grant)
			})
		}
	})

	s.Run("error: failure body keeps the result keys", func() {
		s.mockCommands.EXPECT().Redeem(gomock.Any(), gomock.Any()).
			Return(nil, &commands.Failure{Code: commands.CodeResourceFull, Reason: "resource is full"}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusConflict, rec.Code)

		var raw map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &raw))
		s.Equal(map[string]any{
			"success":       false,
			"message":       nil,
			"grant_details": nil,
			"error":         "resource is full",
			"code":          "resource_full",
		}, raw)
	})

	s.Run("error: 500 on untyped error", func() {
		s.mockCommands.EXPECT().Redeem(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
