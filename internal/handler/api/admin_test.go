//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"seat-redeem/internal/handler/api"
	resdto "seat-redeem/internal/handler/dto/response"
	"seat-redeem/internal/pkg/ptr"
	"seat-redeem/internal/usecase/commands"
	"seat-redeem/internal/usecase/queries"
	"seat-redeem/tests/common/httptest"
	commandsmock "seat-redeem/tests/mock/commands"
	queriesmock "seat-redeem/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockVouchers  *commandsmock.MockVoucherCommands
	mockVoucherQ  *queriesmock.MockVoucherQueries
	mockUsageQ    *queriesmock.MockUsageRecordQueries
	mockResources *queriesmock.MockResourceQueries
	handler       *api.AdminHandler
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockVouchers = commandsmock.NewMockVoucherCommands(s.mockCtrl)
	s.mockVoucherQ = queriesmock.NewMockVoucherQueries(s.mockCtrl)
	s.mockUsageQ = queriesmock.NewMockUsageRecordQueries(s.mockCtrl)
	s.mockResources = queriesmock.NewMockResourceQueries(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockVouchers, s.mockVoucherQ, s.mockUsageQ, s.mockResources)

	// authentication is covered by the middleware tests
	s.router.POST("/vouchers", s.handler.GenerateVoucher)
	s.router.POST("/vouchers/batch", s.handler.GenerateBatch)
	s.router.GET("/vouchers", s.handler.ListVouchers)
	s.router.GET("/vouchers/unused", s.handler.ListUnusedVouchers)
	s.router.GET("/vouchers/:code", s.handler.GetVoucher)
	s.router.DELETE("/vouchers/:code", s.handler.DeleteVoucher)
	s.router.GET("/records", s.handler.ListRecords)
	s.router.GET("/resources", s.handler.ListResources)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

var createdAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// ================================================================================
// Voucher generation
// ================================================================================

func (s *AdminHandlerTestSuite) TestGenerateVoucher() {
	url := "/vouchers"

	s.Run("success: returns 201 with the new voucher", func() {
		s.mockVouchers.EXPECT().Generate(gomock.Any(), commands.GenerateVoucherParams{Code: ptr.Of("PROMO"), ExpiryDays: 7, WarrantyDays: 30}).
			Return(&commands.GeneratedVoucher{Code: "PROMO", HasWarranty: true, WarrantyDays: 30, CreatedAt: createdAt}, nil).Times(1)

		body := map[string]any{"code": "PROMO", "expiry_days": 7, "warranty_days": 30}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.VoucherResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		want := resdto.VoucherResponse{Code: "PROMO", Status: "unused", HasWarranty: true, WarrantyDays: 30, CreatedAt: createdAt}
		if diff := cmp.Diff(want, response); diff != "" {
			s.Failf("response mismatch", "(-want +got):\n%s", diff)
		}
	})

	s.Run("error: negative days are rejected before the use case", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"expiry_days": -1}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps use case errors", func() {
		cases := []struct {
			name   string
			err    error
			status int
			code   string
		}{
			{name: "code taken", err: commands.ErrVoucherCodeTaken, status: http.StatusConflict, code: "voucher_code_taken"},
			{name: "invalid request", err: commands.ErrInvalidVoucherRequest, status: http.StatusBadRequest, code: "invalid_voucher_request"},
			{name: "batch size", err: commands.ErrBatchSizeOutOfRange, status: http.StatusBadRequest, code: "batch_size_out_of_range"},
			{name: "internal", err: errors.New("db down"), status: http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockVouchers.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
				httptest.AssertErrorCode(s.T(), rec, tc.status, tc.code)
			})
		}
	})
}

func (s *AdminHandlerTestSuite) TestGenerateBatch() {
	url := "/vouchers/batch"

	s.Run("success: returns every voucher", func() {
		s.mockVouchers.EXPECT().GenerateBatch(gomock.Any(), 2, 0, 0).
			Return([]commands.GeneratedVoucher{{Code: "AAAA-AAAA-AAAA-AAAA"}, {Code: "BBBB-BBBB-BBBB-BBBB"}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"count": 2}, "")

		var response []resdto.VoucherResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Len(response, 2)
		s.Equal("unused", response[1].Status)
	})

	s.Run("error: count bounds", func() {
		for _, count := range []int{0, 1001} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"count": count}, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		}
	})
}

// ================================================================================
// Voucher reads and deletes
// ================================================================================

func (s *AdminHandlerTestSuite) TestListVouchers() {
	views := []*queries.VoucherView{
		{Code: "A1", Status: "unused", WarrantyDays: 0, CreatedAt: createdAt},
		{Code: "B2", Status: "used", UsedByEmail: ptr.Of("x@example.com"), WarrantyDays: 14, CreatedAt: createdAt},
	}

	s.Run("success: all vouchers with paging", func() {
		s.mockVoucherQ.EXPECT().List(gomock.Any(), queries.Page{Limit: 10, Offset: 5}).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/vouchers?limit=10&offset=5", nil, "")

		var response resdto.ListResponse[resdto.VoucherResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(2, response.Count)
		s.Equal(10, response.Limit)
		s.Equal(5, response.Offset)
		s.Equal(14, response.Items[1].WarrantyDays)
		s.Equal("x@example.com", *response.Items[1].UsedByEmail)
	})

	s.Run("success: unused vouchers use the default page", func() {
		s.mockVoucherQ.EXPECT().ListUnused(gomock.Any(), queries.Page{}).Return(views[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/vouchers/unused", nil, "")

		var response resdto.ListResponse[resdto.VoucherResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(queries.DefaultListLimit, response.Limit)
		s.Len(response.Items, 1)
	})

	s.Run("error: limit out of range", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/vouchers?limit=5000", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})
}

func (s *AdminHandlerTestSuite) TestGetVoucher() {
	s.Run("success", func() {
		s.mockVoucherQ.EXPECT().GetByCode(gomock.Any(), "A1").
			Return(&queries.VoucherView{Code: "A1", Status: "unused", CreatedAt: createdAt}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/vouchers/A1", nil, "")

		var response resdto.VoucherResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("A1", response.Code)
	})

	s.Run("error: 404", func() {
		s.mockVoucherQ.EXPECT().GetByCode(gomock.Any(), "NOPE").Return(nil, queries.ErrVoucherNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/vouchers/NOPE", nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "voucher_not_found")
	})
}

func (s *AdminHandlerTestSuite) TestDeleteVoucher() {
	s.Run("success: 204", func() {
		s.mockVouchers.EXPECT().Delete(gomock.Any(), "A1").Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/vouchers/A1", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404", func() {
		s.mockVouchers.EXPECT().Delete(gomock.Any(), "A1").Return(commands.ErrVoucherNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/vouchers/A1", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Voucher not found")
	})
}

// ================================================================================
// Records and resources
// ================================================================================

func (s *AdminHandlerTestSuite) TestListRecords() {
	s.Run("success: filters reach the query", func() {
		want := queries.UsageRecordFilters{Email: ptr.Of("alice"), ResourceID: ptr.Of(int64(3))}
		s.mockUsageQ.EXPECT().List(gomock.Any(), want, queries.Page{Limit: 20}).
			Return([]*queries.UsageRecordView{{ID: 9, Email: "alice@example.com", Code: "A1", ResourceID: 3, RedeemedAt: createdAt}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/records?email=alice&resource_id=3&limit=20", nil, "")

		var response resdto.ListResponse[resdto.UsageRecordResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Items, 1)
		s.Equal(int64(9), response.Items[0].ID)
	})

	s.Run("error: invalid resource id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/records?resource_id=abc", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})
}

func (s *AdminHandlerTestSuite) TestListResources() {
	s.mockResources.EXPECT().ListAll(gomock.Any()).
		Return([]*queries.ResourceView{{ID: 1, Name: "pool-1", Status: "active", MaxMembers: 5}}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources", nil, "")

	var response []queries.ResourceView
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().Len(response, 1)
	s.Equal("pool-1", response[0].Name)
}
