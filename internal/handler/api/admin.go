package api

import (
	"net/http"

	reqdto "seat-redeem/internal/handler/dto/request"
	resdto "seat-redeem/internal/handler/dto/response"
	"seat-redeem/internal/handler/httperr"
	"seat-redeem/internal/pkg/errs"
	"seat-redeem/internal/usecase/commands"
	"seat-redeem/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	vouchers   commands.VoucherCommands
	voucherQ   queries.VoucherQueries
	usageQ     queries.UsageRecordQueries
	resourcesQ queries.ResourceQueries
}

func NewAdminHandler(
	vouchers commands.VoucherCommands,
	voucherQ queries.VoucherQueries,
	usageQ queries.UsageRecordQueries,
	resourcesQ queries.ResourceQueries,
) *AdminHandler {
	return &AdminHandler{
		vouchers:   vouchers,
		voucherQ:   voucherQ,
		usageQ:     usageQ,
		resourcesQ: resourcesQ,
	}
}

// @Summary Generate voucher
// @Description Create one voucher with a custom or random code
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.GenerateVoucherRequest true "Generate request"
// @Success 201 {object} resdto.VoucherResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/vouchers [post]
func (h *AdminHandler) GenerateVoucher(c *gin.Context) {
	var req reqdto.GenerateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	generated, err := h.vouchers.Generate(c.Request.Context(), commands.GenerateVoucherParams{
		Code:         req.Code,
		ExpiryDays:   req.ExpiryDays,
		WarrantyDays: req.WarrantyDays,
	})
	if err != nil {
		abortVoucherError(c, err)
		return
	}

	res, err := resdto.FromGeneratedVoucher(generated)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary Generate vouchers in batch
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BatchGenerateRequest true "Batch request"
// @Success 201 {array} resdto.VoucherResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/vouchers/batch [post]
func (h *AdminHandler) GenerateBatch(c *gin.Context) {
	var req reqdto.BatchGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	generated, err := h.vouchers.GenerateBatch(c.Request.Context(), req.Count, req.ExpiryDays, req.WarrantyDays)
	if err != nil {
		abortVoucherError(c, err)
		return
	}

	res, err := resdto.FromGeneratedVouchers(generated)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary List vouchers
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} resdto.ListResponse[resdto.VoucherResponse]
// @Router /api/admin/vouchers [get]
func (h *AdminHandler) ListVouchers(c *gin.Context) {
	h.listVouchers(c, false)
}

// @Summary List unused vouchers
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} resdto.ListResponse[resdto.VoucherResponse]
// @Router /api/admin/vouchers/unused [get]
func (h *AdminHandler) ListUnusedVouchers(c *gin.Context) {
	h.listVouchers(c, true)
}

func (h *AdminHandler) listVouchers(c *gin.Context, unusedOnly bool) {
	var q reqdto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	var (
		views []*queries.VoucherView
		err   error
	)
	if unusedOnly {
		views, err = h.voucherQ.ListUnused(c.Request.Context(), q.ToPage())
	} else {
		views, err = h.voucherQ.List(c.Request.Context(), q.ToPage())
	}
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list vouchers", nil)
		return
	}

	items, err := resdto.FromVoucherViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.NewListResponse(items, q.ToPage()))
}

// @Summary Get voucher
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param code path string true "Voucher code"
// @Success 200 {object} resdto.VoucherResponse
// @Failure 404 {object} httperr.Response
// @Router /api/admin/vouchers/{code} [get]
func (h *AdminHandler) GetVoucher(c *gin.Context) {
	view, err := h.voucherQ.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errs.Is(err, queries.ErrVoucherNotFound) {
			httperr.AbortWithCode(c, http.StatusNotFound, err, "voucher_not_found", "Voucher not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load voucher", nil)
		return
	}

	items, err := resdto.FromVoucherViews([]*queries.VoucherView{view})
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, items[0])
}

// @Summary Delete voucher
// @Tags admin
// @Security BearerAuth
// @Param code path string true "Voucher code"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/admin/vouchers/{code} [delete]
func (h *AdminHandler) DeleteVoucher(c *gin.Context) {
	if err := h.vouchers.Delete(c.Request.Context(), c.Param("code")); err != nil {
		abortVoucherError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List usage records
// @Description Filter by email or code substring and by resource id, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param email query string false "Email contains"
// @Param code query string false "Code contains"
// @Param resource_id query int false "Resource ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} resdto.ListResponse[resdto.UsageRecordResponse]
// @Router /api/admin/records [get]
func (h *AdminHandler) ListRecords(c *gin.Context) {
	var q reqdto.UsageRecordListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	views, err := h.usageQ.List(c.Request.Context(), q.ToFilters(), q.ToPage())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list records", nil)
		return
	}

	items, err := resdto.FromUsageRecordViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.NewListResponse(items, q.ToPage()))
}

// @Summary List resources
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.ResourceView
// @Router /api/admin/resources [get]
func (h *AdminHandler) ListResources(c *gin.Context) {
	views, err := h.resourcesQ.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list resources", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}

func abortVoucherError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrVoucherNotFound):
		httperr.AbortWithCode(c, http.StatusNotFound, err, "voucher_not_found", "Voucher not found", nil)
	case errs.Is(err, commands.ErrVoucherCodeTaken):
		httperr.AbortWithCode(c, http.StatusConflict, err, "voucher_code_taken", "Voucher code already exists", nil)
	case errs.Is(err, commands.ErrBatchSizeOutOfRange):
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "batch_size_out_of_range", "Invalid voucher request", nil)
	case errs.Is(err, commands.ErrInvalidVoucherRequest):
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "invalid_voucher_request", "Invalid voucher request", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
