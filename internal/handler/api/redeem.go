package api

import (
	"log/slog"
	"net/http"

	reqdto "seat-redeem/internal/handler/dto/request"
	resdto "seat-redeem/internal/handler/dto/response"
	"seat-redeem/internal/handler/httperr"
	"seat-redeem/internal/usecase/commands"
	"seat-redeem/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RedeemHandler struct {
	cmds      commands.RedemptionCommands
	resources queries.ResourceQueries
}

func NewRedeemHandler(cmds commands.RedemptionCommands, resources queries.ResourceQueries) *RedeemHandler {
	return &RedeemHandler{
		cmds:      cmds,
		resources: resources,
	}
}

// @Summary Verify voucher
// @Description Check a voucher and list resources it can be redeemed on
// @Tags redeem
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyRequest true "Verify request"
// @Success 200 {object} resdto.VerifyResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/redeem/verify [post]
func (h *RedeemHandler) Verify(c *gin.Context) {
	var req reqdto.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	ctx := c.Request.Context()
	validation, err := h.cmds.ValidateVoucher(ctx, req.Code)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Verification failed", nil)
		return
	}
	if !validation.Valid {
		c.JSON(http.StatusOK, resdto.FromValidation(validation, nil))
		return
	}

	available, err := h.resources.ListAvailable(ctx)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list resources", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromValidation(validation, available))
}

// @Summary Redeem voucher
// @Description Consume a voucher and grant a seat on a resource, chosen automatically unless resource_id is given
// @Tags redeem
// @Accept json
// @Produce json
// @Param request body reqdto.ConfirmRequest true "Confirm request"
// @Success 200 {object} resdto.ConfirmResponse
// @Failure 400 {object} resdto.FailureResponse
// @Failure 404 {object} resdto.FailureResponse
// @Failure 409 {object} resdto.FailureResponse
// @Failure 502 {object} resdto.FailureResponse
// @Failure 500 {object} resdto.FailureResponse
// @Router /api/redeem/confirm [post]
func (h *RedeemHandler) Confirm(c *gin.Context) {
	var req reqdto.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Redeem(c.Request.Context(), commands.RedeemRequest{
		Code:       req.Code,
		Email:      req.Email,
		ResourceID: req.ResourceID,
	})
	if err != nil {
		f, ok := commands.AsFailure(err)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
			return
		}
		status := failureStatus(f.Code)
		if status >= http.StatusInternalServerError {
			slog.Error("redemption failed", "failure_code", f.Code, "error", err)
		}
		_ = c.Error(err)
		c.AbortWithStatusJSON(status, resdto.FromFailure(f))
		return
	}

	c.JSON(http.StatusOK, resdto.FromRedemptionResult(result))
}

func failureStatus(code commands.FailureCode) int {
	switch code {
	case commands.CodeVoucherNotFound, commands.CodeResourceNotFound:
		return http.StatusNotFound
	}

	switch code.Class() {
	case commands.ClassInputInvalid:
		return http.StatusBadRequest
	case commands.ClassResourceUnavailable:
		return http.StatusConflict
	case commands.ClassTransientExternal, commands.ClassFatalExternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
