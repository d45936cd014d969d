package httpapi

import (
	"errors"
	"net/http"

	"github.com/MarkoPoloResearchLab/engagement/pkg/engagement"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	errorCodeUnauthorized       = "unauthorized"
	errorCodeRateLimited        = "rate_limited"
	errorCodeInvalidPayload     = "invalid_payload"
	errorCodeInvalidUserID      = "invalid_user_id"
	errorCodeInvalidActionKind  = "invalid_action_kind"
	errorCodeUnknownActionKind  = "unknown_action_kind"
	errorCodeInvalidTargetID    = "invalid_target_id"
	errorCodeMissingTargetID    = "missing_target_id"
	errorCodeInvalidDiscountID  = "invalid_discount_id"
	errorCodeInvalidLimit       = "invalid_limit"
	errorCodeUnknownDiscount    = "unknown_discount"
	errorCodeDiscountIneligible = "discount_not_eligible"
	errorCodeInvariant          = "invariant_violation"
	errorCodeServer             = "server_error"
)

type errorMapping struct {
	target error
	status int
	code   string
}

var errorMappings = []errorMapping{
	{target: engagement.ErrInvalidUserID, status: http.StatusBadRequest, code: errorCodeInvalidUserID},
	{target: engagement.ErrInvalidActionKind, status: http.StatusBadRequest, code: errorCodeInvalidActionKind},
	{target: engagement.ErrUnknownActionKind, status: http.StatusBadRequest, code: errorCodeUnknownActionKind},
	{target: engagement.ErrInvalidTargetID, status: http.StatusBadRequest, code: errorCodeInvalidTargetID},
	{target: engagement.ErrMissingTargetID, status: http.StatusBadRequest, code: errorCodeMissingTargetID},
	{target: engagement.ErrInvalidDiscountID, status: http.StatusBadRequest, code: errorCodeInvalidDiscountID},
	{target: engagement.ErrInvalidLimit, status: http.StatusBadRequest, code: errorCodeInvalidLimit},
	{target: engagement.ErrUnknownDiscount, status: http.StatusNotFound, code: errorCodeUnknownDiscount},
	{target: engagement.ErrDiscountNotEligible, status: http.StatusConflict, code: errorCodeDiscountIneligible},
	{target: engagement.ErrInvariantViolation, status: http.StatusInternalServerError, code: errorCodeInvariant},
}

func statusForError(err error) (int, string) {
	for _, mapping := range errorMappings {
		if errors.Is(err, mapping.target) {
			return mapping.status, mapping.code
		}
	}
	return http.StatusServiceUnavailable, errorCodeServer
}

func (handler *httpHandler) respondError(ctx *gin.Context, err error) {
	status, code := statusForError(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		handler.logger.Error("engagement request failed", zap.String("code", code), zap.Error(err))
		_ = ctx.Error(err)
		message = "temporarily unavailable"
		if status == http.StatusInternalServerError {
			message = "internal error"
		}
	}
	ctx.JSON(status, errorResponse(code, message))
}

func errorResponse(code string, message string) gin.H {
	return gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	}
}
