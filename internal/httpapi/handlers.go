package httpapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/MarkoPoloResearchLab/engagement/internal/config"
	"github.com/MarkoPoloResearchLab/engagement/pkg/engagement"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type httpHandler struct {
	logger  *zap.Logger
	service EngagementService
	cfg     config.Config
}

func (handler *httpHandler) requestContext(ctx *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx.Request.Context(), handler.cfg.RequestTimeout)
}

// sessionUser resolves the authenticated member or writes a 401.
func (handler *httpHandler) sessionUser(ctx *gin.Context) (engagement.UserID, bool) {
	claims := getClaims(ctx)
	if claims == nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(errorCodeUnauthorized, "missing session"))
		return engagement.UserID{}, false
	}
	userID, err := engagement.NewUserID(claims.GetUserID())
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, errorResponse(errorCodeUnauthorized, "session has no user id"))
		return engagement.UserID{}, false
	}
	return userID, true
}

func (handler *httpHandler) pathUser(ctx *gin.Context) (engagement.UserID, bool) {
	userID, err := engagement.NewUserID(ctx.Param("user_id"))
	if err != nil {
		handler.respondError(ctx, err)
		return engagement.UserID{}, false
	}
	return userID, true
}

func (handler *httpHandler) handleCheckin(ctx *gin.Context) {
	userID, ok := handler.sessionUser(ctx)
	if !ok {
		return
	}
	requestCtx, cancel := handler.requestContext(ctx)
	defer cancel()
	result, err := handler.service.Checkin(requestCtx, userID)
	if err != nil {
		handler.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, checkinPayload{
		Success:      result.Success,
		PointsEarned: result.PointsEarned.Int64(),
		StreakDays:   result.StreakDays,
		WasZombie:    result.WasZombie,
		Reason:       result.Reason.String(),
	})
}

func (handler *httpHandler) handleStats(ctx *gin.Context) {
	userID, ok := handler.sessionUser(ctx)
	if !ok {
		return
	}
	handler.respondWithStats(ctx, userID)
}

func (handler *httpHandler) handleUserStats(ctx *gin.Context) {
	userID, ok := handler.pathUser(ctx)
	if !ok {
		return
	}
	handler.respondWithStats(ctx, userID)
}

func (handler *httpHandler) respondWithStats(ctx *gin.Context, userID engagement.UserID) {
	requestCtx, cancel := handler.requestContext(ctx)
	defer cancel()
	record, err := handler.service.GetStats(requestCtx, userID)
	if err != nil {
		handler.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newStatsPayload(record))
}

func (handler *httpHandler) handleCanPost(ctx *gin.Context) {
	userID, ok := handler.sessionUser(ctx)
	if !ok {
		return
	}
	handler.respondWithCanPost(ctx, userID)
}

func (handler *httpHandler) handleUserCanPost(ctx *gin.Context) {
	userID, ok := handler.pathUser(ctx)
	if !ok {
		return
	}
	handler.respondWithCanPost(ctx, userID)
}

func (handler *httpHandler) respondWithCanPost(ctx *gin.Context, userID engagement.UserID) {
	requestCtx, cancel := handler.requestContext(ctx)
	defer cancel()
	eligibility, err := handler.service.CanPost(requestCtx, userID)
	if err != nil {
		handler.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, canPostPayload{
		Allowed: eligibility.Allowed,
		Current: eligibility.Current.Int64(),
		Needed:  eligibility.Needed.Int64(),
		Reason:  eligibility.Reason,
	})
}

func (handler *httpHandler) handleHistory(ctx *gin.Context) {
	userID, ok := handler.sessionUser(ctx)
	if !ok {
		return
	}
	limit := config.DefaultHistoryLimit()
	if rawLimit := ctx.Query("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed <= 0 {
			ctx.JSON(http.StatusBadRequest, errorResponse(errorCodeInvalidLimit, "limit must be a positive integer"))
			return
		}
		limit = min(parsed, config.MaximumHistoryLimit())
	}
	requestCtx, cancel := handler.requestContext(ctx)
	defer cancel()
	entries, err := handler.service.History(requestCtx, userID, limit)
	if err != nil {
		handler.respondError(ctx, err)
		return
	}
	payload := make([]entryPayload, 0, len(entries))
	for _, entry := range entries {
		payload = append(payload, newEntryPayload(entry))
	}
	ctx.JSON(http.StatusOK, gin.H{"entries": payload})
}

func (handler *httpHandler) handleDiscounts(ctx *gin.Context) {
	userID, ok := handler.sessionUser(ctx)
	if !ok {
		return
	}
	handler.respondWithDiscounts(ctx, userID)
}

func (handler *httpHandler) handleUserDiscounts(ctx *gin.Context) {
	userID, ok := handler.pathUser(ctx)
	if !ok {
		return
	}
	handler.respondWithDiscounts(ctx, userID)
}

func (handler *httpHandler) respondWithDiscounts(ctx *gin.Context, userID engagement.UserID) {
	requestCtx, cancel := handler.requestContext(ctx)
	defer cancel()
	eligibility, err := handler.service.Eligibility(requestCtx, userID)
	if err != nil {
		handler.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"discounts": newDiscountPayloads(handler.service.Rules(), eligibility)})
}

func (handler *httpHandler) handleRedeem(ctx *gin.Context) {
	userID, ok := handler.sessionUser(ctx)
	if !ok {
		return
	}
	discountID, err := engagement.NewDiscountID(ctx.Param("discount_id"))
	if err != nil {
		handler.respondError(ctx, err)
		return
	}
	requestCtx, cancel := handler.requestContext(ctx)
	defer cancel()
	redeemed, err := handler.service.Redeem(requestCtx, userID, discountID)
	if err != nil {
		handler.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"redeemed": redeemed})
}

func (handler *httpHandler) handleAward(ctx *gin.Context) {
	var request awardRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(errorCodeInvalidPayload, "expected JSON body"))
		return
	}
	userID, err := engagement.NewUserID(request.UserID)
	if err != nil {
		handler.respondError(ctx, err)
		return
	}
	kind, err := engagement.NewActionKind(request.ActionKind)
	if err != nil {
		handler.respondError(ctx, err)
		return
	}
	var target *engagement.TargetID
	if request.TargetID != "" {
		parsed, err := engagement.NewTargetID(request.TargetID)
		if err != nil {
			handler.respondError(ctx, err)
			return
		}
		target = &parsed
	}
	handler.logger.Debug("award requested", zap.String("service", callerService(ctx)), zap.String("action_kind", kind.String()))
	requestCtx, cancel := handler.requestContext(ctx)
	defer cancel()
	result, err := handler.service.Award(requestCtx, userID, kind, target)
	if err != nil {
		handler.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, awardPayload{
		Credited: result.Credited,
		Delta:    result.Delta.Int64(),
		Reason:   result.Reason.String(),
	})
}
