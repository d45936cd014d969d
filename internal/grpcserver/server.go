package grpcserver

import (
	"context"
	"errors"

	"github.com/MarkoPoloResearchLab/engagement/api/engagement/v1"
	"github.com/MarkoPoloResearchLab/engagement/pkg/engagement"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	errorInvalidUserID      = "invalid_user_id"
	errorInvalidActionKind  = "invalid_action_kind"
	errorUnknownActionKind  = "unknown_action_kind"
	errorInvalidTargetID    = "invalid_target_id"
	errorMissingTargetID    = "missing_target_id"
	errorInvalidDiscountID  = "invalid_discount_id"
	errorInvalidListLimit   = "invalid_list_limit"
	errorUnknownDiscount    = "unknown_discount"
	errorDiscountIneligible = "discount_not_eligible"
	errorInvariantViolation = "invariant_violation"
	errorServerUnavailable  = "server_error"

	defaultListEntriesLimit = 20
	maxListEntriesLimit     = 200
)

// EngagementService is the subset of engagement.Service served over gRPC.
type EngagementService interface {
	Award(ctx context.Context, userID engagement.UserID, kind engagement.ActionKind, target *engagement.TargetID) (engagement.AwardResult, error)
	Checkin(ctx context.Context, userID engagement.UserID) (engagement.CheckinResult, error)
	GetStats(ctx context.Context, userID engagement.UserID) (engagement.AggregateRecord, error)
	CanPost(ctx context.Context, userID engagement.UserID) (engagement.PostEligibility, error)
	History(ctx context.Context, userID engagement.UserID, limit int) ([]engagement.LedgerEntry, error)
	Eligibility(ctx context.Context, userID engagement.UserID) (map[engagement.DiscountID]bool, error)
	Redeem(ctx context.Context, userID engagement.UserID, discountID engagement.DiscountID) (bool, error)
	Rules() engagement.RuleTable
}

// EngagementServiceServer exposes the engagement service over gRPC.
type EngagementServiceServer struct {
	engagementv1.UnimplementedEngagementServiceServer
	engagementService EngagementService
}

var _ engagementv1.EngagementServiceServer = (*EngagementServiceServer)(nil)

// NewEngagementServiceServer constructs a gRPC server for the engagement service.
func NewEngagementServiceServer(engagementService EngagementService) *EngagementServiceServer {
	return &EngagementServiceServer{engagementService: engagementService}
}

func (service *EngagementServiceServer) Award(ctx context.Context, request *engagementv1.AwardRequest) (*engagementv1.AwardResponse, error) {
	userID, err := engagement.NewUserID(request.GetUserId())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	kind, err := engagement.NewActionKind(request.GetActionKind())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	var target *engagement.TargetID
	if request.GetTargetId() != "" {
		parsed, err := engagement.NewTargetID(request.GetTargetId())
		if err != nil {
			return nil, mapToGRPCError(err)
		}
		target = &parsed
	}
	result, operationError := service.engagementService.Award(ctx, userID, kind, target)
	if operationError != nil {
		return nil, mapToGRPCError(operationError)
	}
	return &engagementv1.AwardResponse{
		Credited: result.Credited,
		Delta:    result.Delta.Int64(),
		Reason:   result.Reason.String(),
	}, nil
}

func (service *EngagementServiceServer) Checkin(ctx context.Context, request *engagementv1.UserRequest) (*engagementv1.CheckinResponse, error) {
	userID, err := engagement.NewUserID(request.GetUserId())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	result, operationError := service.engagementService.Checkin(ctx, userID)
	if operationError != nil {
		return nil, mapToGRPCError(operationError)
	}
	return &engagementv1.CheckinResponse{
		Success:      result.Success,
		PointsEarned: result.PointsEarned.Int64(),
		StreakDays:   result.StreakDays,
		WasZombie:    result.WasZombie,
		Reason:       result.Reason.String(),
	}, nil
}

func (service *EngagementServiceServer) GetStats(ctx context.Context, request *engagementv1.UserRequest) (*engagementv1.StatsResponse, error) {
	userID, err := engagement.NewUserID(request.GetUserId())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	record, operationError := service.engagementService.GetStats(ctx, userID)
	if operationError != nil {
		return nil, mapToGRPCError(operationError)
	}
	redeemed := make([]string, 0, len(record.RedeemedDiscounts))
	for _, discountID := range record.RedeemedDiscounts.Sorted() {
		redeemed = append(redeemed, discountID.String())
	}
	return &engagementv1.StatsResponse{
		UserId:            record.UserID.String(),
		TotalEarned:       record.TotalEarned.Int64(),
		AvailablePoints:   record.AvailablePoints.Int64(),
		CanPost:           record.CanPost,
		StreakDays:        record.StreakDays,
		LastCheckinDate:   record.LastCheckinDate.String(),
		LastActiveDate:    record.LastActiveDate.String(),
		IsFrozen:          record.IsFrozen,
		RedeemedDiscounts: redeemed,
	}, nil
}

func (service *EngagementServiceServer) CanPost(ctx context.Context, request *engagementv1.UserRequest) (*engagementv1.CanPostResponse, error) {
	userID, err := engagement.NewUserID(request.GetUserId())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	eligibility, operationError := service.engagementService.CanPost(ctx, userID)
	if operationError != nil {
		return nil, mapToGRPCError(operationError)
	}
	return &engagementv1.CanPostResponse{
		Allowed: eligibility.Allowed,
		Current: eligibility.Current.Int64(),
		Needed:  eligibility.Needed.Int64(),
		Reason:  eligibility.Reason,
	}, nil
}

func (service *EngagementServiceServer) History(ctx context.Context, request *engagementv1.HistoryRequest) (*engagementv1.HistoryResponse, error) {
	userID, err := engagement.NewUserID(request.GetUserId())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	limit := int(request.GetLimit())
	switch {
	case limit < 0:
		return nil, status.Error(codes.InvalidArgument, errorInvalidListLimit)
	case limit == 0:
		limit = defaultListEntriesLimit
	case limit > maxListEntriesLimit:
		limit = maxListEntriesLimit
	}
	entries, operationError := service.engagementService.History(ctx, userID, limit)
	if operationError != nil {
		return nil, mapToGRPCError(operationError)
	}
	response := &engagementv1.HistoryResponse{Entries: make([]*engagementv1.LedgerEntry, 0, len(entries))}
	for _, entry := range entries {
		line := &engagementv1.LedgerEntry{
			EntryId:        entry.EntryID(),
			ActionKind:     entry.ActionKind().String(),
			Delta:          entry.Delta().Int64(),
			CreatedUnixUtc: entry.CreatedUnixUTC(),
		}
		if target, ok := entry.TargetID(); ok {
			line.TargetId = target.String()
		}
		response.Entries = append(response.Entries, line)
	}
	return response, nil
}

func (service *EngagementServiceServer) Eligibility(ctx context.Context, request *engagementv1.UserRequest) (*engagementv1.EligibilityResponse, error) {
	userID, err := engagement.NewUserID(request.GetUserId())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	eligibility, operationError := service.engagementService.Eligibility(ctx, userID)
	if operationError != nil {
		return nil, mapToGRPCError(operationError)
	}
	discounts := service.engagementService.Rules().Discounts()
	response := &engagementv1.EligibilityResponse{Discounts: make([]*engagementv1.Discount, 0, len(discounts))}
	for _, discount := range discounts {
		response.Discounts = append(response.Discounts, &engagementv1.Discount{
			DiscountId: discount.ID.String(),
			Threshold:  discount.Threshold.Int64(),
			Eligible:   eligibility[discount.ID],
		})
	}
	return response, nil
}

func (service *EngagementServiceServer) Redeem(ctx context.Context, request *engagementv1.RedeemRequest) (*engagementv1.RedeemResponse, error) {
	userID, err := engagement.NewUserID(request.GetUserId())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	discountID, err := engagement.NewDiscountID(request.GetDiscountId())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	redeemed, operationError := service.engagementService.Redeem(ctx, userID, discountID)
	if operationError != nil {
		return nil, mapToGRPCError(operationError)
	}
	return &engagementv1.RedeemResponse{Redeemed: redeemed}, nil
}

func mapToGRPCError(source error) error {
	if errors.Is(source, engagement.ErrInvalidUserID) {
		return status.Error(codes.InvalidArgument, errorInvalidUserID)
	}
	if errors.Is(source, engagement.ErrInvalidActionKind) {
		return status.Error(codes.InvalidArgument, errorInvalidActionKind)
	}
	if errors.Is(source, engagement.ErrUnknownActionKind) {
		return status.Error(codes.InvalidArgument, errorUnknownActionKind)
	}
	if errors.Is(source, engagement.ErrInvalidTargetID) {
		return status.Error(codes.InvalidArgument, errorInvalidTargetID)
	}
	if errors.Is(source, engagement.ErrMissingTargetID) {
		return status.Error(codes.InvalidArgument, errorMissingTargetID)
	}
	if errors.Is(source, engagement.ErrInvalidDiscountID) {
		return status.Error(codes.InvalidArgument, errorInvalidDiscountID)
	}
	if errors.Is(source, engagement.ErrInvalidLimit) {
		return status.Error(codes.InvalidArgument, errorInvalidListLimit)
	}
	if errors.Is(source, engagement.ErrUnknownDiscount) {
		return status.Error(codes.NotFound, errorUnknownDiscount)
	}
	if errors.Is(source, engagement.ErrDiscountNotEligible) {
		return status.Error(codes.FailedPrecondition, errorDiscountIneligible)
	}
	if errors.Is(source, engagement.ErrInvariantViolation) {
		return status.Error(codes.Internal, errorInvariantViolation)
	}
	if errors.Is(source, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, errorServerUnavailable)
	}
	return status.Error(codes.Unavailable, errorServerUnavailable)
}
