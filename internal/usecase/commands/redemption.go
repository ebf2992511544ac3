package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"seat-redeem/internal/domain/user"
	"seat-redeem/internal/domain/voucher"
	"seat-redeem/internal/infra"
	"seat-redeem/internal/pkg/clock"
	"seat-redeem/internal/pkg/config"
	"seat-redeem/internal/pkg/errs"
	"seat-redeem/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	reasonVoucherNotFound   = "voucher not found"
	reasonAlreadyUsed       = "voucher already used"
	reasonInvalidEmail      = "invalid email"
	reasonResourceNotFound  = "resource not found"
	reasonResourceFull      = "resource is full"
	reasonResourceInactive  = "resource is not active"
	reasonNoResource        = "no resource available"
	reasonCredentialInvalid = "resource credential could not be decrypted"
)

type RedeemRequest struct {
	Code       string
	Email      string
	ResourceID *int64 // nil selects automatically
}

type GrantDetails struct {
	ResourceID        int64
	ResourceName      string
	ExternalAccountID string
	ExpiresAt         *time.Time
}

type RedemptionResult struct {
	Success  bool
	Message  string
	Grant    *GrantDetails
	Warranty bool
	Attempts int
}

// Validation is the outcome of a voucher check. System failures are
// reported as errors, never as an invalid Validation.
type Validation struct {
	Valid  bool
	Code   FailureCode
	Reason string
}

type RedemptionCommands interface {
	ValidateVoucher(ctx context.Context, code string) (Validation, error)
	// Redeem returns a *Failure as error when no grant was made.
	Redeem(ctx context.Context, req RedeemRequest) (*RedemptionResult, error)
	Compensate(ctx context.Context, code string, resourceID int64) error
}

type redemptionCommandsImpl struct {
	uow       shared.UnitOfWork
	decrypter CredentialDecrypter
	grants    GrantClient
	warranty  WarrantyPolicy
	events    shared.EventPublisher
	cache     shared.Cache
	clock     clock.Clock
	cfg       config.RedeemConfig
}

func NewRedemptionCommands(
	uow shared.UnitOfWork,
	decrypter CredentialDecrypter,
	grants GrantClient,
	warranty WarrantyPolicy,
	events shared.EventPublisher,
	cache shared.Cache,
	clock clock.Clock,
	cfg config.Config,
) RedemptionCommands {
	return &redemptionCommandsImpl{
		uow:       uow,
		decrypter: decrypter,
		grants:    grants,
		warranty:  warranty,
		events:    events,
		cache:     cache,
		clock:     clock,
		cfg:       cfg.Redeem,
	}
}

func (s *redemptionCommandsImpl) ValidateVoucher(ctx context.Context, code string) (Validation, error) {
	c, err := voucher.NewCode(code)
	if err != nil {
		return Validation{Code: CodeVoucherNotFound, Reason: reasonVoucherNotFound}, nil
	}

	var out Validation
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, rejection, err := s.loadRedeemableVoucher(ctx, tx, c.Value())
		if err != nil {
			return err
		}
		if rejection != nil {
			out = Validation{Code: rejection.Code, Reason: rejection.Reason}
			return nil
		}
		out = Validation{Valid: true}
		return nil
	})
	if err != nil {
		return Validation{}, errs.Wrap(err, "validate voucher")
	}
	return out, nil
}

func (s *redemptionCommandsImpl) Redeem(ctx context.Context, req RedeemRequest) (*RedemptionResult, error) {
	code, err := voucher.NewCode(req.Code)
	if err != nil {
		return nil, newFailure(CodeVoucherNotFound, reasonVoucherNotFound, err)
	}
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, newFailure(CodeInvalidEmail, reasonInvalidEmail, err)
	}

	sagaID := uuid.NewString()
	logger := slog.With("saga_id", sagaID, "code", code.Value())
	if req.ResourceID != nil {
		logger = logger.With("pinned_resource_id", *req.ResourceID)
	}

	state := attemptState{
		sagaID: sagaID,
		code:   code.Value(),
		email:  email.Value(),
		pinned: req.ResourceID,
	}

	var last *Failure
	maxAttempts := max(s.cfg.MaxAttempts, 1)
	for n := 1; n <= maxAttempts; n++ {
		if n > 1 && !s.waitBeforeRetry(ctx) {
			break
		}
		state.number = n

		out := s.attempt(ctx, logger.With("attempt", n), state)
		if out.result != nil {
			out.result.Attempts = n
			logger.InfoContext(ctx, "redemption completed", "resource_id", out.result.Grant.ResourceID, "attempts", n)
			s.publishGranted(ctx, state, out.result)
			return out.result, nil
		}

		last = out.failure
		if out.next == nil {
			break
		}
		state = *out.next
	}

	if last == nil {
		last = systemFailure(ctx.Err())
	}
	logger.WarnContext(ctx, "redemption failed", "failure_code", last.Code, "reason", last.Reason, "attempts", state.number)
	s.publishFailed(ctx, state, last)
	return nil, last
}

func (s *redemptionCommandsImpl) waitBeforeRetry(ctx context.Context) bool {
	if s.cfg.RetryDelay <= 0 {
		return ctx.Err() == nil
	}
	select {
	case <-ctx.Done():
		return false
	case <-time.After(s.cfg.RetryDelay):
		return true
	}
}

// loadRedeemableVoucher locks the voucher row and applies lazy expiry. The
// expiry write belongs to the caller's transaction, so the caller must
// commit even when it rejects.
func (s *redemptionCommandsImpl) loadRedeemableVoucher(ctx context.Context, tx shared.Tx, code string) (*voucher.Voucher, *Failure, error) {
	v, err := tx.Vouchers().FindByCodeForUpdate(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, newFailure(CodeVoucherNotFound, reasonVoucherNotFound, nil), nil
		}
		return nil, nil, err
	}

	expiredNow, err := v.CheckRedeemable(s.clock.Now())
	if err == nil {
		return v, nil, nil
	}
	if expiredNow {
		if saveErr := tx.Vouchers().Save(ctx, v); saveErr != nil {
			return nil, nil, saveErr
		}
		slog.InfoContext(ctx, "voucher expired on validation", "code", code)
	}
	return nil, voucherFailure(err), nil
}

func voucherFailure(err error) *Failure {
	switch {
	case errs.Is(err, voucher.ErrExpired):
		return newFailure(CodeVoucherExpired, voucher.ErrExpired.Error(), nil)
	case errs.Is(err, voucher.ErrAlreadyUsed):
		return newFailure(CodeVoucherAlreadyUsed, reasonAlreadyUsed, nil)
	default:
		return newFailure(CodeVoucherUnavailable, err.Error(), nil)
	}
}

func (s *redemptionCommandsImpl) publishGranted(ctx context.Context, st attemptState, r *RedemptionResult) {
	s.publish(ctx, shared.TopicRedemptionGranted, shared.RedemptionEvent{
		SagaID:            st.sagaID,
		Code:              st.code,
		Email:             st.email,
		ResourceID:        r.Grant.ResourceID,
		ExternalAccountID: r.Grant.ExternalAccountID,
		Warranty:          r.Warranty,
		Attempts:          r.Attempts,
		OccurredAt:        s.clock.Now(),
	})
}

func (s *redemptionCommandsImpl) publishFailed(ctx context.Context, st attemptState, f *Failure) {
	s.publish(ctx, shared.TopicRedemptionFailed, shared.RedemptionEvent{
		SagaID:      st.sagaID,
		Code:        st.code,
		Email:       st.email,
		FailureCode: string(f.Code),
		Reason:      f.Reason,
		Attempts:    st.number,
		OccurredAt:  s.clock.Now(),
	})
}

func (s *redemptionCommandsImpl) publish(ctx context.Context, topic string, event any) {
	payload, err := json.Marshal(event)
	if err != nil {
		slog.WarnContext(ctx, "failed to encode event", "topic", topic, "error", err)
		return
	}
	if err := s.events.Publish(context.WithoutCancel(ctx), topic, payload); err != nil {
		slog.WarnContext(ctx, "failed to publish event", "topic", topic, "error", err)
	}
}

func (s *redemptionCommandsImpl) invalidateListing(ctx context.Context) {
	if _, err := s.cache.Incr(ctx, shared.AvailableResourcesGenKey); err != nil {
		slog.DebugContext(ctx, "listing cache invalidation failed", "error", err)
	}
}
