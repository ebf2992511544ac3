package commands

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"seat-redeem/internal/domain/grant"
	"seat-redeem/internal/domain/resource"
	"seat-redeem/internal/domain/usage"
	"seat-redeem/internal/domain/voucher"
	"seat-redeem/internal/infra"
	"seat-redeem/internal/pkg/errs"
	"seat-redeem/internal/usecase/shared"
)

// attemptState is everything one attempt may depend on. Entities are always
// re-read inside the attempt's own transaction.
type attemptState struct {
	sagaID   string
	number   int
	code     string
	email    string
	pinned   *int64
	excluded []int64
}

func (st attemptState) excluding(resourceID int64) attemptState {
	next := st
	next.excluded = append(slices.Clone(st.excluded), resourceID)
	return next
}

type attemptOutcome struct {
	result  *RedemptionResult
	failure *Failure
	next    *attemptState
}

func done(r *RedemptionResult) attemptOutcome {
	return attemptOutcome{result: r}
}

func fail(f *Failure) attemptOutcome {
	return attemptOutcome{failure: f}
}

func retryWith(f *Failure, next attemptState) attemptOutcome {
	return attemptOutcome{failure: f, next: &next}
}

// reservation is the committed Phase 1 intent.
type reservation struct {
	resourceID        int64
	resourceName      string
	externalAccountID string
	expiresAt         *time.Time
	credential        []byte
	warrantyRegrant   bool
	held              voucher.Assignment
}

func (s *redemptionCommandsImpl) attempt(ctx context.Context, log *slog.Logger, st attemptState) attemptOutcome {
	log.DebugContext(ctx, "saga state", "state", "reserving")

	res, rejection, err := s.reserve(ctx, st)
	if err != nil {
		log.ErrorContext(ctx, "reserve transaction failed", "error", err)
		return retryWith(systemFailure(err), st)
	}
	if rejection != nil {
		log.InfoContext(ctx, "reservation rejected", "failure_code", rejection.Code, "reason", rejection.Reason)
		return fail(rejection)
	}

	// Phase 1 is committed. From here the saga ends in finalize or compensate
	// regardless of the caller going away.
	ctx = context.WithoutCancel(ctx)
	log = log.With("resource_id", res.resourceID)
	s.invalidateListing(ctx)

	return s.grantAndSettle(ctx, log, st, res)
}

func (s *redemptionCommandsImpl) grantAndSettle(ctx context.Context, log *slog.Logger, st attemptState, res *reservation) (out attemptOutcome) {
	defer func() {
		if p := recover(); p != nil {
			log.ErrorContext(ctx, "panic after reservation, compensating", "panic", p)
			s.compensateQuietly(ctx, log, st.code, res.held, false)
			out = retryWith(systemFailure(fmt.Errorf("panic: %v", p)), st)
		}
	}()

	secret, err := s.decrypter.DecryptCredential(res.credential)
	if err != nil {
		log.ErrorContext(ctx, "credential decryption failed", "error", err)
		return s.evict(ctx, log, st, res, string(CodeCredentialInvalid), newFailure(CodeCredentialInvalid, reasonCredentialInvalid, err))
	}

	log.DebugContext(ctx, "saga state", "state", "granting")
	result := s.grants.SendGrant(ctx, secret, res.externalAccountID, st.email)

	switch {
	case result.Success:
		return s.finalize(ctx, log, st, res)
	case result.IsFatal():
		log.WarnContext(ctx, "grant failed fatally", "error_code", result.ErrorCode, "detail", result.Detail)
		return s.evict(ctx, log, st, res, result.ErrorCode, newFailure(CodeGrantFatal, grantReason(result), nil))
	default:
		log.WarnContext(ctx, "grant failed, retrying", "error_code", result.ErrorCode, "detail", result.Detail)
		s.compensateQuietly(ctx, log, st.code, res.held, false)
		return retryWith(newFailure(CodeGrantRetryable, grantReason(result), nil), st)
	}
}

// evict reverses the reservation and takes the resource out of rotation.
// Pinned requests stop here; automatic ones move on to another resource.
func (s *redemptionCommandsImpl) evict(ctx context.Context, log *slog.Logger, st attemptState, res *reservation, cause string, f *Failure) attemptOutcome {
	s.compensateQuietly(ctx, log, st.code, res.held, true)
	s.publish(ctx, shared.TopicResourceDisabled, shared.ResourceDisabledEvent{
		SagaID:     st.sagaID,
		ResourceID: res.resourceID,
		ErrorCode:  cause,
		OccurredAt: s.clock.Now(),
	})

	if st.pinned != nil {
		return fail(f)
	}
	return retryWith(f, st.excluding(res.resourceID))
}

func (s *redemptionCommandsImpl) finalize(ctx context.Context, log *slog.Logger, st attemptState, res *reservation) attemptOutcome {
	log.DebugContext(ctx, "saga state", "state", "finalizing")

	rec := usage.NewRecord(st.email, st.code, res.resourceID, res.externalAccountID, res.warrantyRegrant, s.clock.Now())
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.UsageRecords().Insert(ctx, rec)
		return err
	})
	if err != nil {
		// The external grant already happened; the reservation stays so the
		// seat is not handed out twice. Detectable as a voucher without record.
		log.ErrorContext(ctx, "usage record insert failed after successful grant",
			"email", st.email,
			"error", err,
			"stack", errs.ExtractStackLines(err, 8))
		return fail(systemFailure(err))
	}

	return done(&RedemptionResult{
		Success:  true,
		Message:  fmt.Sprintf("joined %s", res.resourceName),
		Warranty: res.warrantyRegrant,
		Grant: &GrantDetails{
			ResourceID:        res.resourceID,
			ResourceName:      res.resourceName,
			ExternalAccountID: res.externalAccountID,
			ExpiresAt:         res.expiresAt,
		},
	})
}

// reserve runs Phase 1. Rejections commit too, which keeps lazy expiry writes.
func (s *redemptionCommandsImpl) reserve(ctx context.Context, st attemptState) (*reservation, *Failure, error) {
	var (
		res       *reservation
		rejection *Failure
	)

	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// fn may run again on serialization failure
		res, rejection = nil, nil

		v, f, err := s.loadRedeemableVoucher(ctx, tx, st.code)
		if err != nil {
			return err
		}
		if f != nil {
			rejection = f
			return nil
		}

		r, f, err := s.lockResource(ctx, tx, st)
		if err != nil {
			return err
		}
		if f != nil {
			rejection = f
			return nil
		}

		regrant := false
		if !v.IsUnused() {
			if !v.IsWarrantyReusable() {
				rejection = newFailure(CodeVoucherAlreadyUsed, reasonAlreadyUsed, nil)
				return nil
			}
			decision, err := s.warranty.ValidateWarrantyReuse(ctx, tx, st.code, st.email)
			if err != nil {
				return err
			}
			if !decision.CanReuse {
				rejection = newFailure(CodeWarrantyRejected, decision.Reason, nil)
				return nil
			}
			regrant = true
		}

		if err := r.AddMember(); err != nil {
			rejection = resourceFailure(err)
			return nil
		}
		held := voucher.Assignment{Email: st.email, ResourceID: r.ID(), At: s.clock.Now()}
		v.Assign(held)

		if err := tx.Vouchers().Save(ctx, v); err != nil {
			return err
		}
		if err := tx.Resources().Save(ctx, r); err != nil {
			return err
		}

		res = &reservation{
			resourceID:        r.ID(),
			resourceName:      r.Name(),
			externalAccountID: r.ExternalAccountID(),
			expiresAt:         r.ExpiresAt(),
			credential:        r.CredentialEncrypted(),
			warrantyRegrant:   regrant,
			held:              held,
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return res, rejection, nil
}

// lockResource returns a row-locked, available resource. Automatic selection
// re-checks every candidate under lock and skips the ones that lost a race.
func (s *redemptionCommandsImpl) lockResource(ctx context.Context, tx shared.Tx, st attemptState) (*resource.Resource, *Failure, error) {
	if st.pinned != nil {
		r, err := tx.Resources().LockByID(ctx, *st.pinned)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, newFailure(CodeResourceNotFound, reasonResourceNotFound, nil), nil
			}
			return nil, nil, err
		}
		if err := r.CheckAvailable(); err != nil {
			return nil, resourceFailure(err), nil
		}
		return r, nil, nil
	}

	excluded := slices.Clone(st.excluded)
	candidates := max(s.cfg.MaxSelectionCandidates, 1)
	for i := 0; i < candidates; i++ {
		id, err := tx.Resources().SelectAvailableID(ctx, excluded)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				break
			}
			return nil, nil, err
		}

		r, err := tx.Resources().LockByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				excluded = append(excluded, id)
				continue
			}
			return nil, nil, err
		}
		if r.CheckAvailable() == nil {
			return r, nil, nil
		}
		excluded = append(excluded, id)
	}
	return nil, newFailure(CodeNoResourceAvailable, reasonNoResource, nil), nil
}

func resourceFailure(err error) *Failure {
	switch {
	case errs.Is(err, resource.ErrResourceInactive):
		return newFailure(CodeResourceInactive, reasonResourceInactive, nil)
	default:
		return newFailure(CodeResourceFull, reasonResourceFull, nil)
	}
}

func grantReason(r grant.Result) string {
	if r.Detail != "" {
		return fmt.Sprintf("grant failed: %s (%s)", r.ErrorCode, r.Detail)
	}
	return "grant failed: " + r.ErrorCode
}
