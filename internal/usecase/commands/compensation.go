package commands

import (
	"context"
	"log/slog"

	"seat-redeem/internal/domain/usage"
	"seat-redeem/internal/domain/voucher"
	"seat-redeem/internal/infra"
	"seat-redeem/internal/pkg/errs"
	"seat-redeem/internal/usecase/shared"
)

// Compensate reverses a committed reservation of code on resourceID.
// Calling it for a reservation that is already reverted, or whose rows are
// gone, is a no-op.
func (s *redemptionCommandsImpl) Compensate(ctx context.Context, code string, resourceID int64) error {
	return s.compensate(ctx, code, resourceID, nil, false)
}

// compensateQuietly reverses the reservation this saga made. held is the
// assignment written in Phase 1, so a voucher changed since is left alone.
func (s *redemptionCommandsImpl) compensateQuietly(ctx context.Context, log *slog.Logger, code string, held voucher.Assignment, disable bool) {
	log.DebugContext(ctx, "saga state", "state", "compensating", "disable_resource", disable)
	if err := s.compensate(ctx, code, held.ResourceID, &held, disable); err != nil {
		log.ErrorContext(ctx, "compensation failed", "disable_resource", disable, "error", err)
	}
	s.invalidateListing(ctx)
}

func (s *redemptionCommandsImpl) compensate(ctx context.Context, code string, resourceID int64, held *voucher.Assignment, disable bool) error {
	if shared.InTx(ctx) {
		return shared.ErrNestedTransaction
	}

	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// voucher before resource, same order as reserve
		v, err := tx.Vouchers().FindByCodeForUpdate(ctx, code)
		if err != nil {
			if !infra.IsKind(err, infra.KindNotFound) {
				return err
			}
			v = nil
		}

		r, err := tx.Resources().LockByID(ctx, resourceID)
		if err != nil {
			if !infra.IsKind(err, infra.KindNotFound) {
				return err
			}
			r = nil
		}

		var holdsSeat bool
		var last *usage.Record
		if v != nil {
			holdsSeat, last, err = s.holdsReservation(ctx, tx, v, resourceID, held)
			if err != nil {
				return err
			}
		} else {
			// a deleted voucher leaves only the saga's own word for the seat
			holdsSeat = held != nil
		}

		if r != nil && (holdsSeat || disable) {
			if holdsSeat {
				r.RemoveMember()
			}
			if disable {
				r.Disable()
			}
			if err := tx.Resources().Save(ctx, r); err != nil {
				return err
			}
		}

		if v != nil && holdsSeat {
			revertVoucher(v, last)
			if err := tx.Vouchers().Save(ctx, v); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errs.Wrap(err, "compensate reservation")
	}
	return nil
}

// holdsReservation reports whether v still carries an unfinished reservation
// on resourceID, and returns the latest usage record of a warranty voucher
// for the restore. With held the saga names its own reservation. Without it
// a warranty voucher already restored to its latest record counts as a
// completed grant, even when that record points at the same resource.
func (s *redemptionCommandsImpl) holdsReservation(ctx context.Context, tx shared.Tx, v *voucher.Voucher, resourceID int64, held *voucher.Assignment) (bool, *usage.Record, error) {
	if held != nil {
		if !v.HeldBy(*held) {
			return false, nil, nil
		}
	} else {
		id := v.UsedResourceID()
		if id == nil || *id != resourceID {
			return false, nil, nil
		}
		switch v.Status() {
		case voucher.StatusUsed, voucher.StatusWarrantyActive, voucher.StatusReserved:
		default:
			return false, nil, nil
		}
	}
	if !v.HasWarranty() {
		return true, nil, nil
	}

	last, err := tx.UsageRecords().LatestByCode(ctx, v.Code().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return true, nil, nil
		}
		return false, nil, err
	}
	if held == nil && v.HeldBy(recordAssignment(last)) {
		return false, nil, nil
	}
	return true, last, nil
}

// revertVoucher puts a warranty voucher back on its last successful grant,
// and anything else back to unused.
func revertVoucher(v *voucher.Voucher, last *usage.Record) {
	if v.HasWarranty() && last != nil {
		v.RestoreTo(recordAssignment(last))
		return
	}
	v.Revert()
}

func recordAssignment(rec *usage.Record) voucher.Assignment {
	return voucher.Assignment{Email: rec.Email, ResourceID: rec.ResourceID, At: rec.RedeemedAt}
}
