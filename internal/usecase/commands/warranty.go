package commands

import (
	"context"
	"time"

	"seat-redeem/internal/domain/resource"
	"seat-redeem/internal/infra"
	"seat-redeem/internal/pkg/clock"
	"seat-redeem/internal/pkg/config"
	"seat-redeem/internal/pkg/errs"
	"seat-redeem/internal/usecase/shared"
)

const (
	reasonNoWarranty        = "voucher has no warranty"
	reasonWarrantyEnded     = "warranty period has ended"
	reasonNoPriorGrant      = "no previous grant to replace"
	reasonRegrantLimit      = "warranty re-grant limit reached"
	reasonPriorSeatInTenure = "previous seat is still in service"
)

type warrantyPolicy struct {
	clock       clock.Clock
	maxRegrants int
}

func NewWarrantyPolicy(clock clock.Clock, cfg config.Config) WarrantyPolicy {
	return &warrantyPolicy{
		clock:       clock,
		maxRegrants: cfg.Redeem.WarrantyMaxRegrants,
	}
}

// ValidateWarrantyReuse approves a re-grant only when the previous seat is
// gone (disabled, expired or deleted) and the warranty still has budget.
func (p *warrantyPolicy) ValidateWarrantyReuse(ctx context.Context, tx shared.Tx, code, email string) (WarrantyDecision, error) {
	now := p.clock.Now()

	v, err := tx.Vouchers().FindByCodeForUpdate(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return reject(reasonVoucherNotFound), nil
		}
		return WarrantyDecision{}, errs.Wrap(err, "warranty: load voucher")
	}
	if !v.HasWarranty() {
		return reject(reasonNoWarranty), nil
	}
	if !v.IsWarrantyReusable() {
		return reject(reasonAlreadyUsed), nil
	}
	if !v.WarrantyWindowOpen(now) {
		return reject(reasonWarrantyEnded), nil
	}

	last, err := tx.UsageRecords().LatestByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return reject(reasonNoPriorGrant), nil
		}
		return WarrantyDecision{}, errs.Wrap(err, "warranty: load latest usage record")
	}

	regrants, err := tx.UsageRecords().CountWarrantyRedemptions(ctx, code)
	if err != nil {
		return WarrantyDecision{}, errs.Wrap(err, "warranty: count re-grants")
	}
	if p.maxRegrants > 0 && regrants >= int64(p.maxRegrants) {
		return reject(reasonRegrantLimit), nil
	}

	prior, err := tx.Resources().FindByID(ctx, last.ResourceID)
	switch {
	case err == nil:
		if inService(prior, now) {
			return reject(reasonPriorSeatInTenure), nil
		}
	case infra.IsKind(err, infra.KindNotFound):
		// the previous pool was removed from the directory
	default:
		return WarrantyDecision{}, errs.Wrap(err, "warranty: load previous resource")
	}

	return WarrantyDecision{CanReuse: true}, nil
}

func inService(r *resource.Resource, now time.Time) bool {
	if r.Status() == resource.StatusDisabled {
		return false
	}
	exp := r.ExpiresAt()
	return exp == nil || exp.After(now)
}

func reject(reason string) WarrantyDecision {
	return WarrantyDecision{CanReuse: false, Reason: reason}
}
