package commands

import (
	"context"
	"log/slog"
	"time"

	"seat-redeem/internal/domain/voucher"
	"seat-redeem/internal/pkg/clock"
	"seat-redeem/internal/pkg/errs"
	"seat-redeem/internal/usecase/shared"
)

var (
	ErrVoucherNotFound         = errs.New("voucher not found")
	ErrVoucherCodeTaken        = errs.New("voucher code already exists")
	ErrInvalidVoucherRequest   = errs.New("invalid voucher request")
	ErrBatchSizeOutOfRange     = errs.New("batch size out of range")
	ErrCodeGenerationExhausted = errs.New("could not generate a unique voucher code")
)

const (
	MinBatchSize = 1
	MaxBatchSize = 1000

	maxGenerationAttempts = 10
)

type GenerateVoucherParams struct {
	Code         *string // nil generates a random code
	ExpiryDays   int
	WarrantyDays int
}

type GeneratedVoucher struct {
	Code         string
	ExpiresAt    *time.Time
	HasWarranty  bool
	WarrantyDays int
	CreatedAt    time.Time
}

type VoucherCommands interface {
	Generate(ctx context.Context, params GenerateVoucherParams) (*GeneratedVoucher, error)
	GenerateBatch(ctx context.Context, count int, expiryDays, warrantyDays int) ([]GeneratedVoucher, error)
	Delete(ctx context.Context, code string) error
}

type voucherCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewVoucherCommands(uow shared.UnitOfWork, clock clock.Clock) VoucherCommands {
	return &voucherCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

func (c *voucherCommandsImpl) Generate(ctx context.Context, params GenerateVoucherParams) (*GeneratedVoucher, error) {
	var out *GeneratedVoucher
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		if params.Code != nil {
			out, err = c.createCustom(ctx, tx, *params.Code, params.ExpiryDays, params.WarrantyDays)
		} else {
			out, err = c.createRandom(ctx, tx, params.ExpiryDays, params.WarrantyDays)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "voucher generated", "code", out.Code, "warranty_days", out.WarrantyDays)
	return out, nil
}

func (c *voucherCommandsImpl) GenerateBatch(ctx context.Context, count int, expiryDays, warrantyDays int) ([]GeneratedVoucher, error) {
	if count < MinBatchSize || count > MaxBatchSize {
		return nil, ErrBatchSizeOutOfRange
	}

	var out []GeneratedVoucher
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		out = make([]GeneratedVoucher, 0, count)
		for i := 0; i < count; i++ {
			v, err := c.createRandom(ctx, tx, expiryDays, warrantyDays)
			if err != nil {
				return err
			}
			out = append(out, *v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "voucher batch generated", "count", len(out))
	return out, nil
}

func (c *voucherCommandsImpl) Delete(ctx context.Context, code string) error {
	vc, err := voucher.NewCode(code)
	if err != nil {
		return ErrVoucherNotFound
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		deleted, err := tx.Vouchers().Delete(ctx, vc.Value())
		if err != nil {
			return err
		}
		if !deleted {
			return ErrVoucherNotFound
		}
		return nil
	})
}

func (c *voucherCommandsImpl) createCustom(ctx context.Context, tx shared.Tx, raw string, expiryDays, warrantyDays int) (*GeneratedVoucher, error) {
	code, err := voucher.NewCode(raw)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidVoucherRequest)
	}
	v, err := voucher.New(code, expiryDays, warrantyDays, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidVoucherRequest)
	}

	created, err := tx.Vouchers().Create(ctx, v)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, ErrVoucherCodeTaken
	}
	return toGenerated(v), nil
}

func (c *voucherCommandsImpl) createRandom(ctx context.Context, tx shared.Tx, expiryDays, warrantyDays int) (*GeneratedVoucher, error) {
	for attempt := 0; attempt < maxGenerationAttempts; attempt++ {
		code, err := voucher.GenerateCode()
		if err != nil {
			return nil, err
		}
		v, err := voucher.New(code, expiryDays, warrantyDays, c.clock.Now())
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidVoucherRequest)
		}

		created, err := tx.Vouchers().Create(ctx, v)
		if err != nil {
			return nil, err
		}
		if created {
			return toGenerated(v), nil
		}
	}
	return nil, ErrCodeGenerationExhausted
}

func toGenerated(v *voucher.Voucher) *GeneratedVoucher {
	return &GeneratedVoucher{
		Code:         v.Code().Value(),
		ExpiresAt:    v.ExpiresAt(),
		HasWarranty:  v.HasWarranty(),
		WarrantyDays: v.WarrantyDays(),
		CreatedAt:    v.CreatedAt(),
	}
}
