package repository

import (
	"context"

	"seat-redeem/internal/domain/usage"
	"seat-redeem/internal/infra"
	"seat-redeem/internal/infra/repository/converter"
	sqlc "seat-redeem/internal/infra/sqlc/generated"
)

type UsageRecordWriteQueries interface {
	CreateUsageRecord(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUsageRecordParams) (int64, error)
	GetLatestUsageRecordByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.UsageRecords, error)
	CountWarrantyRedemptionsByCode(ctx context.Context, db sqlc.DBTX, code string) (int64, error)
}

type UsageRecordRepository struct {
	queries UsageRecordWriteQueries
	db      sqlc.DBTX
}

func NewUsageRecordRepository(queries UsageRecordWriteQueries, db sqlc.DBTX) *UsageRecordRepository {
	return &UsageRecordRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UsageRecordRepository) Insert(ctx context.Context, rec *usage.Record) (int64, error) {
	id, err := r.queries.CreateUsageRecord(ctx, r.db, converter.UsageRecordToCreateParams(rec))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert usage record", err)
	}
	rec.ID = id
	return id, nil
}

func (r *UsageRecordRepository) LatestByCode(ctx context.Context, code string) (*usage.Record, error) {
	row, err := r.queries.GetLatestUsageRecordByCode(ctx, r.db, code)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("usage record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find usage record", err)
	}
	return converter.UsageRecordFromRow(row), nil
}

func (r *UsageRecordRepository) CountWarrantyRedemptions(ctx context.Context, code string) (int64, error) {
	n, err := r.queries.CountWarrantyRedemptionsByCode(ctx, r.db, code)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count warranty redemptions", err)
	}
	return n, nil
}
