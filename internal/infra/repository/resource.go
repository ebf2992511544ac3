package repository

import (
	"context"

	"seat-redeem/internal/domain/resource"
	"seat-redeem/internal/infra"
	"seat-redeem/internal/infra/repository/converter"
	sqlc "seat-redeem/internal/infra/sqlc/generated"
)

type ResourceWriteQueries interface {
	SelectAvailableResourceID(ctx context.Context, db sqlc.DBTX, excludedIds []int64) (int64, error)
	LockResourceByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Resources, error)
	GetResourceByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Resources, error)
	UpdateResourceState(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateResourceStateParams) (int64, error)
}

type ResourceRepository struct {
	queries ResourceWriteQueries
	db      sqlc.DBTX
}

func NewResourceRepository(queries ResourceWriteQueries, db sqlc.DBTX) *ResourceRepository {
	return &ResourceRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ResourceRepository) SelectAvailableID(ctx context.Context, excluded []int64) (int64, error) {
	// a nil slice binds as NULL and "id = ANY(NULL)" excludes every row
	if excluded == nil {
		excluded = []int64{}
	}

	id, err := r.queries.SelectAvailableResourceID(ctx, r.db, excluded)
	if err != nil {
		if infra.IsNoRows(err) {
			return 0, infra.WrapRepoErr("no resource available", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to select resource", err)
	}
	return id, nil
}

func (r *ResourceRepository) LockByID(ctx context.Context, id int64) (*resource.Resource, error) {
	row, err := r.queries.LockResourceByID(ctx, r.db, id)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock resource", err)
	}
	return toResource(row)
}

func (r *ResourceRepository) FindByID(ctx context.Context, id int64) (*resource.Resource, error) {
	row, err := r.queries.GetResourceByID(ctx, r.db, id)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find resource", err)
	}
	return toResource(row)
}

func (r *ResourceRepository) Save(ctx context.Context, res *resource.Resource) error {
	n, err := r.queries.UpdateResourceState(ctx, r.db, converter.ResourceToUpdateParams(res))
	if err != nil {
		return infra.WrapRepoErr("failed to save resource", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("resource vanished during update", nil, infra.KindNotFound)
	}
	return nil
}

func toResource(row sqlc.Resources) (*resource.Resource, error) {
	res, err := converter.ResourceFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt resource row", err, infra.KindDBFailure)
	}
	return res, nil
}
