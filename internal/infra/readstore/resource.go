package readstore

import (
	"context"

	"seat-redeem/internal/infra"
	sqlc "seat-redeem/internal/infra/sqlc/generated"
	"seat-redeem/internal/pkg/pgconv"
	"seat-redeem/internal/usecase/queries"
)

type ResourceReadQueries interface {
	ListAvailableResources(ctx context.Context, db sqlc.DBTX) ([]sqlc.Resources, error)
	ListResources(ctx context.Context, db sqlc.DBTX) ([]sqlc.Resources, error)
}

type ResourceReadStore struct {
	queries ResourceReadQueries
	db      sqlc.DBTX
}

func NewResourceReadStore(queries ResourceReadQueries, db sqlc.DBTX) *ResourceReadStore {
	return &ResourceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ResourceReadStore) ListAvailable(ctx context.Context) ([]*queries.AvailableResourceView, error) {
	rows, err := r.queries.ListAvailableResources(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available resources", err)
	}

	views := make([]*queries.AvailableResourceView, len(rows))
	for i, row := range rows {
		views[i] = &queries.AvailableResourceView{
			ID:               row.ID,
			Name:             row.Name,
			CurrentMembers:   row.CurrentMembers,
			MaxMembers:       row.MaxMembers,
			ExpiresAt:        pgconv.TimePtrFromPgtype(row.ExpiresAt),
			SubscriptionPlan: pgconv.StringPtrFromPgtype(row.SubscriptionPlan),
		}
	}
	return views, nil
}

func (r *ResourceReadStore) ListAll(ctx context.Context) ([]*queries.ResourceView, error) {
	rows, err := r.queries.ListResources(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list resources", err)
	}

	views := make([]*queries.ResourceView, len(rows))
	for i, row := range rows {
		views[i] = &queries.ResourceView{
			ID:                row.ID,
			Name:              row.Name,
			Status:            row.Status,
			CurrentMembers:    row.CurrentMembers,
			MaxMembers:        row.MaxMembers,
			ExpiresAt:         pgconv.TimePtrFromPgtype(row.ExpiresAt),
			ExternalAccountID: row.ExternalAccountID,
			SubscriptionPlan:  pgconv.StringPtrFromPgtype(row.SubscriptionPlan),
			CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:         pgconv.TimeFromPgtype(row.UpdatedAt),
		}
	}
	return views, nil
}
