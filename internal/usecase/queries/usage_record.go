package queries

import (
	"context"
	"strings"
)

type UsageRecordReadStore interface {
	List(ctx context.Context, filters UsageRecordFilters, page Page) ([]*UsageRecordView, error)
}

type UsageRecordQueries interface {
	List(ctx context.Context, filters UsageRecordFilters, page Page) ([]*UsageRecordView, error)
}

type usageRecordQueriesImpl struct {
	readStore UsageRecordReadStore
}

func NewUsageRecordQueries(readStore UsageRecordReadStore) UsageRecordQueries {
	return &usageRecordQueriesImpl{
		readStore: readStore,
	}
}

// List filters by email/code substring (case-insensitive) and exact resource id, newest first.
func (q *usageRecordQueriesImpl) List(ctx context.Context, filters UsageRecordFilters, page Page) ([]*UsageRecordView, error) {
	filters.Email = blankToNil(filters.Email)
	filters.Code = blankToNil(filters.Code)
	return q.readStore.List(ctx, filters, page.Normalize())
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
