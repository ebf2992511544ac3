package components

import (
	"seat-redeem/internal/infra/readstore"
	sqlc "seat-redeem/internal/infra/sqlc/generated"
	"seat-redeem/internal/infra/uow"
	"seat-redeem/internal/usecase/queries"
	"seat-redeem/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Voucher
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.VoucherReadQueries)),
		),
		fx.Annotate(
			readstore.NewVoucherReadStore,
			fx.As(new(queries.VoucherReadStore)),
		),
		// Resource
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ResourceReadQueries)),
		),
		fx.Annotate(
			readstore.NewResourceReadStore,
			fx.As(new(queries.ResourceReadStore)),
		),
		// UsageRecord
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UsageRecordReadQueries)),
		),
		fx.Annotate(
			readstore.NewUsageRecordReadStore,
			fx.As(new(queries.UsageRecordReadStore)),
		),
	),
)

// Write-side repositories are bound per transaction inside the UnitOfWork.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
