package converter

import (
	"seat-redeem/internal/domain/resource"
	sqlc "seat-redeem/internal/infra/sqlc/generated"
	"seat-redeem/internal/pkg/pgconv"
)

func ResourceFromRow(row sqlc.Resources) (*resource.Resource, error) {
	return resource.Reconstruct(resource.ReconstructParams{
		ID:                  row.ID,
		Name:                row.Name,
		Status:              row.Status,
		CurrentMembers:      int(row.CurrentMembers),
		MaxMembers:          int(row.MaxMembers),
		ExpiresAt:           pgconv.TimePtrFromPgtype(row.ExpiresAt),
		CredentialEncrypted: row.CredentialEncrypted,
		ExternalAccountID:   row.ExternalAccountID,
		SubscriptionPlan:    pgconv.StringPtrFromPgtype(row.SubscriptionPlan),
	})
}

func ResourceToUpdateParams(r *resource.Resource) sqlc.UpdateResourceStateParams {
	return sqlc.UpdateResourceStateParams{
		ID:             r.ID(),
		Status:         r.Status().String(),
		CurrentMembers: int32(r.CurrentMembers()), // #nosec G115 -- never exceeds max_members
	}
}
