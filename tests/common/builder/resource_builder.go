//go:build unit || e2e

package builder

import (
	"time"

	sqlc "seat-redeem/internal/infra/sqlc/generated"
	"seat-redeem/internal/pkg/pgconv"
)

type ResourceBuilder struct {
	Name                string
	Status              string
	CurrentMembers      int32
	MaxMembers          int32
	ExpiresAt           *time.Time
	CredentialEncrypted []byte
	ExternalAccountID   string
	SubscriptionPlan    *string
}

func NewResourceBuilder(name string) *ResourceBuilder {
	return &ResourceBuilder{
		Name:              name,
		Status:            "active",
		MaxMembers:        5,
		ExternalAccountID: "acct-" + name,
	}
}

func (r *ResourceBuilder) With(mutate func(*ResourceBuilder)) *ResourceBuilder {
	mutate(r)
	return r
}

func (r *ResourceBuilder) WithMembers(current, max int32) *ResourceBuilder {
	r.CurrentMembers = current
	r.MaxMembers = max
	if current >= max {
		r.Status = "full"
	}
	return r
}

func (r *ResourceBuilder) WithStatus(status string) *ResourceBuilder {
	r.Status = status
	return r
}

func (r *ResourceBuilder) ExpiringAt(t time.Time) *ResourceBuilder {
	r.ExpiresAt = &t
	return r
}

// WithSealedCredential takes the credential already encrypted for storage.
func (r *ResourceBuilder) WithSealedCredential(sealed []byte) *ResourceBuilder {
	r.CredentialEncrypted = sealed
	return r
}

func (r *ResourceBuilder) BuildInfra() sqlc.Resources {
	return sqlc.Resources{
		Name:                r.Name,
		Status:              r.Status,
		CurrentMembers:      r.CurrentMembers,
		MaxMembers:          r.MaxMembers,
		ExpiresAt:           pgconv.TimestamptzFromPtr(r.ExpiresAt),
		CredentialEncrypted: r.CredentialEncrypted,
		ExternalAccountID:   r.ExternalAccountID,
		SubscriptionPlan:    pgconv.TextFromPtr(r.SubscriptionPlan),
	}
}
