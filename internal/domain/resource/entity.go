package resource

import (
	"errors"
	"time"
)

var (
	ErrResourceFull     = errors.New("resource is full")
	ErrResourceInactive = errors.New("resource is not active")
	ErrInvalidStatus    = errors.New("invalid resource status")
	ErrInvalidCapacity  = errors.New("invalid resource capacity")
)

type Status string

const (
	StatusActive   Status = "active"
	StatusFull     Status = "full"
	StatusDisabled Status = "disabled"
)

func NewStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusActive, StatusFull, StatusDisabled:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}

// Resource is a seat pool on the external provider.
type Resource struct {
	id                  int64
	name                string
	status              Status
	currentMembers      int
	maxMembers          int
	expiresAt           *time.Time
	credentialEncrypted []byte
	externalAccountID   string
	subscriptionPlan    *string
}

type ReconstructParams struct {
	ID                  int64
	Name                string
	Status              string
	CurrentMembers      int
	MaxMembers          int
	ExpiresAt           *time.Time
	CredentialEncrypted []byte
	ExternalAccountID   string
	SubscriptionPlan    *string
}

func Reconstruct(p ReconstructParams) (*Resource, error) {
	status, err := NewStatus(p.Status)
	if err != nil {
		return nil, err
	}
	if p.MaxMembers < 0 || p.CurrentMembers < 0 || p.CurrentMembers > p.MaxMembers {
		return nil, ErrInvalidCapacity
	}
	return &Resource{
		id:                  p.ID,
		name:                p.Name,
		status:              status,
		currentMembers:      p.CurrentMembers,
		maxMembers:          p.MaxMembers,
		expiresAt:           p.ExpiresAt,
		credentialEncrypted: p.CredentialEncrypted,
		externalAccountID:   p.ExternalAccountID,
		subscriptionPlan:    p.SubscriptionPlan,
	}, nil
}

// CheckAvailable must be called on a row read under lock.
func (r *Resource) CheckAvailable() error {
	switch r.status {
	case StatusDisabled:
		return ErrResourceInactive
	case StatusFull:
		return ErrResourceFull
	}
	if r.currentMembers >= r.maxMembers {
		return ErrResourceFull
	}
	return nil
}

func (r *Resource) AddMember() error {
	if err := r.CheckAvailable(); err != nil {
		return err
	}
	r.currentMembers++
	if r.currentMembers >= r.maxMembers {
		r.status = StatusFull
	}
	return nil
}

// RemoveMember never goes below zero and reopens a full pool.
// A disabled pool stays disabled.
func (r *Resource) RemoveMember() {
	if r.currentMembers > 0 {
		r.currentMembers--
	}
	if r.status == StatusFull && r.currentMembers < r.maxMembers {
		r.status = StatusActive
	}
}

func (r *Resource) Disable() {
	r.status = StatusDisabled
}

func (r *Resource) ID() int64                   { return r.id }
func (r *Resource) Name() string                { return r.name }
func (r *Resource) Status() Status              { return r.status }
func (r *Resource) CurrentMembers() int         { return r.currentMembers }
func (r *Resource) MaxMembers() int             { return r.maxMembers }
func (r *Resource) ExpiresAt() *time.Time       { return r.expiresAt }
func (r *Resource) CredentialEncrypted() []byte { return r.credentialEncrypted }
func (r *Resource) ExternalAccountID() string   { return r.externalAccountID }
func (r *Resource) SubscriptionPlan() *string   { return r.subscriptionPlan }
