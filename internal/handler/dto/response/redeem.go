package response

import (
	"time"

	"seat-redeem/internal/usecase/commands"
	"seat-redeem/internal/usecase/queries"
)

type VerifyResponse struct {
	Valid     bool                             `json:"valid"`
	Code      string                           `json:"code,omitempty"`
	Reason    string                           `json:"reason,omitempty"`
	Resources []*queries.AvailableResourceView `json:"resources"`
}

// FromValidation lists resources only for a redeemable voucher.
func FromValidation(v commands.Validation, resources []*queries.AvailableResourceView) *VerifyResponse {
	res := &VerifyResponse{
		Valid:     v.Valid,
		Code:      string(v.Code),
		Reason:    v.Reason,
		Resources: []*queries.AvailableResourceView{},
	}
	if v.Valid && resources != nil {
		res.Resources = resources
	}
	return res
}

type GrantResponse struct {
	ResourceID        int64      `json:"resource_id"`
	ResourceName      string     `json:"resource_name"`
	ExternalAccountID string     `json:"external_account_id"`
	ExpiresAt         *time.Time `json:"expires_at,omitempty"`
}

// ConfirmResponse and FailureResponse share the keys success, message,
// grant_details and error; the ones a side does not fill are null.
type ConfirmResponse struct {
	Success  bool           `json:"success"`
	Message  string         `json:"message"`
	Grant    *GrantResponse `json:"grant_details"`
	Error    *string        `json:"error"`
	Warranty bool           `json:"warranty"`
	Attempts int            `json:"attempts"`
}

func FromRedemptionResult(r *commands.RedemptionResult) *ConfirmResponse {
	res := &ConfirmResponse{
		Success:  r.Success,
		Message:  r.Message,
		Warranty: r.Warranty,
		Attempts: r.Attempts,
	}
	if r.Grant != nil {
		res.Grant = &GrantResponse{
			ResourceID:        r.Grant.ResourceID,
			ResourceName:      r.Grant.ResourceName,
			ExternalAccountID: r.Grant.ExternalAccountID,
			ExpiresAt:         r.Grant.ExpiresAt,
		}
	}
	return res
}

type FailureResponse struct {
	Success bool           `json:"success"`
	Message *string        `json:"message"`
	Grant   *GrantResponse `json:"grant_details"`
	Error   string         `json:"error"`
	Code    string         `json:"code"`
}

func FromFailure(f *commands.Failure) *FailureResponse {
	return &FailureResponse{
		Success: false,
		Error:   f.Reason,
		Code:    string(f.Code),
	}
}
