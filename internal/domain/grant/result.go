package grant

// Error codes reported by the external provider client.
const (
	CodeAccountDeactivated = "account_deactivated"
	CodeTokenInvalidated   = "token_invalidated"
	CodeRateLimited        = "rate_limited"
	CodeNetwork            = "network_error"
	CodeUpstream           = "upstream_error"
	CodeRejected           = "rejected"
)

type Result struct {
	Success   bool
	ErrorCode string
	Detail    string
}

func Succeeded() Result {
	return Result{Success: true}
}

func Failed(code, detail string) Result {
	return Result{ErrorCode: code, Detail: detail}
}

// IsFatal reports failures that will not go away by retrying on the same
// account. Every other failure is retryable.
func (r Result) IsFatal() bool {
	if r.Success {
		return false
	}
	switch r.ErrorCode {
	case CodeAccountDeactivated, CodeTokenInvalidated:
		return true
	default:
		return false
	}
}
