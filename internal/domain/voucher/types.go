package voucher

type Status string

const (
	StatusUnused         Status = "unused"
	StatusReserved       Status = "reserved"
	StatusUsed           Status = "used"
	StatusWarrantyActive Status = "warranty_active"
	StatusExpired        Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusUnused, StatusReserved, StatusUsed, StatusWarrantyActive, StatusExpired:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
