package user

// Operator is the configured admin account. It is not persisted.
type Operator struct {
	username     Username
	passwordHash string
	role         Role
}

func NewOperator(username Username, passwordHash string, role Role) *Operator {
	return &Operator{
		username:     username,
		passwordHash: passwordHash,
		role:         role,
	}
}

func (o *Operator) Username() Username   { return o.username }
func (o *Operator) PasswordHash() string { return o.passwordHash }
func (o *Operator) Role() Role           { return o.role }
