package env

// AdminEnvironment holds the bootstrap credentials used to mint the very
// first account when the users table is empty.
type AdminEnvironment struct {
	Email    string `validate:"omitempty,email"`
	Password string `validate:"omitempty,min=8"`
}

func (e AdminEnvironment) HasCredentials() bool {
	return e.Email != "" && e.Password != ""
}
