package env

// MailEnvironment configures the transactional-email provider. An empty API
// key is valid and turns subscriber notifications into a logged no-op.
type MailEnvironment struct {
	APIKey    string `validate:"-"`
	FromEmail string `validate:"omitempty,email"`
	FromName  string `validate:"-"`
}

func (e MailEnvironment) IsConfigured() bool {
	return e.APIKey != ""
}
