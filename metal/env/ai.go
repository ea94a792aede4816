package env

// AIEnvironment configures the content-generation provider. Like mail, an
// empty key disables the feature without failing boot.
type AIEnvironment struct {
	APIKey string `validate:"-"`
	Model  string `validate:"-"`
}

func (e AIEnvironment) IsConfigured() bool {
	return e.APIKey != ""
}
