package env

// CleanupEnvironment drives the offline orphan sweep schedule.
type CleanupEnvironment struct {
	Schedule string `validate:"required,cron"`
}
