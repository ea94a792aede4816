package llogs

// Driver abstracts the destination of the application logs.
type Driver interface {
	Close() bool
}
