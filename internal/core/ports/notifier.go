package ports

// Notifier accepts notification jobs for asynchronous delivery. Implementations
// must not block the caller beyond transient backpressure.
type Notifier interface {
	Notify(in CreateNotificationInput)
}
