package util

// Notification constructs the title and message for the toast notification
type Notification struct {
	AppName string
	Title   string
	Message string
}
