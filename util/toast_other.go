//go:build !windows

package util

import "log"

// SendToastNotification only logs the notification outside of Windows
func SendToastNotification(n Notification) error {
	log.Printf("[%s] %s: %s\n", n.AppName, n.Title, n.Message)
	return nil
}
