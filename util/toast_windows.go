//go:build windows

package util

import "gopkg.in/toast.v1"

// SendToastNotification will notify the user via toast
func SendToastNotification(n Notification) error {
	notification := toast.Notification{
		AppID:    n.AppName,
		Title:    n.Title,
		Message:  n.Message,
		Duration: toast.Short,
		Audio:    "silent",
	}
	return notification.Push()
}
