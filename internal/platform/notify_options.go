package platform

import "errors"

// ErrUnsupported is returned where no notification service is available.
var ErrUnsupported = errors.New("notifications are not supported on this platform")

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// AppName identifies the sender to the notification server.
	AppName string
	// IconPath, when non-empty, points to an image file the notification center
	// should display with the notification if supported by the platform.
	IconPath string
	// TimeoutMillis is the display time. Zero or less leaves it to the server.
	TimeoutMillis int32
}
