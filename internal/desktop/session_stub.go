//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package desktop

import (
	"context"
	"fmt"
)

func portalTheme(context.Context) (string, error) {
	return "", fmt.Errorf("settings portal is not supported on this platform")
}

func xsettingsTheme(context.Context) (string, error) {
	return "", fmt.Errorf("xsettings is not supported on this platform")
}
