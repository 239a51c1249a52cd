package notify

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"

	"github.com/example/iconlookup/internal/platform"
)

// Event identifies a notification trigger.
type Event string

const (
	// EventFound emits a notification showing the resolved icon.
	EventFound Event = "found"
	// EventMissing emits a notification when no icon matched.
	EventMissing Event = "missing"
)

// Preferences describes notification behaviour loaded from configuration.
type Preferences struct {
	Title       string `env:"ICONLOOKUP_NOTIFY_TITLE"`
	FoundText   string `env:"ICONLOOKUP_NOTIFY_FOUND_TEXT"`
	MissingText string `env:"ICONLOOKUP_NOTIFY_MISSING_TEXT"`
}

// DefaultPreferences returns the default notification settings.
func DefaultPreferences() Preferences {
	return Preferences{
		Title:       "iconlookup",
		FoundText:   "%s: %s",
		MissingText: "No icon for %s",
	}
}

// LoadPreferences overlays environment variables on the defaults.
func LoadPreferences() (Preferences, error) {
	prefs := DefaultPreferences()
	if err := env.Parse(&prefs); err != nil {
		return DefaultPreferences(), fmt.Errorf("notify env: %w", err)
	}
	return prefs, nil
}

var send = platform.Notify

// Notifier sends OS-level notifications based on the configured preferences.
type Notifier struct {
	prefs   Preferences
	enabled map[Event]bool
	log     *zap.Logger
}

// New creates a new Notifier using the provided preferences.
func New(prefs Preferences, log *zap.Logger) *Notifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &Notifier{prefs: prefs, enabled: make(map[Event]bool), log: log}
}

// Enable toggles the notifier for the provided event.
func (n *Notifier) Enable(event Event, enabled bool) {
	if n == nil {
		return
	}
	n.enabled[event] = enabled
}

// Found shows path for the icon name, using the file itself as the
// notification icon.
func (n *Notifier) Found(name, path string) {
	if !n.enabledFor(EventFound) {
		return
	}
	body := fmt.Sprintf(n.prefs.FoundText, name, path)
	n.dispatch(EventFound, body, platform.Options{IconPath: path})
}

// Missing reports that name could not be resolved.
func (n *Notifier) Missing(name string) {
	if !n.enabledFor(EventMissing) {
		return
	}
	body := fmt.Sprintf(n.prefs.MissingText, name)
	n.dispatch(EventMissing, body, platform.Options{})
}

func (n *Notifier) enabledFor(event Event) bool {
	if n == nil {
		return false
	}
	return n.enabled[event]
}

func (n *Notifier) dispatch(event Event, body string, opts platform.Options) {
	body = strings.TrimSpace(body)
	if body == "" {
		return
	}
	if err := send(n.prefs.Title, body, opts); err != nil {
		n.log.Warn("notification failed", zap.String("event", string(event)), zap.Error(err))
	}
}
