package notifier

import (
	"github.com/gen2brain/beeep"
)

// Notifier delivers a message to the user outside the web UI.
type Notifier interface {
	Notify(title string, message string) error
}

// DesktopNotifier shows native desktop notifications.
type DesktopNotifier struct {
}

func NewDesktopNotifier() *DesktopNotifier {
	return &DesktopNotifier{}
}

func (n *DesktopNotifier) Notify(title string, message string) error {
	return beeep.Notify(title, message, "")
}
