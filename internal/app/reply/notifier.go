//go:generate mockgen -source=notifier.go -destination=notifier_mock.go -package=reply
package reply

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"gathering/internal/config"
	"gathering/internal/config/logger"
)

// Notifier tells the host that a reply arrived
type Notifier interface {
	Notify(r Reply) error
}

// desktopNotifier raises a desktop notification per reply
type desktopNotifier struct {
	send func(title, message string) error
	log  logger.Logger
}

// NewNotifier creates a desktop notifier, or a silent one when disabled
func NewNotifier(enabled bool, log logger.Logger) Notifier {
	if !enabled {
		return silentNotifier{}
	}

	return &desktopNotifier{
		send: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
		log: log.WithComponent("SERVER"),
	}
}

func (n *desktopNotifier) Notify(r Reply) error {
	title := fmt.Sprintf("%s: new reply", config.AppName)
	message := fmt.Sprintf("Pickup %s", r.PickupTime)

	if r.Message != "" {
		message += "\n" + r.Message
	}

	if err := n.send(title, message); err != nil {
		n.log.Warn().Err(err).Msg("Failed to send desktop notification")
		return err
	}

	return nil
}

type silentNotifier struct{}

func (silentNotifier) Notify(Reply) error {
	return nil
}
