package background

import (
	"context"
	"log"

	"github.com/zllovesuki/ProperResolutions/util"
)

// Notifier delivers notifications from other services to the desktop
type Notifier struct {
	C chan util.Notification

	send func(util.Notification) error
}

func NewNotifier() *Notifier {
	return &Notifier{
		C:    make(chan util.Notification, 10),
		send: util.SendToastNotification,
	}
}

func (n *Notifier) String() string {
	return "Notifier"
}

func (n *Notifier) Serve(haltCtx context.Context) error {
	log.Println("[notifier] starting notify loop")

	for {
		select {
		case msg := <-n.C:
			if err := n.send(msg); err != nil {
				log.Printf("[notifier] cannot send notification: %+v\n", err)
			}
		case <-haltCtx.Done():
			log.Println("[notifier] exiting notify loop")
			return nil
		}
	}
}
