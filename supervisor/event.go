package supervisor

import (
	"fmt"
	"log"

	"github.com/zllovesuki/ProperResolutions/system/shared"
	"github.com/zllovesuki/ProperResolutions/util"

	"github.com/thejerf/suture/v4"
)

type EventHook struct {
	Notifier chan<- util.Notification
}

func (e *EventHook) Event(evt suture.Event) {
	log.Printf("[supervisor] event: %+v\n", evt)
	defer func() {
		if err := recover(); err != nil {
			log.Printf("[supervisor] event hook panic: %+v\n", err)
		}
	}()
	m := evt.Map()
	switch evt.Type() {
	case suture.EventTypeServiceTerminate, suture.EventTypeServicePanic:
		n := util.Notification{
			AppName: shared.AppName,
			Title:   "Resolution watcher restarting",
			Message: fmt.Sprintf("%s stopped unexpectedly, restarting...", m["service_name"].(string)),
		}
		select {
		case e.Notifier <- n:
		default:
			log.Printf("[supervisor] notifier is busy, dropping: %s\n", n.Message)
		}
	}
}
