package supervisor

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/zllovesuki/ProperResolutions/report"
	"github.com/zllovesuki/ProperResolutions/system/display"
	"github.com/zllovesuki/ProperResolutions/system/shared"
	"github.com/zllovesuki/ProperResolutions/util"

	"github.com/pkg/errors"
	"github.com/thejerf/suture/v4"
)

// ReporterConfig contains the configurations for the Reporter
type ReporterConfig struct {
	Source display.Source
	Format report.Format
	Output io.Writer
	// Interval between re-enumerations, zero reports only once
	Interval time.Duration
	Notifier chan<- util.Notification
}

// Reporter writes the supported resolutions of the primary display once on start,
// then re-enumerates every Interval and writes the list again whenever it changes
type Reporter struct {
	ReporterConfig

	started bool
	last    []display.Mode
}

func NewReporter(conf ReporterConfig) (*Reporter, error) {
	if conf.Source == nil {
		return nil, errors.New("[reporter] nil Source is invalid")
	}
	if conf.Output == nil {
		return nil, errors.New("[reporter] nil Output is invalid")
	}
	if conf.Interval < 0 {
		return nil, errors.New("[reporter] negative Interval is invalid")
	}
	if conf.Format == "" {
		conf.Format = report.Text
	}
	return &Reporter{
		ReporterConfig: conf,
	}, nil
}

func (r *Reporter) String() string {
	return "Reporter"
}

// Report enumerates the supported resolutions and writes them out
func (r *Reporter) Report() error {
	modes, err := r.enumerate()
	if err != nil {
		return err
	}
	r.last = modes
	return report.Write(r.Output, modes, r.Format)
}

func (r *Reporter) enumerate() ([]display.Mode, error) {
	modes, err := r.Source.SupportedResolutions()
	if err != nil {
		return nil, errors.Wrapf(err, "[reporter] enumeration via %s failed", r.Source.Name())
	}
	log.Printf("[reporter] %s reported %d modes\n", r.Source.Name(), len(modes))
	return modes, nil
}

func (r *Reporter) update() error {
	modes, err := r.enumerate()
	if err != nil {
		return err
	}

	added, removed := report.Diff(r.last, modes)
	if len(added) == 0 && len(removed) == 0 {
		return nil
	}
	for _, m := range added {
		log.Printf("[reporter] mode added: %s\n", m)
	}
	for _, m := range removed {
		log.Printf("[reporter] mode removed: %s\n", m)
	}
	r.last = modes
	r.notify(util.Notification{
		AppName: shared.AppName,
		Title:   "Supported resolutions changed",
		Message: fmt.Sprintf("%d modes added, %d removed", len(added), len(removed)),
	})

	return report.Write(r.Output, modes, r.Format)
}

func (r *Reporter) notify(n util.Notification) {
	if r.Notifier == nil {
		return
	}
	select {
	case r.Notifier <- n:
	default:
		log.Printf("[reporter] notifier is busy, dropping: %s\n", n.Message)
	}
}

// Serve satisfies suture.Service
func (r *Reporter) Serve(haltCtx context.Context) error {
	log.Println("[reporter] starting reporter loop")

	if !r.started {
		if err := r.Report(); err != nil {
			return err
		}
		r.started = true
	}

	if r.Interval == 0 {
		return suture.ErrDoNotRestart
	}

	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-haltCtx.Done():
			log.Println("[reporter] stopping reporter loop")
			return nil
		case <-ticker.C:
			if err := r.update(); err != nil {
				return err
			}
		}
	}
}
