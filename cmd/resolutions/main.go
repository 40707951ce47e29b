package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zllovesuki/ProperResolutions/report"
	"github.com/zllovesuki/ProperResolutions/supervisor"
	"github.com/zllovesuki/ProperResolutions/supervisor/background"
	"github.com/zllovesuki/ProperResolutions/system/display"

	suture "github.com/thejerf/suture/v4"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Compile time injected variables
var (
	Version = "v0.0.0-dev"
)

func main() {

	var format = flag.String("format", string(report.Text), "output format: text, json or yaml")
	var watch = flag.Duration("watch", 0, "re-enumerate at this interval and report changes (0 to report once)")
	var adapters = flag.Bool("adapters", false, "log the video controllers known to the system")
	var logFile = flag.String("log", "", "write logs to this file with rotation instead of stderr")

	flag.Parse()

	if *logFile != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   *logFile,
			MaxSize:    5,
			MaxBackups: 3,
			MaxAge:     7,
			Compress:   true,
		})
	}

	log.Printf("ProperResolutions version: %s\n", Version)
	dryRun := os.Getenv("DRY_RUN") != ""
	if dryRun {
		log.Printf("[dry run] the display driver will not be queried")
	}

	outFormat, err := report.ParseFormat(*format)
	if err != nil {
		log.Fatalln(err)
	}

	if *adapters {
		logAdapters()
	}

	source, err := display.NewSource(display.Config{
		DryRun: dryRun,
	})
	if err != nil {
		log.Fatalf("cannot select a resolution source: %+v\n", err)
	}

	notifier := background.NewNotifier()

	reporter, err := supervisor.NewReporter(supervisor.ReporterConfig{
		Source:   source,
		Format:   outFormat,
		Output:   os.Stdout,
		Interval: *watch,
		Notifier: notifier.C,
	})
	if err != nil {
		log.Fatalln(err)
	}

	if *watch == 0 {
		if err := reporter.Report(); err != nil {
			log.Fatalf("%+v\n", err)
		}
		return
	}

	ctx, cancel := context.WithCancel(context.Background())

	rootSupervisor := suture.New("Supervisor", suture.Spec{
		EventHook: (&supervisor.EventHook{
			Notifier: notifier.C,
		}).Event,
	})
	rootSupervisor.Add(reporter)
	rootSupervisor.Add(notifier)

	sigc := make(chan os.Signal, 1)

	go func() {
		supervisorErr := rootSupervisor.Serve(ctx)
		if supervisorErr != nil {
			log.Printf("[supervisor] rootSupervisor returns error: %+v\n", supervisorErr)
			sigc <- syscall.SIGTERM
		}
	}()

	signal.Notify(
		sigc,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)

	sig := <-sigc
	log.Printf("[supervisor] signal received: %+v\n", sig)

	cancel()
	time.Sleep(time.Millisecond * 500) // grace period
}

func logAdapters() {
	list, err := display.Adapters()
	if err != nil {
		log.Printf("cannot list adapters: %+v\n", err)
		return
	}
	for _, a := range list {
		log.Printf("adapter: %s (driver %s) currently at %s\n", a.Name, a.DriverVersion, a.Current)
	}
}
