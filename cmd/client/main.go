package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/zllovesuki/ProperResolutions/client"
	"github.com/zllovesuki/ProperResolutions/system/display"
)

func main() {
	source, err := display.NewSource(display.Config{
		DryRun: os.Getenv("DRY_RUN") != "",
	})
	if err != nil {
		log.Fatalf("cannot select a resolution source: %+v\n", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	picker := client.NewPicker(source)
	mode, ok, err := picker.Serve(ctx)
	cancel()
	if err != nil {
		log.Fatalf("%+v\n", err)
	}
	if !ok {
		os.Exit(1)
	}
	fmt.Println(mode)
}
