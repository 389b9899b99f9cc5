package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/Apurer/pet-adoption-center/internal/app/ctl"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := ctl.NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
