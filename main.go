package main

import (
	"context"
	"time"

	"github.com/shandysiswandi/healthsheet/internal/app"
)

const shutdownTimeout = 15 * time.Second

func main() {
	application := app.New()
	<-application.Start()

	// the shutdown budget starts once the signal arrived
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	application.Stop(ctx)
}
