// Package main runs the in-memory marketplace stub server.
//
// The stub exposes the same REST surface as the production
// marketplace backend and is intended for local development and
// gateway tests. It keeps everything in memory and reseeds on every
// start.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/garciapp2/gameaccounts/internal/app"
)

func main() {
	path := flag.String("e", "./config", "env file directory")
	flag.Parse()

	application := app.NewApplication(context.Background())
	if err := application.LoadConfig(*path); err != nil {
		log.Fatal(err)
	}
	application.RunStubServer()
}
