// Package main is the marketplace admin console.
//
// One invocation runs one command against the remote server: list a
// page of an entity (optionally filtered), fetch a single record by
// id, or delete one.
//
// Examples:
//
//	console -entity users
//	console -entity users -filter name -value alice -size 25
//	console -entity advertisements -filter min-price -value 100 -page 1
//	console -entity games -get 3
//	console -entity transactions -delete 7
package main

import (
	"context"
	"flag"
	"log"

	"github.com/garciapp2/gameaccounts/internal/app"
	"github.com/garciapp2/gameaccounts/internal/console"
)

func main() {
	var (
		path        = flag.String("e", "./config", "env file directory")
		entity      = flag.String("entity", "users", "entity to operate on (users, games, game-accounts, advertisements, transactions)")
		page        = flag.Int("page", 0, "zero-based page index")
		size        = flag.Int("size", 0, "page size (0 uses the configured default)")
		filterKind  = flag.String("filter", "", "server-side filter criterion (name, email, description, min-price, max-price)")
		filterValue = flag.String("value", "", "server-side filter value")
		quick       = flag.String("quick", "", "quick search within the loaded page")
		getID       = flag.Int64("get", 0, "fetch a single record by id")
		deleteID    = flag.Int64("delete", 0, "delete a record by id")
	)
	flag.Parse()

	application := app.NewApplication(context.Background())
	if err := application.LoadConfig(*path); err != nil {
		log.Fatal(err)
	}

	application.RunConsole(console.Options{
		Entity:      *entity,
		Page:        *page,
		Size:        *size,
		FilterKind:  *filterKind,
		FilterValue: *filterValue,
		Quick:       *quick,
		GetID:       *getID,
		DeleteID:    *deleteID,
	})
}
