package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/slopestock/app/repositories"
	"github.com/shashiranjanraj/slopestock/app/routes"
	"github.com/shashiranjanraj/slopestock/app/services"
	"github.com/shashiranjanraj/slopestock/database/seeders"
	"github.com/shashiranjanraj/slopestock/internal/server"
	"github.com/shashiranjanraj/slopestock/pkg/cache"
	"github.com/shashiranjanraj/slopestock/pkg/database"
	"github.com/shashiranjanraj/slopestock/pkg/logger"
	"github.com/shashiranjanraj/slopestock/pkg/migration"
	"github.com/shashiranjanraj/slopestock/pkg/router"
)

// slopestock serve — migrate, seed, and start the HTTP server.
// First boot on an empty database leaves a ready-to-browse 20-item catalog.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server (runs pending migrations and seeders first)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		logger.Setup()

		if err := migration.New(database.DB).Run(); err != nil {
			return err
		}
		if err := seeders.RunAll(database.DB); err != nil {
			return err
		}

		// The read cache is an optimisation; the server runs without it.
		if err := cache.Connect(); err != nil {
			logger.Warn("redis unavailable, list cache disabled", "error", err)
		}

		service := services.NewProductService(repositories.NewProductRepository(database.DB))
		return server.Start(server.NewHandler(service))
	},
}

// slopestock route:list — print all registered routes.
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered API routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		r := router.New()
		// Handlers are never invoked for a listing, so a nil-DB service is fine.
		routes.RegisterAPI(r, services.NewProductService(repositories.NewProductRepository(nil)))

		infos := r.Routes()
		sort.Slice(infos, func(i, j int) bool {
			if infos[i].Path != infos[j].Path {
				return infos[i].Path < infos[j].Path
			}
			return infos[i].Method < infos[j].Method
		})

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		fmt.Fprintln(w, "------\t----\t----")
		for _, ri := range infos {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
		}
		return w.Flush()
	},
}
