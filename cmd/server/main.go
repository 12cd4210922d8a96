// Package main is the entry point for the library gRPC server and its tools
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/laasilva/dracolich-library-api-sub000/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:          "dracolich",
	Short:        "Dracolich library gRPC server",
	Long:         `Dracolich serves the D&D 5e reference library (classes, races, spells, equipment) over gRPC.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("store", storeRedis, "document store: redis or sqlite")
	pf.String("redis-addr", "localhost:6379", "Redis address")
	pf.String("sqlite-path", "dracolich.db", "SQLite database file")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "text", "log format: text or json")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
