// Package main is the entry point for the tales server and its test client
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-tales/cmd/server/client"
	"github.com/KirkDiggler/rpg-tales/internal/errors"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-tales",
	Short: "RPG Tales gRPC server",
	Long:  `RPG Tales hosts multiplayer, AI narrated adventures over gRPC.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.GetCode(errors.FromGRPCError(err)).Retryable() {
			fmt.Fprintln(os.Stderr, "This is usually temporary. Try again.")
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
