package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	talesv1alpha1 "github.com/KirkDiggler/rpg-tales/gen/go/tales/v1alpha1"
)

var authCmd = &cobra.Command{
	Use:   "auth [label]",
	Short: "Get an anonymous session token",
	Long: `Ask the server for a new anonymous player identity. Example:

  export ` + TokenEnv + `=$(rpg-tales client auth Alice --quiet)`,
	Args: cobra.MaximumNArgs(1),
	RunE: authenticate,
}

var quiet bool

func init() {
	authCmd.Flags().BoolVar(&quiet, "quiet", false, "print only the token")
}

func authenticate(_ *cobra.Command, args []string) error {
	label := ""
	if len(args) == 1 {
		label = args[0]
	}

	client, cleanup, err := createTalesClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.Authenticate(ctx, &talesv1alpha1.AuthenticateRequest{Label: label}, callOptions()...)
	if err != nil {
		return fmt.Errorf("failed to authenticate: %w", err)
	}

	if quiet {
		fmt.Println(resp.GetToken())
		return nil
	}
	if asJSON {
		return printJSON(resp)
	}

	styleOK.Printf("Signed in as %s\n", resp.GetPlayerId())
	fmt.Printf("Expires: %s\n", time.Unix(resp.GetExpiresAt(), 0).Format(time.RFC3339))
	fmt.Printf("\nexport %s=%s\n", TokenEnv, resp.GetToken())
	return nil
}
