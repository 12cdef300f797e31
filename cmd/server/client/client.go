// Package client provides test commands for the RPG Tales gRPC service
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	talesv1alpha1 "github.com/KirkDiggler/rpg-tales/gen/go/tales/v1alpha1"

	"github.com/KirkDiggler/rpg-tales/internal/entities"
	"github.com/KirkDiggler/rpg-tales/internal/handlers/tales/v1alpha1"
	"github.com/KirkDiggler/rpg-tales/internal/server"
)

// TokenEnv names the variable that supplies the bearer token when --token is
// not given
const TokenEnv = "TALES_TOKEN"

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	token      string
	tracing    bool
	asJSON     bool
)

// Output palette
var (
	styleTitle  = color.Style{color.OpBold}
	styleInfo   = color.Style{color.FgCyan}
	styleOK     = color.Style{color.FgGreen}
	styleWarn   = color.Style{color.FgYellow}
	styleError  = color.Style{color.FgRed}
	styleStory  = color.Style{color.FgMagenta}
	styleTurn   = color.Style{color.FgGreen, color.OpBold}
	styleDowned = color.Style{color.FgRed, color.OpBold}
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for RPG Tales",
	Long: `Client commands exercise a running RPG Tales server with real gRPC requests.

Start with "client auth" and export the printed token as ` + TokenEnv + `.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 90*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&token, "token", "", "bearer token (defaults to $"+TokenEnv+")")
	ClientCmd.PersistentFlags().BoolVar(&tracing, "trace", false, "propagate OpenTelemetry trace context")
	ClientCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "print raw JSON responses")

	// Identity
	ClientCmd.AddCommand(authCmd)

	// Room commands
	ClientCmd.AddCommand(createRoomCmd)
	ClientCmd.AddCommand(joinRoomCmd)
	ClientCmd.AddCommand(getRoomCmd)
	ClientCmd.AddCommand(roomExistsCmd)

	// Setup and character commands
	ClientCmd.AddCommand(generateClassesCmd)
	ClientCmd.AddCommand(confirmSetupCmd)
	ClientCmd.AddCommand(confirmCharacterCmd)
	ClientCmd.AddCommand(startGameCmd)

	// Play commands
	ClientCmd.AddCommand(actCmd)
	ClientCmd.AddCommand(sceneImageCmd)
	ClientCmd.AddCommand(journalCmd)
	ClientCmd.AddCommand(rollCmd)
	ClientCmd.AddCommand(watchCmd)
}

// createTalesClient dials the server and returns a client plus cleanup
func createTalesClient() (talesv1alpha1.TalesServiceClient, func(), error) {
	conn, err := server.Dial(serverAddr, tracing)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return talesv1alpha1.NewTalesServiceClient(conn), cleanup, nil
}

// requestContext carries the bearer token and the request timeout
func requestContext() (context.Context, context.CancelFunc, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	ctx, err := withToken(ctx)
	if err != nil {
		cancel()
		return nil, nil, err
	}
	return ctx, cancel, nil
}

func withToken(ctx context.Context) (context.Context, error) {
	t := token
	if t == "" {
		t = os.Getenv(TokenEnv)
	}
	if t == "" {
		return nil, fmt.Errorf("no session token: run \"client auth\" and set %s or pass --token", TokenEnv)
	}
	return metadata.AppendToOutgoingContext(ctx, "authorization", "bearer "+t), nil
}

// callOptions are shared by every client call
func callOptions() []grpc.CallOption {
	return []grpc.CallOption{grpc.WaitForReady(true)}
}

// printJSON prints wire messages with protojson and anything else with
// encoding/json
func printJSON(v any) error {
	if msg, ok := v.(proto.Message); ok {
		out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(msg)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// printRoom renders the parts of a room a player cares about
func printRoom(state *entities.GameState, screen string) {
	if state == nil {
		styleWarn.Println("room is gone")
		return
	}

	styleTitle.Printf("Room %s", state.Code)
	fmt.Printf("  status=%s version=%d", state.Status, state.Version)
	if screen != "" {
		styleInfo.Printf("  screen=%s", screen)
	}
	fmt.Println()

	if state.Theme != "" {
		fmt.Printf("Theme: %s\n", state.Theme)
	}
	if len(state.GeneratedClasses) > 0 {
		fmt.Printf("Classes: %v\n", state.GeneratedClasses)
	}
	fmt.Printf("Players (%d/%d):\n", len(state.Players), state.PlayerLimit)
	for id, name := range state.Players {
		marker := ""
		if id == state.HostID {
			marker = " (host)"
		}
		fmt.Printf("  %s %s%s\n", id, name, marker)
	}

	if len(state.Characters) > 0 {
		fmt.Println("Party:")
		for i, c := range state.Characters {
			line := fmt.Sprintf("  %s the %s  HP %d/%d", c.Name, c.Class, c.HP, c.MaxHP)
			switch {
			case c.Downed():
				styleDowned.Println(line + "  [downed]")
			case state.Status == entities.StatusPlaying && i == state.ActiveCharacterIndex:
				styleTurn.Println(line + "  <- turn")
			default:
				fmt.Println(line)
			}
		}
	}

	if len(state.Inventory) > 0 {
		fmt.Printf("Inventory: %v\n", state.Inventory)
	}
	if state.LastUpdate != nil {
		fmt.Println()
		styleStory.Println(state.LastUpdate.Text)
		for i, choice := range state.LastUpdate.Choices {
			fmt.Printf("  %d. %s\n", i+1, choice.Text)
		}
	}
}

// printRoomResponse honours --json
func printRoomResponse(resp *talesv1alpha1.RoomResponse) error {
	if asJSON {
		return printJSON(resp)
	}
	printRoom(v1alpha1.RoomFromProto(resp.GetRoom()), string(v1alpha1.ScreenFromProto(resp.GetScreen())))
	return nil
}
