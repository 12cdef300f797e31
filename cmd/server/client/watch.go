package client

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-tales/internal/auth"
	"github.com/KirkDiggler/rpg-tales/internal/handlers/tales/v1alpha1"
	"github.com/KirkDiggler/rpg-tales/internal/orchestrators/session"
)

var watchCmd = &cobra.Command{
	Use:   "watch [code]",
	Short: "Follow a room live",
	Long: `Print every change to a room along with the screen you should be on.
Type another room code and press enter to switch rooms, or "leave" to stop
following. Ctrl-C exits.`,
	Args: cobra.ExactArgs(1),
	RunE: watch,
}

func watch(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createTalesClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, err = withToken(ctx)
	if err != nil {
		return err
	}

	t := token
	if t == "" {
		t = os.Getenv(TokenEnv)
	}
	playerID, err := auth.PeekPlayerID(t)
	if err != nil {
		return err
	}

	follower, err := session.NewFollower(&session.FollowerConfig{
		Watcher:  v1alpha1.NewRemoteWatcher(client),
		PlayerID: playerID,
		OnUpdate: func(update session.RoomUpdate) {
			if asJSON {
				_ = printJSON(update)
				return
			}
			if update.Gone {
				styleWarn.Println("The room is gone. Back to the entry screen.")
				return
			}
			fmt.Println(strings.Repeat("-", 40))
			printRoom(update.State, string(update.Screen))
		},
	})
	if err != nil {
		return err
	}
	defer follower.Release()

	if err := follow(ctx, follower, args[0]); err != nil {
		return err
	}

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- strings.TrimSpace(scanner.Text())
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				<-ctx.Done()
				return nil
			}
			switch line {
			case "":
			case "leave":
				follower.Release()
				styleInfo.Println("Stopped following. Type a room code to follow another.")
			default:
				if err := follow(ctx, follower, line); err != nil {
					styleError.Printf("Cannot follow %s: %v\n", line, err)
				}
			}
		}
	}
}

func follow(ctx context.Context, follower *session.Follower, code string) error {
	if err := follower.Follow(ctx, code); err != nil {
		return fmt.Errorf("failed to watch room: %w", err)
	}
	styleInfo.Printf("Following %s\n", follower.Code())
	return nil
}
