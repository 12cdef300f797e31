package client

import (
	"fmt"

	"github.com/spf13/cobra"

	talesv1alpha1 "github.com/KirkDiggler/rpg-tales/gen/go/tales/v1alpha1"
)

var playerName string

var createRoomCmd = &cobra.Command{
	Use:   "create-room",
	Short: "Create a room you host",
	RunE:  createRoom,
}

var solo bool

var joinRoomCmd = &cobra.Command{
	Use:   "join [code]",
	Short: "Join a multiplayer room",
	Args:  cobra.ExactArgs(1),
	RunE:  joinRoom,
}

var getRoomCmd = &cobra.Command{
	Use:   "get-room [code]",
	Short: "Show a room and your screen in it",
	Args:  cobra.ExactArgs(1),
	RunE:  getRoom,
}

var roomExistsCmd = &cobra.Command{
	Use:   "exists [code]",
	Short: "Check whether a room code is live",
	Args:  cobra.ExactArgs(1),
	RunE:  roomExists,
}

func init() {
	createRoomCmd.Flags().BoolVar(&solo, "solo", false, "one player controls the whole party")
	createRoomCmd.Flags().StringVar(&playerName, "name", "", "your display name")
	joinRoomCmd.Flags().StringVar(&playerName, "name", "", "your display name")
}

func createRoom(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createTalesClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel, err := requestContext()
	if err != nil {
		return err
	}
	defer cancel()

	resp, err := client.CreateRoom(ctx, &talesv1alpha1.CreateRoomRequest{
		PlayerName: playerName,
		IsSolo:     solo,
	}, callOptions()...)
	if err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}

	if !asJSON {
		styleOK.Printf("Created room %s\n\n", resp.GetRoom().GetCode())
	}
	return printRoomResponse(resp)
}

func joinRoom(_ *cobra.Command, args []string) error {
	client, cleanup, err := createTalesClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel, err := requestContext()
	if err != nil {
		return err
	}
	defer cancel()

	resp, err := client.JoinRoom(ctx, &talesv1alpha1.JoinRoomRequest{
		Code:       args[0],
		PlayerName: playerName,
	}, callOptions()...)
	if err != nil {
		return fmt.Errorf("failed to join room: %w", err)
	}

	return printRoomResponse(resp)
}

func getRoom(_ *cobra.Command, args []string) error {
	client, cleanup, err := createTalesClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel, err := requestContext()
	if err != nil {
		return err
	}
	defer cancel()

	resp, err := client.GetRoom(ctx, &talesv1alpha1.GetRoomRequest{Code: args[0]}, callOptions()...)
	if err != nil {
		return fmt.Errorf("failed to get room: %w", err)
	}

	return printRoomResponse(resp)
}

func roomExists(_ *cobra.Command, args []string) error {
	client, cleanup, err := createTalesClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel, err := requestContext()
	if err != nil {
		return err
	}
	defer cancel()

	resp, err := client.RoomExists(ctx, &talesv1alpha1.RoomExistsRequest{Code: args[0]}, callOptions()...)
	if err != nil {
		return fmt.Errorf("failed to check room: %w", err)
	}

	if asJSON {
		return printJSON(resp)
	}
	if resp.GetExists() {
		styleOK.Printf("Room %s exists\n", args[0])
	} else {
		styleWarn.Printf("Room %s does not exist\n", args[0])
	}
	return nil
}
