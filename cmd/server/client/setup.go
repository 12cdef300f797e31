package client

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	talesv1alpha1 "github.com/KirkDiggler/rpg-tales/gen/go/tales/v1alpha1"

	"github.com/KirkDiggler/rpg-tales/internal/handlers/tales/v1alpha1"
)

var generateClassesCmd = &cobra.Command{
	Use:     "classes [code] [theme...]",
	Short:   "Generate character classes for a theme (host only)",
	Example: `  classes ABC123 Clockwork desert with brass sandstorms`,
	Args:    cobra.MinimumNArgs(2),
	RunE:    generateClasses,
}

var (
	setupTheme  string
	playerLimit int
)

var confirmSetupCmd = &cobra.Command{
	Use:   "setup [code]",
	Short: "Confirm theme and party size (host only)",
	Args:  cobra.ExactArgs(1),
	RunE:  confirmSetup,
}

var (
	characterName      string
	characterClass     string
	characterBackstory string
)

var confirmCharacterCmd = &cobra.Command{
	Use:     "character [code]",
	Short:   "Create your character",
	Example: `  character ABC123 --name Ada --class "Gear Monk" --backstory "Built her own arm"`,
	Args:    cobra.ExactArgs(1),
	RunE:    confirmCharacter,
}

var startGameCmd = &cobra.Command{
	Use:   "start [code]",
	Short: "Start a multiplayer adventure once every hero is ready (host only)",
	Args:  cobra.ExactArgs(1),
	RunE:  startGame,
}

func init() {
	confirmSetupCmd.Flags().StringVar(&setupTheme, "theme", "", "theme override, defaults to the stored one")
	confirmSetupCmd.Flags().IntVar(&playerLimit, "players", 0, "party size")
	_ = confirmSetupCmd.MarkFlagRequired("players")

	confirmCharacterCmd.Flags().StringVar(&characterName, "name", "", "character name")
	confirmCharacterCmd.Flags().StringVar(&characterClass, "class", "", "one of the generated classes")
	confirmCharacterCmd.Flags().StringVar(&characterBackstory, "backstory", "", "a line of backstory")
	_ = confirmCharacterCmd.MarkFlagRequired("name")
	_ = confirmCharacterCmd.MarkFlagRequired("class")
	_ = confirmCharacterCmd.MarkFlagRequired("backstory")
}

func generateClasses(_ *cobra.Command, args []string) error {
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

	theme := strings.Join(args[1:], " ")
	fmt.Printf("Inventing classes for %q...\n", theme)

	resp, err := client.GenerateClasses(ctx, &talesv1alpha1.GenerateClassesRequest{
		Code:  args[0],
		Theme: theme,
	}, callOptions()...)
	if err != nil {
		return fmt.Errorf("failed to generate classes: %w", err)
	}

	if asJSON {
		return printJSON(resp)
	}
	styleOK.Println("Classes:")
	for _, class := range resp.GetClasses() {
		fmt.Printf("  - %s\n", class)
	}
	return nil
}

func confirmSetup(_ *cobra.Command, args []string) error {
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

	resp, err := client.ConfirmSetup(ctx, &talesv1alpha1.ConfirmSetupRequest{
		Code:        args[0],
		Theme:       setupTheme,
		PlayerLimit: int32(playerLimit),
	}, callOptions()...)
	if err != nil {
		return fmt.Errorf("failed to confirm setup: %w", err)
	}

	return printRoomResponse(resp)
}

func confirmCharacter(_ *cobra.Command, args []string) error {
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

	resp, err := client.ConfirmCharacter(ctx, &talesv1alpha1.ConfirmCharacterRequest{
		Code:      args[0],
		Name:      characterName,
		Class:     characterClass,
		Backstory: characterBackstory,
	}, callOptions()...)
	if err != nil {
		return fmt.Errorf("failed to confirm character: %w", err)
	}

	if asJSON {
		return printJSON(resp)
	}
	if resp.GetStarted() {
		styleOK.Println("The party is complete, the adventure begins!")
		fmt.Println()
	}
	printRoom(v1alpha1.RoomFromProto(resp.GetRoom()), "")
	return nil
}

func startGame(_ *cobra.Command, args []string) error {
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

	resp, err := client.StartGame(ctx, &talesv1alpha1.StartGameRequest{Code: args[0]}, callOptions()...)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	return printRoomResponse(resp)
}
