package client

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	talesv1alpha1 "github.com/KirkDiggler/rpg-tales/gen/go/tales/v1alpha1"
)

var actionRoll string

var actCmd = &cobra.Command{
	Use:   "act [code] [action...]",
	Short: "Take your turn",
	Long: `Describe what your character does and submit a d20 roll. Without --roll
the server's dice are used.`,
	Example: `  act ABC123 --roll 17 I pick the lock on the brass door`,
	Args:    cobra.MinimumNArgs(2),
	RunE:    act,
}

var sceneImageCmd = &cobra.Command{
	Use:   "image [code]",
	Short: "Render the current scene and print its data URI",
	Args:  cobra.ExactArgs(1),
	RunE:  sceneImage,
}

var journalLimit int

var journalCmd = &cobra.Command{
	Use:   "journal [code]",
	Short: "List the turns played in a room",
	Args:  cobra.ExactArgs(1),
	RunE:  showJournal,
}

var rollCmd = &cobra.Command{
	Use:   "roll",
	Short: "Roll a d20",
	Args:  cobra.NoArgs,
	RunE:  roll,
}

func init() {
	actCmd.Flags().StringVar(&actionRoll, "roll", "", "your d20 result (1-20)")
	journalCmd.Flags().IntVar(&journalLimit, "limit", 0, "only the last N turns")
}

func act(_ *cobra.Command, args []string) error {
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

	rollText := actionRoll
	if rollText == "" {
		rolled, err := client.RollD20(ctx, &talesv1alpha1.RollD20Request{}, callOptions()...)
		if err != nil {
			return fmt.Errorf("failed to roll: %w", err)
		}
		rollText = fmt.Sprint(rolled.GetRoll())
		styleInfo.Printf("🎲 rolled %s\n", rollText)
	}

	resp, err := client.PerformAction(ctx, &talesv1alpha1.PerformActionRequest{
		Code:     args[0],
		Action:   strings.Join(args[1:], " "),
		RollText: rollText,
	}, callOptions()...)
	if err != nil {
		return fmt.Errorf("failed to perform action: %w", err)
	}

	return printRoomResponse(resp)
}

func sceneImage(_ *cobra.Command, args []string) error {
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

	resp, err := client.GenerateSceneImage(ctx, &talesv1alpha1.GenerateSceneImageRequest{Code: args[0]}, callOptions()...)
	if err != nil {
		return fmt.Errorf("failed to generate image: %w", err)
	}

	if asJSON {
		return printJSON(resp)
	}
	if resp.GetImage() == "" {
		styleWarn.Println("No image for this scene")
		return nil
	}
	fmt.Printf("Prompt: %s\n", resp.GetPrompt())
	fmt.Println(resp.GetImage())
	return nil
}

func showJournal(_ *cobra.Command, args []string) error {
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

	resp, err := client.GetJournal(ctx, &talesv1alpha1.GetJournalRequest{
		Code:  args[0],
		Limit: int32(journalLimit),
	}, callOptions()...)
	if err != nil {
		return fmt.Errorf("failed to get journal: %w", err)
	}

	if asJSON {
		return printJSON(resp)
	}
	if len(resp.GetEntries()) == 0 {
		fmt.Println("No turns yet")
		return nil
	}
	for _, e := range resp.GetEntries() {
		styleTitle.Printf("Turn %d", e.GetTurn())
		fmt.Printf("  %s rolled %d: %s\n", e.GetCharacterName(), e.GetRoll(), e.GetAction())
		fmt.Printf("  %s\n\n", e.GetNarrative())
	}
	return nil
}

func roll(_ *cobra.Command, _ []string) error {
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

	resp, err := client.RollD20(ctx, &talesv1alpha1.RollD20Request{}, callOptions()...)
	if err != nil {
		return fmt.Errorf("failed to roll: %w", err)
	}

	if asJSON {
		return printJSON(resp)
	}
	switch resp.GetRoll() {
	case 20:
		styleOK.Printf("🎲 %d critical!\n", resp.GetRoll())
	case 1:
		styleError.Printf("🎲 %d fumble\n", resp.GetRoll())
	default:
		fmt.Printf("🎲 %d\n", resp.GetRoll())
	}
	return nil
}
