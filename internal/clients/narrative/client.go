// Package narrative is the client for the generative model that narrates the
// adventure, invents character classes and paints scenes
package narrative

//go:generate mockgen -destination=mock/mock_client.go -package=narrativemock github.com/KirkDiggler/rpg-tales/internal/clients/narrative Client

import (
	"context"

	"github.com/KirkDiggler/rpg-tales/internal/entities"
)

// ClassCount is how many classes are offered per theme
const ClassCount = 4

// StoryInput is everything the narrator needs to resolve one action
type StoryInput struct {
	State  *entities.GameState
	Action string
	Roll   int
}

// Client defines the interface for narrative generation
type Client interface {
	// GenerateClasses invents ClassCount character classes for a theme
	GenerateClasses(ctx context.Context, theme string) ([]string, error)

	// GenerateStoryNode narrates the outcome of an action. It either returns a
	// well-formed delta or fails.
	GenerateStoryNode(ctx context.Context, input *StoryInput) (*entities.NarrativeDelta, error)

	// GenerateImage renders a prompt and returns an embeddable data URI
	GenerateImage(ctx context.Context, prompt string) (string, error)
}
