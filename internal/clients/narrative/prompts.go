package narrative

import (
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/KirkDiggler/rpg-tales/internal/entities"
)

const classesSystemInstruction = `You are an RPG world builder. Based on the given theme, create a list of %d character classes that fit that universe perfectly. Write the class names in %s.`

const storySystemInstruction = `You are an RPG game master. The theme is "%s". The heroes are: %s.
The inventory holds: %s.
Story so far: %s.
The party's position on the map (x,y as percentages) is (%g%%, %g%%).

The player performed an action and rolled a d20. Narrate the outcome.
- 1: Critical failure.
- 2-10: Failure.
- 11-19: Success.
- 20: Critical success.

Your answer MUST be a valid JSON object.
Write the story in %s.`

func classesPrompt(theme string) string {
	return fmt.Sprintf("The theme is: %q.", theme)
}

func storySystemPrompt(state *entities.GameState, language string) string {
	heroes := make([]string, 0, len(state.Characters))
	for _, c := range state.Characters {
		heroes = append(heroes, fmt.Sprintf("%s (Class: %s, HP: %d/%d, Backstory: %s)",
			c.Name, c.Class, c.HP, c.MaxHP, c.Backstory))
	}

	inventory := "nothing"
	if len(state.Inventory) > 0 {
		inventory = strings.Join(state.Inventory, ", ")
	}

	return fmt.Sprintf(storySystemInstruction,
		state.Theme,
		strings.Join(heroes, "; "),
		inventory,
		state.StorySummary,
		state.Map.CurrentPosition.X,
		state.Map.CurrentPosition.Y,
		language,
	)
}

func storyPrompt(action string, roll int) string {
	return fmt.Sprintf("Player action: %q. d20 roll: %d. Generate the narration and every other field of the JSON.", action, roll)
}

// schema helpers build the OpenAPI subset the model accepts
func schemaObject(properties map[string]*genai.Schema, description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeObject, Properties: properties, Description: description}
}

func schemaArray(items *genai.Schema, description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Items: items, Description: description}
}

func schemaScalar(kind genai.Type, description string) *genai.Schema {
	return &genai.Schema{Type: kind, Description: description}
}

func classesSchema() *genai.Schema {
	classes := schemaArray(schemaScalar(genai.TypeString, ""), fmt.Sprintf("A list of %d RPG character class names.", ClassCount))
	count := int64(ClassCount)
	classes.MinItems = &count
	classes.MaxItems = &count

	s := schemaObject(map[string]*genai.Schema{"classes": classes}, "")
	s.Required = []string{"classes"}
	return s
}

func storySchema() *genai.Schema {
	s := schemaObject(map[string]*genai.Schema{
		"text":         schemaScalar(genai.TypeString, "Vivid narration of the action's outcome."),
		"image_prompt": schemaScalar(genai.TypeString, "A short English prompt to illustrate the scene."),
		"choices": schemaArray(
			schemaObject(map[string]*genai.Schema{"text": schemaScalar(genai.TypeString, "")}, ""),
			"Three suggested next actions for the player."),
		"found_items": schemaArray(schemaScalar(genai.TypeString, ""), "Items found, if any."),
		"health_changes": schemaArray(
			schemaObject(map[string]*genai.Schema{
				"character_name": schemaScalar(genai.TypeString, ""),
				"change":         schemaScalar(genai.TypeInteger, "Health change, negative for damage and positive for healing."),
			}, ""),
			"Health changes for the characters."),
		"map_update": schemaObject(map[string]*genai.Schema{
			"x":             schemaScalar(genai.TypeNumber, "New X coordinate (0-100)."),
			"y":             schemaScalar(genai.TypeNumber, "New Y coordinate (0-100)."),
			"location_name": schemaScalar(genai.TypeString, "Name of the new location."),
			"icon":          schemaScalar(genai.TypeString, "A single emoji for the location."),
		}, "Map position update, if the party moved."),
		"story_summary": schemaScalar(genai.TypeString, "An updated summary of the key events of the adventure."),
	}, "")
	s.Required = []string{"text", "story_summary"}
	return s
}
