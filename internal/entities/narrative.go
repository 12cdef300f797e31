package entities

import "slices"

// Die roll bounds for player actions
const (
	MinRoll = 1
	MaxRoll = 20
)

// StoryChoice is a suggested next action
type StoryChoice struct {
	Text string `json:"text"`
}

// HealthChange adjusts the HP of a character found by exact name
type HealthChange struct {
	CharacterName string `json:"character_name"`
	Change        int    `json:"change"`
}

// NarrativeDelta is the structured result of one narration call.
// Optional fields left empty mean "no change".
type NarrativeDelta struct {
	Text          string         `json:"text"`
	ImagePrompt   string         `json:"image_prompt"`
	Choices       []StoryChoice  `json:"choices"`
	FoundItems    []string       `json:"found_items,omitempty"`
	HealthChanges []HealthChange `json:"health_changes,omitempty"`
	MapUpdate     *MapLocation   `json:"map_update,omitempty"`
	StorySummary  string         `json:"story_summary"`
}

// Clone returns a deep copy of the delta
func (d *NarrativeDelta) Clone() *NarrativeDelta {
	if d == nil {
		return nil
	}

	out := *d
	out.Choices = slices.Clone(d.Choices)
	out.FoundItems = slices.Clone(d.FoundItems)
	out.HealthChanges = slices.Clone(d.HealthChanges)
	if d.MapUpdate != nil {
		loc := *d.MapUpdate
		out.MapUpdate = &loc
	}
	return &out
}
