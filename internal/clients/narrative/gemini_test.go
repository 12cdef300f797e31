package narrative

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-tales/internal/entities"
	"github.com/KirkDiggler/rpg-tales/internal/errors"
	"github.com/KirkDiggler/rpg-tales/internal/testutils"
)

type GeminiTestSuite struct {
	suite.Suite

	server  *httptest.Server
	handler http.HandlerFunc
	calls   atomic.Int32
	client  Client
	ctx     context.Context
}

func TestGeminiSuite(t *testing.T) {
	suite.Run(t, new(GeminiTestSuite))
}

func (s *GeminiTestSuite) SetupTest() {
	s.calls.Store(0)
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.calls.Add(1)
		s.Equal("test-key", r.Header.Get("x-goog-api-key"))
		s.handler(w, r)
	}))

	s.ctx = context.Background()
	client, err := NewGemini(s.ctx, &Config{
		APIKey:  "test-key",
		BaseURL: s.server.URL,
	})
	s.Require().NoError(err)
	s.client = client
}

func (s *GeminiTestSuite) TearDownTest() {
	s.server.Close()
}

// candidate wraps model JSON text the way generateContent responds
func candidate(text string) string {
	body, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{{
			"content": map[string]any{
				"parts": []map[string]any{{"text": text}},
			},
			"finishReason": "STOP",
		}},
	})
	return string(body)
}

func (s *GeminiTestSuite) TestGenerateClasses() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/v1beta/models/gemini-2.5-flash:generateContent", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		s.Require().NoError(err)
		s.Contains(string(body), "Haunted lighthouse")
		s.Contains(string(body), `"responseMimeType":"application/json"`)

		_, _ = io.WriteString(w, candidate(`{"classes":["Lamplighter"," Tide Witch ","Lamplighter","Wrecker","Gull Whisperer","Extra"]}`))
	}

	classes, err := s.client.GenerateClasses(s.ctx, "Haunted lighthouse")
	s.Require().NoError(err)
	s.Equal([]string{"Lamplighter", "Tide Witch", "Wrecker", "Gull Whisperer"}, classes)
}

func (s *GeminiTestSuite) TestGenerateClassesRequiresTheme() {
	_, err := s.client.GenerateClasses(s.ctx, "  ")
	s.True(errors.IsInvalidArgument(err))
	s.Equal(int32(0), s.calls.Load())
}

func (s *GeminiTestSuite) TestGenerateClassesEmpty() {
	s.handler = func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, candidate(`{"classes":[]}`))
	}

	_, err := s.client.GenerateClasses(s.ctx, "Steam")
	s.True(errors.IsUnavailable(err))
}

func (s *GeminiTestSuite) TestGenerateClassesTooFewAfterDedup() {
	s.handler = func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, candidate(`{"classes":["Stoker","stoker ","Stoker"," ","Valve Knight","Valve Knight"]}`))
	}

	classes, err := s.client.GenerateClasses(s.ctx, "Steam")
	s.Nil(classes)
	s.True(errors.IsUnavailable(err), "got %v", err)
	s.Contains(err.Error(), "want 4")
}

func (s *GeminiTestSuite) TestAPIErrorKeepsStatus() {
	s.handler = func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, `{"error":{"code":429,"message":"quota","status":"RESOURCE_EXHAUSTED"}}`)
	}

	_, err := s.client.GenerateClasses(s.ctx, "Steam")
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
	s.Equal(429, errors.GetMeta(err)["status"])
}

func (s *GeminiTestSuite) TestGenerateStoryNode() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		s.Require().NoError(err)
		s.Contains(string(body), testutils.TestCharacterName)
		s.Contains(string(body), "d20 roll: 17")

		_, _ = io.WriteString(w, candidate(`{
			"text": "The lamp roars back to life.",
			"image_prompt": "lighthouse beam cutting through storm",
			"choices": [{"text": "Signal the ship"}],
			"found_items": ["brass key"],
			"health_changes": [{"character_name": "Thorin Oakenshield", "change": -2}],
			"map_update": {"x": 12.5, "y": 80, "location_name": "Lamp Room", "icon": "🕯️"},
			"story_summary": "The keeper relit the lamp."
		}`))
	}

	delta, err := s.client.GenerateStoryNode(s.ctx, &StoryInput{
		State:  testutils.CreateTestRoomAtStage(true, testutils.StagePlaying),
		Action: "relight the lamp",
		Roll:   17,
	})
	s.Require().NoError(err)
	s.Equal("The lamp roars back to life.", delta.Text)
	s.Equal([]string{"brass key"}, delta.FoundItems)
	s.Equal([]entities.HealthChange{{CharacterName: testutils.TestCharacterName, Change: -2}}, delta.HealthChanges)
	s.Require().NotNil(delta.MapUpdate)
	s.Equal(entities.Position{X: 12.5, Y: 80}, delta.MapUpdate.Position())
	s.Equal("The keeper relit the lamp.", delta.StorySummary)
}

func (s *GeminiTestSuite) TestGenerateStoryNodeFailures() {
	testCases := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"error":{"message":"overloaded"}}`},
		{name: "no candidates", status: http.StatusOK, body: `{"candidates":[]}`},
		{name: "malformed model json", status: http.StatusOK, body: candidate(`{"text": "cut off`)},
		{name: "missing text", status: http.StatusOK, body: candidate(`{"story_summary": "x"}`)},
		{name: "wrong shape", status: http.StatusOK, body: candidate(`{"text": "ok", "found_items": "not a list"}`)},
		{name: "not json", status: http.StatusOK, body: `<html>`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.handler = func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			}

			delta, err := s.client.GenerateStoryNode(s.ctx, &StoryInput{
				State:  testutils.CreateTestRoomAtStage(false, testutils.StagePlaying),
				Action: "look around",
				Roll:   10,
			})
			s.Nil(delta)
			s.True(errors.IsUnavailable(err), "got %v", err)
		})
	}
}

func (s *GeminiTestSuite) TestMapUpdateWithoutCoordinatesDropped() {
	s.handler = func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, candidate(`{"text":"You wait.","story_summary":"","map_update":{"location_name":"Nowhere"}}`))
	}

	delta, err := s.client.GenerateStoryNode(s.ctx, &StoryInput{
		State:  testutils.CreateTestRoomAtStage(false, testutils.StagePlaying),
		Action: "wait",
		Roll:   5,
	})
	s.Require().NoError(err)
	s.Nil(delta.MapUpdate)
	s.NotNil(delta.Choices)
}

func (s *GeminiTestSuite) TestGenerateImageCachesByPrompt() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/v1beta/models/imagen-4.0-generate-001:predict", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		s.Require().NoError(err)
		s.Contains(string(body), `"aspectRatio":"16:9"`)

		_, _ = io.WriteString(w, `{"predictions":[{"bytesBase64Encoded":"aGVsbG8=","mimeType":"image/jpeg"}]}`)
	}

	uri, err := s.client.GenerateImage(s.ctx, "storm lighthouse")
	s.Require().NoError(err)
	s.Equal("data:image/jpeg;base64,aGVsbG8=", uri)

	again, err := s.client.GenerateImage(s.ctx, "storm lighthouse")
	s.Require().NoError(err)
	s.Equal(uri, again)
	s.Equal(int32(1), s.calls.Load())
}

func (s *GeminiTestSuite) TestGenerateImageEmpty() {
	s.handler = func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"predictions":[]}`)
	}

	_, err := s.client.GenerateImage(s.ctx, "anything")
	s.True(errors.IsUnavailable(err))
}

func TestNewGeminiRequiresKey(t *testing.T) {
	_, err := NewGemini(context.Background(), &Config{})
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestStorySystemPrompt(t *testing.T) {
	state := testutils.CreateTestRoomAtStage(true, testutils.StagePlaying)
	prompt := storySystemPrompt(state, "English")

	for _, want := range []string{state.Theme, "HP: 20/20", "nothing", "(50%, 50%)", "Write the story in English."} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}
