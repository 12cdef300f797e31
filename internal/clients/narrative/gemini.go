package narrative

import (
	"context"
	"encoding/base64"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/tidwall/gjson"
	"github.com/zyedidia/generic/cache"
	"github.com/zyedidia/generic/mapset"
	"google.golang.org/genai"

	"github.com/KirkDiggler/rpg-tales/internal/entities"
	"github.com/KirkDiggler/rpg-tales/internal/errors"
)

const (
	defaultTextModel  = "gemini-2.5-flash"
	defaultImageModel = "imagen-4.0-generate-001"
	defaultLanguage   = "Brazilian Portuguese"
	defaultTimeout    = 60 * time.Second
	defaultImageCache = 64

	imageMimeType    = "image/jpeg"
	imageAspectRatio = "16:9"
	jsonMimeType     = "application/json"
)

// Config configures the Gemini client
type Config struct {
	APIKey string
	// BaseURL overrides the API host, the SDK appends the API version
	BaseURL    string
	TextModel  string
	ImageModel string
	// Language the story and class names are written in
	Language       string
	HTTPTimeout    time.Duration
	ImageCacheSize int
	HTTPClient     *http.Client
}

// Validate fills defaults and checks required settings
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config is required")
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return errors.InvalidArgument("api key is required")
	}
	if cfg.TextModel == "" {
		cfg.TextModel = defaultTextModel
	}
	if cfg.ImageModel == "" {
		cfg.ImageModel = defaultImageModel
	}
	if cfg.Language == "" {
		cfg.Language = defaultLanguage
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = defaultTimeout
	}
	if cfg.ImageCacheSize == 0 {
		cfg.ImageCacheSize = defaultImageCache
	}
	return nil
}

type geminiClient struct {
	cfg    Config
	models *genai.Models

	// scene images by prompt; every player of a room asks for the same one
	imageMu sync.Mutex
	images  *cache.Cache[string, string]
}

// NewGemini creates a narrative client backed by the Gemini API
func NewGemini(ctx context.Context, cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	timeout := cfg.HTTPTimeout
	sdk, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: cfg.BaseURL,
			Timeout: &timeout,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create gemini client")
	}

	return &geminiClient{
		cfg:    *cfg,
		models: sdk.Models,
		images: cache.New[string, string](cfg.ImageCacheSize),
	}, nil
}

// GenerateClasses asks for ClassCount distinct classes matching theme
func (c *geminiClient) GenerateClasses(ctx context.Context, theme string) ([]string, error) {
	theme = strings.TrimSpace(theme)
	if theme == "" {
		return nil, errors.InvalidArgument("theme is required")
	}

	text, err := c.generateContent(ctx,
		fmt.Sprintf(classesSystemInstruction, ClassCount, c.cfg.Language),
		classesPrompt(theme),
		classesSchema(),
	)
	if err != nil {
		return nil, err
	}

	seen := mapset.New[string]()
	classes := make([]string, 0, ClassCount)
	for _, item := range gjson.Get(text, "classes").Array() {
		name := strings.TrimSpace(item.String())
		if name == "" || seen.Has(name) {
			continue
		}
		seen.Put(name)
		classes = append(classes, name)
		if len(classes) == ClassCount {
			break
		}
	}

	if len(classes) < ClassCount {
		return nil, errors.Newf(errors.CodeUnavailable,
			"model returned %d distinct character classes, want %d", len(classes), ClassCount).
			WithMeta("theme", theme)
	}

	return classes, nil
}

// GenerateStoryNode narrates the outcome of an action
func (c *geminiClient) GenerateStoryNode(ctx context.Context, input *StoryInput) (*entities.NarrativeDelta, error) {
	if input == nil || input.State == nil {
		return nil, errors.InvalidArgument("state is required")
	}

	text, err := c.generateContent(ctx,
		storySystemPrompt(input.State, c.cfg.Language),
		storyPrompt(input.Action, input.Roll),
		storySchema(),
	)
	if err != nil {
		return nil, err
	}

	return parseDelta(text)
}

// GenerateImage renders prompt as a 16:9 JPEG data URI
func (c *geminiClient) GenerateImage(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.InvalidArgument("prompt is required")
	}

	c.imageMu.Lock()
	cached, ok := c.images.Get(prompt)
	c.imageMu.Unlock()
	if ok {
		return cached, nil
	}

	start := time.Now()
	res, err := c.models.GenerateImages(ctx, c.cfg.ImageModel, prompt, &genai.GenerateImagesConfig{
		NumberOfImages:   1,
		OutputMIMEType:   imageMimeType,
		AspectRatio:      imageAspectRatio,
		PersonGeneration: genai.PersonGenerationAllowAdult,
	})
	if err != nil {
		return "", modelError(err, "image generation failed")
	}

	slog.Debug("image request finished",
		"model", c.cfg.ImageModel,
		"duration", time.Since(start))

	if len(res.GeneratedImages) == 0 || res.GeneratedImages[0].Image == nil || len(res.GeneratedImages[0].Image.ImageBytes) == 0 {
		return "", errors.Unavailable("model returned no image")
	}

	uri := "data:" + imageMimeType + ";base64," + base64.StdEncoding.EncodeToString(res.GeneratedImages[0].Image.ImageBytes)

	c.imageMu.Lock()
	c.images.Put(prompt, uri)
	c.imageMu.Unlock()

	return uri, nil
}

// generateContent runs one structured-output request and returns the JSON
// text the model produced
func (c *geminiClient) generateContent(ctx context.Context, system, prompt string, schema *genai.Schema) (string, error) {
	start := time.Now()
	res, err := c.models.GenerateContent(ctx, c.cfg.TextModel,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
			ResponseMIMEType:  jsonMimeType,
			ResponseSchema:    schema,
		},
	)
	if err != nil {
		return "", modelError(err, "model request failed")
	}

	slog.Debug("model request finished",
		"model", c.cfg.TextModel,
		"duration", time.Since(start))

	text := strings.TrimSpace(res.Text())
	if text == "" {
		var reason string
		if len(res.Candidates) > 0 {
			reason = string(res.Candidates[0].FinishReason)
		}
		return "", errors.Unavailable("model returned no content").WithMeta("finish_reason", reason)
	}
	if !gjson.Valid(text) {
		return "", errors.Unavailable("model returned malformed JSON")
	}

	return text, nil
}

// modelError reports every SDK failure as Unavailable and keeps the HTTP
// status when the API answered
func modelError(err error, message string) error {
	wrapped := errors.WrapWithCode(err, errors.CodeUnavailable, message)

	var apiErr genai.APIError
	if stderrors.As(err, &apiErr) {
		return wrapped.WithMeta("status", apiErr.Code)
	}
	return wrapped
}

// parseDelta decodes a story node and rejects anything without narration
func parseDelta(text string) (*entities.NarrativeDelta, error) {
	if !gjson.Get(text, "text").Exists() || strings.TrimSpace(gjson.Get(text, "text").String()) == "" {
		return nil, errors.Unavailable("model response is missing narration text")
	}

	var delta entities.NarrativeDelta
	if err := json.Unmarshal([]byte(text), &delta); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "model response does not match the story shape")
	}

	if mu := gjson.Get(text, "map_update"); mu.Exists() && !(mu.Get("x").Exists() && mu.Get("y").Exists()) {
		// a map update without coordinates cannot move the party
		delta.MapUpdate = nil
	}

	if delta.Choices == nil {
		delta.Choices = []entities.StoryChoice{}
	}

	return &delta, nil
}
