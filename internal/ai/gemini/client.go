// Package gemini implements ai.Provider on top of the Google Gen AI SDK.
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/MyNameIsWhaaat/oceanica/internal/ai"
)

const (
	DefaultTextModel  = "gemini-3-flash-preview"
	DefaultImageModel = "gemini-2.5-flash-image"

	// Generated images fill the wide hero banner.
	imageAspectRatio = "16:9"
)

// generator is the part of *genai.Models the client uses.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type Config struct {
	APIKey     string
	TextModel  string
	ImageModel string
}

type Client struct {
	models     generator
	textModel  string
	imageModel string
}

// New returns a client for the Gemini API. With an empty key every call
// fails with ai.ErrNotConfigured.
func New(ctx context.Context, cfg Config) (*Client, error) {
	c := &Client{
		textModel:  cfg.TextModel,
		imageModel: cfg.ImageModel,
	}
	if c.textModel == "" {
		c.textModel = DefaultTextModel
	}
	if c.imageModel == "" {
		c.imageModel = DefaultImageModel
	}
	if cfg.APIKey == "" {
		return c, nil
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	c.models = gc.Models
	return c, nil
}

func (c *Client) Configured() bool { return c.models != nil }

func (c *Client) Ask(ctx context.Context, question string) (ai.Answer, error) {
	if c.models == nil {
		return ai.Answer{}, ai.ErrNotConfigured
	}

	prompt := fmt.Sprintf(`You are a marine biologist and oceanographer named Oceanica. `+
		`Answer the following question about the ocean in an engaging and informative way. Question: %q`, question)

	resp, err := c.models.GenerateContent(ctx, c.textModel, genai.Text(prompt), &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	})
	if err != nil {
		return ai.Answer{}, translate(err)
	}

	return ai.Answer{
		Text:    resp.Text(),
		Sources: sources(resp),
	}, nil
}

func (c *Client) Facts(ctx context.Context, n int) ([]ai.Fact, error) {
	if c.models == nil {
		return nil, ai.ErrNotConfigured
	}

	prompt := fmt.Sprintf("Provide %d important facts about ocean conservation and preservation. "+
		"For each fact, provide a topic and a detailed explanation.", n)

	resp, err := c.models.GenerateContent(ctx, c.textModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   factsSchema,
	})
	if err != nil {
		return nil, translate(err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return nil, ai.ErrNoContent
	}
	var facts []ai.Fact
	if err := json.Unmarshal([]byte(text), &facts); err != nil {
		return nil, fmt.Errorf("decode facts: %w", err)
	}
	return facts, nil
}

func (c *Client) Image(ctx context.Context, prompt string) (ai.Image, error) {
	if c.models == nil {
		return ai.Image{}, ai.ErrNotConfigured
	}

	resp, err := c.models.GenerateContent(ctx, c.imageModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
		ImageConfig:        &genai.ImageConfig{AspectRatio: imageAspectRatio},
	})
	if err != nil {
		return ai.Image{}, translate(err)
	}

	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return ai.Image{
					MIMEType: part.InlineData.MIMEType,
					Data:     part.InlineData.Data,
				}, nil
			}
		}
	}
	return ai.Image{}, fmt.Errorf("no image was generated: %w", ai.ErrNoContent)
}

var factsSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"topic": {
				Type:        genai.TypeString,
				Description: "The topic of the ocean conservation fact (e.g., Plastic Pollution).",
			},
			"fact": {
				Type:        genai.TypeString,
				Description: "An important fact about the conservation topic.",
			},
		},
		Required: []string{"topic", "fact"},
	},
}

func sources(resp *genai.GenerateContentResponse) []ai.Source {
	out := []ai.Source{}
	if len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return out
	}
	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk == nil || chunk.Web == nil || chunk.Web.URI == "" {
			continue
		}
		out = append(out, ai.Source{URI: chunk.Web.URI, Title: chunk.Web.Title})
	}
	return out
}

// translate turns SDK failures into classified *ai.Error values.
func translate(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &ai.Error{
			Kind:    ai.Classify(apiErr.Code, apiErr.Status, apiErr.Message),
			Code:    apiErr.Code,
			Status:  apiErr.Status,
			Message: apiErr.Message,
			Err:     err,
		}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return &ai.Error{
		Kind:    ai.Classify(0, "", err.Error()),
		Message: err.Error(),
		Err:     err,
	}
}
