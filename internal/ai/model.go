package ai

import (
	"context"
	"encoding/base64"
)

// Provider is the boundary with the generative AI service. Implementations
// must return *Error for failures reported by the service.
type Provider interface {
	Ask(ctx context.Context, question string) (Answer, error)
	Facts(ctx context.Context, n int) ([]Fact, error)
	Image(ctx context.Context, prompt string) (Image, error)
}

type Source struct {
	URI   string `json:"uri"`
	Title string `json:"title,omitempty"`
}

type Answer struct {
	Text    string   `json:"text"`
	Sources []Source `json:"sources"`
}

type Fact struct {
	Topic string `json:"topic"`
	Fact  string `json:"fact"`
}

// FactSet is what the facts page renders. Fallback marks the static set used
// when the service could not be reached.
type FactSet struct {
	Facts    []Fact `json:"facts"`
	Fallback bool   `json:"fallback"`
}

type Image struct {
	MIMEType string `json:"mime_type"`
	Data     []byte `json:"data"`
}

func (i Image) DataURI() string {
	return "data:" + i.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(i.Data)
}
