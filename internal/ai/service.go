package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/MyNameIsWhaaat/oceanica/internal/ai/cache"
	"github.com/MyNameIsWhaaat/oceanica/internal/retry"
)

const (
	DefaultFactCount = 6
	noAnswerText     = "I couldn't find an answer to that question in the ocean's depths."
	maxPromptLen     = 1000
	factsKey         = "facts"
	imageKeyPrefix   = "image:"
)

type Options struct {
	FactCount int
	FactsTTL  time.Duration
	ImageTTL  time.Duration
	// Timeout bounds one provider call, retries excluded. Zero disables it.
	Timeout time.Duration
	// Budget bounds a whole operation, retries and backoff included, so work
	// stops before the HTTP write deadline. Zero disables it.
	Budget time.Duration
}

type Service struct {
	provider Provider
	cache    cache.Cache
	retrier  *retry.Retrier
	opts     Options
	log      zerolog.Logger
}

func NewService(p Provider, c cache.Cache, r *retry.Retrier, opts Options, log zerolog.Logger) *Service {
	if opts.FactCount <= 0 {
		opts.FactCount = DefaultFactCount
	}
	return &Service{
		provider: p,
		cache:    c,
		retrier:  r,
		opts:     opts,
		log:      log.With().Str("component", "ai").Logger(),
	}
}

func (s *Service) Ask(ctx context.Context, question string) (Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" || len(question) > maxPromptLen {
		return Answer{}, ErrInvalidInput
	}

	ctx, cancel := s.budgetContext(ctx)
	defer cancel()

	ans, err := retry.Do(ctx, s.retrier, func(ctx context.Context) (Answer, error) {
		ctx, cancel := s.callContext(ctx)
		defer cancel()
		return s.provider.Ask(ctx, question)
	})
	if err != nil {
		s.log.Error().Err(err).Str("kind", KindOf(err).String()).Msg("ask failed")
		return Answer{}, err
	}

	if strings.TrimSpace(ans.Text) == "" {
		ans.Text = noAnswerText
	}
	if ans.Sources == nil {
		ans.Sources = []Source{}
	}
	return ans, nil
}

// Facts never fails: when the service cannot produce facts the static set is
// returned with Fallback set.
func (s *Service) Facts(ctx context.Context) FactSet {
	if b, err := s.cache.Get(ctx, factsKey); err == nil {
		var facts []Fact
		if err := json.Unmarshal(b, &facts); err == nil && len(facts) > 0 {
			return FactSet{Facts: facts}
		}
		s.log.Warn().Msg("dropping malformed cached facts")
	} else if !errors.Is(err, cache.ErrMiss) {
		s.log.Warn().Err(err).Msg("facts cache read failed")
	}

	ctx, cancel := s.budgetContext(ctx)
	defer cancel()

	facts, err := retry.Do(ctx, s.retrier, func(ctx context.Context) ([]Fact, error) {
		ctx, cancel := s.callContext(ctx)
		defer cancel()
		return s.provider.Facts(ctx, s.opts.FactCount)
	})
	if err == nil && len(facts) == 0 {
		err = ErrNoContent
	}
	if err != nil {
		s.log.Warn().Err(err).Str("kind", KindOf(err).String()).Msg("serving fallback facts")
		return FactSet{Facts: FallbackFacts(), Fallback: true}
	}

	if b, err := json.Marshal(facts); err == nil {
		if err := s.cache.Set(ctx, factsKey, b, s.opts.FactsTTL); err != nil {
			s.log.Warn().Err(err).Msg("facts cache write failed")
		}
	}
	return FactSet{Facts: facts}
}

func (s *Service) Image(ctx context.Context, prompt string) (Image, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" || len(prompt) > maxPromptLen {
		return Image{}, ErrInvalidInput
	}

	key := imageKey(prompt)
	if b, err := s.cache.Get(ctx, key); err == nil {
		var img Image
		if err := json.Unmarshal(b, &img); err == nil && len(img.Data) > 0 {
			return img, nil
		}
	} else if !errors.Is(err, cache.ErrMiss) {
		s.log.Warn().Err(err).Msg("image cache read failed")
	}

	ctx, cancel := s.budgetContext(ctx)
	defer cancel()

	img, err := retry.Do(ctx, s.retrier, func(ctx context.Context) (Image, error) {
		ctx, cancel := s.callContext(ctx)
		defer cancel()
		return s.provider.Image(ctx, prompt)
	})
	if err != nil {
		s.log.Error().Err(err).Str("kind", KindOf(err).String()).Msg("image generation failed")
		return Image{}, err
	}
	if len(img.Data) == 0 {
		return Image{}, fmt.Errorf("generate image: %w", ErrNoContent)
	}

	if b, err := json.Marshal(img); err == nil {
		if err := s.cache.Set(ctx, key, b, s.opts.ImageTTL); err != nil {
			s.log.Warn().Err(err).Msg("image cache write failed")
		}
	}
	return img, nil
}

func (s *Service) budgetContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opts.Budget <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.opts.Budget)
}

func (s *Service) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opts.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.opts.Timeout)
}

func imageKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return imageKeyPrefix + hex.EncodeToString(sum[:])
}
