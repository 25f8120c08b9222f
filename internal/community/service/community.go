package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MyNameIsWhaaat/oceanica/internal/community/model"
	"github.com/MyNameIsWhaaat/oceanica/internal/community/storage"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

const (
	maxAuthorLen  = 50
	maxPostLen    = 500
	maxCommentLen = 300
)

type Option func(*communityService)

// WithAvatarSeed replaces the avatar seed generator.
func WithAvatarSeed(fn func() string) Option {
	return func(s *communityService) { s.avatarSeed = fn }
}

type communityService struct {
	repo       storage.Repository
	log        zerolog.Logger
	avatarSeed func() string
}

func New(repo storage.Repository, log zerolog.Logger, opts ...Option) CommunityService {
	s := &communityService{
		repo:       repo,
		log:        log.With().Str("component", "community").Logger(),
		avatarSeed: randomAvatarSeed,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *communityService) CreatePost(ctx context.Context, author, body string, category model.Category) (*model.Post, error) {
	author, err := validateAuthor(author)
	if err != nil {
		return nil, err
	}
	body, err = validateBody(body, maxPostLen)
	if err != nil {
		return nil, err
	}
	if category == "" {
		category = model.CategoryGeneral
	}
	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, category)
	}

	p, err := s.repo.CreatePost(ctx, &model.Post{
		Author:     author,
		AvatarSeed: s.avatarSeed(),
		Body:       body,
		Category:   category,
	})
	if err != nil {
		return nil, mapErr(err)
	}
	s.log.Debug().Int64("post_id", p.ID).Str("category", string(p.Category)).Msg("post created")
	return p, nil
}

func (s *communityService) ListPosts(ctx context.Context, q model.FeedQuery) ([]*model.Post, error) {
	if q.Sort == "" {
		q.Sort = model.SortNewest
	}
	if !q.Sort.Valid() {
		return nil, fmt.Errorf("%w: unknown sort %q", ErrInvalidInput, q.Sort)
	}
	if q.Category != "" && !q.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, q.Category)
	}
	author := strings.TrimSpace(q.Author)

	posts, err := s.repo.Posts(ctx)
	if err != nil {
		return nil, mapErr(err)
	}

	out := make([]*model.Post, 0, len(posts))
	for _, p := range posts {
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if author != "" && p.Author != author {
			continue
		}
		out = append(out, p)
	}

	switch q.Sort {
	case model.SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	case model.SortLikes:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Likes > out[j].Likes })
	case model.SortComments:
		sort.SliceStable(out, func(i, j int) bool { return len(out[i].Comments) > len(out[j].Comments) })
	}
	return out, nil
}

func (s *communityService) GetPost(ctx context.Context, id int64) (*model.Post, error) {
	if id <= 0 {
		return nil, ErrInvalidInput
	}
	p, err := s.repo.Post(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}
	return p, nil
}

func (s *communityService) AddComment(ctx context.Context, postID, parentID int64, author, body string) (*model.CommentNode, error) {
	if postID <= 0 || parentID < 0 {
		return nil, ErrInvalidInput
	}
	author, err := validateAuthor(author)
	if err != nil {
		return nil, err
	}
	body, err = validateBody(body, maxCommentLen)
	if err != nil {
		return nil, err
	}

	c, err := s.repo.AddComment(ctx, postID, parentID, &model.CommentNode{
		Author:     author,
		AvatarSeed: s.avatarSeed(),
		Body:       body,
	})
	if err != nil {
		return nil, mapErr(err)
	}
	s.log.Debug().Int64("post_id", postID).Int64("parent_id", parentID).Int64("comment_id", c.ID).Msg("comment added")
	return c, nil
}

func (s *communityService) LikePost(ctx context.Context, postID int64) (*model.Post, error) {
	if postID <= 0 {
		return nil, ErrInvalidInput
	}
	p, err := s.repo.LikePost(ctx, postID)
	if err != nil {
		return nil, mapErr(err)
	}
	return p, nil
}

func (s *communityService) LikeComment(ctx context.Context, postID, commentID int64) (*model.CommentNode, error) {
	if postID <= 0 || commentID <= 0 {
		return nil, ErrInvalidInput
	}
	c, err := s.repo.LikeComment(ctx, postID, commentID)
	if err != nil {
		return nil, mapErr(err)
	}
	return c, nil
}

// Profile collects every post by author, newest first. An author without
// posts gets an empty profile.
func (s *communityService) Profile(ctx context.Context, author string) (model.Profile, error) {
	author, err := validateAuthor(author)
	if err != nil {
		return model.Profile{}, err
	}
	posts, err := s.ListPosts(ctx, model.FeedQuery{Author: author, Sort: model.SortNewest})
	if err != nil {
		return model.Profile{}, err
	}

	prof := model.Profile{Name: author, PostCount: len(posts), Posts: posts}
	if len(posts) > 0 {
		prof.AvatarSeed = posts[0].AvatarSeed
	}
	return prof, nil
}

func validateAuthor(author string) (string, error) {
	author = strings.TrimSpace(author)
	if author == "" || utf8.RuneCountInString(author) > maxAuthorLen {
		return "", fmt.Errorf("%w: name must be 1..%d characters", ErrInvalidInput, maxAuthorLen)
	}
	return author, nil
}

func validateBody(body string, limit int) (string, error) {
	body = strings.TrimSpace(body)
	if body == "" || utf8.RuneCountInString(body) > limit {
		return "", fmt.Errorf("%w: content must be 1..%d characters", ErrInvalidInput, limit)
	}
	return body, nil
}

func mapErr(err error) error {
	if errors.Is(err, storage.ErrPostNotFound) || errors.Is(err, storage.ErrCommentNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return err
}

func randomAvatarSeed() string {
	kw := model.AvatarKeywords[rand.IntN(len(model.AvatarKeywords))]
	return kw + "-" + uuid.NewString()[:8]
}
