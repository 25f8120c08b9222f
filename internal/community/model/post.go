package model

import "time"

type Post struct {
	ID         int64          `json:"id"`
	Author     string         `json:"name"`
	AvatarSeed string         `json:"avatar_seed"`
	Body       string         `json:"content"`
	Category   Category       `json:"category"`
	Likes      int            `json:"likes"`
	CreatedAt  time.Time      `json:"created_at"`
	Comments   []*CommentNode `json:"comments"`
}

// Clone returns a shallow copy of p. The comment forest is shared.
func (p *Post) Clone() *Post {
	cp := *p
	return &cp
}

type Sort string

const (
	SortNewest   Sort = "newest"
	SortLikes    Sort = "likes"
	SortComments Sort = "comments"
)

func (s Sort) Valid() bool {
	switch s {
	case SortNewest, SortLikes, SortComments:
		return true
	}
	return false
}

// FeedQuery filters and orders the community feed. Zero values mean
// "all categories", newest first and any author.
type FeedQuery struct {
	Category Category
	Sort     Sort
	Author   string
}

type Profile struct {
	Name       string  `json:"name"`
	AvatarSeed string  `json:"avatar_seed"`
	PostCount  int     `json:"post_count"`
	Posts      []*Post `json:"posts"`
}
