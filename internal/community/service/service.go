package service

import (
	"context"

	"github.com/MyNameIsWhaaat/oceanica/internal/community/model"
)

type CommunityService interface {
	CreatePost(ctx context.Context, author, body string, category model.Category) (*model.Post, error)
	ListPosts(ctx context.Context, q model.FeedQuery) ([]*model.Post, error)
	GetPost(ctx context.Context, id int64) (*model.Post, error)
	// AddComment replies to parentID, or adds a root comment when parentID is 0.
	AddComment(ctx context.Context, postID, parentID int64, author, body string) (*model.CommentNode, error)
	LikePost(ctx context.Context, postID int64) (*model.Post, error)
	LikeComment(ctx context.Context, postID, commentID int64) (*model.CommentNode, error)
	Profile(ctx context.Context, author string) (model.Profile, error)
}
