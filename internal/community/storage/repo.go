package storage

import (
	"context"
	"errors"

	"github.com/MyNameIsWhaaat/oceanica/internal/community/model"
)

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
)

// Repository owns the community feed. Returned posts and comments are
// snapshots and must not be modified by callers.
type Repository interface {
	Posts(ctx context.Context) ([]*model.Post, error)
	Post(ctx context.Context, id int64) (*model.Post, error)
	CreatePost(ctx context.Context, p *model.Post) (*model.Post, error)
	// AddComment adds c as a root comment when parentID is 0 and as a reply
	// to parentID otherwise.
	AddComment(ctx context.Context, postID, parentID int64, c *model.CommentNode) (*model.CommentNode, error)
	LikePost(ctx context.Context, postID int64) (*model.Post, error)
	LikeComment(ctx context.Context, postID, commentID int64) (*model.CommentNode, error)
}
