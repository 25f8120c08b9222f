package model

import "time"

// CommentNode is a comment together with its replies. Nodes are treated as
// immutable once they are reachable from a post: updates build new nodes
// along the path to the changed one and share everything else.
type CommentNode struct {
	ID         int64          `json:"id"`
	Author     string         `json:"name"`
	AvatarSeed string         `json:"avatar_seed"`
	Body       string         `json:"content"`
	Likes      int            `json:"likes"`
	CreatedAt  time.Time      `json:"created_at"`
	Replies    []*CommentNode `json:"replies"`
}

// Clone returns a shallow copy of n. The reply slice is shared.
func (n *CommentNode) Clone() *CommentNode {
	cp := *n
	return &cp
}
