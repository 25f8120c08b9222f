package inmemory

import (
	"context"
	"sync"
	"time"

	"github.com/MyNameIsWhaaat/oceanica/internal/community/forest"
	"github.com/MyNameIsWhaaat/oceanica/internal/community/model"
	"github.com/MyNameIsWhaaat/oceanica/internal/community/storage"
)

// Repo keeps the feed as an immutable snapshot. Every write builds a new
// post slice, so a snapshot handed out by Posts never changes.
type Repo struct {
	mu sync.RWMutex

	posts  []*model.Post
	lastID int64
	now    func() time.Time
}

type Option func(*Repo)

// WithClock overrides the time source used for timestamps and identifiers.
func WithClock(now func() time.Time) Option {
	return func(r *Repo) { r.now = now }
}

// WithPosts seeds the feed. Seeded identifiers count towards the next id.
func WithPosts(posts ...*model.Post) Option {
	return func(r *Repo) {
		r.posts = append([]*model.Post(nil), posts...)
		for _, p := range posts {
			r.observeID(p.ID)
			observeForest(r, p.Comments)
		}
	}
}

func New(opts ...Option) *Repo {
	r := &Repo{
		posts: []*model.Post{},
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Repo) Posts(ctx context.Context) ([]*model.Post, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.posts, nil
}

func (r *Repo) Post(ctx context.Context, id int64) (*model.Post, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexLocked(id)
	if i < 0 {
		return nil, storage.ErrPostNotFound
	}
	return r.posts[i], nil
}

func (r *Repo) CreatePost(ctx context.Context, p *model.Post) (*model.Post, error) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	post := p.Clone()
	post.ID, post.CreatedAt = r.nextIDLocked()
	if post.Comments == nil {
		post.Comments = []*model.CommentNode{}
	}

	posts := make([]*model.Post, 0, len(r.posts)+1)
	posts = append(posts, post)
	r.posts = append(posts, r.posts...)

	return post, nil
}

func (r *Repo) AddComment(ctx context.Context, postID, parentID int64, c *model.CommentNode) (*model.CommentNode, error) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexLocked(postID)
	if i < 0 {
		return nil, storage.ErrPostNotFound
	}

	if parentID != 0 && forest.Find(r.posts[i].Comments, parentID) == nil {
		return nil, storage.ErrCommentNotFound
	}

	node := c.Clone()
	node.ID, node.CreatedAt = r.nextIDLocked()
	if node.Replies == nil {
		node.Replies = []*model.CommentNode{}
	}

	post := r.posts[i].Clone()
	if parentID == 0 {
		comments := make([]*model.CommentNode, len(post.Comments), len(post.Comments)+1)
		copy(comments, post.Comments)
		post.Comments = append(comments, node)
	} else {
		post.Comments, _ = forest.AddReply(post.Comments, parentID, node)
	}

	r.replaceLocked(i, post)
	return node, nil
}

func (r *Repo) LikePost(ctx context.Context, postID int64) (*model.Post, error) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexLocked(postID)
	if i < 0 {
		return nil, storage.ErrPostNotFound
	}

	post := r.posts[i].Clone()
	post.Likes++
	r.replaceLocked(i, post)
	return post, nil
}

func (r *Repo) LikeComment(ctx context.Context, postID, commentID int64) (*model.CommentNode, error) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexLocked(postID)
	if i < 0 {
		return nil, storage.ErrPostNotFound
	}

	comments, found := forest.IncrementLike(r.posts[i].Comments, commentID)
	if !found {
		return nil, storage.ErrCommentNotFound
	}

	post := r.posts[i].Clone()
	post.Comments = comments
	r.replaceLocked(i, post)
	return forest.Find(comments, commentID), nil
}

func (r *Repo) indexLocked(id int64) int {
	for i, p := range r.posts {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (r *Repo) replaceLocked(i int, p *model.Post) {
	posts := make([]*model.Post, len(r.posts))
	copy(posts, r.posts)
	posts[i] = p
	r.posts = posts
}

// nextIDLocked derives identifiers from the clock in milliseconds, bumping
// past the previous id so they stay unique when calls share a millisecond.
func (r *Repo) nextIDLocked() (int64, time.Time) {
	now := r.now().UTC()
	id := now.UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id
	return id, now
}

func (r *Repo) observeID(id int64) {
	if id > r.lastID {
		r.lastID = id
	}
}

func observeForest(r *Repo, f []*model.CommentNode) {
	for _, n := range f {
		r.observeID(n.ID)
		observeForest(r, n.Replies)
	}
}
