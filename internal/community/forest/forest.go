// Package forest implements persistent updates on comment forests.
//
// None of the functions modify their input. An update returns a new forest
// in which only the matched node and its ancestors are fresh objects; every
// other subtree is shared with the input by pointer. When the target is not
// present the input slice itself is returned together with found=false.
//
// Nodes are searched in pre-order, siblings in slice order. If identifiers
// are duplicated only the first match is updated.
package forest

import "github.com/MyNameIsWhaaat/oceanica/internal/community/model"

// AddReply appends reply as the last reply of the node identified by parentID.
func AddReply(f []*model.CommentNode, parentID int64, reply *model.CommentNode) ([]*model.CommentNode, bool) {
	return update(f, parentID, func(n *model.CommentNode) *model.CommentNode {
		cp := n.Clone()
		cp.Replies = appendNode(n.Replies, reply)
		return cp
	})
}

// IncrementLike adds exactly one like to the node identified by id.
func IncrementLike(f []*model.CommentNode, id int64) ([]*model.CommentNode, bool) {
	return update(f, id, func(n *model.CommentNode) *model.CommentNode {
		cp := n.Clone()
		cp.Likes++
		return cp
	})
}

// Find returns the first node with the given id, or nil.
func Find(f []*model.CommentNode, id int64) *model.CommentNode {
	for _, n := range f {
		if n.ID == id {
			return n
		}
		if found := Find(n.Replies, id); found != nil {
			return found
		}
	}
	return nil
}

// Count returns the number of nodes in the forest, replies included.
func Count(f []*model.CommentNode) int {
	total := 0
	for _, n := range f {
		total += 1 + Count(n.Replies)
	}
	return total
}

func update(f []*model.CommentNode, id int64, fn func(*model.CommentNode) *model.CommentNode) ([]*model.CommentNode, bool) {
	for i, n := range f {
		if n.ID == id {
			return replaceAt(f, i, fn(n)), true
		}
		if len(n.Replies) == 0 {
			continue
		}
		replies, ok := update(n.Replies, id, fn)
		if !ok {
			continue
		}
		cp := n.Clone()
		cp.Replies = replies
		return replaceAt(f, i, cp), true
	}
	return f, false
}

func replaceAt(f []*model.CommentNode, i int, n *model.CommentNode) []*model.CommentNode {
	out := make([]*model.CommentNode, len(f))
	copy(out, f)
	out[i] = n
	return out
}

func appendNode(f []*model.CommentNode, n *model.CommentNode) []*model.CommentNode {
	out := make([]*model.CommentNode, len(f), len(f)+1)
	copy(out, f)
	return append(out, n)
}
