package resource

import "github.com/deppfellow/blog-api/internal/model"

// Post is the wire form of a post.
type Post struct {
	ID       int64      `json:"id"`
	UserID   int64      `json:"user_id"`
	Body     string     `json:"body"`
	Comments *[]Comment `json:"comments,omitempty"`
}

// NewPost projects p, nesting its comments when with requests them.
func NewPost(p *model.Post, with model.Relations) Post {
	return Post{
		ID:       p.ID,
		UserID:   p.UserID,
		Body:     p.Body,
		Comments: nested(with.Has(model.RelationComments), p.Comments, NewComment),
	}
}

// NewPosts projects a collection of posts without relations.
func NewPosts(posts []model.Post) []Post {
	return collection(posts, projectPost)
}

func projectPost(p *model.Post) Post {
	return NewPost(p, model.With())
}
