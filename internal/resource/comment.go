package resource

import "github.com/deppfellow/blog-api/internal/model"

// Comment is the wire form of a comment.
type Comment struct {
	ID     int64  `json:"id"`
	PostID int64  `json:"post_id"`
	UserID int64  `json:"user_id"`
	Body   string `json:"body"`
}

func NewComment(c *model.Comment) Comment {
	return Comment{
		ID:     c.ID,
		PostID: c.PostID,
		UserID: c.UserID,
		Body:   c.Body,
	}
}

// NewComments projects a collection of comments.
func NewComments(comments []model.Comment) []Comment {
	return collection(comments, NewComment)
}
