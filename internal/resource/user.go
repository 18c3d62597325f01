package resource

import "github.com/deppfellow/blog-api/internal/model"

// User is the wire form of a user.
type User struct {
	ID       int64      `json:"id"`
	Name     string     `json:"name"`
	Posts    *[]Post    `json:"posts,omitempty"`
	Comments *[]Comment `json:"comments,omitempty"`
}

// NewUser projects u, nesting the relations named in with.
func NewUser(u *model.User, with model.Relations) User {
	return User{
		ID:       u.ID,
		Name:     u.Name,
		Posts:    nested(with.Has(model.RelationPosts), u.Posts, projectPost),
		Comments: nested(with.Has(model.RelationComments), u.Comments, NewComment),
	}
}

// NewUsers projects a collection of users without relations.
func NewUsers(users []model.User) []User {
	return collection(users, projectUser)
}

func projectUser(u *model.User) User {
	return NewUser(u, model.With())
}
