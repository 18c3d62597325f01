package resource

import (
	"encoding/json"
	"testing"

	"github.com/deppfellow/blog-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func TestNewUser(t *testing.T) {
	user := &model.User{
		ID:   1,
		Name: "Ann",
		Posts: []model.Post{
			{ID: 10, UserID: 1, Body: "hi", Comments: []model.Comment{{ID: 5, PostID: 10, UserID: 1, Body: "deep"}}},
		},
		Comments: []model.Comment{{ID: 5, PostID: 10, UserID: 1, Body: "deep"}},
	}

	tests := []struct {
		name string
		with model.Relations
		want string
	}{
		{
			name: "no relations omits populated fields",
			with: model.With(),
			want: `{"id":1,"name":"Ann"}`,
		},
		{
			name: "posts only, nested comments never rendered",
			with: model.With(model.RelationPosts),
			want: `{"id":1,"name":"Ann","posts":[{"id":10,"user_id":1,"body":"hi"}]}`,
		},
		{
			name: "posts and comments",
			with: model.With(model.RelationPosts, model.RelationComments),
			want: `{"id":1,"name":"Ann","posts":[{"id":10,"user_id":1,"body":"hi"}],"comments":[{"id":5,"post_id":10,"user_id":1,"body":"deep"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.JSONEq(t, tt.want, encode(t, NewUser(user, tt.with)))
		})
	}
}

func TestNewPost_RequestedEmptyRelation(t *testing.T) {
	post := &model.Post{ID: 3, UserID: 1, Body: "lonely"}

	assert.JSONEq(t, `{"id":3,"user_id":1,"body":"lonely","comments":[]}`,
		encode(t, NewPost(post, model.With(model.RelationComments))))
	assert.JSONEq(t, `{"id":3,"user_id":1,"body":"lonely"}`,
		encode(t, NewPost(post, model.With())))
}

func TestCollections(t *testing.T) {
	assert.Equal(t, `[]`, encode(t, NewUsers(nil)))
	assert.Equal(t, `[]`, encode(t, NewPosts(nil)))
	assert.Equal(t, `[]`, encode(t, NewComments(nil)))

	posts := []model.Post{
		{ID: 1, UserID: 1, Body: "a", Comments: []model.Comment{{ID: 1}}},
		{ID: 2, UserID: 1, Body: "b"},
	}
	assert.JSONEq(t, `[{"id":1,"user_id":1,"body":"a"},{"id":2,"user_id":1,"body":"b"}]`, encode(t, NewPosts(posts)))
}

func TestRelations(t *testing.T) {
	with := model.With(model.RelationPosts, model.RelationPosts)
	assert.Len(t, with, 1)
	assert.True(t, with.Has(model.RelationPosts))
	assert.False(t, with.Has(model.RelationComments))
	assert.False(t, model.With().Has(model.RelationPosts))
}
