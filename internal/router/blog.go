package router

import (
	"net/http"

	"github.com/deppfellow/blog-api/internal/handler"
	"github.com/deppfellow/blog-api/internal/middleware"
	"github.com/labstack/echo/v4"
)

func registerBlogRoutes(r *echo.Echo, h *handler.Handlers, auth *middleware.AuthMiddleware) {
	r.GET("/user", handler.Handle(h.Auth.CurrentUser, http.StatusOK), auth.RequireAuth)

	users := r.Group("/users")
	existingUser := handler.RequireExisting(h.User.ResolveUser)
	users.GET("", handler.Handle(h.User.ListUsers, http.StatusOK))
	users.POST("", handler.Handle(h.User.CreateUser, http.StatusCreated))
	users.GET("/:id", handler.Handle(h.User.ShowUser, http.StatusOK))
	users.PUT("/:id", handler.Handle(h.User.UpdateUser, http.StatusOK), existingUser)
	users.PATCH("/:id", handler.Handle(h.User.UpdateUser, http.StatusOK), existingUser)
	users.DELETE("/:id", handler.HandleNoContent(h.User.DeleteUser, http.StatusNoContent), existingUser)
	users.GET("/:id/posts", handler.Handle(h.User.ListUserPosts, http.StatusOK))
	users.GET("/:id/comments", handler.Handle(h.User.ListUserComments, http.StatusOK))

	posts := r.Group("/posts")
	existingPost := handler.RequireExisting(h.Post.ResolvePost)
	posts.GET("", handler.Handle(h.Post.ListPosts, http.StatusOK))
	posts.POST("", handler.Handle(h.Post.CreatePost, http.StatusCreated))
	posts.GET("/:id", handler.Handle(h.Post.ShowPost, http.StatusOK))
	posts.PUT("/:id", handler.Handle(h.Post.UpdatePost, http.StatusOK), existingPost)
	posts.PATCH("/:id", handler.Handle(h.Post.UpdatePost, http.StatusOK), existingPost)
	posts.DELETE("/:id", handler.HandleNoContent(h.Post.DeletePost, http.StatusNoContent), existingPost)
	posts.GET("/:id/comments", handler.Handle(h.Post.ListPostComments, http.StatusOK))

	comments := r.Group("/comments")
	existingComment := handler.RequireExisting(h.Comment.ResolveComment)
	comments.GET("", handler.Handle(h.Comment.ListComments, http.StatusOK))
	comments.POST("", handler.Handle(h.Comment.CreateComment, http.StatusCreated))
	comments.GET("/:id", handler.Handle(h.Comment.ShowComment, http.StatusOK))
	comments.PUT("/:id", handler.Handle(h.Comment.UpdateComment, http.StatusOK), existingComment)
	comments.PATCH("/:id", handler.Handle(h.Comment.UpdateComment, http.StatusOK), existingComment)
	comments.DELETE("/:id", handler.HandleNoContent(h.Comment.DeleteComment, http.StatusNoContent), existingComment)
}
