// File: internal/handler/posts/posts.go
package posts

import (
	"blog/internal/dto"
	"blog/internal/service"
)

const (
	DuplicateTitleMessage = "A post with this title already exists."
	CommentLoginMessage   = "Please log in to comment on a blog."
)

// 以下變數供測試替換
var (
	listPosts  = service.ListPosts
	getPost    = service.GetPost
	createPost = service.CreatePost
	editPost   = service.EditPost
	deletePost = service.DeletePost
	addComment = service.AddComment
)

func toInput(f dto.PostForm) service.PostInput {
	return service.PostInput{
		Title:    f.Title,
		Subtitle: f.Subtitle,
		Body:     f.Body,
		ImgURL:   f.ImgURL,
	}
}
