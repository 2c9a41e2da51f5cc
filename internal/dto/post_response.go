// File: internal/dto/post_response.go
package dto

import "blog/internal/model"

// swagger:model dto.PostResponse
type PostResponse struct {
	ID         int    `json:"id" example:"1"`
	Title      string `json:"title" example:"The Life of Cactus"`
	Subtitle   string `json:"subtitle" example:"Who knew that cacti lived such interesting lives."`
	Date       string `json:"date" example:"May 01, 2025"`
	Body       string `json:"body" example:"<p>...</p>"`
	ImgURL     string `json:"img_url" example:"https://images.example.com/cactus.jpg"`
	AuthorID   int    `json:"author_id" example:"1"`
	AuthorName string `json:"author_name" example:"Alice"`
}

// swagger:model dto.CommentResponse
type CommentResponse struct {
	ID         int    `json:"id" example:"1"`
	Body       string `json:"body" example:"<p>Great post!</p>"`
	AuthorID   int    `json:"author_id" example:"2"`
	AuthorName string `json:"author_name" example:"Bob"`
}

func NewPostResponse(p model.Post) PostResponse {
	return PostResponse{
		ID:         p.ID,
		Title:      p.Title,
		Subtitle:   p.Subtitle,
		Date:       p.Date,
		Body:       p.Body,
		ImgURL:     p.ImgURL,
		AuthorID:   p.AuthorID,
		AuthorName: p.AuthorName,
	}
}

func NewPostResponses(posts []model.Post) []PostResponse {
	out := make([]PostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, NewPostResponse(p))
	}
	return out
}

func NewCommentResponses(comments []model.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, CommentResponse{
			ID:         c.ID,
			Body:       c.Body,
			AuthorID:   c.AuthorID,
			AuthorName: c.AuthorName,
		})
	}
	return out
}
