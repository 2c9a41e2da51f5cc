// File: internal/model/comment.go
package model

type Comment struct {
	ID         int    `db:"id" json:"id"`
	Body       string `db:"body" json:"body"`
	AuthorID   int    `db:"author_id" json:"author_id"`
	PostID     int    `db:"post_id" json:"post_id"`
	AuthorName string `db:"author_name" json:"author_name"`
}
