// File: internal/model/post.go
package model

// PostDateLayout 文章日期格式，例如 "May 01, 2025"
const PostDateLayout = "January 02, 2006"

type Post struct {
	ID       int    `db:"id" json:"id"`
	Title    string `db:"title" json:"title"`
	Subtitle string `db:"subtitle" json:"subtitle"`
	Date     string `db:"date" json:"date"`
	Body     string `db:"body" json:"body"`
	ImgURL   string `db:"img_url" json:"img_url"`
	AuthorID int    `db:"author_id" json:"author_id"`

	// AuthorName 由 users JOIN 取得，不寫回資料表
	AuthorName string `db:"author_name" json:"author_name"`
}
