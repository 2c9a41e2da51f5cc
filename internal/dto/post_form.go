// File: internal/dto/post_form.go
package dto

// PostForm 新增與編輯文章共用的表單
// swagger:model dto.PostForm
type PostForm struct {
	Title    string `form:"title" json:"title" validate:"required,max=250" example:"The Life of Cactus"`
	Subtitle string `form:"subtitle" json:"subtitle" validate:"required,max=250" example:"Who knew that cacti lived such interesting lives."`
	ImgURL   string `form:"img_url" json:"img_url" validate:"required,url,max=250" example:"https://images.example.com/cactus.jpg"`
	Body     string `form:"body" json:"body" validate:"required" example:"<p>Nori grape silver beet broccoli kombu beet greens fava bean.</p>"`
}

// swagger:model dto.CommentForm
type CommentForm struct {
	Body string `form:"body" json:"body" validate:"required" example:"<p>Great post!</p>"`
}
