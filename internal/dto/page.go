// File: internal/dto/page.go
package dto

// Page 所有頁面共用的欄位
type Page struct {
	LoggedIn    bool          `json:"logged_in" example:"true"`
	CurrentUser *UserResponse `json:"current_user,omitempty"`
	Flashes     []string      `json:"flashes"`
}

// IndexPage 首頁文章列表
// swagger:model dto.IndexPage
type IndexPage struct {
	Page
	Posts []PostResponse `json:"posts"`
}

// PostPage 單篇文章與留言
// swagger:model dto.PostPage
type PostPage struct {
	Page
	Post     PostResponse      `json:"post"`
	Comments []CommentResponse `json:"comments"`
	Form     CommentForm       `json:"form"`
}

// PostFormPage 新增或編輯文章表單
// swagger:model dto.PostFormPage
type PostFormPage struct {
	Page
	IsEdit bool     `json:"is_edit" example:"false"`
	Form   PostForm `json:"form"`
}

// AuthPage 註冊與登入表單頁
// swagger:model dto.AuthPage
type AuthPage struct {
	Page
	Form string `json:"form" example:"login"`
}
