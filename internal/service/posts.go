// File: internal/service/posts.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blog/internal/database"
	"blog/internal/model"
	"blog/internal/store"
)

// 以下變數供測試替換
var (
	listPosts          = store.ListPosts
	getPostByID        = store.GetPostByID
	getPostByTitle     = store.GetPostByTitle
	createPost         = store.CreatePost
	updatePost         = store.UpdatePost
	deletePost         = store.DeletePost
	listCommentsByPost = store.ListCommentsByPost
	timeNow            = time.Now
)

type PostInput struct {
	Title    string
	Subtitle string
	Body     string
	ImgURL   string
}

// PostDetail 文章與其留言
type PostDetail struct {
	Post     model.Post
	Comments []model.Comment
}

func ListPosts(ctx context.Context, db database.DB) ([]model.Post, error) {
	posts, err := listPosts(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("ListPosts: %w", err)
	}
	return posts, nil
}

func GetPost(ctx context.Context, db database.DB, postID int) (*PostDetail, error) {
	p, err := findPost(ctx, db, postID)
	if err != nil {
		return nil, err
	}
	comments, err := listCommentsByPost(ctx, db, postID)
	if err != nil {
		return nil, fmt.Errorf("GetPost: %w", err)
	}
	return &PostDetail{Post: *p, Comments: comments}, nil
}

// CreatePost 由 admin 新增文章，日期格式為 "January 02, 2006"
func CreatePost(ctx context.Context, db database.DB, actor *model.User, in PostInput) (*model.Post, error) {
	if err := AuthorizeAdmin(actor).Err(); err != nil {
		return nil, err
	}
	if err := ensureTitleFree(ctx, db, in.Title, 0); err != nil {
		return nil, err
	}

	p, err := createPost(ctx, db, &model.Post{
		Title:      in.Title,
		Subtitle:   in.Subtitle,
		Date:       timeNow().Format(model.PostDateLayout),
		Body:       in.Body,
		ImgURL:     in.ImgURL,
		AuthorID:   actor.ID,
		AuthorName: actor.Name,
	})
	if errors.Is(err, store.ErrConflict) {
		return nil, ErrDuplicateTitle
	}
	if err != nil {
		return nil, fmt.Errorf("CreatePost: %w", err)
	}
	return p, nil
}

// EditPost 覆寫文章內容，保留原作者
func EditPost(ctx context.Context, db database.DB, actor *model.User, postID int, in PostInput) (*model.Post, error) {
	if err := AuthorizeAdmin(actor).Err(); err != nil {
		return nil, err
	}
	p, err := findPost(ctx, db, postID)
	if err != nil {
		return nil, err
	}
	if in.Title != p.Title {
		if err := ensureTitleFree(ctx, db, in.Title, p.ID); err != nil {
			return nil, err
		}
	}

	p.Title = in.Title
	p.Subtitle = in.Subtitle
	p.Body = in.Body
	p.ImgURL = in.ImgURL

	err = updatePost(ctx, db, p)
	switch {
	case errors.Is(err, store.ErrConflict):
		return nil, ErrDuplicateTitle
	case errors.Is(err, store.ErrNotFound):
		return nil, ErrNotFound
	case err != nil:
		return nil, fmt.Errorf("EditPost: %w", err)
	}
	return p, nil
}

// DeletePost 刪除文章及其留言
func DeletePost(ctx context.Context, db database.DB, actor *model.User, postID int) error {
	if err := AuthorizeAdmin(actor).Err(); err != nil {
		return err
	}
	err := deletePost(ctx, db, postID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("DeletePost: %w", err)
	}
	return nil
}

func findPost(ctx context.Context, db database.DB, postID int) (*model.Post, error) {
	p, err := getPostByID(ctx, db, postID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find post %d: %w", postID, err)
	}
	return p, nil
}

// ensureTitleFree 檢查標題未被其他文章使用 (ownID 為自身 id，新增時為 0)
func ensureTitleFree(ctx context.Context, db database.DB, title string, ownID int) error {
	existing, err := getPostByTitle(ctx, db, title)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("check title: %w", err)
	case existing.ID != ownID:
		return ErrDuplicateTitle
	}
	return nil
}
