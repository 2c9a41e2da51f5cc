// File: internal/service/comments.go
package service

import (
	"context"
	"errors"
	"fmt"

	"blog/internal/database"
	"blog/internal/model"
	"blog/internal/store"
)

var createComment = store.CreateComment

// AddComment 先確認文章存在，再要求登入
func AddComment(ctx context.Context, db database.DB, author *model.User, postID int, body string) (*model.Comment, error) {
	if _, err := findPost(ctx, db, postID); err != nil {
		return nil, err
	}
	if err := AuthorizeUser(author).Err(); err != nil {
		return nil, err
	}

	c, err := createComment(ctx, db, &model.Comment{
		Body:       body,
		AuthorID:   author.ID,
		PostID:     postID,
		AuthorName: author.Name,
	})
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("AddComment: %w", err)
	}
	return c, nil
}
