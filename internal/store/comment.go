// File: internal/store/comment.go
package store

import (
	"context"
	"fmt"

	"blog/internal/database"
	"blog/internal/model"

	sq "github.com/Masterminds/squirrel"
)

func ListCommentsByPost(ctx context.Context, db database.DB, postID int) ([]model.Comment, error) {
	query, args, err := psql.Select("c.id", "c.body", "c.author_id", "c.post_id", "u.name").
		From(commentsTable + " c").
		Join(usersTable + " u ON u.id = c.author_id").
		Where(sq.Eq{"c.post_id": postID}).
		OrderBy("c.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ListCommentsByPost: build query: %w", err)
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("ListCommentsByPost", err)
	}
	defer rows.Close()

	comments := []model.Comment{}
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.Body, &c.AuthorID, &c.PostID, &c.AuthorName); err != nil {
			return nil, wrapErr("ListCommentsByPost", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("ListCommentsByPost", err)
	}
	return comments, nil
}

// CreateComment 新增留言；文章已不存在時外鍵錯誤轉為 ErrNotFound
func CreateComment(ctx context.Context, db database.DB, c *model.Comment) (*model.Comment, error) {
	query, args, err := psql.Insert(commentsTable).
		Columns("body", "author_id", "post_id").
		Values(c.Body, c.AuthorID, c.PostID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("CreateComment: build query: %w", err)
	}

	if err := db.QueryRow(ctx, query, args...).Scan(&c.ID); err != nil {
		return nil, wrapErr("CreateComment", err)
	}
	return c, nil
}
