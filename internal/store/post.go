// File: internal/store/post.go
package store

import (
	"context"
	"fmt"

	"blog/internal/database"
	"blog/internal/model"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

func selectPosts() sq.SelectBuilder {
	return psql.Select(
		"p.id",
		"p.title",
		"p.subtitle",
		"p.date",
		"p.body",
		"p.img_url",
		"p.author_id",
		"u.name",
	).
		From(postsTable + " p").
		Join(usersTable + " u ON u.id = p.author_id")
}

// ListPosts 取得全部文章 (依 id 排序，不分頁)
func ListPosts(ctx context.Context, db database.DB) ([]model.Post, error) {
	query, args, err := selectPosts().OrderBy("p.id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("ListPosts: build query: %w", err)
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("ListPosts", err)
	}
	defer rows.Close()

	posts := []model.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, wrapErr("ListPosts", err)
		}
		posts = append(posts, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("ListPosts", err)
	}
	return posts, nil
}

func GetPostByID(ctx context.Context, db database.DB, postID int) (*model.Post, error) {
	query, args, err := selectPosts().Where(sq.Eq{"p.id": postID}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("GetPostByID: build query: %w", err)
	}

	p, err := scanPost(db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, wrapErr("GetPostByID", err)
	}
	return p, nil
}

func GetPostByTitle(ctx context.Context, db database.DB, title string) (*model.Post, error) {
	query, args, err := selectPosts().Where(sq.Eq{"p.title": title}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("GetPostByTitle: build query: %w", err)
	}

	p, err := scanPost(db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, wrapErr("GetPostByTitle", err)
	}
	return p, nil
}

func CreatePost(ctx context.Context, db database.DB, p *model.Post) (*model.Post, error) {
	query, args, err := psql.Insert(postsTable).
		Columns("title", "subtitle", "date", "body", "img_url", "author_id").
		Values(p.Title, p.Subtitle, p.Date, p.Body, p.ImgURL, p.AuthorID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("CreatePost: build query: %w", err)
	}

	if err := db.QueryRow(ctx, query, args...).Scan(&p.ID); err != nil {
		return nil, wrapErr("CreatePost", err)
	}
	return p, nil
}

// UpdatePost 覆寫標題、副標、內文與圖片，作者不變
func UpdatePost(ctx context.Context, db database.DB, p *model.Post) error {
	query, args, err := psql.Update(postsTable).
		Set("title", p.Title).
		Set("subtitle", p.Subtitle).
		Set("body", p.Body).
		Set("img_url", p.ImgURL).
		Where(sq.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("UpdatePost: build query: %w", err)
	}

	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return wrapErr("UpdatePost", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("UpdatePost: %w", ErrNotFound)
	}
	return nil
}

// DeletePost 刪除文章，留言由外鍵 ON DELETE CASCADE 一併刪除
func DeletePost(ctx context.Context, db database.DB, postID int) error {
	query, args, err := psql.Delete(postsTable).Where(sq.Eq{"id": postID}).ToSql()
	if err != nil {
		return fmt.Errorf("DeletePost: build query: %w", err)
	}

	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return wrapErr("DeletePost", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeletePost: %w", ErrNotFound)
	}
	return nil
}

func scanPost(row pgx.Row) (*model.Post, error) {
	p := &model.Post{}
	if err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Subtitle,
		&p.Date,
		&p.Body,
		&p.ImgURL,
		&p.AuthorID,
		&p.AuthorName,
	); err != nil {
		return nil, err
	}
	return p, nil
}
