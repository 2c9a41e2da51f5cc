package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"blog/internal/database"
	"blog/internal/model"
	"blog/internal/store"

	"golang.org/x/crypto/bcrypt"
)

func restoreGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
	passwordCost = bcrypt.DefaultCost
	getUserByEmail = store.GetUserByEmail
	getUserByID = store.GetUserByID
	countUsers = store.CountUsers
	createUser = store.CreateUser
	listPosts = store.ListPosts
	getPostByID = store.GetPostByID
	getPostByTitle = store.GetPostByTitle
	createPost = store.CreatePost
	updatePost = store.UpdatePost
	deletePost = store.DeletePost
	listCommentsByPost = store.ListCommentsByPost
	createComment = store.CreateComment
	timeNow = time.Now
}

// memStore 以 map 模擬三張資料表，並把 store 函式替換成它
type memStore struct {
	users    []*model.User
	posts    map[int]*model.Post
	comments []model.Comment
	nextID   int
	writes   int
}

func useMemStore(t *testing.T) *memStore {
	t.Helper()
	t.Cleanup(restoreGlobals)
	passwordCost = bcrypt.MinCost

	m := &memStore{posts: map[int]*model.Post{}}
	getUserByEmail = func(_ context.Context, _ database.DB, email string) (*model.User, error) {
		for _, u := range m.users {
			if u.Email == email {
				cp := *u
				return &cp, nil
			}
		}
		return nil, fmt.Errorf("GetUserByEmail: %w", store.ErrNotFound)
	}
	getUserByID = func(_ context.Context, _ database.DB, id int) (*model.User, error) {
		for _, u := range m.users {
			if u.ID == id {
				cp := *u
				return &cp, nil
			}
		}
		return nil, fmt.Errorf("GetUserByID: %w", store.ErrNotFound)
	}
	countUsers = func(context.Context, database.DB) (int, error) { return len(m.users), nil }
	createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
		for _, cur := range m.users {
			if cur.Email == u.Email || (u.Role == model.RoleAdmin && cur.Role == model.RoleAdmin) {
				return nil, fmt.Errorf("CreateUser: %w", store.ErrConflict)
			}
		}
		m.writes++
		m.nextID++
		u.ID = m.nextID
		u.CreatedAt = time.Now()
		cp := *u
		m.users = append(m.users, &cp)
		return u, nil
	}
	listPosts = func(context.Context, database.DB) ([]model.Post, error) {
		out := []model.Post{}
		for id := 1; id <= m.nextID; id++ {
			if p, ok := m.posts[id]; ok {
				out = append(out, *p)
			}
		}
		return out, nil
	}
	getPostByID = func(_ context.Context, _ database.DB, id int) (*model.Post, error) {
		p, ok := m.posts[id]
		if !ok {
			return nil, fmt.Errorf("GetPostByID: %w", store.ErrNotFound)
		}
		cp := *p
		return &cp, nil
	}
	getPostByTitle = func(_ context.Context, _ database.DB, title string) (*model.Post, error) {
		for _, p := range m.posts {
			if p.Title == title {
				cp := *p
				return &cp, nil
			}
		}
		return nil, fmt.Errorf("GetPostByTitle: %w", store.ErrNotFound)
	}
	createPost = func(_ context.Context, _ database.DB, p *model.Post) (*model.Post, error) {
		m.writes++
		m.nextID++
		p.ID = m.nextID
		cp := *p
		m.posts[p.ID] = &cp
		return p, nil
	}
	updatePost = func(_ context.Context, _ database.DB, p *model.Post) error {
		cur, ok := m.posts[p.ID]
		if !ok {
			return fmt.Errorf("UpdatePost: %w", store.ErrNotFound)
		}
		m.writes++
		cur.Title, cur.Subtitle, cur.Body, cur.ImgURL = p.Title, p.Subtitle, p.Body, p.ImgURL
		return nil
	}
	deletePost = func(_ context.Context, _ database.DB, id int) error {
		if _, ok := m.posts[id]; !ok {
			return fmt.Errorf("DeletePost: %w", store.ErrNotFound)
		}
		m.writes++
		delete(m.posts, id)
		kept := m.comments[:0]
		for _, c := range m.comments {
			if c.PostID != id {
				kept = append(kept, c)
			}
		}
		m.comments = kept
		return nil
	}
	listCommentsByPost = func(_ context.Context, _ database.DB, postID int) ([]model.Comment, error) {
		out := []model.Comment{}
		for _, c := range m.comments {
			if c.PostID == postID {
				out = append(out, c)
			}
		}
		return out, nil
	}
	createComment = func(_ context.Context, _ database.DB, c *model.Comment) (*model.Comment, error) {
		m.writes++
		m.nextID++
		c.ID = m.nextID
		m.comments = append(m.comments, *c)
		return c, nil
	}
	return m
}
