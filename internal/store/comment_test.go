package store

import (
	"context"
	"errors"
	"testing"

	"blog/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

func TestCommentStore(t *testing.T) {
	ctx := context.Background()
	cols := []string{"id", "body", "author_id", "post_id", "name"}

	t.Run("ListCommentsByPost", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("FROM comments c JOIN users u").
			WithArgs(3).
			WillReturnRows(pgxmock.NewRows(cols).
				AddRow(1, "first", 2, 3, "Bob").
				AddRow(2, "second", 4, 3, "Carol"))

		list, err := ListCommentsByPost(ctx, mock, 3)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "Bob", list[0].AuthorName)
		require.Equal(t, "second", list[1].Body)
	})

	t.Run("ListCommentsByPost none", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("FROM comments").WithArgs(3).WillReturnRows(pgxmock.NewRows(cols))

		list, err := ListCommentsByPost(ctx, mock, 3)
		require.NoError(t, err)
		require.Empty(t, list)
	})

	t.Run("ListCommentsByPost error", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("FROM comments").WithArgs(3).WillReturnError(errors.New("fail"))

		_, err := ListCommentsByPost(ctx, mock, 3)
		require.Error(t, err)
	})

	t.Run("CreateComment", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("INSERT INTO comments").
			WithArgs("nice", 2, 3).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(9))

		c, err := CreateComment(ctx, mock, &model.Comment{Body: "nice", AuthorID: 2, PostID: 3})
		require.NoError(t, err)
		require.Equal(t, 9, c.ID)
	})

	t.Run("CreateComment post gone", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("INSERT INTO comments").
			WithArgs("nice", 2, 3).
			WillReturnError(&pgconn.PgError{Code: "23503"})

		_, err := CreateComment(ctx, mock, &model.Comment{Body: "nice", AuthorID: 2, PostID: 3})
		require.ErrorIs(t, err, ErrNotFound)
	})
}
