package logging

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	log, err := New("debug")
	require.NoError(t, err)
	require.Equal(t, logrus.DebugLevel, log.Level)
	require.IsType(t, &logrus.JSONFormatter{}, log.Formatter)

	_, err = New("loud")
	require.Error(t, err)
}

func TestAttachAndFromContext(t *testing.T) {
	log, hook := test.NewNullLogger()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-1")
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	// 未掛上 middleware 時回傳標準 logger
	require.NotNil(t, FromContext(ctx))

	h := Attach(log)(func(c echo.Context) error {
		FromContext(c).Info("hello")
		return nil
	})
	require.NoError(t, h(ctx))
	require.Len(t, hook.Entries, 1)
	require.Equal(t, "req-1", hook.LastEntry().Data["request_id"])
}

func TestRequestLogger(t *testing.T) {
	log, hook := test.NewNullLogger()
	e := echo.New()
	e.Use(RequestLogger(log))
	e.GET("/ok", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/fail", func(c echo.Context) error { return errors.New("boom") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, hook.Entries, 1)
	require.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
	require.Equal(t, "/ok", hook.LastEntry().Data["uri"])
	require.Equal(t, http.StatusOK, hook.LastEntry().Data["status"])

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))
	require.Len(t, hook.Entries, 2)
	require.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}
