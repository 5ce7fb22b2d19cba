package fetch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"user-pages/pkg/logger"
)

type captured struct {
	method  string
	path    string
	headers http.Header
	cookies []*http.Cookie
}

func setupServer(t *testing.T, status int, body string) (*httptest.Server, *captured) {
	t.Helper()
	got := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.method = r.Method
		got.path = r.URL.Path
		got.headers = r.Header.Clone()
		got.cookies = r.Cookies()
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, got
}

func ctxWithSession() context.Context {
	return WithCookies(context.Background(), []*http.Cookie{{Name: "session", Value: "s3cr3t"}})
}

func TestClient_Fetch_Success(t *testing.T) {
	srv, got := setupServer(t, http.StatusOK, `[{"id":1,"name":"Taro","age":30}]`)
	client := NewClient(srv.URL, 0, zaptest.NewLogger(t))

	ctx := logger.WithRequestID(ctxWithSession(), "req-42")
	res, err := client.Fetch(ctx, srv.URL+"/users", Options{
		Headers:     map[string]string{"Content-Type": "application/json"},
		Credentials: Include,
	})
	require.NoError(t, err)

	assert.True(t, res.OK)
	assert.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, http.MethodGet, got.method)
	assert.Equal(t, "/users", got.path)
	assert.Equal(t, "application/json", got.headers.Get("Content-Type"))
	assert.Equal(t, "req-42", got.headers.Get(logger.RequestIDHeader))
	require.Len(t, got.cookies, 1)
	assert.Equal(t, "s3cr3t", got.cookies[0].Value)

	var decoded []map[string]any
	require.NoError(t, res.JSON(&decoded))
	assert.Len(t, decoded, 1)
}

func TestClient_Fetch_NonOK(t *testing.T) {
	srv, _ := setupServer(t, http.StatusInternalServerError, `oops`)
	client := NewClient(srv.URL, 0, zaptest.NewLogger(t))

	res, err := client.Fetch(context.Background(), srv.URL+"/users", Options{})
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Equal(t, http.StatusInternalServerError, res.Status)
}

func TestClient_Fetch_Credentials(t *testing.T) {
	tests := []struct {
		name        string
		origin      func(srvURL string) string
		credentials Credentials
		expectSent  bool
	}{
		{name: "include", origin: func(string) string { return "http://other.example" }, credentials: Include, expectSent: true},
		{name: "omit", origin: func(u string) string { return u }, credentials: Omit, expectSent: false},
		{name: "same-origin match", origin: func(u string) string { return u }, credentials: SameOrigin, expectSent: true},
		{name: "same-origin mismatch", origin: func(string) string { return "http://other.example" }, credentials: SameOrigin, expectSent: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, got := setupServer(t, http.StatusOK, `{}`)
			client := NewClient(tt.origin(srv.URL), 0, zaptest.NewLogger(t))

			_, err := client.Fetch(ctxWithSession(), srv.URL+"/users/1", Options{Credentials: tt.credentials})
			require.NoError(t, err)

			if tt.expectSent {
				assert.Len(t, got.cookies, 1)
			} else {
				assert.Empty(t, got.cookies)
			}
		})
	}
}

func TestClient_Fetch_TransportError(t *testing.T) {
	srv, _ := setupServer(t, http.StatusOK, ``)
	url := srv.URL
	srv.Close()

	client := NewClient(url, 0, zaptest.NewLogger(t))
	res, err := client.Fetch(context.Background(), url+"/users", Options{})
	assert.Error(t, err)
	assert.Nil(t, res)
}

func TestResponse_JSON(t *testing.T) {
	var v any
	empty := NewResponse(http.StatusOK, nil)
	assert.True(t, empty.Empty())
	require.NoError(t, empty.JSON(&v))
	assert.Nil(t, v)

	obj := NewResponse(http.StatusOK, []byte(` {"id":1} `))
	assert.False(t, obj.Empty())
	require.NoError(t, obj.JSON(&v))
	assert.Equal(t, map[string]any{"id": float64(1)}, v)

	bad := NewResponse(http.StatusOK, []byte(`{`))
	assert.Error(t, bad.JSON(&v))

	assert.False(t, NewResponse(http.StatusNotFound, nil).OK)
	assert.True(t, NewResponse(http.StatusNoContent, nil).OK)
}

func TestCredentials_String(t *testing.T) {
	assert.Equal(t, "include", Include.String())
	assert.Equal(t, "omit", Omit.String())
	assert.Equal(t, "same-origin", SameOrigin.String())
}

func TestResponse_JSONNumbers(t *testing.T) {
	var v any
	require.NoError(t, NewResponse(http.StatusOK, []byte(`  `)).JSONNumbers(&v))
	assert.Nil(t, v)

	require.NoError(t, NewResponse(http.StatusOK, []byte(`[{"id":9007199254740993}]`)).JSONNumbers(&v))
	assert.Equal(t, []any{map[string]any{"id": json.Number("9007199254740993")}}, v)

	assert.Error(t, NewResponse(http.StatusOK, []byte(`[`)).JSONNumbers(&v))
	assert.Error(t, NewResponse(http.StatusOK, []byte(`[] {}`)).JSONNumbers(&v))
}
