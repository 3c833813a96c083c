package router

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"color-chooser/internal/ui"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	ui.SetOutput(io.Discard)
	m.Run()
}

var uiPage = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	io.WriteString(w, "ui:"+r.URL.Path)
})

type seen struct {
	host, path, query, forwardedHost string
}

func upstream(t *testing.T) (*httptest.Server, *seen) {
	t.Helper()
	got := &seen{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.host = r.Host
		got.path = r.URL.EscapedPath()
		got.query = r.URL.RawQuery
		got.forwardedHost = r.Header.Get("X-Forwarded-Host")
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"name":"Red","hex":"#e74c3c"}`)
	}))
	t.Cleanup(srv.Close)
	return srv, got
}

func TestForwardsPrefixWithHostRewrite(t *testing.T) {
	api, got := upstream(t)
	rt, err := New(api.URL, "/api", uiPage)
	require.NoError(t, err)

	front := httptest.NewServer(rt)
	defer front.Close()

	req, err := http.NewRequest(http.MethodGet, front.URL+"/api/colors/Sky%20Blue?x=1", nil)
	require.NoError(t, err)
	req.Host = "colors.example.test"

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"name":"Red","hex":"#e74c3c"}`, string(body))

	target, _ := url.Parse(api.URL)
	assert.Equal(t, target.Host, got.host)
	assert.Equal(t, "/api/colors/Sky%20Blue", got.path, "path must be forwarded unchanged")
	assert.Equal(t, "x=1", got.query)
	assert.Equal(t, "colors.example.test", got.forwardedHost)
}

func TestNonPrefixFallsThroughToUI(t *testing.T) {
	api, got := upstream(t)
	rt, err := New(api.URL, "/api/", uiPage)
	require.NoError(t, err)

	for _, path := range []string{"/", "/static/app.js", "/apiary", "/colors"} {
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, "ui:"+path, rec.Body.String(), path)
	}
	assert.Empty(t, got.path, "upstream must not be contacted")
}

func TestMatches(t *testing.T) {
	rt, err := New("http://localhost:5001", "/api", uiPage)
	require.NoError(t, err)

	assert.True(t, rt.Matches("/api"))
	assert.True(t, rt.Matches("/api/colors"))
	assert.False(t, rt.Matches("/apis"))
	assert.False(t, rt.Matches("/"))
}

func TestDeadUpstreamIs502(t *testing.T) {
	dead := httptest.NewServer(http.NotFoundHandler())
	deadURL := dead.URL
	dead.Close()

	rt, err := New(deadURL, "/api", uiPage)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/colors", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Upstream unavailable"}`, rec.Body.String())
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New("localhost:5001", "/api", uiPage)
	assert.Error(t, err)
	_, err = New("http://localhost:5001", "api", uiPage)
	assert.Error(t, err)
	_, err = New("http://localhost:5001", "/", uiPage)
	assert.Error(t, err)
}

func TestServerServesMetricsAndDrains(t *testing.T) {
	api, _ := upstream(t)
	rt, err := New(api.URL, "/api", uiPage)
	require.NoError(t, err)

	srv := NewServer("127.0.0.1:0", rt)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()

	select {
	case <-srv.Ready():
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}

	resp, err := http.Get("http://" + srv.Addr() + "/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "ui:/", string(body))

	resp, err = http.Get("http://" + srv.Addr() + "/metrics")
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(body), "colorweb_routed_total")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServerReturnsWhenServeFailsAndCanRestart(t *testing.T) {
	rt, err := New("http://localhost:5001", "/api", uiPage)
	require.NoError(t, err)
	srv := NewServer("127.0.0.1:0", rt)

	done := make(chan error, 1)
	go func() { done <- srv.Start(context.Background()) }()
	<-srv.Ready()

	srv.mu.Lock()
	srv.ln.Close()
	srv.mu.Unlock()

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after Serve failed")
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() { done <- srv.Start(ctx) }()
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + srv.Addr() + "/")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("restarted server did not shut down")
	}
}
