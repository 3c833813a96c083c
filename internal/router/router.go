// Package router is the front door of the web tier: requests under the API
// prefix are reverse-proxied to the lookup service, everything else goes to
// the UI handler.
package router

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"
	"time"

	"color-chooser/internal/ui"
)

// msgUpstream is the body error of a failed forward.
const msgUpstream = "Upstream unavailable"

var upstreamBody = []byte(`{"error":"` + msgUpstream + `"}` + "\n")

// Router splits traffic between the lookup service and the UI.
type Router struct {
	target *url.URL
	prefix string
	proxy  *httputil.ReverseProxy
	ui     http.Handler
}

// New builds a Router forwarding prefix to target. prefix must start with
// "/" and must not be the root.
func New(target, prefix string, uiHandler http.Handler) (*Router, error) {
	u, err := url.Parse(target)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid upstream url %q", target)
	}
	prefix = strings.TrimSuffix(prefix, "/")
	if !strings.HasPrefix(prefix, "/") {
		return nil, fmt.Errorf("invalid api prefix %q", prefix)
	}

	rt := &Router{
		target: u,
		prefix: prefix,
		ui:     uiHandler,
	}
	rt.proxy = &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			// SetURL also points the Host header at the target
			pr.SetURL(u)
			pr.SetXForwarded()
		},
		ErrorHandler: rt.upstreamError,
	}
	return rt, nil
}

// Target returns the upstream base URL.
func (rt *Router) Target() string {
	return rt.target.String()
}

// Matches reports whether path belongs to the API prefix.
func (rt *Router) Matches(path string) bool {
	return path == rt.prefix || strings.HasPrefix(path, rt.prefix+"/")
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !rt.Matches(r.URL.Path) {
		MetricRouted.WithLabelValues("ui").Inc()
		rt.ui.ServeHTTP(w, r)
		return
	}

	MetricRouted.WithLabelValues("api").Inc()
	start := time.Now()
	rt.proxy.ServeHTTP(w, r)
	MetricForwardDuration.Observe(time.Since(start).Seconds())
}

func (rt *Router) upstreamError(w http.ResponseWriter, r *http.Request, err error) {
	MetricUpstreamErrors.Inc()
	ui.LogStatus("error", fmt.Sprintf("Forward %s %s failed: %v", r.Method, r.URL.Path, err))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadGateway)
	w.Write(upstreamBody)
}
