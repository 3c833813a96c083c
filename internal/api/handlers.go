package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"color-chooser/internal/colors"
	"color-chooser/internal/store"
	"color-chooser/internal/ui"
)

// allowedMethods is both the Allow header of a 405 and the CORS method list.
const allowedMethods = "GET, HEAD, OPTIONS"

// Handler serves the lookup API over an injected store.
type Handler struct {
	store   store.Store
	stats   *StatsTracker
	prefix  string
	origin  string
	timeout time.Duration
	now     func() time.Time
}

// Option configures a Handler.
type Option func(*Handler)

// WithPrefix mounts the API a second time under prefix (e.g. "/api"), so
// requests forwarded by the router work with their path unchanged.
func WithPrefix(prefix string) Option {
	return func(h *Handler) { h.prefix = prefix }
}

// WithAllowedOrigin sets the Access-Control-Allow-Origin value.
func WithAllowedOrigin(origin string) Option {
	return func(h *Handler) { h.origin = origin }
}

// WithTimeout bounds each request's context.
func WithTimeout(d time.Duration) Option {
	return func(h *Handler) { h.timeout = d }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) { h.now = now }
}

// NewHandler returns a Handler reading from st.
func NewHandler(st store.Store, opts ...Option) *Handler {
	h := &Handler{
		store:  st,
		origin: "*",
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.stats = NewStatsTracker(h.now())
	return h
}

// Routes returns the full middleware-wrapped API.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mounts := []string{""}
	if h.prefix != "" {
		mounts = append(mounts, h.prefix)
	}
	for _, p := range mounts {
		mux.Handle(p+"/colors", h.route("list", h.listColors))
		mux.Handle(p+"/colors/{name}", h.route("get", h.getColor))
		// {name} never matches an empty segment; answer "/colors/" as a miss
		mux.Handle(p+"/colors/{$}", h.route("get", h.getColor))
	}
	mux.Handle(h.prefix+"/stats", h.route("stats", h.serveStats))
	mux.Handle("/healthz", h.route("health", h.health))
	mux.Handle("/", h.route("unmatched", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, msgNoRoute)
	}))

	mws := []middleware{requestID, recoverer}
	if h.timeout > 0 {
		mws = append(mws, withTimeout(h.timeout))
	}
	return chain(mux, mws...)
}

// route applies CORS, the GET-only method policy and per-route metrics.
func (h *Handler) route(name string, fn http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := h.now()

		defer func() {
			// a panic is answered by recoverer further out; count it as that 500
			v := recover()
			if v != nil && !rec.wroteHeader {
				rec.status = http.StatusInternalServerError
			}

			elapsed := h.now().Sub(start)
			MetricRequestsTotal.WithLabelValues(name, strconv.Itoa(rec.status)).Inc()
			MetricRequestDuration.WithLabelValues(name).Observe(elapsed.Seconds())
			ui.LogRequest(r.Method, r.URL.Path, rec.status, elapsed, rec.Header().Get(headerRequestID))

			if v != nil {
				panic(v)
			}
		}()

		h.setCORS(rec)

		switch r.Method {
		case http.MethodGet, http.MethodHead:
			fn(rec, r)
		case http.MethodOptions:
			rec.WriteHeader(http.StatusNoContent)
		default:
			rec.Header().Set("Allow", allowedMethods)
			writeError(rec, http.StatusMethodNotAllowed, msgMethodNotAllow)
		}
	})
}

func (h *Handler) setCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", h.origin)
	w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, If-None-Match, X-Request-ID")
	w.Header().Set("Access-Control-Expose-Headers", "ETag, X-Request-ID")
}

// listColors handles GET /colors
func (h *Handler) listColors(w http.ResponseWriter, r *http.Request) {
	h.stats.RecordList()

	records, err := h.store.FindAll(r.Context())
	if err != nil {
		h.fault(w, "list colors", err, msgListFailed)
		return
	}
	if records == nil {
		records = []colors.Record{}
	}

	body, err := encodeJSON(records)
	if err != nil {
		h.fault(w, "encode colors", err, msgListFailed)
		return
	}

	etag := bodyETag(body)
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")
	if etagMatches(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	writeBody(w, http.StatusOK, body)
}

// getColor handles GET /colors/{name}
func (h *Handler) getColor(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		h.stats.RecordLookup(false)
		MetricLookupsTotal.WithLabelValues("miss").Inc()
		writeError(w, http.StatusNotFound, msgNotFound)
		return
	}

	rec, err := h.store.FindByName(r.Context(), name)
	switch {
	case errors.Is(err, colors.ErrNotFound):
		h.stats.RecordLookup(false)
		MetricLookupsTotal.WithLabelValues("miss").Inc()
		writeError(w, http.StatusNotFound, msgNotFound)
	case err != nil:
		MetricLookupsTotal.WithLabelValues("error").Inc()
		h.fault(w, "lookup "+name, err, msgFetchFailed)
	default:
		h.stats.RecordLookup(true)
		MetricLookupsTotal.WithLabelValues("hit").Inc()
		writeJSON(w, http.StatusOK, rec)
	}
}

// serveStats handles GET /api/stats
func (h *Handler) serveStats(w http.ResponseWriter, r *http.Request) {
	n, err := h.store.Len(r.Context())
	if err != nil {
		h.fault(w, "count colors", err, msgInternal)
		return
	}
	writeJSON(w, http.StatusOK, h.stats.Snapshot(n, h.now()))
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// fault logs an internal error and answers 500 with a generic message.
func (h *Handler) fault(w http.ResponseWriter, op string, err error, message string) {
	h.stats.RecordError()
	ui.LogStatus("error", op+": "+err.Error())
	writeError(w, http.StatusInternalServerError, message)
}
