package api

import (
	"sync/atomic"
	"time"
)

// StatsTracker counts lookup traffic for the /api/stats endpoint.
type StatsTracker struct {
	startTime time.Time

	lists    atomic.Int64
	lookups  atomic.Int64
	notFound atomic.Int64
	errors   atomic.Int64
}

// StatsResponse is the JSON response for /api/stats
type StatsResponse struct {
	Records       int     `json:"records"`
	ListRequests  int64   `json:"listRequests"`
	Lookups       int64   `json:"lookups"`
	NotFound      int64   `json:"notFound"`
	Errors        int64   `json:"errors"`
	HitRate       float64 `json:"hitRate"`
	UptimeSeconds int64   `json:"uptimeSeconds"`
}

// NewStatsTracker starts the uptime clock at now.
func NewStatsTracker(now time.Time) *StatsTracker {
	return &StatsTracker{startTime: now}
}

// RecordList records a list-all request
func (s *StatsTracker) RecordList() {
	s.lists.Add(1)
}

// RecordLookup records a by-name lookup and whether it found a record
func (s *StatsTracker) RecordLookup(found bool) {
	s.lookups.Add(1)
	if !found {
		s.notFound.Add(1)
	}
}

// RecordError records an internal fault
func (s *StatsTracker) RecordError() {
	s.errors.Add(1)
}

// Snapshot returns the current counters. records comes from the store.
func (s *StatsTracker) Snapshot(records int, now time.Time) StatsResponse {
	lookups := s.lookups.Load()
	notFound := s.notFound.Load()

	hitRate := 100.0
	if lookups > 0 {
		hitRate = float64(lookups-notFound) / float64(lookups) * 100.0
	}

	return StatsResponse{
		Records:       records,
		ListRequests:  s.lists.Load(),
		Lookups:       lookups,
		NotFound:      notFound,
		Errors:        s.errors.Load(),
		HitRate:       hitRate,
		UptimeSeconds: int64(now.Sub(s.startTime).Seconds()),
	}
}
