package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vportela/forja/internal/models"
)

// TestCallShape verifies the request hits /rpc/<proc> as a POST with the
// bearer key and p_-prefixed JSON params.
func TestCallShape(t *testing.T) {
	var gotPath, gotAuth, gotAPIKey string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotAPIKey = r.Header.Get("apikey")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode("wk-1")
	}))
	defer srv.Close()

	c := New(srv.URL, "secret-key", nil)
	id, err := c.CreateWorkout(context.Background(), CreateWorkoutParams{Name: "Push A"})
	if err != nil {
		t.Fatalf("CreateWorkout: %v", err)
	}
	if id != "wk-1" {
		t.Errorf("id = %q, want wk-1", id)
	}
	if gotPath != "/rpc/create_workout" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAuth != "Bearer secret-key" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotAPIKey != "secret-key" {
		t.Errorf("apikey = %q", gotAPIKey)
	}
	if gotBody["p_name"] != "Push A" {
		t.Errorf("p_name = %v", gotBody["p_name"])
	}
	if _, ok := gotBody["p_description"]; ok {
		t.Error("empty optional param was sent")
	}
}

// TestBackendError verifies {code,message,details,hint} bodies decode into
// *Error with all fields and are not classified transient.
func TestBackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":"23505","message":"duplicate workout name","details":"Key (name) already exists","hint":"pick another name"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "k", nil)
	_, err := c.CreateWorkout(context.Background(), CreateWorkoutParams{Name: "Push A"})

	var re *Error
	if !errors.As(err, &re) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if re.Code != "23505" || re.Message != "duplicate workout name" {
		t.Errorf("code/message = %q/%q", re.Code, re.Message)
	}
	if re.Details == "" || re.Hint == "" {
		t.Errorf("details/hint not carried: %+v", re)
	}
	if re.Transient() {
		t.Error("backend-coded 4xx classified transient")
	}
}

// TestServerErrorTransient verifies 5xx answers are retryable.
func TestServerErrorTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, "k", nil)
	_, err := c.ListWorkouts(context.Background())
	if !IsTransient(err) {
		t.Fatalf("5xx error not transient: %v", err)
	}

	var re *Error
	if !errors.As(err, &re) {
		t.Fatalf("error type = %T", err)
	}
	if re.Code != "http_502" {
		t.Errorf("code = %q, want http_502", re.Code)
	}
}

// TestTransportErrorTransient verifies a dead endpoint normalizes into a
// transient *Error instead of leaking a *url.Error.
func TestTransportErrorTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := New(srv.URL, "k", nil)
	_, err := c.ListWorkouts(context.Background())

	var re *Error
	if !errors.As(err, &re) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if re.Code != CodeTransport || !re.Transient() {
		t.Errorf("code = %q transient = %v", re.Code, re.Transient())
	}
	if re.Unwrap() == nil {
		t.Error("transport cause not wrapped")
	}
}

// TestNullActiveSession verifies a JSON null decodes as no active session.
func TestNullActiveSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("null"))
	}))
	defer srv.Close()

	c := New(srv.URL, "k", nil)
	s, err := c.GetActiveSession(context.Background())
	if err != nil {
		t.Fatalf("GetActiveSession: %v", err)
	}
	if s != nil {
		t.Errorf("session = %+v, want nil", s)
	}
}

// TestDecodeSession verifies nested session payloads decode end to end.
func TestDecodeSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"id":"s-1","workout_id":"wk-1","started_at":"2025-03-03T10:00:00Z",
			"total_volume":500,
			"groups":[{"id":"g-1","name":"A","group_type":"superset","rest_seconds":90,"position":1,
				"items":[{"id":"si-1","exercise_id":"ex-1","group_label":"A1","position":1,
					"sets":[{"id":"set-1","reps":5,"weight":100,"volume":500,"seq":1,"completed_at":"2025-03-03T10:05:00Z"}]}]}]
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "k", nil)
	s, err := c.GetSession(context.Background(), GetSessionParams{SessionID: "s-1"})
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if s.ID != "s-1" || *s.WorkoutID != "wk-1" {
		t.Errorf("session ids = %q %v", s.ID, s.WorkoutID)
	}
	if len(s.Groups) != 1 || s.Groups[0].GroupType != models.GroupSuperset {
		t.Fatalf("groups = %+v", s.Groups)
	}
	set := s.Groups[0].Items[0].Sets[0]
	if set.Volume != 500 || set.Seq != 1 {
		t.Errorf("set = %+v", set)
	}
	if got := s.ComputeVolume(); got != s.TotalVolume {
		t.Errorf("ComputeVolume() = %v, total_volume = %v", got, s.TotalVolume)
	}
}
