package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drillquiz/drillquiz/internal/report"
)

func sample() report.TrainingReport {
	return report.TrainingReport{
		ID:             "jdoe99-1700000000000",
		User:           report.UserRef{FullName: "Jane Doe", Username: "jdoe99"},
		OverallResult:  true,
		SubmissionDate: time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC),
	}
}

func TestAppend(t *testing.T) {
	var gotMethod, gotPath, gotContentType string
	var gotBody report.TrainingReport

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewClient(srv.URL + "/") // trailing slash must be tolerated
	err := c.Append(context.Background(), sample())
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/reports", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "jdoe99-1700000000000", gotBody.ID)
	assert.True(t, gotBody.OverallResult)
}

func TestAppendErrorStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"server error", http.StatusInternalServerError},
		{"not found", http.StatusNotFound},
		{"redirect is not success", http.StatusTemporaryRedirect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c := NewClient(srv.URL)
			err := c.Append(context.Background(), sample())
			require.Error(t, err)
		})
	}
}

func TestList(t *testing.T) {
	want := []report.TrainingReport{sample()}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/reports", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(want))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	got, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, want[0].ID, got[0].ID)
	assert.Equal(t, want[0].User, got[0].User)
}

func TestListBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.List(context.Background())
	require.Error(t, err)
}

func TestClear(t *testing.T) {
	var gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	require.NoError(t, c.Clear(context.Background()))
	assert.Equal(t, http.MethodDelete, gotMethod)
}

func TestUnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(srv.URL)
	assert.Error(t, c.Append(context.Background(), sample()))
	_, err := c.List(context.Background())
	assert.Error(t, err)
	assert.Error(t, c.Clear(context.Background()))
}
