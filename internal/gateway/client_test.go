package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fundalabs/funda/internal/model"
)

func TestClientLessonQuestions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/api/language-questions/lesson/7" {
			t.Errorf("path = %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]model.Question{
			{ID: 1, Type: model.TypeTranslate, QuestionOrder: 1},
			{ID: 2, Type: model.TypeFillInBlank, QuestionOrder: 2},
		})
	}))
	defer server.Close()

	c := NewClient(server.URL, time.Second)
	questions, err := c.LessonQuestions(context.Background(), 7)
	if err != nil {
		t.Fatal(err)
	}
	if len(questions) != 2 || questions[0].ID != 1 || questions[1].Type != model.TypeFillInBlank {
		t.Fatalf("unexpected questions: %+v", questions)
	}
}

func TestClientLessonQuestionsNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := NewClient(server.URL, time.Second)
	if _, err := c.LessonQuestions(context.Background(), 7); err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestClientIncrementPoints(t *testing.T) {
	var got PointsIncrement
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/language-learners/42/increment-points" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decoding body: %v", err)
		}
	}))
	defer server.Close()

	streak := 12
	c := NewClient(server.URL, time.Second)
	err := c.IncrementPoints(context.Background(), 42, PointsIncrement{Points: 15, LessonID: 7, Streak: &streak})
	if err != nil {
		t.Fatal(err)
	}
	if got.Points != 15 || got.LessonID != 7 || got.Streak == nil || *got.Streak != 12 {
		t.Fatalf("unexpected body: %+v", got)
	}
}

func TestClientUpdateProgress(t *testing.T) {
	var got ProgressUpdate
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/language-learners/42/progress" {
			t.Errorf("path = %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
	}))
	defer server.Close()

	c := NewClient(server.URL, time.Second)
	err := c.UpdateProgress(context.Background(), 42, ProgressUpdate{LessonID: 7, Language: "zu", Status: model.ProgressCompleted})
	if err != nil {
		t.Fatal(err)
	}
	if got.LessonID != 7 || got.Language != "zu" || got.Status != model.ProgressCompleted {
		t.Fatalf("unexpected body: %+v", got)
	}
}

func TestClientReportQuestion(t *testing.T) {
	var got map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/language-questions/9/report" {
			t.Errorf("path = %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
	}))
	defer server.Close()

	learnerID := uint(42)
	c := NewClient(server.URL, time.Second)
	if err := c.ReportQuestion(context.Background(), 9, &learnerID, "audio is wrong"); err != nil {
		t.Fatal(err)
	}
	if got["reason"] != "audio is wrong" {
		t.Errorf("reason = %v", got["reason"])
	}
	if got["learnerId"] != float64(42) {
		t.Errorf("learnerId = %v", got["learnerId"])
	}
}

func TestClientPostErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClient(server.URL, time.Second)
	if err := c.UpdateProgress(context.Background(), 42, ProgressUpdate{LessonID: 7}); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestClientHonorsContextCancellation(t *testing.T) {
	blocked := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	defer server.Close()
	defer close(blocked)

	ctx, cancel := context.WithCancel(context.Background())
	c := NewClient(server.URL, time.Minute)

	done := make(chan error, 1)
	go func() {
		_, err := c.LessonQuestions(ctx, 7)
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		if err == nil {
			t.Fatal("expected error after context cancellation")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("request did not abort on context cancellation")
	}
}

func TestClientTrimsTrailingSlash(t *testing.T) {
	c := NewClient("http://backend.example/", time.Second)
	if got := c.AudioURL("hello.mp3"); got != "http://backend.example/api/word/audio/get/hello.mp3" {
		t.Errorf("AudioURL = %s", got)
	}
}
