package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/22AIML023Hiren/video-summariser/internal/models"
	"github.com/22AIML023Hiren/video-summariser/internal/utils"
)

type fakePipeline struct {
	res   *models.PipelineResult
	err   error
	calls int
	last  models.SummarizeRequest
}

func (f *fakePipeline) Run(_ context.Context, req models.SummarizeRequest) (*models.PipelineResult, error) {
	f.calls++
	f.last = req
	return f.res, f.err
}

func newTestRouter(svc *fakePipeline) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewSummarizeHandler(svc, "default-key", "hi")
	r.POST("/summarize", h.Summarize)
	return r
}

func postForm(r *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/summarize", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSummarizeMissingURL(t *testing.T) {
	svc := &fakePipeline{}
	w := postForm(newTestRouter(svc), url.Values{})

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	var body APIError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error != "No YouTube URL provided" {
		t.Errorf("error = %q", body.Error)
	}
	if svc.calls != 0 {
		t.Errorf("pipeline called %d times, want 0", svc.calls)
	}
}

func TestSummarizeRejectsFileUpload(t *testing.T) {
	svc := &fakePipeline{}
	r := newTestRouter(svc)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, _ := mw.CreateFormFile("file", "video.mp4")
	fw.Write([]byte("data"))
	mw.WriteField("url", "https://video.example/abc")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/summarize", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	var body APIError
	json.Unmarshal(w.Body.Bytes(), &body)
	if body.Error != "File upload not supported. Please use a YouTube URL." {
		t.Errorf("error = %q", body.Error)
	}
	if svc.calls != 0 {
		t.Errorf("pipeline called %d times, want 0", svc.calls)
	}
}

func TestSummarizeSuccess(t *testing.T) {
	svc := &fakePipeline{res: &models.PipelineResult{
		Transcript:  "a transcript",
		Summary:     "प्रौद्योगिकी समाज को प्रभावित करती है।",
		AudioBase64: "UklGRi4u",
		Status:      "success",
	}}
	w := postForm(newTestRouter(svc), url.Values{
		"url":      {"https://video.example/abc"},
		"language": {"ta"},
		"api_key":  {"K"},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["transcript"] != "a transcript" || body["status"] != "success" {
		t.Errorf("body = %v", body)
	}
	if body["audio"] != "UklGRi4u" {
		t.Errorf("audio = %q", body["audio"])
	}

	if svc.last.URL != "https://video.example/abc" || svc.last.Language != "ta" || svc.last.APIKey != "K" {
		t.Errorf("pipeline request = %+v", svc.last)
	}
}

func TestSummarizeAppliesDefaults(t *testing.T) {
	svc := &fakePipeline{res: &models.PipelineResult{Status: "success"}}
	w := postForm(newTestRouter(svc), url.Values{"url": {"https://video.example/abc"}})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if svc.last.Language != "hi" {
		t.Errorf("language = %q, want default hi", svc.last.Language)
	}
	if svc.last.APIKey != "default-key" {
		t.Errorf("api key = %q, want process default", svc.last.APIKey)
	}
}

func TestSummarizePipelineError(t *testing.T) {
	svc := &fakePipeline{err: utils.E(utils.CodeFetch, "YTDLP.ExtractAudio", "YouTube download failed",
		errors.New("video unavailable"))}
	w := postForm(newTestRouter(svc), url.Values{"url": {"https://video.example/gone"}})

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	var body APIError
	json.Unmarshal(w.Body.Bytes(), &body)
	if body.Error != "YouTube download failed: video unavailable" {
		t.Errorf("error = %q", body.Error)
	}
}
