package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Bhashini calls the Dhruva inference pipeline for translation. The
// request and response envelopes follow the pipeline task format.
type Bhashini struct {
	URL        string
	ServiceID  string
	HTTPClient *http.Client
}

func NewBhashini(url, serviceID string) *Bhashini {
	return &Bhashini{
		URL:        url,
		ServiceID:  serviceID,
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
	}
}

func (b *Bhashini) Name() string { return "bhashini" }

type bhashiniLanguage struct {
	SourceLanguage string `json:"sourceLanguage"`
	TargetLanguage string `json:"targetLanguage"`
}

type bhashiniTaskConfig struct {
	Language  bhashiniLanguage `json:"language"`
	ServiceID string           `json:"serviceId"`
}

type bhashiniTask struct {
	TaskType string             `json:"taskType"`
	Config   bhashiniTaskConfig `json:"config"`
}

type bhashiniInput struct {
	Source string `json:"source"`
}

type bhashiniRequest struct {
	PipelineTasks []bhashiniTask `json:"pipelineTasks"`
	InputData     struct {
		Input []bhashiniInput `json:"input"`
	} `json:"inputData"`
}

type bhashiniResponse struct {
	PipelineResponse []struct {
		Output []struct {
			Target string `json:"target"`
		} `json:"output"`
	} `json:"pipelineResponse"`
}

func (b *Bhashini) Translate(ctx context.Context, req Request) (string, error) {
	source := req.Source
	if source == "" {
		source = "auto"
	}

	payload := bhashiniRequest{
		PipelineTasks: []bhashiniTask{{
			TaskType: "translation",
			Config: bhashiniTaskConfig{
				Language: bhashiniLanguage{
					SourceLanguage: source,
					TargetLanguage: req.Target,
				},
				ServiceID: b.ServiceID,
			},
		}},
	}
	payload.InputData.Input = []bhashiniInput{{Source: req.Text}}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, b.URL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Authorization", req.Credential)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := b.HTTPClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("bhashini request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("bhashini status %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}

	var out bhashiniResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(out.PipelineResponse) == 0 || len(out.PipelineResponse[0].Output) == 0 {
		return "", fmt.Errorf("bhashini response missing translation output")
	}
	return out.PipelineResponse[0].Output[0].Target, nil
}
