package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/22AIML023Hiren/video-summariser/internal/models"
	"github.com/22AIML023Hiren/video-summariser/internal/services"
	"github.com/22AIML023Hiren/video-summariser/internal/utils"
)

type SummarizeHandler struct {
	svc services.PipelineService

	// process-configured defaults applied when the form omits them
	defaultAPIKey   string
	defaultLanguage string
}

func NewSummarizeHandler(svc services.PipelineService, defaultAPIKey, defaultLanguage string) *SummarizeHandler {
	return &SummarizeHandler{svc: svc, defaultAPIKey: defaultAPIKey, defaultLanguage: defaultLanguage}
}

// Summarize handles POST /summarize with form fields url, language and
// api_key. Only URL input is supported.
func (h *SummarizeHandler) Summarize(c *gin.Context) {
	const op = "SummarizeHandler.Summarize"

	if _, err := c.FormFile("file"); err == nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op,
			"File upload not supported. Please use a YouTube URL.", nil))
		return
	}

	url := strings.TrimSpace(c.PostForm("url"))
	if url == "" {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "No YouTube URL provided", nil))
		return
	}

	language := strings.TrimSpace(c.PostForm("language"))
	if language == "" {
		language = h.defaultLanguage
	}
	apiKey := strings.TrimSpace(c.PostForm("api_key"))
	if apiKey == "" {
		apiKey = h.defaultAPIKey
	}

	res, err := h.svc.Run(c.Request.Context(), models.SummarizeRequest{
		URL:      url,
		Language: language,
		APIKey:   apiKey,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
