package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/22AIML023Hiren/video-summariser/internal/utils"
)

type APIError struct {
	Error string `json:"error"`
}

func writeError(c *gin.Context, err error) {
	c.JSON(utils.HTTPStatus(err), APIError{Error: utils.Detail(err)})
}
