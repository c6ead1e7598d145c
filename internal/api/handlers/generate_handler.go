package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yoockh/htmlchat/internal/models"
	"github.com/yoockh/htmlchat/internal/services"
	"github.com/yoockh/htmlchat/internal/utils"
)

type GenerateHandler struct {
	svc        services.GenerateService
	credential string
	log        *logrus.Logger
}

// NewGenerateHandler takes the upstream credential read at startup. An empty
// credential is not fatal; every request reports it instead.
func NewGenerateHandler(svc services.GenerateService, credential string, l *logrus.Logger) *GenerateHandler {
	if l == nil {
		l = logrus.New()
	}
	return &GenerateHandler{svc: svc, credential: credential, log: l}
}

func (h *GenerateHandler) Generate(c *gin.Context) {
	const op = "GenerateHandler.Generate"

	if h.credential == "" {
		h.log.WithField("request_id", c.GetString("request_id")).Error("generate: API key missing")
		writeError(c, utils.E(utils.CodeMisconfigured, op, "API key missing", nil))
		return
	}

	var req models.PromptRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Prompt == nil || strings.TrimSpace(*req.Prompt) == "" {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "Invalid prompt", err))
		return
	}

	text, err := h.svc.Generate(c.Request.Context(), *req.Prompt)
	if err != nil {
		if !utils.IsCode(err, utils.CodeInvalidArgument) {
			h.log.WithError(err).WithField("request_id", c.GetString("request_id")).Error("generate: upstream call failed")
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.GenerationResult{Text: text})
}
