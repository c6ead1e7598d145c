package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/htmlchat/internal/models"
	"github.com/yoockh/htmlchat/internal/utils"
)

func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)
	_ = c.Error(err)
	c.JSON(status, models.ErrorPayload{
		Error: utils.PublicMessage(err, http.StatusText(status)),
	})
}
