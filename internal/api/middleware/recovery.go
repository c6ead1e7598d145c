package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yoockh/htmlchat/internal/models"
)

// Recovery turns a panic in a handler into the usual JSON error payload.
func Recovery(l *logrus.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		l.WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"panic":      recovered,
		}).Error("handler panicked")
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorPayload{
			Error: http.StatusText(http.StatusInternalServerError),
		})
	})
}
