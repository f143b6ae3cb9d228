package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/pack-scheduler-api/internal/middleware"
	"github.com/noah-isme/pack-scheduler-api/internal/models"
	appErrors "github.com/noah-isme/pack-scheduler-api/pkg/errors"
	"github.com/noah-isme/pack-scheduler-api/pkg/response"
)

// currentUser returns the caller's claims or writes a 401 and returns false.
func currentUser(c *gin.Context) (*models.JWTClaims, bool) {
	claims, ok := middleware.Claims(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return nil, false
	}
	return claims, true
}

func bindError(err error, message string) error {
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, message)
}
