package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	errs "github.com/amirhossein-jamali/locker-rental/internal/domain/error"
	coreport "github.com/amirhossein-jamali/locker-rental/internal/domain/port/core"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/api/middleware"
)

// StatusFor maps a domain error to its HTTP status
func StatusFor(err error) int {
	if errors.Is(err, errs.ErrUnauthorized) {
		return http.StatusUnauthorized
	}

	switch errs.KindOf(err) {
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindConflict:
		return http.StatusConflict
	case errs.KindInvalidArgument:
		return http.StatusBadRequest
	case errs.KindPreconditionFailed:
		return http.StatusPreconditionFailed
	case errs.KindForbidden:
		return http.StatusForbidden
	case errs.KindStorageUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as {code, message}. Server side failures are logged
// and their details kept out of the response.
func writeError(c *gin.Context, logger coreport.Logger, op string, err error) {
	_ = c.Error(err)
	status := StatusFor(err)

	message := publicMessage(err)
	switch status {
	case http.StatusInternalServerError:
		message = "Internal server error"
	case http.StatusServiceUnavailable:
		message = "Service temporarily unavailable"
	}

	if status >= http.StatusInternalServerError {
		fields := map[string]any{
			"operation":  op,
			"error":      err.Error(),
			"request_id": coreport.RequestIDFrom(c.Request.Context()),
		}
		var le *errs.LifecycleError
		if errors.As(err, &le) {
			for k, v := range le.LogFields() {
				fields[k] = v
			}
		}
		logger.Error("Request failed", fields)
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    errs.ErrorCode(err),
		Message: message,
	})
}

// publicMessage strips the lifecycle wrapper so clients see the cause only
func publicMessage(err error) string {
	var le *errs.LifecycleError
	if errors.As(err, &le) && le.Err != nil {
		return le.Err.Error()
	}
	return err.Error()
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    errs.ErrorCode(errs.ErrInvalidRequest),
		Message: message,
	})
}

// pathID parses a positive numeric path parameter
func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		badRequest(c, "Invalid "+name+" format")
		return 0, false
	}
	return id, true
}

// callerID returns the authenticated user or renders 401
func callerID(c *gin.Context) (uint64, bool) {
	userID, ok := middleware.UserIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    errs.ErrorCode(errs.ErrUnauthorized),
			Message: "Authentication required",
		})
		return 0, false
	}
	return userID, true
}
