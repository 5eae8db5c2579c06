package helper

import (
	"errors"
	"net/http"

	"webblog/models"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	bindingvalidator "github.com/go-playground/validator/v10"
	"gopkg.in/go-playground/validator.v9"
)

const (
	textError = `error`
	textOk    = `ok`
)

// HTTPHelper shapes every response as {"status", "message", "data"} and maps
// service errors onto HTTP status codes.
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

// GetStatusCode maps the models error taxonomy onto HTTP status codes.
// Anything unrecognized is an internal error.
func (u *HTTPHelper) GetStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, models.ErrDuplicate):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func (u *HTTPHelper) EmptyJsonMap() map[string]interface{} {
	return make(map[string]interface{})
}

func (u *HTTPHelper) send(c *gin.Context, httpCode int, status string, message string, data interface{}) {
	c.JSON(httpCode, gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func (u *HTTPHelper) SendSuccess(c *gin.Context, message string, data interface{}) {
	u.send(c, http.StatusOK, textOk, message, data)
}

func (u *HTTPHelper) SendCreated(c *gin.Context, message string, data interface{}) {
	u.send(c, http.StatusCreated, textOk, message, data)
}

func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string, data interface{}) {
	u.send(c, http.StatusBadRequest, textError, message, data)
}

func (u *HTTPHelper) SendNotFoundError(c *gin.Context, message string, data interface{}) {
	u.send(c, http.StatusNotFound, textError, message, data)
}

func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string, data interface{}) {
	u.send(c, http.StatusUnauthorized, textError, message, data)
}

func (u *HTTPHelper) SendForbiddenError(c *gin.Context, message string, data interface{}) {
	u.send(c, http.StatusForbidden, textError, message, data)
}

func (u *HTTPHelper) SendConflictError(c *gin.Context, message string, data interface{}) {
	u.send(c, http.StatusConflict, textError, message, data)
}

// SendInternalServerError hides the root cause from the client; callers log
// the detail before reaching for this.
func (u *HTTPHelper) SendInternalServerError(c *gin.Context) {
	u.send(c, http.StatusInternalServerError, textError, "Internal server error", u.EmptyJsonMap())
}

// SendError picks the status code from the error taxonomy. Internal errors
// are reported without detail.
func (u *HTTPHelper) SendError(c *gin.Context, err error) {
	code := u.GetStatusCode(err)
	if code == http.StatusInternalServerError {
		u.SendInternalServerError(c)
		return
	}
	u.send(c, code, textError, err.Error(), u.EmptyJsonMap())
}

// SendValidationError lists the violated fields of a binding failure. Gin
// binds with validator/v10, so that is the error type to unwrap.
func (u *HTTPHelper) SendValidationError(c *gin.Context, err error) {
	var verrs bindingvalidator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, f := range verrs {
			fields = append(fields, f.Field())
		}
		u.send(c, http.StatusBadRequest, textError, "Validation failed", gin.H{"fields": fields})
		return
	}
	u.SendBadRequest(c, err.Error(), u.EmptyJsonMap())
}
