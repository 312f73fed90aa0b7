package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// fieldError is one entry of a 400 response body, mirroring the shape the
// front-end expects: {"errors": [{"field": ..., "message": ...}]}.
type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func bindingErrors(err error) []fieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]fieldError, 0, len(verrs))
		for _, fe := range verrs {
			field := strings.ToLower(fe.Field())
			var msg string
			switch fe.Tag() {
			case "required":
				msg = fmt.Sprintf("%s is required", fe.Field())
			default:
				msg = fmt.Sprintf("%s is invalid", fe.Field())
			}
			out = append(out, fieldError{Field: field, Message: msg})
		}
		return out
	}

	var terr *json.UnmarshalTypeError
	if errors.As(err, &terr) {
		return []fieldError{{
			Field:   terr.Field,
			Message: fmt.Sprintf("%s must be of type %s", terr.Field, terr.Type.String()),
		}}
	}

	return []fieldError{{Field: "body", Message: "request body is malformed"}}
}

// respondValidation writes a 400 with field-level messages.
func respondValidation(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": bindingErrors(err)})
}
