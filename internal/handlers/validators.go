package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/analytics"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding tags used by the request DTOs.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not a validator.Validate")
	}
	return v.RegisterValidation("isodate", isISODate)
}

// isISODate accepts calendar dates in YYYY-MM-DD form.
func isISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(analytics.DateLayout, strings.TrimSpace(fl.Field().String()))
	return err == nil
}
