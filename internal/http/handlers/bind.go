package handlers

import (
	"errors"
	"io"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// BindJSON binds the request body into out and writes the 400 response
// itself on failure. emptyBodyMsg is used when the body is missing
// entirely, so each endpoint keeps its own wording.
func BindJSON(ctx *gin.Context, out interface{}, emptyBodyMsg string) bool {
	err := ctx.ShouldBindJSON(out)

	if err == nil {
		return true
	}

	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		RespondBadRequest(ctx, emptyBodyMsg)
		return false
	}

	var validatorErrs validator.ValidationErrors

	if errors.As(err, &validatorErrs) && len(validatorErrs) > 0 {
		RespondBadRequest(ctx, requiredFieldMessage(out, validatorErrs[0]))
		return false
	}

	RespondBadRequest(ctx, "Invalid request body")
	return false
}

// requiredFieldMessage names the offending field by its json tag, e.g.
// "api_key is required".
func requiredFieldMessage(out interface{}, fieldErr validator.FieldError) string {
	name := fieldErr.Field()

	if t := baseStructType(out); t != nil {
		if sf, ok := t.FieldByName(fieldErr.StructField()); ok {
			name = jsonNameFromStructField(sf)
		}
	}

	return name + " is required"
}

func baseStructType(v interface{}) reflect.Type {
	t := reflect.TypeOf(v)

	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t != nil && t.Kind() == reflect.Struct {
		return t
	}

	return nil
}

func jsonNameFromStructField(sf reflect.StructField) string {
	tag := sf.Tag.Get("json")
	if tag == "" {
		return sf.Name
	}

	name, _, _ := strings.Cut(tag, ",")
	if name == "" || name == "-" {
		return sf.Name
	}

	return name
}
