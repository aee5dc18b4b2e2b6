// Package validation checks engine inputs against their `validate` struct tags.
package validation

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/Naveenravi07/ecommerce-backend/internal/apperr"
	"github.com/go-playground/validator/v10"
)

// FieldError is one rejected field, named by its JSON path.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct validates s and reports violations as a ValidationFailed error.
func Struct(ctx context.Context, s interface{}) error {
	err := validate.StructCtx(ctx, s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.ValidationFailed(err.Error(), nil)
	}

	details := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, FieldError{
			Field: trimRoot(fe.Namespace()),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return apperr.ValidationFailed("invalid input", details)
}

// trimRoot drops the struct type name from "CreateProductInput.colors[0].name".
func trimRoot(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
