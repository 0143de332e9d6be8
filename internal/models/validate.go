package models

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "kite-mcp-gateway/internal/errors"
)

// validate is the shared structural validator. Field names in reported
// errors use the wire names from the mapstructure tags.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs the tag-driven structural pass and converts the
// first failure into a ValidationError. Cross-field conditional rules
// are handled separately by each request's Validate method.
func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	field := fieldName(fe)
	switch fe.Tag() {
	case "required":
		return apperrors.NewValidationError(apperrors.KindMissingRequiredField, field, nil, "is required")
	case "oneof":
		return apperrors.NewValidationError(apperrors.KindInvalidEnumValue, field, fe.Value(),
			fmt.Sprintf("must be one of [%s]", fe.Param()))
	default:
		return apperrors.NewValidationError(apperrors.KindOutOfRange, field, fe.Value(),
			fmt.Sprintf("must satisfy %s=%s", fe.Tag(), fe.Param()))
	}
}

// fieldName strips the struct prefix so nested failures report paths
// like "orders[0].quantity".
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}
