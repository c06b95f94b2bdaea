package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"coursecatalog/internal/model"
	"coursecatalog/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Letters and digits from any script, plus @ . + - _.
var usernamePattern = regexp.MustCompile(`^[\p{L}\p{N}_.@+-]+$`)

const msgNull = "This field may not be null."

// NewValidator builds the validator shared by every handler. Field errors are
// reported under their JSON names.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
	v.RegisterCustomTypeFunc(nullableValue[int32], Nullable[int32]{})
	v.RegisterCustomTypeFunc(nullableValue[string], Nullable[string]{})
	v.RegisterCustomTypeFunc(nullableValue[PrimaryKey], Nullable[PrimaryKey]{})
	v.RegisterCustomTypeFunc(nullableValue[model.Price], Nullable[model.Price]{})
	return v
}

// nullChecker is implemented by bodies with fields that may be omitted but not sent as null.
type nullChecker interface {
	nullFields() []string
}

func nullField(name string, isNull bool) []string {
	if isNull {
		return []string{name}
	}
	return nil
}

// Validate runs v against req and converts failures into a field-keyed error.
func Validate(v *validator.Validate, req any) error {
	out := &service.ValidationError{}
	if nc, ok := req.(nullChecker); ok {
		for _, f := range nc.nullFields() {
			out.Add(f, msgNull)
		}
	}
	err := v.Struct(req)
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		for _, fe := range verrs {
			out.Add(fe.Field(), message(fe))
		}
	case err != nil:
		return err
	}
	if len(out.Fields) == 0 {
		return nil
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "notblank":
		return "This field may not be blank."
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	case "min":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "email":
		return "Enter a valid email address."
	case "username":
		return "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	}
	return "Invalid value."
}

// DecodeError converts a json decoding failure into a 400-worthy error. Type
// mismatches and price literals become field errors; syntax errors stay plain.
func DecodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		field := typeErr.Field
		if i := strings.LastIndex(field, "."); i >= 0 {
			field = field[i+1:]
		}
		return service.NewFieldError(field, typeMessage(typeErr.Type.Kind()))
	}
	var priceErr *model.PriceError
	if errors.As(err, &priceErr) {
		return service.NewFieldError("price", priceErr.Msg)
	}
	return &MalformedError{Err: err}
}

func typeMessage(k reflect.Kind) string {
	switch k {
	case reflect.String:
		return "Not a valid string."
	case reflect.Int, reflect.Int32, reflect.Int64:
		return "A valid integer is required."
	case reflect.Bool:
		return "Must be a valid boolean."
	}
	return "Invalid value."
}

// MalformedError is a request body that is not a JSON object.
type MalformedError struct {
	Err error
}

func (e *MalformedError) Error() string { return "JSON parse error - " + e.Err.Error() }

func (e *MalformedError) Unwrap() error { return e.Err }
