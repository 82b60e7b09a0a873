package validators

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"sort"
	"strconv"
	"strings"

	pkgerrors "github.com/angelmondragon/storefront-api/pkg/errors"
	"github.com/angelmondragon/storefront-api/pkg/validation"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	mustRegister(v, "restricted_text", ruleTag(validation.Text))
	mustRegister(v, "positive_int", fixedRuleTag(validation.Integer))
	mustRegister(v, "positive_number", fixedRuleTag(validation.Positive))
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// ruleTag adapts a length-bounded field rule, reading the bound from the tag
// parameter (restricted_text=60).
func ruleTag(build func(int) validation.Rule) validator.Func {
	return func(fl validator.FieldLevel) bool {
		maxLen, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return build(maxLen).Check(fieldString(fl)) == nil
	}
}

func fixedRuleTag(rule validation.Rule) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return rule.Check(fieldString(fl)) == nil
	}
}

func fieldString(fl validator.FieldLevel) string {
	field := fl.Field()
	switch field.Kind() {
	case reflect.String:
		return field.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(field.Int(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(field.Float(), 'f', -1, 64)
	}
	return fmt.Sprint(field.Interface())
}

func DecodeJSONBody(r *http.Request, dest any) error {
	defer func() {
		io.Copy(io.Discard, r.Body)
	}()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dest); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid request body")
	}
	if err := validate.Struct(dest); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

func formatValidationErrors(err error) *pkgerrors.Error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		parts := make([]string, 0, len(errs))
		for _, fieldErr := range errs {
			parts = append(parts, fieldErr.Field()+" "+validationMessage(fieldErr))
		}
		sort.Strings(parts)
		return pkgerrors.New(pkgerrors.CodeValidation, strings.Join(parts, "; "))
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "validation failed")
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "restricted_text":
		return fmt.Sprintf("may only contain letters, digits, spaces and dashes (max %s)", fe.Param())
	case "positive_int":
		return "must be a positive integer"
	case "positive_number":
		return "must be a positive number"
	}
	return "is invalid"
}
