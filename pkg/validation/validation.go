// Package validation checks a registration against the signup form's field
// rules and reports one message per failing field.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/oarkflow/signup/pkg/models"
)

// FieldOrder is the order fields appear on the form.
var FieldOrder = []string{"email", "password", "confirm", "username", "nickname", "gender", "agreement"}

// Errors maps a form field name to its message.
type Errors map[string]string

func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Fields returns the failing fields in form order.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for _, f := range FieldOrder {
		if e.Has(f) {
			fields = append(fields, f)
		}
	}
	return fields
}

// First returns the first failing field in form order and its message.
func (e Errors) First() (string, string) {
	for _, f := range FieldOrder {
		if msg, ok := e[f]; ok {
			return f, msg
		}
	}
	return "", ""
}

var (
	once     sync.Once
	validate *validator.Validate
)

func engine() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		_ = v.RegisterValidation("accepted", func(fl validator.FieldLevel) bool {
			return fl.Field().Bool()
		})
		validate = v
	})
	return validate
}

// Validate runs every field rule against r. It never touches the network and
// returns nil when r is acceptable.
func Validate(r models.Registration) Errors {
	err := engine().Struct(r)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Errors{"": err.Error()}
	}
	out := make(Errors, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue
		}
		out[field] = messageFor(field, fe.Tag())
	}
	return out
}
