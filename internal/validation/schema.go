package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrInvalid помечает нарушение схемы сущности или учетных данных
var ErrInvalid = errors.New("validation failed")

var (
	schemaOnce sync.Once
	schema     *validator.Validate
)

func instance() *validator.Validate {
	schemaOnce.Do(func() {
		schema = validator.New(validator.WithRequiredStructEnabled())
		// Сообщения об ошибках используют json имена полей
		schema.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return schema
}

// Struct validates an entity against the declarative schema in its struct tags.
// The returned error wraps ErrInvalid and lists every violated field.
func Struct(v any) error {
	if v == nil {
		return fmt.Errorf("%w: value is nil", ErrInvalid)
	}

	err := instance().Struct(v)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %s", ErrInvalid, invalid.Error())
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		msgs := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
		}
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
	}

	return fmt.Errorf("%w: %v", ErrInvalid, err)
}
