package model

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidProducer is wrapped by every validation failure.
var ErrInvalidProducer = errors.New("invalid producer")

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("coverage", func(fl validator.FieldLevel) bool {
			c, ok := fl.Field().Interface().(Coverage)
			return ok && c.Valid()
		})
		_ = validate.RegisterValidation("known", func(fl validator.FieldLevel) bool {
			switch v := fl.Field().Interface().(type) {
			case Status:
				return v.IsAStatus()
			case ProducerType:
				return v.IsAProducerType()
			}
			return false
		})
	})
	return validate
}

// Validate checks a producer's attributes.
func Validate(p Producer) error {
	if err := validatorInstance().Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: field %s failed %q", ErrInvalidProducer, fe.Field(), fe.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidProducer, err)
	}
	return nil
}
