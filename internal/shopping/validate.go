package shopping

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// A stored name is non-empty and already trimmed.
		_ = v.RegisterValidation("name", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s != "" && s == strings.TrimSpace(s)
		})

		_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
			return Category(fl.Field().String()).Valid()
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks the structural rules of a list and its items.
func (l ShoppingList) Validate() error {
	err := validatorInstance().Struct(l)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fmt.Errorf("%w: %s failed %q", ErrInvalidList, fe.Namespace(), fe.Tag())
	}

	return fmt.Errorf("%w: %v", ErrInvalidList, err)
}
