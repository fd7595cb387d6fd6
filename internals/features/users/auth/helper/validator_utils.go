// internals/features/users/auth/helper/validator_utils.go
package helper

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"tahfidzku_backend/internals/features/users/auth/dto"
)

var validate = validator.New()

// ValidateLoginInput memastikan identifier & password terisi.
func ValidateLoginInput(input dto.LoginRequest) error {
	if strings.TrimSpace(input.Identifier) == "" {
		return errors.New("Email atau username wajib diisi")
	}
	if strings.TrimSpace(input.Password) == "" {
		return errors.New("Password wajib diisi")
	}
	return nil
}

func ValidateRegisterInput(input dto.RegisterRequest) error {
	if err := validate.Struct(input); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			switch ve[0].Field() {
			case "UserName":
				return errors.New("Username wajib diisi (min 3 karakter)")
			case "Email":
				return errors.New("Format email tidak valid")
			case "Password":
				return errors.New("Password minimal 6 karakter")
			}
		}
		return errors.New("Input registrasi tidak valid")
	}
	return nil
}
