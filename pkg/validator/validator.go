package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate instancia compartida; validator/v10 cachea metadatos de structs y es
// segura para uso concurrente.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct valida un DTO por sus tags `validate` y devuelve un error legible
// con la lista de campos inválidos.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("campos inválidos: %s", strings.Join(fields, ", "))
}
