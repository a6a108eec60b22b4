package pkg

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validador() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// mensagens usam o nome do campo no JSON
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			nome := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if nome == "-" || nome == "" {
				return f.Name
			}
			return nome
		})
	})
	return validate
}

// Validar aplica as tags `validate` e devolve uma mensagem em português.
func Validar(v any) error {
	err := validador().Struct(v)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}
	msgs := make([]string, 0, len(ves))
	for _, fe := range ves {
		msgs = append(msgs, mensagem(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func mensagem(fe validator.FieldError) string {
	campo := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s é obrigatório", campo)
	case "email":
		return "email inválido"
	case "min":
		return fmt.Sprintf("%s deve ter no mínimo %s caracteres", campo, fe.Param())
	case "max":
		return fmt.Sprintf("%s deve ter no máximo %s caracteres", campo, fe.Param())
	case "gt":
		return fmt.Sprintf("%s deve ser maior que %s", campo, fe.Param())
	case "gte":
		return fmt.Sprintf("%s deve ser maior ou igual a %s", campo, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s deve ser um dos valores: %s", campo, fe.Param())
	case "datetime":
		return fmt.Sprintf("%s deve ser uma data válida", campo)
	case "url":
		return fmt.Sprintf("%s deve ser uma URL válida", campo)
	default:
		return fmt.Sprintf("validação '%s' falhou para %s", fe.Tag(), campo)
	}
}

// Normalizavel é implementado por DTOs que ajustam campos (trim, caixa)
// antes da validação.
type Normalizavel interface {
	Normalizar()
}

// DecodificarEValidar lê o JSON do corpo, normaliza e valida. Em erro já
// responde 400.
func DecodificarEValidar(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return false
	}
	if n, ok := dst.(Normalizavel); ok {
		n.Normalizar()
	}
	if err := Validar(dst); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// ResponderJSON escreve v como JSON com o status informado.
func ResponderJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
