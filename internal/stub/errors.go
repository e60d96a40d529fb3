package stub

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type fieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// errorHandler writes every error as {"detail": ...}, the shape the real
// service uses.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var code int
	var detail interface{}

	switch err := err.(type) {
	case *echo.HTTPError:
		code = err.Code
		detail = err.Message
	case validator.ValidationErrors:
		code = http.StatusUnprocessableEntity
		fields := make([]fieldError, 0, len(err))
		for _, fe := range err {
			fields = append(fields, fieldError{
				Loc:  []string{"body", jsonName(fe.Field())},
				Msg:  "field required",
				Type: "missing",
			})
		}
		detail = fields
	default:
		code = http.StatusInternalServerError
		detail = "Ocorreu um erro interno ao processar sua pergunta."
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, map[string]interface{}{"detail": detail})
}

func jsonName(field string) string {
	switch field {
	case "Text":
		return "texto"
	case "Subject":
		return "materia"
	case "Topic":
		return "topico"
	default:
		return field
	}
}
