// Package httpio общие помощники обработчиков локального API:
// разбор тела и параметров, запись JSON и отображение ошибок в статусы.
package httpio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"khaogully-admin/internal/apperr"
	"khaogully-admin/internal/gateway/rest/transport"
	"khaogully-admin/pkg/daterange"
	"khaogully-admin/pkg/logger"
)

const maxBodyBytes = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return v
}

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

type ErrorBody struct {
	Detail string `json:"detail"`
}

// Decode читает JSON-тело и проверяет теги validate.
func Decode(r *http.Request, v any) error {
	if err := decode(r, v); err != nil {
		return fmt.Errorf("%w: malformed JSON body: %s", apperr.Invalid, err)
	}
	return Validate(v)
}

// DecodeOptional как Decode, но пустое тело не ошибка: возвращает false и v не трогает.
// Длина тела может быть неизвестна (chunked, http.NoBody), поэтому смотрим на io.EOF.
func DecodeOptional(r *http.Request, v any) (bool, error) {
	err := decode(r, v)
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: malformed JSON body: %s", apperr.Invalid, err)
	}
	return true, Validate(v)
}

func decode(r *http.Request, v any) error {
	if r.Body == nil {
		return io.EOF
	}
	return json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes)).Decode(v)
}

func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %s", apperr.Invalid, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", apperr.Invalid, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email"
	case "gt", "gte", "lt", "lte", "min", "max":
		return fmt.Sprintf("%s must be %s %s", fe.Field(), fe.Tag(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
}

// PathID разбирает положительный int64 из переменной маршрута.
func PathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", apperr.Invalid, name, raw)
	}
	return id, nil
}

// DateRange читает параметры from и to в формате YYYY-MM-DD.
func DateRange(r *http.Request) (daterange.Range, error) {
	q := r.URL.Query()
	rng, err := daterange.Parse(q.Get("from"), q.Get("to"))
	if err != nil {
		return daterange.Range{}, fmt.Errorf("%w: from/to must be YYYY-MM-DD", apperr.Invalid)
	}
	return rng, nil
}

func BoolQuery(r *http.Request, name string, def bool) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be true or false", apperr.Invalid, name)
	}
	return v, nil
}

func WriteJSON(w http.ResponseWriter, log errorLogger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}

// WriteError пишет {"detail": ...} со статусом по виду ошибки.
// Ответ backend передаётся с его статусом и сообщением.
func WriteError(w http.ResponseWriter, log errorLogger, err error) {
	status, detail := Status(err)
	if status >= http.StatusInternalServerError {
		log.Error("request failed",
			logger.NewField("status", status),
			logger.NewField("error", err),
		)
	}
	WriteJSON(w, log, status, ErrorBody{Detail: detail})
}

func Status(err error) (int, string) {
	var apiErr *transport.APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.StatusCode, transport.Detail(err, http.StatusText(apiErr.StatusCode))
	case errors.Is(err, apperr.Invalid):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, apperr.Unauthenticated):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, apperr.NotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, apperr.Conflict):
		return http.StatusConflict, err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "backend did not respond in time"
	}
	return http.StatusBadGateway, "backend request failed"
}
