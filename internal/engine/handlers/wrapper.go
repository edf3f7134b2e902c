package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/rian010194/shadows-of-the-dungeon/pkg/api"
)

// TypedHandlerFunc - "чистый" хендлер, работающий с готовой структурой T.
type TypedHandlerFunc[T any] func(ctx Context, payload T) (Result, error)

// EmptyHandlerFunc - хендлер, которому не нужны данные (INIT, WAIT).
type EmptyHandlerFunc func(ctx Context) (Result, error)

// WithPayload оборачивает чистый хендлер в стандартный HandlerFunc,
// забирая на себя Unmarshal и Validate.
func WithPayload[T any](handler TypedHandlerFunc[T]) HandlerFunc {
	return func(ctx Context, raw json.RawMessage) (Result, error) {
		var payload T

		if err := json.Unmarshal(raw, &payload); err != nil {
			return Result{}, fmt.Errorf("invalid payload format: %w", err)
		}

		// Автоматическая валидация, если T реализует api.Validator.
		if v, ok := any(payload).(api.Validator); ok {
			if err := v.Validate(); err != nil {
				return Result{}, fmt.Errorf("validation failed: %w", err)
			}
		}

		return handler(ctx, payload)
	}
}

// WithEmptyPayload - обертка для команд без данных.
func WithEmptyPayload(handler EmptyHandlerFunc) HandlerFunc {
	return func(ctx Context, _ json.RawMessage) (Result, error) {
		return handler(ctx)
	}
}
