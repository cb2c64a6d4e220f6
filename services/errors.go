package services

import "fmt"

// GameNotFoundError signals that an id has no corresponding record.
// Handlers map it to 404.
type GameNotFoundError struct {
	ID uint
}

func (e *GameNotFoundError) Error() string {
	return fmt.Sprintf("game with id %d not found", e.ID)
}

// ValidationError aggregates every field violation of a draft rather
// than failing on the first one. Handlers map it to 400.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}
