package api

import (
	"fmt"

	"github.com/google/uuid"
)

type ErrorCommand struct {
	Message string
}

func (s *ErrorCommand) String() string {
	return fmt.Sprintf("ErrorCommand{%s}", s.Message)
}

// UpdateProgressCommand reports import progress for one load job. Current
// counts decoded layers or frames out of Total.
type UpdateProgressCommand struct {
	JobId   uuid.UUID
	Name    string
	Current int
	Total   int
}

func (s *UpdateProgressCommand) String() string {
	return fmt.Sprintf("UpdateProgressCommand{%s %d/%d}", s.Name, s.Current, s.Total)
}
