package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// RenderID identifies one render in logs and API responses
type RenderID ID

// NewRenderID creates a time-ordered render identifier
func NewRenderID() RenderID { return RenderID(NewID()) }

func (id RenderID) String() string { return ID(id).String() }

// ParseRenderID validates a render identifier
func ParseRenderID(s string) (RenderID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("render ID cannot be empty")
	}
	if _, err := uuid.Parse(s); err != nil {
		return "", fmt.Errorf("invalid render ID %q: %w", s, err)
	}
	return RenderID(s), nil
}
