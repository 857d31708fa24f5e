// Package category defines the task category entity and its default seed set.
package category

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrNameRequired is returned when a category name is empty after trimming.
var ErrNameRequired = errors.New("category: name required")

// Category is a user-defined label attached to tasks. Identity is the ID;
// names are not required to be unique.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// New mints a category with a fresh id. Empty or all-whitespace names are
// rejected.
func New(name string) (Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Category{}, ErrNameRequired
	}
	return Category{ID: uuid.NewString(), Name: name}, nil
}

// Placeholder synthesizes the "Default" category assigned to tasks created
// while no real category exists.
func Placeholder() Category {
	return Category{ID: uuid.NewString(), Name: "Default"}
}

// DefaultNames are the categories seeded into an empty store on first run.
var DefaultNames = []string{"Personal", "Work", "Urgent"}

// Defaults mints the first-run seed set.
func Defaults() []Category {
	seeded := make([]Category, 0, len(DefaultNames))
	for _, name := range DefaultNames {
		seeded = append(seeded, Category{ID: uuid.NewString(), Name: name})
	}
	return seeded
}

// MarshalList serialises a category slice for storage.
func MarshalList(categories []Category) ([]byte, error) {
	return json.MarshalIndent(categories, "", "  ")
}

// UnmarshalList deserialises a stored category slice.
func UnmarshalList(data []byte) ([]Category, error) {
	if len(data) == 0 {
		return []Category{}, nil
	}
	var categories []Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
