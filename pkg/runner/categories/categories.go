// Package categories provides the runner logic for the category commands.
package categories

import (
	"context"
	"errors"
	"fmt"

	cats "tableflip.dev/agenda/pkg/categories"
	"tableflip.dev/agenda/pkg/printers"
)

// List prints the category collection.
type List struct {
	ShowID bool

	Categories *cats.Store
}

func (n *List) Do(ctx context.Context) error {
	if n.Categories == nil {
		return errors.New("can not list categories, no store")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	all := n.Categories.List()
	fmt.Println("")
	pp.TitleWithCount("categories", len(all))
	pp.Categories(all...)

	return nil
}

// Add appends a new category and prints the resulting collection.
type Add struct {
	Name   string
	ShowID bool

	Categories *cats.Store
}

func (n *Add) Do(ctx context.Context) error {
	if n.Categories == nil {
		return errors.New("can not add category, no store")
	}

	if _, err := n.Categories.Add(n.Name); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	all := n.Categories.List()
	fmt.Println("")
	pp.TitleWithCount("categories", len(all))
	pp.Categories(all...)

	return nil
}
