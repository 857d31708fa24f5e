// Package printers renders task and category collections for the terminal.
package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/agenda/pkg/category"
	"tableflip.dev/agenda/pkg/task"
)

const (
	openGlyph = "●"
	doneGlyph = "✘"
	dueLayout = "Jan 2, 2006 15:04"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("c7f9f8b99dca4b27-9d90-4b27-9d90  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" item")
	default:
		_, _ = c.Println(" items")
	}
}

// Tasks prints one row per task: status glyph, title, due date, category,
// and an urgency marker derived against now.
func (pp *PrettyPrint) Tasks(now time.Time, tasks ...task.Task) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "

	for _, t := range tasks {
		tbl.AddRow(pp.taskRow(now, t)...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func (pp *PrettyPrint) taskRow(now time.Time, t task.Task) []interface{} {
	glyph := openGlyph
	if t.Completed {
		glyph = doneGlyph
	}

	row := make([]interface{}, 0, 6)
	if pp.ShowID {
		row = append(row, color.New(color.FgHiYellow, color.Faint).Sprint(t.ID))
	}
	row = append(row, glyph, t.Title, t.Due.Local().Format(dueLayout), t.Category.Name)

	switch {
	case t.Overdue(now):
		row = append(row, color.New(color.FgRed).Sprint("overdue"))
	case t.DueSoon(now):
		row = append(row, color.New(color.FgHiYellow).Sprint("due soon"))
	default:
		row = append(row, "")
	}
	return row
}

// Categories prints one row per category.
func (pp *PrettyPrint) Categories(categories ...category.Category) {
	if len(categories) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "

	for _, c := range categories {
		if pp.ShowID {
			tbl.AddRow(color.New(color.FgHiYellow, color.Faint).Sprint(c.ID), c.Name)
			continue
		}
		tbl.AddRow(c.Name)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}
