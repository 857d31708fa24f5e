package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/timeutil"
)

const (
	layoutISO     = "2006-01-02"
	layoutISOTime = "2006-01-02 15:04"
)

// AddOptions
type AddOptions struct {
	Title     string
	DueString string
	Category  string
}

func AddDueArgs(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().StringVar(&o.DueString, "due", "",
		`Due date: "2026-03-01", "2026-03-01 17:00", or a window like "2d6h". Defaults to one day out.`)
}

func AddCategoryArgs(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Category name for the task. Created if it does not exist yet.")
}

// GetDue resolves the due flag against now. Absolute dates win; anything
// else is parsed as a relative window.
func (o *AddOptions) GetDue(now time.Time) (time.Time, error) {
	if o.DueString == "" {
		return now.Add(24 * time.Hour), nil
	}
	if t, err := time.ParseInLocation(layoutISOTime, o.DueString, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(layoutISO, o.DueString, time.Local); err == nil {
		return t, nil
	}
	window, _, err := timeutil.ParseWindow(o.DueString)
	if err != nil {
		return time.Time{}, err
	}
	return now.Add(window), nil
}
