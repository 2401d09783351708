package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/riordanpawley/weekplan/internal/domain"
	"github.com/riordanpawley/weekplan/internal/services/planner"
)

func newListCmd(st *state) *cobra.Command {
	var (
		day    string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks by day and start time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter *domain.Day
			if day != "" {
				d, err := domain.ParseDay(day)
				if err != nil {
					return err
				}
				filter = &d
			}
			return st.withDeps(func(deps *Dependencies) error {
				tasks := domain.SortByWeek(deps.Store.Tasks())
				if filter != nil {
					tasks = domain.FilterDay(tasks, *filter)
				}
				if asJSON {
					return writeJSON(cmd.OutOrStdout(), tasks)
				}
				return writeTable(cmd.OutOrStdout(), tasks)
			})
		},
	}
	cmd.Flags().StringVar(&day, "day", "", "Only this day (mon, tuesday, ...)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	return cmd
}

func newAddCmd(st *state) *cobra.Command {
	var d domain.Draft
	var day, category string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := domain.ParseDay(day)
			if err != nil {
				return err
			}
			d.Day = parsed
			if d.Category, err = domain.ParseCategory(category); err != nil {
				return err
			}

			return st.withDeps(func(deps *Dependencies) error {
				ev, err := deps.Store.Create(d)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", ev.Task.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&d.Title, "title", "", "Task title")
	cmd.Flags().StringVar(&day, "day", "", "Day of the week")
	cmd.Flags().StringVar(&d.StartTime, "start", "", "Start time HH:MM")
	cmd.Flags().StringVar(&d.EndTime, "end", "", "End time HH:MM")
	cmd.Flags().StringVar(&category, "category", "", "study, work, personal, health, leisure or other")
	for _, name := range []string{"title", "day", "start", "end"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newEditCmd(st *state) *cobra.Command {
	var title, day, start, end, category string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch domain.Patch
			flags := cmd.Flags()
			if flags.Changed("title") {
				patch.Title = &title
			}
			if flags.Changed("day") {
				d, err := domain.ParseDay(day)
				if err != nil {
					return err
				}
				patch.Day = &d
			}
			if flags.Changed("start") {
				patch.StartTime = &start
			}
			if flags.Changed("end") {
				patch.EndTime = &end
			}
			if flags.Changed("category") {
				c, err := domain.ParseCategory(category)
				if err != nil {
					return err
				}
				patch.Category = &c
			}
			if patch.Empty() {
				return fmt.Errorf("nothing to change: pass at least one of --title, --day, --start, --end, --category")
			}

			return st.withDeps(func(deps *Dependencies) error {
				id, err := resolveID(deps.Store, args[0])
				if err != nil {
					return err
				}
				ev, err := deps.Store.Update(id, patch)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated %s (%s, %s)\n", ev.Task.ID, ev.Task.Day.Title(), ev.Task.TimeRange())
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&day, "day", "", "Day of the week")
	cmd.Flags().StringVar(&start, "start", "", "Start time HH:MM")
	cmd.Flags().StringVar(&end, "end", "", "End time HH:MM")
	cmd.Flags().StringVar(&category, "category", "", "Category")
	return cmd
}

func newDoneCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return st.withDeps(func(deps *Dependencies) error {
				id, err := resolveID(deps.Store, args[0])
				if err != nil {
					return err
				}
				ev, err := deps.Store.ToggleComplete(id)
				if err != nil {
					return err
				}
				status := "open"
				if ev.Task.IsComplete {
					status = "complete"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s is %s\n", ev.Task.Title, status)
				return nil
			})
		},
	}
}

func newMoveCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "move <id> <day>",
		Short: "Move a task to another day",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := domain.ParseDay(args[1])
			if err != nil {
				return err
			}
			return st.withDeps(func(deps *Dependencies) error {
				id, err := resolveID(deps.Store, args[0])
				if err != nil {
					return err
				}
				ev, err := deps.Store.ReassignDay(id, day)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Moved %s to %s\n", ev.Task.Title, day.Title())
				for _, o := range ev.Overlaps {
					fmt.Fprintf(out, "Warning: overlaps %q (%s)\n", o.Title, o.TimeRange())
				}
				return nil
			})
		},
	}
}

func newRemoveCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return st.withDeps(func(deps *Dependencies) error {
				id, err := resolveID(deps.Store, args[0])
				if err != nil {
					return err
				}
				ev, err := deps.Store.Delete(id)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", ev.Task.Title)
				return nil
			})
		},
	}
}

// resolveID accepts a full id, or a unique prefix or suffix of one.
// Ids made close together share their leading timestamp, so the suffix
// is usually the shorter way to name one.
func resolveID(store *planner.Service, arg string) (domain.TaskID, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return "", fmt.Errorf("%w: empty id", domain.ErrNotFound)
	}
	if _, ok := store.Get(domain.TaskID(arg)); ok {
		return domain.TaskID(arg), nil
	}

	tasks := store.Tasks()
	var ambiguous int
	for _, match := range []func(string, string) bool{strings.HasPrefix, strings.HasSuffix} {
		var matches []domain.TaskID
		for _, t := range tasks {
			if match(string(t.ID), arg) {
				matches = append(matches, t.ID)
			}
		}
		if len(matches) == 1 {
			return matches[0], nil
		}
		ambiguous = max(ambiguous, len(matches))
	}
	if ambiguous > 1 {
		return "", fmt.Errorf("id %q matches %d tasks, use more characters", arg, ambiguous)
	}
	return "", fmt.Errorf("%w: %s", domain.ErrNotFound, arg)
}

func writeJSON(w io.Writer, tasks []domain.Task) error {
	if tasks == nil {
		tasks = []domain.Task{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tasks)
}

func writeTable(w io.Writer, tasks []domain.Task) error {
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(w, "No tasks")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDAY\tTIME\tDONE\tCATEGORY\tTITLE")
	for _, t := range tasks {
		done := ""
		if t.IsComplete {
			done = "✓"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", t.ID, t.Day.Short(), t.TimeRange(), done, t.Category, t.Title)
	}
	return tw.Flush()
}
