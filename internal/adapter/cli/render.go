package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/Sole248k/Task-Management-Application/internal/core/domain"
)

const (
	headerWidth    = 60
	separatorWidth = 80
)

func printHeader(w io.Writer, title string) {
	line := strings.Repeat("=", headerWidth)
	pad := (headerWidth - len(title)) / 2
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", pad), title)
	fmt.Fprintln(w, line)
}

// renderTasks prints one block per task, all fields spelled out.
func renderTasks(w io.Writer, tasks []domain.Task) {
	separator := strings.Repeat("-", separatorWidth)

	for i, task := range tasks {
		fmt.Fprintln(w, separator)
		fmt.Fprintf(w, "Task #%d - ID: %d\n", i+1, task.ID())
		fmt.Fprintln(w, separator)
		fmt.Fprintf(w, "Title       : %s\n", task.Title())
		fmt.Fprintf(w, "Description : %s\n", task.Description())
		fmt.Fprintf(w, "Due Date    : %s\n", task.DueDate().Format(domain.DueDateLayout))
		fmt.Fprintf(w, "Priority    : %s\n", task.Priority())
		fmt.Fprintf(w, "Status      : %s\n", task.Status())
		fmt.Fprintf(w, "Created At  : %s\n", task.CreatedAt().Format("2006-01-02 15:04:05"))
	}

	fmt.Fprintln(w, separator)
}
