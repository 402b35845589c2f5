package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Sole248k/Task-Management-Application/internal/core/domain"
	"github.com/Sole248k/Task-Management-Application/internal/core/ports"
	"github.com/Sole248k/Task-Management-Application/pkg/uimsg"
)

// Shell is the blocking read-eval menu loop. It reads from an injected
// reader and writes to an injected writer so tests can drive a full
// session without a terminal.
type Shell struct {
	manager ports.TaskManager
	in      *bufio.Scanner
	out     io.Writer
	lang    string
}

func NewShell(manager ports.TaskManager, in io.Reader, out io.Writer, lang string) *Shell {
	return &Shell{
		manager: manager,
		in:      bufio.NewScanner(in),
		out:     out,
		lang:    lang,
	}
}

// Run loops until the user exits or input is exhausted. Every failure
// prints a message and returns control to the menu.
func (s *Shell) Run(ctx context.Context) error {
	for {
		s.printMenu()

		choice, ok := s.readLine()
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			s.addTask(ctx)
		case "2":
			s.listTasks()
		case "3":
			s.updateTask(ctx)
		case "4":
			s.completeTask(ctx)
		case "5":
			s.deleteTask(ctx)
		case "6":
			s.filterTasks()
		case "7":
			fmt.Fprintln(s.out, s.msg(uimsg.MsgGoodbye))
			return nil
		default:
			fmt.Fprintln(s.out, s.msg(uimsg.MsgInvalidChoice))
		}
	}
}

func (s *Shell) printMenu() {
	printHeader(s.out, s.msg(uimsg.MsgMenuHeader))
	fmt.Fprintf(s.out, "1. %s\n", s.msg(uimsg.MsgMenuAdd))
	fmt.Fprintf(s.out, "2. %s\n", s.msg(uimsg.MsgMenuList))
	fmt.Fprintf(s.out, "3. %s\n", s.msg(uimsg.MsgMenuUpdate))
	fmt.Fprintf(s.out, "4. %s\n", s.msg(uimsg.MsgMenuComplete))
	fmt.Fprintf(s.out, "5. %s\n", s.msg(uimsg.MsgMenuDelete))
	fmt.Fprintf(s.out, "6. %s\n", s.msg(uimsg.MsgMenuFilter))
	fmt.Fprintf(s.out, "7. %s\n", s.msg(uimsg.MsgMenuExit))
	fmt.Fprint(s.out, s.msg(uimsg.MsgPromptChoice))
}

func (s *Shell) addTask(ctx context.Context) {
	title, ok := s.prompt(uimsg.MsgPromptTitle)
	if !ok {
		return
	}
	description, ok := s.prompt(uimsg.MsgPromptDescription)
	if !ok {
		return
	}
	dueDate, ok := s.prompt(uimsg.MsgPromptDueDate)
	if !ok {
		return
	}
	priority, ok := s.prompt(uimsg.MsgPromptPriority)
	if !ok {
		return
	}
	status, ok := s.prompt(uimsg.MsgPromptStatus)
	if !ok {
		return
	}

	task, err := s.manager.Add(ctx, domain.NewTaskInput{
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Priority:    priority,
		Status:      status,
	})
	if err != nil {
		s.reportError(err)
		return
	}

	fmt.Fprintln(s.out, s.msgData(uimsg.MsgTaskAdded, map[string]interface{}{"ID": task.ID()}))
}

func (s *Shell) listTasks() {
	tasks := s.manager.List(domain.TaskFilter{}, domain.SortByDueDate, domain.OrderDefault)
	if len(tasks) == 0 {
		fmt.Fprintln(s.out, s.msg(uimsg.MsgNoTasks))
		return
	}

	renderTasks(s.out, tasks)
	fmt.Fprintln(s.out, s.msgData(uimsg.MsgTotalTasks, map[string]interface{}{"Count": len(tasks)}))
}

func (s *Shell) updateTask(ctx context.Context) {
	id, ok := s.promptTaskID()
	if !ok {
		return
	}

	current, err := s.manager.Get(id)
	if err != nil {
		s.reportTaskError(id, err)
		return
	}
	renderTasks(s.out, []domain.Task{current})

	// Blank input keeps the current value.
	input := domain.UpdateTaskInput{}
	if value, ok := s.prompt(uimsg.MsgPromptTitle); !ok {
		return
	} else if value != "" {
		input.Title = &value
	}
	if value, ok := s.prompt(uimsg.MsgPromptDescription); !ok {
		return
	} else if value != "" {
		input.Description = &value
	}
	if value, ok := s.prompt(uimsg.MsgPromptDueDate); !ok {
		return
	} else if value != "" {
		input.DueDate = &value
	}
	if value, ok := s.prompt(uimsg.MsgPromptPriority); !ok {
		return
	} else if value != "" {
		input.Priority = &value
	}
	if value, ok := s.prompt(uimsg.MsgPromptStatus); !ok {
		return
	} else if value != "" {
		input.Status = &value
	}

	if _, err := s.manager.Update(ctx, id, input); err != nil {
		s.reportTaskError(id, err)
		return
	}

	fmt.Fprintln(s.out, s.msgData(uimsg.MsgTaskUpdated, map[string]interface{}{"ID": id}))
}

func (s *Shell) completeTask(ctx context.Context) {
	id, ok := s.promptTaskID()
	if !ok {
		return
	}

	if _, err := s.manager.Complete(ctx, id); err != nil {
		s.reportTaskError(id, err)
		return
	}

	fmt.Fprintln(s.out, s.msgData(uimsg.MsgTaskCompleted, map[string]interface{}{"ID": id}))
}

func (s *Shell) deleteTask(ctx context.Context) {
	id, ok := s.promptTaskID()
	if !ok {
		return
	}

	task, err := s.manager.Get(id)
	if err != nil {
		s.reportTaskError(id, err)
		return
	}
	renderTasks(s.out, []domain.Task{task})

	confirm, ok := s.prompt(uimsg.MsgConfirmDelete)
	if !ok {
		return
	}
	if !strings.EqualFold(confirm, "yes") {
		fmt.Fprintln(s.out, s.msg(uimsg.MsgDeleteCanceled))
		return
	}

	if err := s.manager.Delete(ctx, id); err != nil {
		s.reportTaskError(id, err)
		return
	}

	fmt.Fprintln(s.out, s.msgData(uimsg.MsgTaskDeleted, map[string]interface{}{"ID": id}))
}

func (s *Shell) filterTasks() {
	filter := domain.TaskFilter{}

	if value, ok := s.prompt(uimsg.MsgPromptDueDate); !ok {
		return
	} else if value != "" {
		dueDate, err := domain.ParseDueDate(value)
		if err != nil {
			s.reportError(err)
			return
		}
		filter.DueDate = &dueDate
	}

	if value, ok := s.prompt(uimsg.MsgPromptPriority); !ok {
		return
	} else if value != "" {
		priority, err := domain.ParsePriority(value)
		if err != nil {
			s.reportError(err)
			return
		}
		filter.Priority = priority
	}

	if value, ok := s.prompt(uimsg.MsgPromptStatus); !ok {
		return
	} else if value != "" {
		status, err := domain.ParseStatus(value)
		if err != nil {
			s.reportError(err)
			return
		}
		filter.Status = status
	}

	fmt.Fprintln(s.out, "1. Due Date")
	fmt.Fprintln(s.out, "2. Priority")
	fmt.Fprintln(s.out, "3. Created At")
	choice, ok := s.readLine()
	if !ok {
		return
	}

	key := domain.SortByDueDate
	switch choice {
	case "2":
		key = domain.SortByPriority
	case "3":
		key = domain.SortByCreatedAt
	}

	tasks := s.manager.List(filter, key, domain.OrderDefault)
	if len(tasks) == 0 {
		fmt.Fprintln(s.out, s.msg(uimsg.MsgNoTasks))
		return
	}

	renderTasks(s.out, tasks)
	fmt.Fprintln(s.out, s.msgData(uimsg.MsgTotalTasks, map[string]interface{}{"Count": len(tasks)}))
}

func (s *Shell) promptTaskID() (uint64, bool) {
	value, ok := s.prompt(uimsg.MsgPromptTaskID)
	if !ok {
		return 0, false
	}

	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil || id == 0 {
		fmt.Fprintln(s.out, s.msg(uimsg.MsgInvalidTaskID))
		return 0, false
	}
	return id, true
}

func (s *Shell) prompt(key string) (string, bool) {
	fmt.Fprint(s.out, s.msg(key))
	return s.readLine()
}

func (s *Shell) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Shell) reportError(err error) {
	var storeErr *domain.StoreError
	if errors.As(err, &storeErr) {
		zap.L().Error("store operation failed", zap.Error(err))
	}

	fmt.Fprintf(s.out, "Error: %v\n", err)
}

// reportTaskError localizes the not-found case; everything else falls
// through to the generic report.
func (s *Shell) reportTaskError(id uint64, err error) {
	if errors.Is(err, domain.ErrTaskNotFound) {
		fmt.Fprintln(s.out, s.msgData(uimsg.MsgTaskNotFound, map[string]interface{}{"ID": id}))
		return
	}
	s.reportError(err)
}

func (s *Shell) msg(key string) string {
	return uimsg.Get(key, s.lang)
}

func (s *Shell) msgData(key string, data map[string]interface{}) string {
	return uimsg.GetData(key, s.lang, data)
}
