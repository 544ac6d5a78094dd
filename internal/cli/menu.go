package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"task-manager/internal/config"
	"task-manager/internal/format"
	"task-manager/internal/services"
)

// Menu is the interactive menu loop. Input and output are injected so tests
// can drive a session with scripted input and inspect what was printed.
type Menu struct {
	service      services.TaskService
	config       *config.Config
	in           *bufio.Scanner
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewMenu creates a new interactive menu
func NewMenu(service services.TaskService, cfg *config.Config, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		service:      service,
		config:       cfg,
		in:           bufio.NewScanner(in),
		out:          out,
		errorHandler: NewErrorHandler(),
	}
}

// Run executes the menu loop until the user quits or input ends.
// Unknown choices are not errors: the loop prints a message and re-prompts.
func (m *Menu) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(m.out, "Task Management Application")
		fmt.Fprintln(m.out, "1. View Tasks")
		fmt.Fprintln(m.out, "2. Add Task")
		fmt.Fprintln(m.out, "3. Quit")

		choice, ok := m.prompt("Enter your choice: ")
		if !ok {
			// EOF behaves as quit
			return nil
		}

		switch strings.TrimSpace(choice) {
		case "1":
			if err := m.viewTasks(ctx); err != nil {
				fmt.Fprintln(m.out, m.errorHandler.Handle("view tasks", err))
			}
		case "2":
			if err := m.addTask(ctx); err != nil {
				fmt.Fprintln(m.out, m.errorHandler.Handle("add task", err))
			}
		case "3":
			fmt.Fprintln(m.out, "Exiting the application. Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
		}
	}
}

// viewTasks prints one line per stored task
func (m *Menu) viewTasks(ctx context.Context) error {
	ctx, cancel := m.operationContext(ctx)
	defer cancel()

	ctx, cancel = context.WithTimeout(ctx, m.config.Database.QueryTimeout)
	defer cancel()

	tasks, err := m.service.GetAllTasks(ctx)
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		fmt.Fprintln(m.out, "No tasks yet")
		return nil
	}

	fmt.Fprintln(m.out, "Tasks:")
	for _, task := range tasks {
		added := format.FormatDate(task.CreatedAt, m.config.Display.TimeFormat)
		fmt.Fprintf(m.out, "- %s (added %s)\n", task.String(), added)
	}
	return nil
}

// addTask prompts for a title and description and stores the task
func (m *Menu) addTask(ctx context.Context) error {
	title, ok := m.prompt("Enter task title: ")
	if !ok {
		return nil
	}
	description, ok := m.prompt("Enter task description: ")
	if !ok {
		return nil
	}

	ctx, cancel := m.operationContext(ctx)
	defer cancel()

	ctx, cancel = context.WithTimeout(ctx, m.config.Database.WriteTimeout)
	defer cancel()

	if _, err := m.service.AddTask(ctx, title, description); err != nil {
		return err
	}

	fmt.Fprintln(m.out, "Task added successfully")
	return nil
}

// operationContext bounds a single menu operation with the application
// timeout. Database timeouts nest inside it.
func (m *Menu) operationContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, m.config.Application.Timeout)
}

// prompt prints the prompt text and reads one line of input.
// The second return value is false once input is exhausted.
func (m *Menu) prompt(text string) (string, bool) {
	fmt.Fprint(m.out, text)
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}
