// Package cli implements the interactive terminal client: a readline loop
// that renders the task list and form views and routes user intent to the
// application shell.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"taskflow/internal/app"
	"taskflow/internal/client"
)

const prompt = "taskflow> "

// CLI drives the terminal session.
type CLI struct {
	shell *app.Shell
	rl    *readline.Instance
}

// New builds a CLI over the given shell.
func New(shell *app.Shell) (*CLI, error) {
	rl, err := readline.New(prompt)
	if err != nil {
		return nil, fmt.Errorf("init readline: %w", err)
	}
	return &CLI{shell: shell, rl: rl}, nil
}

// Close releases the terminal.
func (c *CLI) Close() error {
	return c.rl.Close()
}

type readlineReader struct{ rl *readline.Instance }

func (r readlineReader) ReadLine(p, prefill string) (string, error) {
	r.rl.SetPrompt(p)
	defer r.rl.SetPrompt(prompt)
	return r.rl.ReadlineWithDefault(prefill)
}

// Run loads the collection and enters the command loop until quit or EOF.
func (c *CLI) Run(ctx context.Context) error {
	fmt.Println("TaskFlow - stay organized, stay productive. Type help for commands.")

	fmt.Println("Loading your tasks...")
	if err := c.shell.Load(ctx); err != nil {
		c.printBanner()
	} else {
		renderList(c.rl.Stdout(), c.shell.Tasks(), time.Now())
	}

	for {
		line, err := c.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if c.dispatch(ctx, line) {
			return nil
		}
	}
}

// dispatch runs a single command line; it returns true on quit.
func (c *CLI) dispatch(ctx context.Context, line string) bool {
	parts := strings.Fields(line)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help":
		c.printHelp()
	case "list":
		renderList(c.rl.Stdout(), c.shell.Tasks(), time.Now())
	case "refresh":
		if err := c.shell.Load(ctx); err != nil {
			c.printBanner()
			break
		}
		renderList(c.rl.Stdout(), c.shell.Tasks(), time.Now())
	case "show":
		c.cmdShow(ctx, args)
	case "add":
		c.cmdAdd(ctx)
	case "edit":
		c.cmdEdit(ctx, args)
	case "delete", "del":
		c.cmdDelete(ctx, args)
	case "quit", "exit":
		fmt.Println("Goodbye!")
		return true
	default:
		fmt.Printf("Unknown command: %s. Type help for available commands.\n", cmd)
	}
	return false
}

func (c *CLI) cmdShow(ctx context.Context, args []string) {
	id, ok := parseIDArg(args, "show <id>")
	if !ok {
		return
	}
	task, err := c.shell.Fetch(ctx, id)
	if err != nil {
		if client.IsNotFound(err) {
			fmt.Printf("No task with id %d\n", id)
		} else {
			fmt.Println("Failed to reach the server.")
		}
		return
	}
	renderTask(c.rl.Stdout(), task, time.Now())
}

func (c *CLI) cmdAdd(ctx context.Context) {
	c.shell.ShowForm()
	in, err := runForm(readlineReader{c.rl}, c.shell.FormValues())
	if err != nil {
		c.shell.CancelEdit()
		fmt.Println("Cancelled.")
		return
	}

	task, err := c.shell.Submit(ctx, in)
	if err != nil {
		c.printBanner()
		c.shell.CancelEdit()
		return
	}
	fmt.Printf("Created task #%d: %s\n", task.ID, task.Title)
}

func (c *CLI) cmdEdit(ctx context.Context, args []string) {
	id, ok := parseIDArg(args, "edit <id>")
	if !ok {
		return
	}
	if !c.shell.StartEdit(id) {
		fmt.Printf("No task with id %d in the list; try refresh.\n", id)
		return
	}

	in, err := runForm(readlineReader{c.rl}, c.shell.FormValues())
	if err != nil {
		c.shell.CancelEdit()
		fmt.Println("Cancelled.")
		return
	}

	task, err := c.shell.Submit(ctx, in)
	if err != nil {
		c.printBanner()
		c.shell.CancelEdit()
		return
	}
	fmt.Printf("Updated task #%d: %s\n", task.ID, task.Title)
}

func (c *CLI) cmdDelete(ctx context.Context, args []string) {
	id, ok := parseIDArg(args, "delete <id>")
	if !ok {
		return
	}

	title := fmt.Sprintf("#%d", id)
	for _, t := range c.shell.Tasks() {
		if t.ID == id {
			title = fmt.Sprintf("%q", t.Title)
			break
		}
	}

	answer, err := readlineReader{c.rl}.ReadLine(
		fmt.Sprintf("Delete %s? This action cannot be undone. [y/N] ", title), "")
	if err != nil || !confirmed(answer) {
		fmt.Println("Kept.")
		return
	}

	task, err := c.shell.Delete(ctx, id)
	if err != nil {
		if client.IsNotFound(err) {
			fmt.Printf("No task with id %d\n", id)
		} else {
			c.printBanner()
		}
		return
	}
	fmt.Printf("Deleted task: %s\n", task.Title)
}

func (c *CLI) printBanner() {
	if msg := c.shell.ErrorMessage(); msg != "" {
		fmt.Printf("! %s\n", msg)
	}
}

func (c *CLI) printHelp() {
	fmt.Println(`Available commands:
  list         - Show the task list
  refresh      - Reload tasks from the server
  show <id>    - Show one task in full
  add          - Create a new task
  edit <id>    - Edit an existing task
  delete <id>  - Delete a task (asks for confirmation)
  help         - Show this help message
  quit         - Exit`)
}

func parseIDArg(args []string, usage string) (int64, bool) {
	if len(args) == 0 {
		fmt.Printf("Usage: %s\n", usage)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Printf("Invalid id %q\n", args[0])
		return 0, false
	}
	return id, true
}
