// Package commands handles slash command parsing for the toolboard TUI.
package commands

import (
	"strconv"
	"strings"
)

// Tool names accepted by Open.
const (
	ToolRecipe = "recipe"
	ToolEssay  = "essay"
	ToolToxic  = "toxic"
	ToolChat   = "chat"
)

// Tools lists the tools in home-screen order.
var Tools = []string{ToolRecipe, ToolEssay, ToolToxic, ToolChat}

// Command interface for all command types
type Command interface {
	Type() string
}

// Help shows the command list
type Help struct{}

func (Help) Type() string { return "help" }

// Home returns to the home screen
type Home struct{}

func (Home) Type() string { return "home" }

// Open switches to a tool
type Open struct {
	Tool string
}

func (Open) Type() string { return "open" }

// AddIngredient adds to the recipe form
type AddIngredient struct {
	Name string
}

func (AddIngredient) Type() string { return "add" }

// RemoveIngredient removes from the recipe form
type RemoveIngredient struct {
	Name string
}

func (RemoveIngredient) Type() string { return "remove" }

// Clear empties the current tool's input
type Clear struct{}

func (Clear) Type() string { return "clear" }

// Reset discards the current tool's result
type Reset struct{}

func (Reset) Type() string { return "reset" }

// Topic selects an essay topic by its 1-based number
type Topic struct {
	Index int
}

func (Topic) Type() string { return "topic" }

// SaveDraft stores the essay as a draft
type SaveDraft struct{}

func (SaveDraft) Type() string { return "save" }

// Export writes the chat transcript to disk
type Export struct{}

func (Export) Type() string { return "export" }

// Quit exits the program
type Quit struct{}

func (Quit) Type() string { return "quit" }

// ParseError represents a command parsing error
type ParseError struct {
	Message string
}

func (ParseError) Type() string { return "error" }

// Parse parses user input and returns the appropriate Command.
// Returns nil if the input is not a slash command.
func Parse(input string) Command {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "/") {
		return nil
	}

	parts := strings.Fields(input)
	if len(parts) == 0 {
		return nil
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "/help", "/?":
		return Help{}

	case "/home":
		return Home{}

	case "/recipe", "/essay", "/toxic", "/chat":
		return Open{Tool: strings.TrimPrefix(cmd, "/")}

	case "/add":
		name := strings.Join(args, " ")
		if name == "" {
			return ParseError{Message: "/add requires an ingredient"}
		}
		return AddIngredient{Name: name}

	case "/remove", "/rm":
		name := strings.Join(args, " ")
		if name == "" {
			return ParseError{Message: "/remove requires an ingredient"}
		}
		return RemoveIngredient{Name: name}

	case "/clear":
		return Clear{}

	case "/reset":
		return Reset{}

	case "/topic":
		if len(args) != 1 {
			return ParseError{Message: "/topic requires a number"}
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return ParseError{Message: "invalid topic number: " + args[0]}
		}
		return Topic{Index: n}

	case "/save":
		return SaveDraft{}

	case "/export":
		return Export{}

	case "/quit", "/q":
		return Quit{}

	default:
		return ParseError{Message: "unknown command: " + cmd}
	}
}

// HelpText returns the help text for all available commands.
func HelpText() string {
	return `Available commands:
  /help                - Show this help
  /home                - Back to the tool list
  /recipe              - Recipe generator
  /essay               - Essay scorer
  /toxic               - Toxicity checker
  /chat                - SweetBot chat
  /add <ingredient>    - Add an ingredient (recipe)
  /remove <ingredient> - Remove an ingredient (recipe)
  /clear               - Clear the current input
  /reset               - Discard the current result
  /topic <n>           - Pick an essay topic
  /save                - Save the essay as a draft
  /export              - Write the chat transcript to disk
  /quit                - Exit`
}
