package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit   key.Binding
	Help   key.Binding
	Back   key.Binding
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Submit key.Binding
	Reset  key.Binding
	Clear  key.Binding
	Focus  key.Binding
	Topic  key.Binding
	Save   key.Binding
	Drafts key.Binding
	Quick  []key.Binding
}

var keys = keyMap{
	Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	Help:   key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
	Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
	Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
	Submit: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),
	Reset:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
	Clear:  key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear")),
	Focus:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
	Topic:  key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "next topic")),
	Save:   key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "save draft")),
	Drafts: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open draft")),
	Quick: []key.Binding{
		key.NewBinding(key.WithKeys("1")),
		key.NewBinding(key.WithKeys("2")),
		key.NewBinding(key.WithKeys("3")),
		key.NewBinding(key.WithKeys("4")),
	},
}

// screenKeys is the help.KeyMap for one screen.
type screenKeys struct {
	short []key.Binding
}

func (s screenKeys) ShortHelp() []key.Binding { return s.short }

func (s screenKeys) FullHelp() [][]key.Binding { return [][]key.Binding{s.short} }

func keysFor(s Screen) screenKeys {
	switch s {
	case ScreenHome:
		open := keys.Enter
		open.SetHelp("enter", "open")
		return screenKeys{[]key.Binding{keys.Up, keys.Down, open, keys.Help, keys.Quit}}
	case ScreenRecipe:
		add := keys.Enter
		add.SetHelp("enter", "add")
		gen := keys.Submit
		gen.SetHelp("ctrl+s", "generate")
		return screenKeys{[]key.Binding{add, gen, keys.Clear, keys.Reset, keys.Back}}
	case ScreenEssay:
		score := keys.Submit
		score.SetHelp("ctrl+s", "score")
		return screenKeys{[]key.Binding{score, keys.Topic, keys.Save, keys.Drafts, keys.Focus, keys.Reset, keys.Back}}
	case ScreenToxic:
		check := keys.Enter
		check.SetHelp("enter", "check")
		return screenKeys{[]key.Binding{check, keys.Reset, keys.Back}}
	case ScreenChat:
		return screenKeys{[]key.Binding{keys.Enter, keys.Up, keys.Down, keys.Back}}
	default:
		return screenKeys{[]key.Binding{keys.Help, keys.Quit}}
	}
}
