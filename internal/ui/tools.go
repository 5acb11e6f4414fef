package ui

import (
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"toolboard/internal/commands"
	"toolboard/internal/essay"
	"toolboard/internal/recipe"
	"toolboard/internal/render"
)

var toolScreens = map[string]Screen{
	commands.ToolRecipe: ScreenRecipe,
	commands.ToolEssay:  ScreenEssay,
	commands.ToolToxic:  ScreenToxic,
	commands.ToolChat:   ScreenChat,
}

// line takes the submitted input line. Slash commands run on any screen;
// anything else is for the active tool.
func (m *Model) line() (string, tea.Cmd, bool) {
	text := m.input.Value()
	if cmd := commands.Parse(text); cmd != nil {
		m.input.Reset()
		return "", m.runCommand(cmd), true
	}
	return text, nil, false
}

func (m *Model) homeKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up":
		if m.homeCursor > 0 {
			m.homeCursor--
		}
		return nil
	case "down":
		if m.homeCursor < len(cards)-1 {
			m.homeCursor++
		}
		return nil
	case "enter":
		text, cmd, handled := m.line()
		if handled {
			return cmd
		}
		if strings.TrimSpace(text) != "" {
			m.status = "Type /help for the list of commands"
			return nil
		}
		m.navigate(cards[m.homeCursor].screen)
		return nil
	}
	if m.input.Value() == "" {
		for i, b := range keys.Quick {
			if msg.String() == b.Keys()[0] {
				m.navigate(cards[i].screen)
				return nil
			}
		}
	}
	return m.updateInputs(msg)
}

func (m *Model) recipeKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		text, cmd, handled := m.line()
		if handled {
			return cmd
		}
		if strings.TrimSpace(text) == "" {
			return m.generate()
		}
		cmd = m.addIngredient(text)
		m.input.Reset()
		return cmd
	case "ctrl+s":
		return m.generate()
	case "ctrl+x":
		m.recipe.ClearAll()
		m.refresh()
		return nil
	case "ctrl+r":
		m.resetTool()
		return nil
	}
	return m.updateInputs(msg)
}

func (m *Model) addIngredient(raw string) tea.Cmd {
	ing, err := m.recipe.Add(raw)
	switch {
	case errors.Is(err, recipe.ErrDuplicate):
		return m.toasts.push(Toast{Title: "Ingredient already added", Description: ing + " is already in the list"})
	case err != nil:
		m.status = err.Error()
		return nil
	}
	m.status = ""
	if !m.recipe.CanGenerate() {
		m.status = recipe.Hint()
	}
	m.refresh()
	return nil
}

func (m *Model) generate() tea.Cmd {
	task, err := m.recipe.Generate(m.ctx)
	if err != nil {
		return m.rejected(err)
	}
	return m.started(await(task))
}

func (m *Model) essayKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab":
		m.editorFocused = !m.editorFocused
		if m.editorFocused {
			m.input.Blur()
			return m.editor.Focus()
		}
		m.editor.Blur()
		return m.input.Focus()
	case "ctrl+s":
		return m.score()
	case "ctrl+t":
		m.nextTopic()
		return nil
	case "ctrl+d":
		return m.saveDraft()
	case "ctrl+o":
		return m.openBrowser()
	case "ctrl+r":
		m.resetTool()
		return nil
	case "enter":
		if !m.editorFocused {
			_, cmd, _ := m.line()
			return cmd
		}
	}
	return m.updateInputs(msg)
}

func (m *Model) score() tea.Cmd {
	m.essay.Body = m.editor.Value()
	task, err := m.essay.Score(m.ctx)
	if err != nil {
		return m.rejected(err)
	}
	return m.started(await(task))
}

func (m *Model) nextTopic() {
	next := 0
	for i, t := range essay.Topics {
		if t == m.essay.Topic {
			next = (i + 1) % len(essay.Topics)
			break
		}
	}
	m.essay.SelectTopic(next)
	m.status = ""
	m.refresh()
}

func (m *Model) saveDraft() tea.Cmd {
	if m.deps.Drafts == nil {
		m.status = "Drafts are not available"
		return nil
	}
	m.essay.Body = m.editor.Value()
	if !m.essay.CanSaveDraft() {
		m.status = "Write something before saving a draft"
		return nil
	}
	store, body, topic := m.deps.Drafts, m.essay.Body, m.essay.Topic
	return func() tea.Msg {
		d, err := store.Save(body, topic)
		return draftSavedMsg{draft: d, err: err}
	}
}

func (m *Model) openBrowser() tea.Cmd {
	b := NewDraftBrowser()
	if err := b.Load(m.deps.Drafts); err != nil {
		m.log.Warn("list drafts failed", zap.Error(err))
		m.status = "Couldn't load drafts"
		return nil
	}
	b.SetMaxHeight(m.height)
	m.browser = b
	return nil
}

func (m *Model) handleBrowserKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up":
		m.browser.Up()
	case "down":
		m.browser.Down()
	case "esc":
		m.browser = nil
	case "enter":
		if d := m.browser.Selected(); d != nil && m.essay != nil && !m.essay.Controller().Busy() {
			m.essay.Body = d.Body
			m.essay.Topic = d.Topic
			m.editor.SetValue(d.Body)
			m.essay.Controller().Reset()
			m.refresh()
		}
		m.browser = nil
	}
	return nil
}

func (m *Model) toxicKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		text, cmd, handled := m.line()
		if handled {
			return cmd
		}
		m.toxic.Text = text
		task, err := m.toxic.Check(m.ctx)
		if err != nil {
			return m.rejected(err)
		}
		return m.started(await(task))
	case "ctrl+r":
		m.resetTool()
		return nil
	}
	return m.updateInputs(msg)
}

func (m *Model) chatKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		text, cmd, handled := m.line()
		if handled {
			return cmd
		}
		m.chat.Input = text
		task, err := m.chat.Send(m.ctx)
		m.input.SetValue(m.chat.Input)
		if err != nil {
			return m.rejected(err)
		}
		return m.started(await(task))
	case "up":
		vp := &m.transcript.Viewport
		vp.SetYOffset(vp.YOffset - 1)
		return nil
	case "down":
		vp := &m.transcript.Viewport
		vp.SetYOffset(vp.YOffset + 1)
		return nil
	}
	return m.updateInputs(msg)
}

// resetTool discards the active tool's result and failure.
func (m *Model) resetTool() {
	switch {
	case m.recipe != nil:
		m.recipe.Controller().Reset()
	case m.essay != nil:
		m.essay.Controller().Reset()
	case m.toxic != nil:
		m.toxic.Controller().Reset()
	case m.chat != nil:
		m.chat.Controller().Reset()
	}
	m.status = ""
	m.refresh()
}

func (m *Model) runCommand(c commands.Command) tea.Cmd {
	m.status = ""
	switch c := c.(type) {
	case commands.Help:
		m.showHelp = true
	case commands.Home:
		m.navigate(ScreenHome)
	case commands.Open:
		m.navigate(toolScreens[c.Tool])
	case commands.AddIngredient:
		if m.recipe == nil {
			return m.unavailable(c)
		}
		return m.addIngredient(c.Name)
	case commands.RemoveIngredient:
		if m.recipe == nil {
			return m.unavailable(c)
		}
		if !m.recipe.Remove(c.Name) {
			m.status = c.Name + " is not in the list"
		}
		m.refresh()
	case commands.Clear:
		m.clearInput()
	case commands.Reset:
		m.resetTool()
	case commands.Topic:
		if m.essay == nil {
			return m.unavailable(c)
		}
		if !m.essay.SelectTopic(c.Index - 1) {
			m.status = "No such topic"
		}
		m.refresh()
	case commands.SaveDraft:
		if m.essay == nil {
			return m.unavailable(c)
		}
		return m.saveDraft()
	case commands.Export:
		if m.chat == nil {
			return m.unavailable(c)
		}
		turns, dir := m.chat.Log().Turns(), m.deps.ExportDir
		return func() tea.Msg {
			path, err := render.WriteTranscript(turns, dir, time.Now())
			return transcriptExportedMsg{path: path, err: err}
		}
	case commands.Quit:
		return tea.Quit
	case commands.ParseError:
		m.status = c.Message
	}
	return nil
}

func (m *Model) unavailable(c commands.Command) tea.Cmd {
	m.status = "/" + c.Type() + " is not available on this screen"
	return nil
}

func (m *Model) clearInput() {
	switch {
	case m.recipe != nil:
		m.recipe.ClearAll()
	case m.essay != nil:
		m.essay.Body = ""
		m.editor.Reset()
	case m.toxic != nil:
		m.toxic.Text = ""
	}
	m.input.Reset()
	m.refresh()
}
