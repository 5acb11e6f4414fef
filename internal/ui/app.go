package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"toolboard/internal/chat"
	"toolboard/internal/controller"
	"toolboard/internal/drafts"
	"toolboard/internal/essay"
	"toolboard/internal/health"
	"toolboard/internal/logger"
	"toolboard/internal/recipe"
	"toolboard/internal/render"
	"toolboard/internal/toxic"
)

// Screen is the view currently shown.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenRecipe
	ScreenEssay
	ScreenToxic
	ScreenChat
)

func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenRecipe:
		return "recipe"
	case ScreenEssay:
		return "essay"
	case ScreenToxic:
		return "toxic"
	case ScreenChat:
		return "chat"
	default:
		return "unknown"
	}
}

// Backend is every remote call the dashboard makes.
type Backend interface {
	recipe.Backend
	toxic.Backend
	chat.Backend
	health.Pinger
}

// Deps are the collaborators the dashboard is built from.
type Deps struct {
	Backend Backend
	Scorer  essay.Scorer

	// Drafts may be nil, in which case saving drafts is unavailable.
	Drafts DraftStore

	Logger    *zap.Logger
	NotifyTTL time.Duration

	// ExportDir receives chat transcripts.
	ExportDir string
}

type healthMsg struct {
	result health.Result
}

type draftSavedMsg struct {
	draft *drafts.Draft
	err   error
}

type transcriptExportedMsg struct {
	path string
	err  error
}

type Model struct {
	deps   Deps
	ctx    context.Context
	log    *zap.Logger
	prober *health.Prober
	health health.Result

	screen        Screen
	width, height int
	ready         bool
	showHelp      bool
	browser       *DraftBrowser
	homeCursor    int
	status        string

	input         textinput.Model
	editor        textarea.Model
	editorFocused bool
	spinner       spinner.Model
	output        viewport.Model
	transcript    *TranscriptView
	helpBar       help.Model
	renderer      *render.Renderer
	toasts        toasts

	recipe *recipe.Tool
	essay  *essay.Tool
	toxic  *toxic.Tool
	chat   *chat.Session
}

func New(deps Deps) Model {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.NotifyTTL <= 0 {
		deps.NotifyTTL = 4 * time.Second
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type / for commands"
	ti.CharLimit = 2000
	ti.Focus()

	ta := textarea.New()
	ta.Placeholder = "Write your essay here..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = StatusWarn

	vp := viewport.New(80, 10)
	vp.MouseWheelEnabled = true

	return Model{
		deps:       deps,
		ctx:        logger.ContextWithLogger(context.Background(), deps.Logger),
		log:        deps.Logger,
		prober:     health.NewProber(deps.Backend),
		input:      ti,
		editor:     ta,
		spinner:    sp,
		output:     vp,
		transcript: NewTranscriptView(80, 10),
		helpBar:    help.New(),
		renderer:   render.NewRenderer("", 76),
		toasts:     toasts{ttl: deps.NotifyTTL},
	}
}

// Screen reports the active view.
func (m Model) Screen() Screen {
	return m.screen
}

// Toasts returns the visible notifications, oldest first.
func (m Model) Toasts() []Toast {
	return append([]Toast(nil), m.toasts.items...)
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.probe(), textinput.Blink)
}

// probe runs the startup health check off the event loop.
func (m Model) probe() tea.Cmd {
	ctx, prober := m.ctx, m.prober
	return func() tea.Msg {
		return healthMsg{result: prober.Probe(ctx)}
	}
}

// await runs a controller task off the event loop; its Outcome comes back
// as the message.
func await[Res any](task controller.Task[Res]) tea.Cmd {
	return func() tea.Msg {
		return task()
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case healthMsg:
		m.health = msg.result
		if msg.result.Status == health.StatusDown {
			return m, m.toasts.push(Toast{Title: "Error", Description: health.DownMessage, Destructive: true})
		}
		return m, nil

	case toastExpiredMsg:
		m.toasts.expire(msg.id)
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.refresh()
		return m, cmd

	case controller.Outcome[recipe.Recipe]:
		if m.recipe == nil || !m.recipe.Controller().Apply(msg) {
			m.log.Debug("dropped recipe outcome", zap.Stringer("controller", msg.Controller))
			return m, nil
		}
		m.refresh()
		return m, m.failureToast("Error", m.recipe.Controller().Failure())

	case controller.Outcome[essay.Feedback]:
		if m.essay == nil || !m.essay.Controller().Apply(msg) {
			m.log.Debug("dropped essay outcome", zap.Stringer("controller", msg.Controller))
			return m, nil
		}
		m.refresh()
		if m.essay.Controller().State() == controller.StateSucceeded {
			fb, _ := m.essay.Controller().Result()
			return m, m.toasts.push(Toast{Title: "Essay scored!", Description: fb.Label()})
		}
		return m, m.failureToast("Error", m.essay.Controller().Failure())

	case controller.Outcome[toxic.Verdict]:
		if m.toxic == nil || !m.toxic.Controller().Apply(msg) {
			m.log.Debug("dropped toxicity outcome", zap.Stringer("controller", msg.Controller))
			return m, nil
		}
		m.refresh()
		return m, m.failureToast(toxic.ErrorTitle, m.toxic.Controller().Failure())

	case controller.Outcome[string]:
		if m.chat == nil || !m.chat.Apply(msg) {
			m.log.Debug("dropped chat outcome", zap.Stringer("controller", msg.Controller))
			return m, nil
		}
		m.refresh()
		return m, m.failureToast(chat.ErrorTitle, m.chat.Failure())

	case draftSavedMsg:
		if msg.err != nil {
			m.log.Warn("save draft failed", zap.Error(msg.err))
			return m, m.toasts.push(Toast{Title: "Error", Description: "Couldn't save the draft.", Destructive: true})
		}
		m.log.Info("draft saved", zap.String("id", msg.draft.ID), zap.Int("words", msg.draft.Words))
		return m, m.toasts.push(Toast{Title: "Draft saved", Description: msg.draft.Topic})

	case transcriptExportedMsg:
		if msg.err != nil {
			m.log.Warn("export transcript failed", zap.Error(msg.err))
			return m, m.toasts.push(Toast{Title: "Error", Description: "Couldn't export the conversation.", Destructive: true})
		}
		return m, m.toasts.push(Toast{Title: "Conversation exported", Description: msg.path})
	}

	return m, m.updateInputs(msg)
}

// updateInputs forwards msg to whichever text component has focus.
func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if m.screen == ScreenEssay && m.editorFocused {
		m.editor, cmd = m.editor.Update(msg)
		if m.essay != nil && m.essay.Body != m.editor.Value() {
			m.essay.Body = m.editor.Value()
			m.refresh()
		}
		return cmd
	}
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		switch msg.String() {
		case "f1", "esc":
			m.showHelp = false
		}
		return m, nil
	}

	if m.browser != nil {
		return m, m.handleBrowserKey(msg)
	}

	switch msg.String() {
	case "f1":
		m.showHelp = true
		return m, nil
	case "esc":
		if m.screen != ScreenHome {
			m.navigate(ScreenHome)
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.screen {
	case ScreenHome:
		cmd = m.homeKey(msg)
	case ScreenRecipe:
		cmd = m.recipeKey(msg)
	case ScreenEssay:
		cmd = m.essayKey(msg)
	case ScreenToxic:
		cmd = m.toxicKey(msg)
	case ScreenChat:
		cmd = m.chatKey(msg)
	}
	return m, cmd
}

// navigate switches screens. The tool being left is detached and dropped;
// the tool being entered starts from scratch.
func (m *Model) navigate(to Screen) {
	if to == m.screen {
		return
	}
	m.log.Debug("navigate", zap.Stringer("from", m.screen), zap.Stringer("to", to))
	m.closeTool()
	m.screen = to
	m.status = ""
	m.input.Reset()
	m.input.Focus()
	m.openTool()
	m.layout()
	m.refresh()
}

func (m *Model) closeTool() {
	switch m.screen {
	case ScreenRecipe:
		m.recipe.Controller().Detach()
		m.recipe = nil
	case ScreenEssay:
		m.essay.Controller().Detach()
		m.essay = nil
		m.editor.Reset()
		m.editor.Blur()
		m.editorFocused = false
	case ScreenToxic:
		m.toxic.Controller().Detach()
		m.toxic = nil
	case ScreenChat:
		m.chat.Controller().Detach()
		m.chat = nil
	}
}

func (m *Model) openTool() {
	switch m.screen {
	case ScreenRecipe:
		m.recipe = recipe.New(m.deps.Backend, m.log)
		m.status = recipe.Hint()
	case ScreenEssay:
		m.essay = essay.New(m.deps.Scorer, m.log)
		m.editorFocused = true
		m.input.Blur()
		m.editor.Focus()
	case ScreenToxic:
		m.toxic = toxic.New(m.deps.Backend, m.log)
	case ScreenChat:
		m.chat = chat.New(m.deps.Backend, m.log)
	}
}

func (m Model) busy() bool {
	switch {
	case m.recipe != nil:
		return m.recipe.Controller().Busy()
	case m.essay != nil:
		return m.essay.Controller().Busy()
	case m.toxic != nil:
		return m.toxic.Controller().Busy()
	case m.chat != nil:
		return m.chat.Controller().Busy()
	}
	return false
}

// started batches a submitted task with the spinner.
func (m *Model) started(task tea.Cmd) tea.Cmd {
	m.status = ""
	m.refresh()
	return tea.Batch(task, m.spinner.Tick)
}

// rejected shows why a submission did not go out.
func (m *Model) rejected(err error) tea.Cmd {
	var vErr *controller.ValidationError
	switch {
	case errors.As(err, &vErr):
		m.status = vErr.Message
	case errors.Is(err, controller.ErrBusy):
		m.status = "Still working on the last request..."
	default:
		m.status = err.Error()
	}
	return nil
}

func (m *Model) failureToast(title, message string) tea.Cmd {
	if message == "" {
		return nil
	}
	return m.toasts.push(Toast{Title: title, Description: message, Destructive: true})
}

func (m *Model) layout() {
	if !m.ready {
		return
	}
	width := max(m.width-4, 20)
	// title, help bar, input line, status line and borders
	bodyHeight := max(m.height-10, 5)

	m.input.Width = width - 4
	m.renderer.SetWidth(width - 4)
	m.output.Width = width
	m.output.Height = bodyHeight
	m.transcript.SetSize(width, bodyHeight)
	m.editor.SetWidth(width)
	m.editor.SetHeight(max(bodyHeight/2, 3))
	if m.screen == ScreenEssay {
		m.output.Height = max(bodyHeight-m.editor.Height()-3, 3)
	}
	if m.browser != nil {
		m.browser.SetMaxHeight(m.height)
	}
}
