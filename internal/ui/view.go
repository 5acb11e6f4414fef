package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"toolboard/internal/essay"
	"toolboard/internal/health"
	"toolboard/internal/render"
)

type card struct {
	screen Screen
	title  string
	desc   string
}

var cards = []card{
	{ScreenRecipe, "Recipe Generator", "Turn the ingredients you have into a recipe."},
	{ScreenEssay, "Essay Scorer", "Get a score and feedback on a short essay."},
	{ScreenToxic, "Toxicity Checker", "Check whether a message reads as toxic."},
	{ScreenChat, "SweetBot", "Talk things through with a friendly companion."},
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return HelpContent(m.width, m.height)
	}
	if m.browser != nil {
		return m.browser.Render(m.width, m.height)
	}

	var body string
	switch m.screen {
	case ScreenHome:
		body = m.homeView()
	case ScreenEssay:
		body = m.essayView()
	case ScreenChat:
		body = m.transcript.Viewport.View()
	default:
		body = m.output.View()
	}

	var sb strings.Builder
	sb.WriteString(m.titleBar())
	sb.WriteString("\n\n")
	sb.WriteString(body)
	sb.WriteString("\n")
	sb.WriteString(m.statusLine())
	sb.WriteString("\n")
	if m.screen != ScreenEssay || !m.editorFocused {
		sb.WriteString(ActiveBox.Width(max(m.width-4, 20)).Render(m.input.View()))
	} else {
		sb.WriteString(InactiveBox.Width(max(m.width-4, 20)).Render(DimStyle.Render("tab: command line")))
	}
	sb.WriteString("\n")
	sb.WriteString(m.helpBar.View(keysFor(m.screen)))

	view := sb.String()
	if t := m.toasts.render(m.width); t != "" {
		view = lipgloss.JoinVertical(lipgloss.Right, t, view)
	}
	return view
}

func (m Model) titleBar() string {
	title := TitleStyle.Render("TOOLBOARD")
	if m.screen != ScreenHome {
		title += DimStyle.Render(" / ") + TitleStyle.Render(cards[m.screen-1].title)
	}

	var server string
	switch m.health.Status {
	case health.StatusUp:
		server = StatusOK.Render("●") + DimStyle.Render(" server up")
	case health.StatusDown:
		server = StatusCrit.Render("✗") + DimStyle.Render(" server down")
	default:
		server = DimStyle.Render("○ checking server")
	}

	gap := max(m.width-lipgloss.Width(title)-lipgloss.Width(server)-2, 1)
	return title + strings.Repeat(" ", gap) + server
}

func (m Model) statusLine() string {
	switch {
	case m.busy():
		return m.spinner.View() + " " + DimStyle.Render(m.pendingText())
	case m.status != "":
		return HintStyle.Render(m.status)
	default:
		return ""
	}
}

func (m Model) pendingText() string {
	switch m.screen {
	case ScreenRecipe:
		return "Generating recipe..."
	case ScreenEssay:
		return "Scoring essay..."
	case ScreenToxic:
		return "Analyzing..."
	case ScreenChat:
		return "SweetBot is typing..."
	}
	return "Working..."
}

func (m Model) homeView() string {
	width := max(m.width-8, 20)
	var boxes []string
	for i, c := range cards {
		style := InactiveBox
		title := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d. %s", i+1, c.title))
		if i == m.homeCursor {
			style = ActiveBox
			title = TitleStyle.Render(fmt.Sprintf("%d. %s", i+1, c.title))
		}
		boxes = append(boxes, style.Width(width).Padding(0, 1).Render(title+"\n"+DimStyle.Render(c.desc)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, boxes...)
}

func (m Model) essayView() string {
	var sb strings.Builder

	topic := m.essay.Topic
	if topic == "" {
		topic = DimStyle.Render("none (ctrl+t or /topic <n>)")
	} else {
		topic = HintStyle.Render(topic)
	}
	sb.WriteString("Topic: " + topic + "\n")

	chars := len([]rune(strings.TrimSpace(m.essay.Body)))
	counter := fmt.Sprintf("%d words, %d/%d characters", essay.WordCount(m.essay.Body), chars, essay.MinLength)
	if chars < essay.MinLength {
		sb.WriteString(DimStyle.Render(counter))
	} else {
		sb.WriteString(StatusOK.Render(counter))
	}
	sb.WriteString("\n")

	box := InactiveBox
	if m.editorFocused {
		box = ActiveBox
	}
	sb.WriteString(box.Render(m.editor.View()))
	sb.WriteString("\n")
	sb.WriteString(m.output.View())
	return sb.String()
}

// refresh re-renders the active tool's output pane from its state.
func (m *Model) refresh() {
	switch m.screen {
	case ScreenRecipe:
		m.output.SetContent(m.recipeContent())
	case ScreenEssay:
		m.output.SetContent(m.feedbackContent())
	case ScreenToxic:
		m.output.SetContent(m.verdictContent())
	case ScreenChat:
		typing := ""
		if m.chat.Controller().Busy() {
			typing = m.spinner.View() + " typing"
		}
		m.transcript.Refresh(m.chat.Log(), typing)
	}
}

func (m *Model) recipeContent() string {
	var sb strings.Builder

	sb.WriteString(TitleStyle.Render("Ingredients"))
	sb.WriteString(DimStyle.Render(fmt.Sprintf(" (%d)", m.recipe.Len())))
	sb.WriteString("\n")
	if m.recipe.Len() == 0 {
		sb.WriteString(DimStyle.Render("Type an ingredient and press enter."))
	} else {
		var tags []string
		for _, ing := range m.recipe.Ingredients() {
			tags = append(tags, TagStyle.Render(ing))
		}
		sb.WriteString(strings.Join(tags, " "))
	}
	sb.WriteString("\n\n")

	ctl := m.recipe.Controller()
	if r, ok := ctl.Result(); ok {
		sb.WriteString(staleNote(ctl.Stale()))
		sb.WriteString(m.renderer.Render(render.Recipe(r)))
	}
	return sb.String()
}

func (m *Model) feedbackContent() string {
	ctl := m.essay.Controller()
	fb, ok := ctl.Result()
	if !ok {
		return ""
	}
	return staleNote(ctl.Stale()) + m.renderer.Render(render.Feedback(fb))
}

func (m *Model) verdictContent() string {
	ctl := m.toxic.Controller()
	v, ok := ctl.Result()
	if !ok {
		return DimStyle.Render("Type a message and press enter to check it.")
	}

	headline := SafeStyle.Render("✓ " + v.Headline())
	if v.IsToxic {
		headline = ToxicStyle.Render("⚠ " + v.Headline())
	}
	return staleNote(ctl.Stale()) + headline + "\n\n" + m.renderer.Render("> "+v.Message)
}

func staleNote(stale bool) string {
	if !stale {
		return ""
	}
	return DimStyle.Render("(previous result, updating...)") + "\n"
}
