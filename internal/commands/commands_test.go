package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_NonSlashCommand(t *testing.T) {
	tests := []string{
		"hello world",
		"",
		"   ",
		"help",
		"add tomato",
	}

	for _, input := range tests {
		assert.Nil(t, Parse(input), "Parse(%q)", input)
	}
}

func TestParse_Help(t *testing.T) {
	for _, input := range []string{"/help", "/HELP", "  /help  ", "/help extra args ignored", "/?"} {
		result := Parse(input)
		require.NotNil(t, result, "Parse(%q)", input)
		assert.IsType(t, Help{}, result)
		assert.Equal(t, "help", result.Type())
	}
}

func TestParse_Open(t *testing.T) {
	for _, tool := range Tools {
		result := Parse("/" + strings.ToUpper(tool))
		assert.Equal(t, Open{Tool: tool}, result)
	}
	assert.Equal(t, Home{}, Parse("/home"))
}

func TestParse_Ingredients(t *testing.T) {
	tests := []struct {
		input string
		want  Command
	}{
		{"/add eggs", AddIngredient{Name: "eggs"}},
		{"/add  olive   oil ", AddIngredient{Name: "olive oil"}},
		{"/add", ParseError{Message: "/add requires an ingredient"}},
		{"/remove eggs", RemoveIngredient{Name: "eggs"}},
		{"/rm cheese", RemoveIngredient{Name: "cheese"}},
		{"/remove", ParseError{Message: "/remove requires an ingredient"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.input))
		})
	}
}

func TestParse_Topic(t *testing.T) {
	tests := []struct {
		input string
		want  Command
	}{
		{"/topic 3", Topic{Index: 3}},
		{"/topic", ParseError{Message: "/topic requires a number"}},
		{"/topic 1 2", ParseError{Message: "/topic requires a number"}},
		{"/topic zero", ParseError{Message: "invalid topic number: zero"}},
		{"/topic 0", ParseError{Message: "invalid topic number: 0"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.input))
		})
	}
}

func TestParse_NoArgCommands(t *testing.T) {
	tests := map[string]Command{
		"/clear":  Clear{},
		"/reset":  Reset{},
		"/save":   SaveDraft{},
		"/export": Export{},
		"/quit":   Quit{},
		"/q":      Quit{},
	}

	for input, want := range tests {
		assert.Equal(t, want, Parse(input), "Parse(%q)", input)
	}
}

func TestParse_Unknown(t *testing.T) {
	result := Parse("/debate now")
	perr, ok := result.(ParseError)
	require.True(t, ok)
	assert.Equal(t, "error", perr.Type())
	assert.Contains(t, perr.Message, "/debate")
}

func TestHelpText(t *testing.T) {
	help := HelpText()
	for _, cmd := range []string{"/help", "/home", "/add", "/remove", "/clear", "/reset", "/topic", "/save", "/export", "/quit"} {
		assert.Contains(t, help, cmd)
	}
	for _, tool := range Tools {
		assert.Contains(t, help, "/"+tool)
	}
}
