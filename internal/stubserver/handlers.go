package stubserver

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"toolboard/internal/client"
)

type foodResponse struct {
	Data recipeData `json:"data"`
}

type recipeData struct {
	Title       string   `json:"title"`
	Directions  string   `json:"directions"`
	Ingredients []string `json:"ingredients"`
}

type toxicResponse struct {
	Success bool   `json:"success"`
	IsToxic bool   `json:"isToxic"`
	Message string `json:"message"`
}

func handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Server Running"})
}

func handleFood(w http.ResponseWriter, r *http.Request) {
	var req client.FoodRequest
	if !decode(w, r, &req) {
		return
	}
	if len(req.Ingredients) == 0 {
		writeError(w, http.StatusUnprocessableEntity, "ingredients must not be empty")
		return
	}
	writeJSON(w, http.StatusOK, foodResponse{Data: cannedRecipe(req.Ingredients)})
}

func handleChat(w http.ResponseWriter, r *http.Request) {
	var req client.ChatRequest
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"response": cannedReply(req.Message)})
}

func handleToxic(w http.ResponseWriter, r *http.Request) {
	var req client.ToxicRequest
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, toxicResponse{
		Success: true,
		IsToxic: looksToxic(req.Text),
		Message: req.Text,
	})
}

func cannedRecipe(ingredients []string) recipeData {
	first := strings.TrimSpace(ingredients[0])
	title := "House"
	if first != "" {
		r, size := utf8.DecodeRuneInString(first)
		title = string(unicode.ToUpper(r)) + first[size:]
	}
	if len(ingredients) > 1 {
		title += " and " + strings.TrimSpace(ingredients[1])
	}
	title += " Skillet"

	var steps strings.Builder
	steps.WriteString("1. Prepare the " + strings.Join(ingredients, ", ") + ".\n")
	steps.WriteString("2. Heat a pan over medium heat.\n")
	steps.WriteString(fmt.Sprintf("3. Cook everything together for %d minutes.\n", 5*len(ingredients)))
	steps.WriteString("4. Season to taste and serve.")

	return recipeData{
		Title:       title,
		Directions:  steps.String(),
		Ingredients: ingredients,
	}
}

func cannedReply(message string) string {
	text := strings.ToLower(message)
	switch {
	case strings.Contains(text, "sad"), strings.Contains(text, "tired"), strings.Contains(text, "stressed"):
		return "I'm sorry you're feeling that way. Want to tell me more about it?"
	case strings.HasPrefix(text, "hello"), strings.HasPrefix(text, "hi"), strings.HasPrefix(text, "hey"):
		return "Hi! What's on your mind today?"
	default:
		return "Thanks for sharing. How does that make you feel?"
	}
}

var (
	mentionRe = regexp.MustCompile(`@[A-Za-z0-9_]+`)
	urlRe     = regexp.MustCompile(`http\S+|www\.\S+`)
	nonAlpha  = regexp.MustCompile(`[^a-zA-Z\s]`)
)

var flagged = map[string]bool{
	"hate":   true,
	"idiot":  true,
	"stupid": true,
	"loser":  true,
	"ugly":   true,
	"trash":  true,
	"dumb":   true,
}

// looksToxic cleans the text the way the real classifier's preprocessing
// does, then matches against a fixed word list.
func looksToxic(text string) bool {
	text = mentionRe.ReplaceAllString(text, "")
	text = urlRe.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "&amp;", "&")
	text = nonAlpha.ReplaceAllString(text, "")
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if flagged[word] {
			return true
		}
	}
	return false
}
