package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

// Backend routes.
const (
	PathRoot  = "/"
	PathFood  = "/food"
	PathChat  = "/chat"
	PathToxic = "/toxic"
)

// FoodRequest is the body of POST /food.
type FoodRequest struct {
	Ingredients []string `json:"ingredients"`
}

// RecipeData is the generated recipe inside a FoodResponse.
type RecipeData struct {
	Title       *string  `json:"title"`
	Directions  *string  `json:"directions"`
	Ingredients []string `json:"ingredients"`
}

// FoodResponse is the body returned by POST /food.
type FoodResponse struct {
	Data *RecipeData `json:"data"`
}

func (r *FoodResponse) Validate() error {
	switch {
	case r.Data == nil:
		return errors.New("missing field data")
	case r.Data.Title == nil:
		return errors.New("missing field data.title")
	case r.Data.Directions == nil:
		return errors.New("missing field data.directions")
	case r.Data.Ingredients == nil:
		return errors.New("missing field data.ingredients")
	}
	return nil
}

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the body returned by POST /chat.
type ChatResponse struct {
	Response *string `json:"response"`
}

func (r *ChatResponse) Validate() error {
	if r.Response == nil {
		return errors.New("missing field response")
	}
	return nil
}

// ToxicRequest is the body of POST /toxic.
type ToxicRequest struct {
	Text string `json:"text"`
}

// ToxicResponse is the body returned by POST /toxic.
type ToxicResponse struct {
	IsToxic *bool   `json:"isToxic"`
	Message *string `json:"message"`
}

func (r *ToxicResponse) Validate() error {
	switch {
	case r.IsToxic == nil:
		return errors.New("missing field isToxic")
	case r.Message == nil:
		return errors.New("missing field message")
	}
	return nil
}

// Food asks the backend to generate a recipe from ingredients.
func (c *Client) Food(ctx context.Context, ingredients []string) (*FoodResponse, error) {
	var resp FoodResponse
	if err := c.Send(ctx, http.MethodPost, PathFood, FoodRequest{Ingredients: ingredients}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Chat sends one user message to the companion and returns its reply text.
func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	var resp ChatResponse
	if err := c.Send(ctx, http.MethodPost, PathChat, ChatRequest{Message: message}, &resp); err != nil {
		return "", err
	}
	return *resp.Response, nil
}

// Toxic asks the backend to classify text.
func (c *Client) Toxic(ctx context.Context, text string) (*ToxicResponse, error) {
	var resp ToxicResponse
	if err := c.Send(ctx, http.MethodPost, PathToxic, ToxicRequest{Text: text}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Ping issues the health check GET / and returns the raw body. The body is
// for logging only; its contents carry no meaning for the tools.
func (c *Client) Ping(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.Send(ctx, http.MethodGet, PathRoot, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
