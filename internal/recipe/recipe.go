// Package recipe generates a recipe from a list of ingredients.
package recipe

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"toolboard/internal/client"
	"toolboard/internal/controller"
)

// MinIngredients is the fewest distinct ingredients a recipe is generated
// from. Both the submit predicate and the hint copy read it.
const MinIngredients = 2

const FailureMessage = "Couldn't generate a recipe. Please try again."

var (
	ErrEmptyIngredient = errors.New("ingredient is empty")
	ErrDuplicate       = errors.New("ingredient already added")
)

// Hint is the copy shown next to the ingredient list.
func Hint() string {
	return fmt.Sprintf("Add at least %d ingredients to generate a recipe", MinIngredients)
}

// Recipe is a generated recipe.
type Recipe struct {
	Title       string
	Directions  string
	Ingredients []string
}

// Backend is the part of the request client this tool needs.
type Backend interface {
	Food(ctx context.Context, ingredients []string) (*client.FoodResponse, error)
}

// Validate is the submit predicate: at least MinIngredients distinct,
// non-empty, trimmed ingredients.
func Validate(ingredients []string) error {
	seen := make(map[string]struct{}, len(ingredients))
	for _, ing := range ingredients {
		if ing = strings.TrimSpace(ing); ing != "" {
			seen[ing] = struct{}{}
		}
	}
	if len(seen) < MinIngredients {
		return controller.Invalid("%s", Hint())
	}
	return nil
}

// Form is the ingredient list being edited. Matching is exact and
// case-sensitive after trimming.
type Form struct {
	ingredients []string
}

// Add appends a trimmed ingredient, rejecting empty strings and duplicates.
func (f *Form) Add(raw string) (string, error) {
	ing := strings.TrimSpace(raw)
	if ing == "" {
		return "", ErrEmptyIngredient
	}
	if slices.Contains(f.ingredients, ing) {
		return ing, ErrDuplicate
	}
	f.ingredients = append(f.ingredients, ing)
	return ing, nil
}

// Remove drops ing from the list and reports whether it was present.
func (f *Form) Remove(ing string) bool {
	ing = strings.TrimSpace(ing)
	i := slices.Index(f.ingredients, ing)
	if i < 0 {
		return false
	}
	f.ingredients = slices.Delete(f.ingredients, i, i+1)
	return true
}

func (f *Form) Ingredients() []string {
	return slices.Clone(f.ingredients)
}

func (f *Form) Len() int {
	return len(f.ingredients)
}

// Tool binds the ingredient form to its controller.
type Tool struct {
	Form
	ctl *controller.Controller[[]string, Recipe]
}

// New creates the recipe tool.
func New(backend Backend, log *zap.Logger) *Tool {
	return &Tool{
		ctl: controller.New(controller.Options[[]string, Recipe]{
			Name:     "recipe",
			Validate: Validate,
			Call: func(ctx context.Context, ingredients []string) (Recipe, error) {
				resp, err := backend.Food(ctx, ingredients)
				if err != nil {
					return Recipe{}, err
				}
				return Recipe{
					Title:       *resp.Data.Title,
					Directions:  *resp.Data.Directions,
					Ingredients: resp.Data.Ingredients,
				}, nil
			},
			FailureMessage: FailureMessage,
			Logger:         log,
		}),
	}
}

func (t *Tool) Controller() *controller.Controller[[]string, Recipe] {
	return t.ctl
}

// Generate submits the current ingredient list.
func (t *Tool) Generate(ctx context.Context) (controller.Task[Recipe], error) {
	return t.ctl.Submit(ctx, t.Ingredients())
}

// CanGenerate reports whether the generate trigger is enabled.
func (t *Tool) CanGenerate() bool {
	return t.ctl.CanSubmit(t.ingredients)
}

// CanClear reports whether "Clear All" is enabled.
func (t *Tool) CanClear() bool {
	return t.Len() > 0 && !t.ctl.Busy()
}

// ClearAll empties the ingredient list unless a request is pending.
func (t *Tool) ClearAll() bool {
	if !t.CanClear() {
		return false
	}
	t.ingredients = nil
	return true
}
