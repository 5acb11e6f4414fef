package recipe

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolboard/internal/client"
	"toolboard/internal/controller"
)

type fakeBackend struct {
	calls int
	got   []string
	resp  *client.FoodResponse
	err   error
}

func (f *fakeBackend) Food(_ context.Context, ingredients []string) (*client.FoodResponse, error) {
	f.calls++
	f.got = ingredients
	return f.resp, f.err
}

func ptr[T any](v T) *T { return &v }

func TestHintUsesThreshold(t *testing.T) {
	assert.Equal(t, "Add at least 2 ingredients to generate a recipe", Hint())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		ingredients []string
		wantErr     bool
	}{
		{name: "empty", ingredients: nil, wantErr: true},
		{name: "one", ingredients: []string{"egg"}, wantErr: true},
		{name: "two distinct", ingredients: []string{"egg", "flour"}, wantErr: false},
		{name: "duplicates count once", ingredients: []string{"egg", "egg"}, wantErr: true},
		{name: "blank entries ignored", ingredients: []string{"egg", "  "}, wantErr: true},
		{name: "trimmed duplicates count once", ingredients: []string{"egg", " egg "}, wantErr: true},
		{name: "case sensitive", ingredients: []string{"Egg", "egg"}, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.ingredients)
			if tt.wantErr {
				assert.ErrorIs(t, err, controller.ErrInvalid)
				assert.Equal(t, Hint(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormAdd(t *testing.T) {
	var f Form

	ing, err := f.Add("  egg ")
	require.NoError(t, err)
	assert.Equal(t, "egg", ing)

	_, err = f.Add("egg")
	assert.ErrorIs(t, err, ErrDuplicate)

	_, err = f.Add("   ")
	assert.ErrorIs(t, err, ErrEmptyIngredient)

	_, err = f.Add("Egg")
	assert.NoError(t, err, "matching is case-sensitive")

	assert.Equal(t, []string{"egg", "Egg"}, f.Ingredients())
}

func TestFormRemove(t *testing.T) {
	var f Form
	_, _ = f.Add("egg")
	_, _ = f.Add("flour")
	_, _ = f.Add("milk")

	assert.True(t, f.Remove("flour"))
	assert.False(t, f.Remove("flour"))
	assert.Equal(t, []string{"egg", "milk"}, f.Ingredients())
}

func TestIngredientsReturnsCopy(t *testing.T) {
	var f Form
	_, _ = f.Add("egg")
	got := f.Ingredients()
	got[0] = "changed"
	assert.Equal(t, []string{"egg"}, f.Ingredients())
}

func TestGenerateBelowThresholdIssuesNoCall(t *testing.T) {
	backend := &fakeBackend{}
	tool := New(backend, nil)
	_, _ = tool.Add("egg")

	assert.False(t, tool.CanGenerate())
	task, err := tool.Generate(context.Background())
	assert.Nil(t, task)
	assert.ErrorIs(t, err, controller.ErrInvalid)
	assert.Equal(t, Hint(), tool.Controller().Validation())
	assert.Zero(t, backend.calls)
	assert.Equal(t, controller.StateIdle, tool.Controller().State())
}

func TestTypingWhilePendingOnlyAffectsNextSubmission(t *testing.T) {
	backend := &fakeBackend{resp: &client.FoodResponse{Data: &client.RecipeData{
		Title: ptr("Pancakes"), Directions: ptr("Whisk"), Ingredients: []string{"egg", "flour"},
	}}}
	tool := New(backend, nil)
	_, _ = tool.Add("egg")
	_, _ = tool.Add("flour")

	task, err := tool.Generate(context.Background())
	require.NoError(t, err)

	_, err = tool.Add("milk")
	require.NoError(t, err)
	assert.False(t, tool.ClearAll(), "clear is disabled while pending")

	require.True(t, tool.Controller().Apply(task()))
	assert.Equal(t, []string{"egg", "flour"}, backend.got)
	assert.Equal(t, []string{"egg", "flour", "milk"}, tool.Ingredients())

	assert.True(t, tool.ClearAll())
	assert.Zero(t, tool.Len())
	assert.False(t, tool.CanClear())
}

func TestFailureClearsRecipe(t *testing.T) {
	backend := &fakeBackend{resp: &client.FoodResponse{Data: &client.RecipeData{
		Title: ptr("Soup"), Directions: ptr("Boil"), Ingredients: []string{"water", "salt"},
	}}}
	tool := New(backend, nil)
	_, _ = tool.Add("water")
	_, _ = tool.Add("salt")

	task, err := tool.Generate(context.Background())
	require.NoError(t, err)
	require.True(t, tool.Controller().Apply(task()))

	backend.err = errors.New("boom")
	task, err = tool.Generate(context.Background())
	require.NoError(t, err)
	require.True(t, tool.Controller().Apply(task()))

	assert.Equal(t, controller.StateFailed, tool.Controller().State())
	assert.Equal(t, FailureMessage, tool.Controller().Failure())
	_, ok := tool.Controller().Result()
	assert.False(t, ok)
}

// Ingredients egg and flour meet the two-ingredient threshold and produce
// the omelette from the mock backend.
func TestOmeletteOverHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"ingredients":["egg","flour"]}`, string(body))
		_, _ = io.WriteString(w, `{"data":{"title":"Omelette","directions":"Mix and cook","ingredients":["egg","flour"]}}`)
	}))
	defer srv.Close()

	tool := New(client.New(srv.URL), nil)
	_, _ = tool.Add("egg")
	_, _ = tool.Add("flour")
	require.True(t, tool.CanGenerate())

	task, err := tool.Generate(context.Background())
	require.NoError(t, err)
	require.True(t, tool.Controller().Apply(task()))

	r, ok := tool.Controller().Result()
	require.True(t, ok)
	assert.Equal(t, "Omelette", r.Title)
	assert.Equal(t, "Mix and cook", r.Directions)
	assert.Len(t, r.Ingredients, 2)
	assert.True(t, strings.HasPrefix(r.Ingredients[0], "egg"))
}
