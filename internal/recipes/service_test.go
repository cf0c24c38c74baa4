package recipes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/YaroslavGliznitsaYa/recipebot/internal/spoonacular"
)

func testClient(t *testing.T, handler http.HandlerFunc) *spoonacular.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := spoonacular.New("test-key", 2*time.Second, zap.NewNop().Sugar())
	c.BaseURL = srv.URL
	return c
}

func TestSearchWithoutClientUsesLocalTable(t *testing.T) {
	svc := NewService(nil, zap.NewNop().Sugar())

	got := svc.Search(context.Background(), "eggs, milk")
	if len(got) != 2 {
		t.Fatalf("ожидалось 2 локальных рецепта, получено %d", len(got))
	}
	if got[0].Title != "Омлет с молоком" {
		t.Errorf("первый рецепт = %q", got[0].Title)
	}

	if got := svc.Search(context.Background(), "мука"); len(got) != 0 {
		t.Errorf("без яиц и молока ожидался пустой результат, получено %d", len(got))
	}
}

func TestSearchRemoteSuccess(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id": 715415, "title": "Red Lentil Soup", "image": "", "usedIngredientCount": 2, "missedIngredientCount": 3}]`))
	})
	svc := NewService(client, zap.NewNop().Sugar())

	got := svc.Search(context.Background(), "lentils, carrots")
	if len(got) != 1 {
		t.Fatalf("ожидался 1 рецепт, получено %d", len(got))
	}
	if got[0].ID != 715415 {
		t.Errorf("id = %d, ожидалось 715415", got[0].ID)
	}
}

func TestSearchFallsBackOnRemoteFailure(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "серверная ошибка",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "исчерпан лимит",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusPaymentRequired)
			},
		},
		{
			name: "битый JSON",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"not": "a list"`))
			},
		},
		{
			name: "пустой список",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`[]`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(testClient(t, tt.handler), zap.NewNop().Sugar())

			got := svc.Search(context.Background(), "eggs, milk")
			if len(got) != 2 {
				t.Fatalf("ожидался откат на 2 локальных рецепта, получено %d", len(got))
			}
		})
	}
}

func TestDetailWithoutClientUsesLocalTable(t *testing.T) {
	svc := NewService(nil, zap.NewNop().Sugar())

	d := svc.Detail(context.Background(), 1)
	if d.Ingredients == "" {
		t.Error("ожидались локальные детали рецепта 1")
	}
}

func TestDetailRemoteFailureGivesEmptyDetail(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	svc := NewService(client, zap.NewNop().Sugar())

	d := svc.Detail(context.Background(), 1)
	if d.Ingredients != "" || d.Instructions != "" {
		t.Error("при ошибке внешнего запроса детали должны быть пустыми")
	}
}
