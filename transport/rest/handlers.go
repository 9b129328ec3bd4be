package rest

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rocketscienceinc/ghost-tictactoe/internal/entity"
)

type scoreService interface {
	GetScore(ctx context.Context) (*entity.Score, error)
}

type Handlers interface {
	ScoresHandler(w http.ResponseWriter, r *http.Request)
}

type scoreHandlers struct {
	scoreService scoreService
}

func NewHandlers(scoreService scoreService) Handlers {
	return &scoreHandlers{
		scoreService: scoreService,
	}
}

func (that *scoreHandlers) ScoresHandler(w http.ResponseWriter, r *http.Request) {
	score, err := that.scoreService.GetScore(r.Context())
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(score); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}
