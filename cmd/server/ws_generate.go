package main

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/snakeoutgen/generator/internal/api"
	"github.com/snakeoutgen/generator/internal/generator"
)

// attemptFrame is one frame streamed per retry over /ws/generate, grounded
// on the teacher's renderer.go streaming one animation frame per
// Battlesnake engine turn.
type attemptFrame struct {
	AttemptNumber   int  `json:"attempt_number"`
	Score           int  `json:"score"`
	IsSolvable      bool `json:"is_solvable"`
	CoveragePercent int  `json:"coverage_percent"`
}

type finalFrame struct {
	Type   string               `json:"type"`
	Result api.GenerateResponse `json:"result,omitempty"`
	Error  string               `json:"error,omitempty"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// handleGenerateWS upgrades the connection, runs the Generator Driver,
// and streams one JSON attempt frame per retry before sending the final
// encoded result.
func handleGenerateWS(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Error("websocket upgrade failed", "error", err.Error())
			return
		}
		defer conn.Close()

		var req api.GenerateRequest
		if err := conn.ReadJSON(&req); err != nil {
			conn.WriteJSON(finalFrame{Type: "error", Error: "malformed request: " + err.Error()})
			return
		}

		onAttempt := func(n int, a generator.Attempt) {
			frame := attemptFrame{
				AttemptNumber:   n,
				Score:           a.Score,
				IsSolvable:      a.Result.IsSolvable,
				CoveragePercent: a.Coverage,
			}
			if err := conn.WriteJSON(frame); err != nil {
				slog.Warn("failed to stream attempt frame", "error", err.Error())
			}
		}

		resp, err := api.GenerateStreaming(req, logger, onAttempt)
		if err != nil {
			conn.WriteJSON(finalFrame{Type: "error", Error: err.Error()})
			return
		}
		conn.WriteJSON(finalFrame{Type: "result", Result: resp})
	}
}
