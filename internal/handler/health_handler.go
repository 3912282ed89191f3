package handler

import "net/http"

// @Summary Liveness
// @Description Fixed confirmation string, answered regardless of store connectivity.
// @Tags health
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func Health(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte("Server is Running..."))
}
