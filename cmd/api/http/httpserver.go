package http

import (
	"fmt"
	"net/http"
	"time"
)

type ServerConfig struct {
	Port int
}

func NewServer(config ServerConfig, h *CafeHandler) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", ping)

	mux.HandleFunc("GET /{$}", h.listCafes)
	mux.HandleFunc("GET /add", h.showAddForm)
	mux.HandleFunc("POST /add", h.addCafe)
	mux.HandleFunc("GET /edit/{id}", h.showEditForm)
	mux.HandleFunc("POST /edit/{id}", h.editCafe)
	mux.HandleFunc("GET /delete/{id}", h.deleteCafe)
	mux.HandleFunc("POST /delete/{id}", h.deleteCafe)

	server := http.Server{
		Addr:              fmt.Sprintf(":%d", config.Port),
		Handler:           accessLog(recovery(mux)),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}
	return &server
}

/* Tests the http server connection.  */
func ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
