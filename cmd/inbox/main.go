package main

import (
	"encoding/json"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"

	"secretsanta/internal/notify"
)

type memoryInbox struct {
	mu    sync.RWMutex
	boxes map[string][]notify.Message
}

func newMemoryInbox() *memoryInbox {
	return &memoryInbox{
		boxes: make(map[string][]notify.Message),
	}
}

func (m *memoryInbox) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimPrefix(r.URL.Path, "/notify/")
	if email == "" || email == r.URL.Path {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	switch r.Method {
	case http.MethodPost:
		defer r.Body.Close()
		var msg notify.Message
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		m.mu.Lock()
		m.boxes[email] = append(m.boxes[email], msg)
		m.mu.Unlock()
		slog.Info("notification stored", "email", email, "run_id", msg.RunID)
		w.WriteHeader(http.StatusAccepted)
	case http.MethodGet:
		m.mu.RLock()
		msgs := append([]notify.Message{}, m.boxes[email]...)
		m.mu.RUnlock()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(msgs)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	http.Handle("/notify/", newMemoryInbox())

	slog.Info("inbox listening", "addr", *addr)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		slog.Error("inbox stopped", "err", err)
		os.Exit(1)
	}
}
