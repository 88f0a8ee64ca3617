package main

import (
	"log"
	"net/http"

	"local.dev/communityfeed-backend/internal/config"
	"local.dev/communityfeed-backend/internal/donation"
	"local.dev/communityfeed-backend/internal/httpx"
	"local.dev/communityfeed-backend/internal/storage"
	"local.dev/communityfeed-backend/internal/store"
)

func main() {
	config.Load()
	paths := config.DefaultPaths()
	config.EnsureDir(paths.DataDir)

	var backend storage.Backend
	switch config.StorageBackend() {
	case "sqlite":
		sb, err := storage.NewSQLiteBackend(paths.SQLiteFile)
		if err != nil {
			log.Fatalf("sqlite backend: %v", err)
		}
		defer sb.Close()
		backend = sb
	default:
		backend = storage.NewFileBackend(paths.DataDir)
	}

	st := store.New(storage.NewAdapter(backend))
	st.Initialize()

	app := &httpx.AppCtx{
		Store:     st,
		Donations: donation.NewLog(paths.DonationsFile),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/feed", httpx.HandleFeed(app))
	mux.HandleFunc("/feed/", httpx.HandleFeedDetail(app))
	mux.HandleFunc("/chat", httpx.HandleChat(app))
	mux.HandleFunc("/donations", httpx.HandleDonations(app))

	addr := ":" + config.Port()
	log.Println("Server listening on", addr, "DATA_DIR=", paths.DataDir, "backend=", config.StorageBackend())
	if err := http.ListenAndServe(addr, httpx.CORS(httpx.RequestLog(mux))); err != nil {
		log.Fatal(err)
	}
}
