package main

import (
	auth "Seismo/internal/auth"
	baseshear "Seismo/internal/calc/baseshear"
	batch "Seismo/internal/calc/batch"
	distribution "Seismo/internal/calc/distribution"
	export "Seismo/internal/calc/export"
	importer "Seismo/internal/calc/importer"
	report "Seismo/internal/calc/report"
	spectrum "Seismo/internal/calc/spectrum"
	timeline "Seismo/internal/calc/timeline"
	history "Seismo/internal/history"
	repo "Seismo/internal/repo"
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	store := repo.NewPostgresDB(db)

	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Env{JWTKey: []byte(tokenKey), Repo: store}
	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.LoginHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.Middleware)

	baseshearH := &baseshear.Handler{Repo: store}
	batchH := &batch.Handler{}
	spectrumH := &spectrum.Handler{}
	distributionH := &distribution.Handler{}
	timelineH := &timeline.Handler{}
	exportH := &export.Handler{}
	reportH := &report.Handler{}
	importerH := &importer.Handler{}
	historyH := &history.Handler{Repo: store}

	secureApi.HandleFunc("/tools/baseshear/calc", baseshearH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/baseshear/batch", batchH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/spectrum/calc", spectrumH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/distribution/calc", distributionH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/timeline", timelineH.List).Methods("GET")
	secureApi.HandleFunc("/tools/export/xlsx", exportH.Generate).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")
	secureApi.HandleFunc("/tools/import/xlsx", importerH.Upload).Methods("POST")

	secureApi.HandleFunc("/history", historyH.List).Methods("GET")
	secureApi.HandleFunc("/history/{id:[0-9]+}", historyH.Delete).Methods("DELETE")

	authFileServer := http.FileServer(http.Dir("./static/auth"))
	mux.PathPrefix("/auth/").
		Handler(authEnv.RedirectIfLoggedIn(http.StripPrefix("/auth", authFileServer)))
	mainFileServer := http.FileServer(http.Dir("./static/main"))
	mux.PathPrefix("/").
		Handler(mainFileServer)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, relying on environment")
	}

	addr := os.Getenv("SERVER_ADDR")
	if addr == "" {
		addr = ":443"
	}
	certFile := os.Getenv("TLS_CERT")
	if certFile == "" {
		certFile = "server.crt"
	}
	keyFile := os.Getenv("TLS_KEY")
	if keyFile == "" {
		keyFile = "server.key"
	}

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()
	log.Println("Starting server on", addr)
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS(certFile, keyFile); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
