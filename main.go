package main

import (
	"log"
	"net/http"

	"sudokuGo/auth"
	"sudokuGo/cache"
	"sudokuGo/config"
	"sudokuGo/database"
	"sudokuGo/game"
	"sudokuGo/mail"
	"sudokuGo/store"

	"github.com/rs/cors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	db := database.ConnectDB(cfg.DatabaseURL)
	defer db.Close()

	accounts, err := store.NewPostgresAccountStore(db)
	if err != nil {
		log.Fatalf("Error setting up account store: %v", err)
	}
	games, err := store.NewPostgresGameStore(db)
	if err != nil {
		log.Fatalf("Error setting up game store: %v", err)
	}
	codes, err := store.NewPostgresCodeStore(db)
	if err != nil {
		log.Fatalf("Error setting up code store: %v", err)
	}

	if cfg.SeedDemoData {
		database.SeedDemoData(db, accounts, games)
	}

	cache.InitializeCache()

	mailer := mail.NewSMTPMailer(cfg)
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	codeManager := auth.NewCodeManager(codes, accounts)

	authSvc := auth.NewService(accounts, codeManager, tokens, mailer, cfg)
	authHandlers := auth.NewHandlers(authSvc)

	gameSvc := game.NewService(games)
	gameHandlers := game.NewHandlers(gameSvc)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /register", authHandlers.Register)
	mux.HandleFunc("POST /verify-registration", authHandlers.VerifyRegistration)
	mux.HandleFunc("POST /verify-code", authHandlers.VerifyCode)
	mux.HandleFunc("POST /login", authHandlers.Login)
	mux.HandleFunc("POST /forgot-password", authHandlers.ForgotPassword)
	mux.HandleFunc("POST /reset-password", authHandlers.ResetPassword)
	mux.HandleFunc("GET /me", authHandlers.RequireAuth(authHandlers.Me))

	mux.HandleFunc("POST /game", authHandlers.RequireAuth(gameHandlers.Create))
	mux.HandleFunc("GET /game/{userID}", authHandlers.RequireAuth(gameHandlers.List))
	mux.HandleFunc("PUT /game/{gameID}", authHandlers.RequireAuth(gameHandlers.Update))
	mux.HandleFunc("DELETE /game/{gameID}", authHandlers.RequireAuth(gameHandlers.Delete))
	mux.HandleFunc("GET /hint/{gameID}", authHandlers.RequireAuth(gameHandlers.Hint))

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   cfg.FrontendOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})

	log.Printf("Starting server on %s", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, corsMiddleware.Handler(mux)); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
