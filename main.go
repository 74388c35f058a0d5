package main

import (
	"context"
	"html/template"
	"log"
	"net/http"

	"hrassist/chat"
	"hrassist/config"
	"hrassist/database"
	"hrassist/handlers"
	"hrassist/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize JWT secret
	middleware.SetJWTSecret(cfg.JWTSecret)

	// Initialize database
	if err := database.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Parse templates - each page template paired with base
	templates := make(map[string]*template.Template)
	pages := []string{"login", "change-password", "dashboard"}
	for _, page := range pages {
		templates[page] = template.Must(template.ParseFiles(
			"templates/base.html",
			"templates/"+page+".html",
		))
	}

	// The chat collaborator is optional; without a key the chat box still
	// renders and replies with the configuration error.
	var replier chat.Replier
	if cfg.GeminiAPIKey != "" {
		client, err := chat.NewClient(context.Background(), cfg)
		if err != nil {
			log.Fatalf("Failed to initialize chat client: %v", err)
		}
		replier = client
	} else {
		log.Println("GOOGLE_API_KEY not set, chat disabled")
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(cfg, templates)
	chatHandler := handlers.NewChatHandler(cfg, replier)
	hrHandler := handlers.NewHRHandler(cfg, templates, chatHandler)
	importHandler := handlers.NewImportHandler(cfg, templates)

	// Setup router
	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)

	// Public routes
	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	})
	router.Get("/login", authHandler.LoginPage)
	router.Post("/login", authHandler.Login)

	// Protected routes
	router.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware)

		r.Get("/logout", authHandler.Logout)

		// Password change routes (accessible even when password change required)
		r.Get("/change-password", authHandler.ChangePasswordPage)
		r.Post("/change-password", authHandler.ChangePassword)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequirePasswordChange)

			r.Get("/dashboard", hrHandler.Dashboard)

			r.Post("/employees/new", hrHandler.CreateEmployee)
			r.Post("/leaves/new", hrHandler.ApplyLeave)
			r.Post("/leaves/decide", hrHandler.DecideLeave)
			r.Post("/attendance/check-in", hrHandler.CheckIn)
			r.Post("/attendance/check-out", hrHandler.CheckOut)
			r.Post("/promotions/new", hrHandler.CreatePromotion)

			r.Post("/import", importHandler.Import)
			r.Get("/export/db", importHandler.ExportDB)
			r.Get("/export/employees.csv", importHandler.ExportEmployeesCSV)

			r.Post("/chat", chatHandler.Send)
			r.Post("/chat/clear", chatHandler.Clear)
		})
	})

	log.Printf("Server starting on port %s", cfg.ServerPort)
	log.Fatal(http.ListenAndServe(":"+cfg.ServerPort, router))
}
