package http

import (
	"net/http"

	"redbook/internal/auth"
	"redbook/internal/config"
	"redbook/internal/content"
	"redbook/internal/http/handler"
	mw "redbook/internal/http/middleware"
	"redbook/internal/identity"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"
)

func NewRouter(cfg config.Config, gdb *gorm.DB, jwtSvc *auth.JWT) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	userSvc := &identity.Service{Store: &identity.GormStore{DB: gdb}}
	contentSvc := &content.Service{
		Authors:  userSvc,
		Notes:    &content.GormNoteStore{DB: gdb},
		Comments: &content.GormCommentStore{DB: gdb},
	}

	r.Get("/health", handler.Health)

	ah := &handler.AuthHandler{Users: userSvc, JWT: jwtSvc}
	r.Post("/register", ah.Register)
	r.Post("/login", ah.Login)

	me := &handler.MeHandler{Users: userSvc}
	r.With(auth.RequireAuth(jwtSvc)).Get("/me", me.Me)

	nh := &handler.NoteHandler{Svc: contentSvc}
	ch := &handler.CommentHandler{Svc: contentSvc}

	r.Route("/notes", func(r chi.Router) {
		r.Get("/", nh.List)
		r.Post("/", nh.Create)

		r.Get("/{id}/comments", ch.List)
		r.Post("/{id}/comments", ch.Create)
	})

	return r
}
