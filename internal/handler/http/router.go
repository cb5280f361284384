package http

import (
	"log/slog"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/handler/http/middleware"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth          AuthHandler
	User          UserHandler
	Address       AddressHandler
	Contract      ContractHandler
	Clock         ClockHandler
	Justification JustificationHandler
	Diary         DiaryHandler
	Evaluation    EvaluationHandler
	Document      DocumentHandler
	Report        ReportHandler
	File          FileHandler
}

func NewRouter(logger *slog.Logger, jwtService jwt.Service, allowedOrigins []string, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RealIP)

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Post("/register", h.Auth.Register)
	r.Post("/login", h.Auth.Login)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/refresh", h.Auth.RefreshToken)
		r.Post("/logout", h.Auth.Logout)
	})

	// Requires authentication
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
		r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

		r.Get("/me", h.User.Me)

		r.Route("/usuarios", func(r chi.Router) {
			r.Use(middleware.RequireStaff)
			r.Get("/", h.User.List)
			r.Get("/{id}", h.User.Get)
		})

		r.Route("/enderecos", func(r chi.Router) {
			r.Get("/{id}", h.Address.Get)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireStaff)
				r.Post("/", h.Address.Create)
			})
		})

		r.Route("/contratos", func(r chi.Router) {
			r.Get("/meu", h.Contract.GetMine)
			r.Get("/{id}", h.Contract.Get)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireStaff)
				r.Get("/", h.Contract.List)
				r.Post("/", h.Contract.Create)
				r.Patch("/{id}", h.Contract.Update)
			})
		})

		r.Route("/ponto", func(r chi.Router) {
			r.Post("/entrada", h.Clock.Toggle)
			r.Patch("/saida", h.Clock.CloseOpen)
			r.Get("/aberto", h.Clock.GetOpen)
			r.Post("/verificar-localizacao", h.Clock.CheckLocation)
			r.Get("/timeline", h.Clock.Timeline)
		})

		r.Route("/justificativas", func(r chi.Router) {
			r.Post("/", h.Justification.Create)
			r.Get("/", h.Justification.List)
			r.Get("/{id}", h.Justification.Get)
			r.Get("/{id}/logs", h.Justification.Logs)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireStaff)
				r.Patch("/{id}", h.Justification.Review)
			})
		})

		r.Route("/diarios", func(r chi.Router) {
			r.Post("/", h.Diary.Create)
			r.Get("/", h.Diary.List)
			r.Get("/{id}", h.Diary.Get)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireStaff)
				r.Patch("/{id}", h.Diary.Review)
			})
		})

		r.Route("/avaliacoes", func(r chi.Router) {
			r.Use(middleware.RequireStaff)
			r.Post("/", h.Evaluation.Create)
			r.Get("/", h.Evaluation.List)
			r.Get("/{id}", h.Evaluation.Get)
			r.Patch("/{id}", h.Evaluation.Update)
		})

		r.Route("/documentos", func(r chi.Router) {
			r.Post("/", h.Document.Upload)
			r.Get("/", h.Document.List)
			r.Get("/{id}", h.Document.Get)
			r.Get("/{id}/arquivo", h.Document.Download)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireStaff)
				r.Patch("/{id}", h.Document.Review)
			})
		})

		r.Route("/arquivos", func(r chi.Router) {
			r.Post("/", h.File.Upload)
			r.Get("/{nome}", h.File.Download)
		})

		r.Route("/relatorios", func(r chi.Router) {
			r.Use(middleware.RequireStaff)
			r.Get("/frequencia", h.Report.Attendance)
		})
	})

	return r
}
