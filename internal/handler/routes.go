package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lionhard83/sample-server-tests/internal/middleware"
)

// Routes builds the application router. Account endpoints and product reads
// are public; product mutations sit behind the token gate.
func Routes(auth *AuthHandler, products *ProductHandler, accounts middleware.AccountVerifier) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/signup", auth.HandleSignup)
	r.Get("/validate/{code}", auth.HandleValidate)
	r.Post("/login", auth.HandleLogin)
	r.Get("/me", auth.HandleMe)

	r.Get("/products", products.HandleList)
	r.Get("/products/{id}", products.HandleGet)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(accounts))
		r.Post("/products", products.HandleCreate)
		r.Put("/products/{id}", products.HandleUpdate)
		r.Delete("/products/{id}", products.HandleDelete)
	})

	return r
}
