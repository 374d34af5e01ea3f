package router

import (
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/diskusi-dev/diskusi/internal/middleware"
	"github.com/diskusi-dev/diskusi/internal/middleware/metrics"
	"github.com/diskusi-dev/diskusi/internal/setup"
)

// New creates and configures the mux router with all the routes.
func New(deps *setup.Dependencies) *mux.Router {
	r := mux.NewRouter()

	// Enable gzip compression for all responses
	r.Use(handlers.CompressHandler)

	r.Use(handlers.CORS(
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	))

	r.Use(metrics.Middleware)

	h := deps.Handler
	needAuth := middleware.NeedAuth(deps.Jwt)

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/health", h.Health).Methods("GET")

	r.HandleFunc("/users", h.Register).Methods("POST")
	r.HandleFunc("/authentications", h.Login).Methods("POST")

	r.HandleFunc("/threads", needAuth(h.PostThread)).Methods("POST")
	r.HandleFunc("/threads/{threadId}", h.GetThread).Methods("GET")

	r.HandleFunc("/threads/{threadId}/comments", needAuth(h.PostComment)).Methods("POST")
	r.HandleFunc("/threads/{threadId}/comments/{commentId}", needAuth(h.DeleteComment)).Methods("DELETE")
	r.HandleFunc("/threads/{threadId}/comments/{commentId}/likes", needAuth(h.PutCommentLike)).Methods("PUT")

	r.HandleFunc("/threads/{threadId}/comments/{commentId}/replies", needAuth(h.PostReply)).Methods("POST")
	r.HandleFunc("/threads/{threadId}/comments/{commentId}/replies/{replyId}", needAuth(h.DeleteReply)).Methods("DELETE")

	return r
}
