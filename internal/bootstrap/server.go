package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/moviebooking/api"
	"github.com/Domenick1991/moviebooking/config"
	"github.com/Domenick1991/moviebooking/internal/selection"
	"github.com/Domenick1991/moviebooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, bookingSvc booking.BookingUseCase, selections *selection.Manager) error {
	httpSrv := newServer(cfg, bookingSvc, selections)

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newServer(cfg *config.Config, bookingSvc booking.BookingUseCase, selections *selection.Manager) *http.Server {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), cors())

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "BookMyShow is live!")
	})

	api.NewBookingHandler(bookingSvc).Register(router, cfg.HTTP.LastBookingPath, cfg.HTTP.CreateBookingPath)
	api.NewSelectionHandler(selections).Register(router, cfg.HTTP.SelectionPath)

	if cfg.HTTP.SwaggerDir != "" {
		router.Static("/swagger", cfg.HTTP.SwaggerDir)
		router.GET("/docs/bookings", func(c *gin.Context) {
			renderSwaggerUI(c.Writer, "/swagger/bookings.swagger.json")
		})
	}

	return &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}
}

// cors allows the browser UI to call the API from another origin, matching the
// open CORS policy of the reference backend.
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, X-Session-ID")
		c.Header("Access-Control-Expose-Headers", "X-Session-ID")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func renderSwaggerUI(w http.ResponseWriter, jsonURL string) {
	html := fmt.Sprintf(`<!DOCTYPE html>
    <html>
    <head>
        <title>API Docs</title>
        <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@latest/swagger-ui.css">
    </head>
    <body>
        <div id="swagger-ui"></div>
        <script src="https://unpkg.com/swagger-ui-dist@latest/swagger-ui-bundle.js"></script>
        <script>
            window.onload = function() {
                window.ui = SwaggerUIBundle({
                    url: "%s",
                    dom_id: '#swagger-ui'
                });
            };
        </script>
    </body>
    </html>`, jsonURL)

	w.Header().Set("Content-Type", "text/html")
	w.Write([]byte(html))
}
