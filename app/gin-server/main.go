package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yoockh/htmlchat/config"
	"github.com/yoockh/htmlchat/internal/api/handlers"
	"github.com/yoockh/htmlchat/internal/api/middleware"
	"github.com/yoockh/htmlchat/internal/api/routes"
	"github.com/yoockh/htmlchat/internal/logger"
	"github.com/yoockh/htmlchat/internal/providers/llm"
	"github.com/yoockh/htmlchat/internal/services"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := newProvider(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("LLM provider init error")
	}
	defer provider.Close()

	if cfg.Credential() == "" {
		log.WithField("provider", cfg.LLMProvider).Warn("credential not set; /api/generate will answer 500")
	}

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(log), middleware.Recovery(log))

	routes.RegisterRoutes(r, routes.Deps{
		Generate: handlers.NewGenerateHandler(services.NewGenerateService(provider), cfg.Credential(), log),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.WithField("addr", srv.Addr).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server error")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("shutdown error")
	}
}

func newProvider(ctx context.Context, cfg config.Config) (llm.Provider, error) {
	if cfg.LLMProvider == config.ProviderVertex && cfg.VertexProject != "" {
		return llm.NewVertexGemini(ctx, cfg.VertexProject, cfg.VertexLocation, "")
	}
	// without a vertex project the handler rejects every request before this is used
	return llm.NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, llm.DefaultOpenAIModel), nil
}
