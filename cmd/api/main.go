package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/catalogo-inteligente/catalogo-api/internal/application/auth"
	"github.com/catalogo-inteligente/catalogo-api/internal/application/catalogo"
	"github.com/catalogo-inteligente/catalogo-api/internal/application/estoque"
	"github.com/catalogo-inteligente/catalogo-api/internal/application/relatorios"
	infrapdf "github.com/catalogo-inteligente/catalogo-api/internal/infrastructure/pdf"
	"github.com/catalogo-inteligente/catalogo-api/internal/infrastructure/postgres"
	httpRouter "github.com/catalogo-inteligente/catalogo-api/internal/interfaces/http"
	"github.com/catalogo-inteligente/catalogo-api/pkg/config"
	"github.com/catalogo-inteligente/catalogo-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	marcaRepo := postgres.NewMarcaRepository(pool)
	modeloRepo := postgres.NewModeloRepository(pool)
	produtoRepo := postgres.NewProdutoRepository(pool)
	fornecedorRepo := postgres.NewFornecedorRepository(pool)
	variacaoRepo := postgres.NewVariacaoRepository(pool)
	relatorioRepo := postgres.NewRelatorioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	movimentarUC := estoque.NewMovimentarEstoqueUseCase(txRunner)
	marcaUC := catalogo.NewMarcaUseCase(marcaRepo)
	modeloUC := catalogo.NewModeloUseCase(modeloRepo)
	produtoUC := catalogo.NewProdutoUseCase(produtoRepo)
	fornecedorUC := catalogo.NewFornecedorUseCase(fornecedorRepo)
	variacaoUC := catalogo.NewVariacaoUseCase(variacaoRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	relatorioUC := relatorios.NewUseCase(relatorioRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.AccessLog(log))

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Catálogo Inteligente API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		MovimentarUC: movimentarUC,
		MarcaUC:      marcaUC,
		ModeloUC:     modeloUC,
		ProdutoUC:    produtoUC,
		FornecedorUC: fornecedorUC,
		VariacaoUC:   variacaoUC,
		RelatorioUC:  relatorioUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, fechando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
