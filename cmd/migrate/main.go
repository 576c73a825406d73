// Comando de migrações do schema (goose, SQL em migrations/).
//
// Uso:
//
//	go run ./cmd/migrate -cmd up
//	go run ./cmd/migrate -cmd down
//	go run ./cmd/migrate -cmd status
package main

import (
	"database/sql"
	"flag"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/catalogo-inteligente/catalogo-api/pkg/config"
	"github.com/catalogo-inteligente/catalogo-api/pkg/logger"
)

func main() {
	cmd := flag.String("cmd", "up", "comando de migração: up|down|status")
	dir := flag.String("dir", "migrations", "diretório das migrações goose")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	db, err := sql.Open("pgx", cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("abrir conexão")
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal().Err(err).Msg("dialeto goose")
	}

	switch *cmd {
	case "up":
		err = goose.Up(db, *dir)
	case "down":
		err = goose.Down(db, *dir)
	case "status":
		err = goose.Status(db, *dir)
	default:
		log.Fatal().Str("cmd", *cmd).Msg("comando desconhecido")
	}
	if err != nil {
		log.Fatal().Err(err).Str("cmd", *cmd).Msg("migração falhou")
	}
	log.Info().Str("cmd", *cmd).Msg("migração concluída")
}
