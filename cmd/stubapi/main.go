// stubapi levanta el stub en memoria de la plataforma remota para desarrollo
// local del storefront.
//
// Uso: go run ./cmd/stubapi
// Configuración por env: STUB_HOST, STUB_PORT, STUB_JWT_SECRET.
package main

import (
	"github.com/jhoicas/storefront-client/internal/infrastructure/stub"
	"github.com/jhoicas/storefront-client/pkg/config"
	"github.com/jhoicas/storefront-client/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})
	log.Info().Str("addr", cfg.Stub.Addr()).Msg("iniciando stub de la plataforma")

	app := stub.NewApp(stub.Config{
		JWTSecret: cfg.Stub.JWTSecret,
		AppName:   cfg.App.Name + "-stub",
	})
	if err := app.Listen(cfg.Stub.Addr()); err != nil {
		log.Fatal().Err(err).Msg("stub detenido")
	}
}
