// Facturia: gestor local de facturas y cotizaciones con borradores asistidos
// por IA. Este binario es el punto de composición: valida la configuración,
// abre el almacén local y cablea el shell y los casos de uso que consume la
// capa de presentación (colaborador externo, fuera de este repositorio).
package main

import (
	"github.com/jhoicas/facturia/internal/application/state"
	"github.com/jhoicas/facturia/internal/application/usecase"
	infraai "github.com/jhoicas/facturia/internal/infrastructure/ai"
	"github.com/jhoicas/facturia/internal/infrastructure/storage"
	"github.com/jhoicas/facturia/pkg/config"
	"github.com/jhoicas/facturia/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(cfg.App.Env, "info")
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	store, err := storage.OpenSQLite(cfg.Store.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén local")
	}

	shell := state.NewShell(store, log)

	geminiSvc := infraai.NewGeminiService(cfg.AI.APIKey, cfg.AI.Model)
	customerUC := usecase.NewCustomerUseCase(shell, log)
	creatorUC := usecase.NewCreatorUseCase(shell, geminiSvc, log)
	dashboardUC := usecase.NewDashboardUseCase(shell, log)

	creatorUC.SelectDefaultCustomer()

	summary := dashboardUC.Summary()
	log.Info().
		Int("clientes", len(customerUC.List())).
		Int("facturas", len(summary.Invoices)).
		Int("cotizaciones", len(summary.Quotations)).
		Str("vista", string(shell.ActiveView())).
		Msg("aplicación lista")

	// La capa de presentación toma el control desde aquí con el shell y los
	// casos de uso ya cableados.
}
