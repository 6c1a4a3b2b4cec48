package exportfx

import (
	"go.uber.org/fx"

	"wayfarer/internal/api/controllers"
	"wayfarer/internal/services"
)

var Module = fx.Provide(
	provideExportService, provideExportController)

func provideExportService() services.ExportServiceInterface {
	return services.NewExportService()
}

func provideExportController(exportService services.ExportServiceInterface) *controllers.ExportController {
	return controllers.NewExportController(exportService)
}
