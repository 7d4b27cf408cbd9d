package handlers

import (
	"github.com/gofiber/fiber/v2"

	"catalogproxy/internal/metrics"
	"catalogproxy/internal/repos"
	"catalogproxy/internal/services"
	"catalogproxy/internal/upstream"
)

type Deps struct {
	StepHandler    *StepHandler
	ProductHandler *ProductHandler
}

func NewDeps(store repos.Store, src upstream.Source) *Deps {
	catalogSvc := services.NewCatalogService(src, store)
	productSvc := services.NewProductService(store)

	return &Deps{
		StepHandler:    &StepHandler{Catalog: catalogSvc},
		ProductHandler: &ProductHandler{Products: productSvc},
	}
}

// Register mounts every route on app, ending with the JSON 404 fallback.
func Register(app *fiber.App, d *Deps) {
	app.Get("/step1", d.StepHandler.Step1)
	app.Get("/step2", d.StepHandler.Step2)
	app.Get("/step3", d.StepHandler.Step3)
	app.Get("/step4", d.StepHandler.Step4)
	app.Get("/step5", d.StepHandler.Step5)
	app.Get("/step6", d.StepHandler.Step6)

	step7 := app.Group("/step7")
	step7.Post("/create", d.ProductHandler.Create)
	step7.Put("/update/:product_id", d.ProductHandler.Update)
	step7.Delete("/delete/:product_id", d.ProductHandler.Delete)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Get("/metrics", metrics.Handler())
	app.Use(NotFoundRoute)
}

// NewApp builds the fiber app with the shared error handler and body guard.
func NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler,
		BodyLimit:    1 << 20, // 1 MiB
	})
	return app
}
