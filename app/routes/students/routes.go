package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmtrinidad26/ScholarManager/app/middlewares"
)

// SetupStudentsRoutes mounts the students API. The read-only masterlist
// backend only gets GET; the document backend gets the full CRUD surface.
// Either way one CORS stage covers the group, preflights included.
func SetupStudentsRoutes(app *fiber.App, h *Handlers) {
	api := app.Group("/api/students")

	if h.masterlist != nil {
		api.Use(middlewares.Cors("GET"))
		api.Get("/", h.GetStudentsAPI)
		return
	}

	api.Use(middlewares.Cors("GET,POST,PUT,DELETE"))
	api.Get("/", h.GetStudentsAPI)
	api.Get("/search", h.SearchStudentsAPI)
	api.Get("/stats", h.GetStudentsStatsAPI)
	api.Get("/:id", h.GetStudentByIDAPI)
	api.Post("/", h.CreateStudentAPI)
	api.Put("/:id", h.UpdateStudentAPI)
	api.Delete("/", h.DeleteStudentAPI)
	api.Delete("/:id", h.DeleteStudentAPI)
}
