package students

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jmtrinidad26/ScholarManager/app/database"
	"github.com/jmtrinidad26/ScholarManager/app/models"
)

// StudentStore is the document-store contract the handlers depend on.
type StudentStore interface {
	List(ctx context.Context) ([]models.Student, error)
	Get(ctx context.Context, id string) (*models.Student, error)
	Create(ctx context.Context, in *models.StudentInput) (*models.Student, error)
	Update(ctx context.Context, id string, upd *models.StudentUpdate) (*models.Student, error)
	Delete(ctx context.Context, id string) (*models.Student, error)
	Search(ctx context.Context, q string) ([]models.Student, error)
	Stats(ctx context.Context) (*database.StudentStats, error)
}

// MasterlistReader is the relational contract for the read-only backend.
type MasterlistReader interface {
	Masterlist() ([]*models.MasterlistRecord, error)
}

// Handlers serves the students API from whichever store the deployment uses.
type Handlers struct {
	store      StudentStore
	masterlist MasterlistReader
}

// NewMongoHandlers builds handlers over the document store.
func NewMongoHandlers(store StudentStore) *Handlers {
	return &Handlers{store: store}
}

// NewPostgresHandlers builds read-only handlers over the masterlist view.
func NewPostgresHandlers(masterlist MasterlistReader) *Handlers {
	return &Handlers{masterlist: masterlist}
}

// storeError maps the store error taxonomy onto HTTP statuses.
func storeError(c *fiber.Ctx, err error) error {
	var verr *database.ValidationError
	if errors.As(err, &verr) {
		body := fiber.Map{"success": false, "error": verr.Error()}
		if len(verr.Fields) > 0 {
			body["fields"] = verr.Fields
		}
		return c.Status(fiber.StatusBadRequest).JSON(body)
	}

	var cerr *database.ConflictError
	if errors.As(err, &cerr) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"error":   cerr.Error(),
		})
	}

	var nferr *database.NotFoundError
	if errors.As(err, &nferr) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   nferr.Error(),
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}

// GetStudentsAPI returns all students. The masterlist path degrades to an
// empty array plus a diagnostic header on query failure, because the front
// end always expects an array body from this endpoint.
func (h *Handlers) GetStudentsAPI(c *fiber.Ctx) error {
	if h.masterlist != nil {
		records, err := h.masterlist.Masterlist()
		if err != nil {
			c.Set("X-Error-Message", "Error fetching students: "+err.Error())
			return c.JSON([]models.CanonicalStudent{})
		}
		out := make([]models.CanonicalStudent, 0, len(records))
		for _, rec := range records {
			out = append(out, normalizeMasterlist(rec))
		}
		return c.JSON(out)
	}

	studentsList, err := h.store.List(c.Context())
	if err != nil {
		return storeError(c, err)
	}
	if studentsList == nil {
		studentsList = []models.Student{}
	}
	return c.JSON(studentsList)
}

// GetStudentByIDAPI returns a single student document.
func (h *Handlers) GetStudentByIDAPI(c *fiber.Ctx) error {
	student, err := h.store.Get(c.Context(), c.Params("id"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(student)
}

// CreateStudentAPI inserts a new student document.
func (h *Handlers) CreateStudentAPI(c *fiber.Ctx) error {
	input := new(models.StudentInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	student, err := h.store.Create(c.Context(), input)
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(student)
}

// UpdateStudentAPI applies a partial update to a student document.
func (h *Handlers) UpdateStudentAPI(c *fiber.Ctx) error {
	upd := new(models.StudentUpdate)
	if err := c.BodyParser(upd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	student, err := h.store.Update(c.Context(), c.Params("id"), upd)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(student)
}

// DeleteStudentAPI removes a student document and echoes its prior state.
// The id comes from the path, or from the body for the bare-path variant.
func (h *Handlers) DeleteStudentAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		var body struct {
			ID string `json:"id"`
		}
		if err := c.BodyParser(&body); err != nil || body.ID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Missing student id",
			})
		}
		id = body.ID
	}

	student, err := h.store.Delete(c.Context(), id)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Student deleted successfully",
		"student": student,
	})
}

// SearchStudentsAPI matches students against a free-text query.
func (h *Handlers) SearchStudentsAPI(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Missing search query",
		})
	}

	results, err := h.store.Search(c.Context(), q)
	if err != nil {
		return storeError(c, err)
	}
	if results == nil {
		results = []models.Student{}
	}
	return c.JSON(results)
}

// GetStudentsStatsAPI returns collection-level counts for the list page.
func (h *Handlers) GetStudentsStatsAPI(c *fiber.Ctx) error {
	stats, err := h.store.Stats(c.Context())
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}
