package courseValidator

import (
	"coursehub/middleware"
	"coursehub/models"
	"coursehub/services"
	"coursehub/validators"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CourseRequest is the create/update payload. isFeatured is the legacy spelling of featured.
type CourseRequest struct {
	Title       string             `json:"title" validate:"required,max=255"`
	Description string             `json:"description" validate:"max=10000"`
	Category    string             `json:"category" validate:"max=120"`
	Price       *float64           `json:"price" validate:"required,gte=0"`
	Duration    *int               `json:"duration" validate:"required,gt=0"`
	Image       string             `json:"image" validate:"omitempty,url"`
	Featured    *bool              `json:"featured"`
	IsFeatured  *bool              `json:"isFeatured"`
	Instructor  *models.Instructor `json:"instructor"`
}

// IsFeaturedValue resolves the featured flag, preferring the canonical field.
func (r *CourseRequest) IsFeaturedValue() bool {
	if r.Featured != nil {
		return *r.Featured
	}
	if r.IsFeatured != nil {
		return *r.IsFeatured
	}
	return false
}

// Course builds a new catalog record from the request.
func (r *CourseRequest) Course() *models.Course {
	course := &models.Course{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Price:       *r.Price,
		Duration:    *r.Duration,
		Image:       r.Image,
		Featured:    r.IsFeaturedValue(),
	}
	if r.Instructor != nil {
		course.Instructor = *r.Instructor
	}
	return course
}

// Fields returns the replaceable attributes for an update.
func (r *CourseRequest) Fields() services.CourseFields {
	return services.CourseFields{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Price:       *r.Price,
		Duration:    *r.Duration,
		Image:       r.Image,
		Featured:    r.IsFeaturedValue(),
		Instructor:  r.Instructor,
	}
}

// ListQuery carries the catalog filters.
type ListQuery struct {
	Search   string `query:"search" validate:"max=200"`
	Category string `query:"category" validate:"max=120"`
	SortBy   string `query:"sortBy" validate:"omitempty,oneof=price duration"`
}

func parseCourse(c *fiber.Ctx) (*CourseRequest, error) {
	reqData := new(CourseRequest)
	if err := c.BodyParser(reqData); err != nil {
		return nil, validators.BodyError(c, err)
	}

	reqData.Title = strings.TrimSpace(reqData.Title)
	reqData.Category = strings.TrimSpace(reqData.Category)
	reqData.Image = strings.TrimSpace(reqData.Image)
	if reqData.Instructor != nil {
		reqData.Instructor.Name = strings.TrimSpace(reqData.Instructor.Name)
		reqData.Instructor.Email = strings.TrimSpace(reqData.Instructor.Email)
	}

	if errors := validators.Struct(reqData); len(errors) > 0 {
		return nil, middleware.ValidationErrorResponse(c, errors)
	}
	return reqData, nil
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, err := parseCourse(c)
		if reqData == nil {
			return err
		}
		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if strings.TrimSpace(c.Params("id")) == "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Course ID is required!")
		}
		reqData, err := parseCourse(c)
		if reqData == nil {
			return err
		}
		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ListQuery)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid query parameters!")
		}
		reqData.Search = strings.TrimSpace(reqData.Search)
		reqData.SortBy = strings.ToLower(strings.TrimSpace(reqData.SortBy))

		if errors := validators.Struct(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}
