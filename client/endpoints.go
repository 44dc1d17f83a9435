package client

import (
	"context"
	"net/http"
	"net/url"

	"coursehub/models"
)

// CourseInput is the create/update payload.
type CourseInput struct {
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Category    string             `json:"category,omitempty"`
	Price       float64            `json:"price"`
	Duration    int                `json:"duration"`
	Image       string             `json:"image,omitempty"`
	Featured    bool               `json:"featured"`
	Instructor  *models.Instructor `json:"instructor,omitempty"`
}

type ListCoursesParams struct {
	Search   string
	Category string
	SortBy   string
}

type EnrollInput struct {
	UserEmail      string `json:"userEmail"`
	CourseID       string `json:"courseId"`
	CourseName     string `json:"courseName,omitempty"`
	InstructorName string `json:"instructorName,omitempty"`
	Duration       int    `json:"duration,omitempty"`
}

type ReviewInput struct {
	CourseID string `json:"courseId"`
	UserName string `json:"userName"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment,omitempty"`
}

type SignInInput struct {
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	PhotoURL string `json:"photoURL,omitempty"`
	Role     string `json:"role,omitempty"`
}

// SignInResult is the stored user plus its bearer token.
type SignInResult struct {
	models.User
	Token string `json:"token"`
}

type Health struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

type createdResponse struct {
	Message      string `json:"message"`
	CourseID     string `json:"courseId"`
	EnrollmentID string `json:"enrollmentId"`
	InsertedID   string `json:"insertedId"`
}

func (c *Client) Health(ctx context.Context) (*Health, error) {
	var out Health
	if err := c.do(ctx, http.MethodGet, "/health", nil, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListCourses(ctx context.Context, p ListCoursesParams) ([]models.Course, error) {
	q := url.Values{}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	if p.SortBy != "" {
		q.Set("sortBy", p.SortBy)
	}
	var out []models.Course
	if err := c.api(ctx, http.MethodGet, "/courses", nil, &out, q); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FeaturedCourses(ctx context.Context) ([]models.Course, error) {
	var out []models.Course
	if err := c.api(ctx, http.MethodGet, "/courses/featured", nil, &out, nil); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CoursesByInstructor(ctx context.Context, email string) ([]models.Course, error) {
	var out []models.Course
	if err := c.api(ctx, http.MethodGet, "/courses/instructor/"+escape(email), nil, &out, nil); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	var out models.Course
	if err := c.api(ctx, http.MethodGet, "/courses/"+escape(id), nil, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCourse returns the new course ID.
func (c *Client) CreateCourse(ctx context.Context, in CourseInput) (string, error) {
	var out createdResponse
	if err := c.api(ctx, http.MethodPost, "/add-course", in, &out, nil); err != nil {
		return "", err
	}
	return out.CourseID, nil
}

func (c *Client) UpdateCourse(ctx context.Context, id string, in CourseInput) error {
	return c.api(ctx, http.MethodPut, "/update-course/"+escape(id), in, nil, nil)
}

func (c *Client) DeleteCourse(ctx context.Context, id string) error {
	return c.api(ctx, http.MethodDelete, "/delete-course/"+escape(id), nil, nil, nil)
}

func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.api(ctx, http.MethodGet, "/categories", nil, &out, nil); err != nil {
		return nil, err
	}
	return out, nil
}

// Enroll returns the new enrollment ID.
func (c *Client) Enroll(ctx context.Context, in EnrollInput) (string, error) {
	var out createdResponse
	if err := c.api(ctx, http.MethodPost, "/enroll", in, &out, nil); err != nil {
		return "", err
	}
	return out.EnrollmentID, nil
}

func (c *Client) Enrollments(ctx context.Context, userEmail string) ([]models.Enrollment, error) {
	var out []models.Enrollment
	if err := c.api(ctx, http.MethodGet, "/enroll/"+escape(userEmail), nil, &out, nil); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) EnrollmentStats(ctx context.Context, userEmail string) (*models.EnrollmentStats, error) {
	var out models.EnrollmentStats
	if err := c.api(ctx, http.MethodGet, "/enroll/"+escape(userEmail)+"/stats", nil, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProgress(ctx context.Context, enrollmentID string, progress int) error {
	body := map[string]int{"progress": progress}
	return c.api(ctx, http.MethodPut, "/enroll/"+escape(enrollmentID)+"/progress", body, nil, nil)
}

func (c *Client) IsEnrolled(ctx context.Context, courseID, userEmail string) (bool, error) {
	var out struct {
		Enrolled bool `json:"enrolled"`
	}
	path := "/check-enrollment/" + escape(courseID) + "/" + escape(userEmail)
	if err := c.api(ctx, http.MethodGet, path, nil, &out, nil); err != nil {
		return false, err
	}
	return out.Enrolled, nil
}

func (c *Client) Reviews(ctx context.Context, courseID string) ([]models.Review, error) {
	var out []models.Review
	if err := c.api(ctx, http.MethodGet, "/reviews/"+escape(courseID), nil, &out, nil); err != nil {
		return nil, err
	}
	return out, nil
}

// AddReview returns the new review ID.
func (c *Client) AddReview(ctx context.Context, in ReviewInput) (string, error) {
	var out createdResponse
	if err := c.api(ctx, http.MethodPost, "/reviews", in, &out, nil); err != nil {
		return "", err
	}
	return out.InsertedID, nil
}

// SignIn fetches or creates the user and remembers the returned token.
func (c *Client) SignIn(ctx context.Context, in SignInInput) (*SignInResult, error) {
	var out SignInResult
	if err := c.api(ctx, http.MethodPost, "/users", in, &out, nil); err != nil {
		return nil, err
	}
	if out.Token != "" {
		c.SetToken(out.Token)
	}
	return &out, nil
}

func (c *Client) GetUser(ctx context.Context, email string) (*models.User, error) {
	var out models.User
	if err := c.api(ctx, http.MethodGet, "/users/"+escape(email), nil, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var out []models.User
	if err := c.api(ctx, http.MethodGet, "/users", nil, &out, nil); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.api(ctx, http.MethodGet, "/me", nil, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PlatformStats(ctx context.Context) (*models.PlatformStats, error) {
	var out models.PlatformStats
	if err := c.api(ctx, http.MethodGet, "/stats", nil, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}
