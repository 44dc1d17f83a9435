package services

import (
	"context"
	"sync"
	"testing"

	"coursehub/database/dbtest"
	"coursehub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type EnrollmentServiceSuite struct {
	suite.Suite
	ctx         context.Context
	courses     *CourseService
	enrollments *EnrollmentService
	course      models.Course
}

func TestEnrollmentService(t *testing.T) {
	suite.Run(t, new(EnrollmentServiceSuite))
}

func (s *EnrollmentServiceSuite) SetupTest() {
	db := dbtest.New(s.T())
	s.ctx = context.Background()
	s.courses = NewCourseService(db)
	s.enrollments = NewEnrollmentService(db)

	s.course = models.Course{
		Title:      "X",
		Category:   "A",
		Price:      10,
		Duration:   5,
		Instructor: models.Instructor{Name: "Jane Smith", Email: "jane@example.com"},
	}
	s.Require().NoError(s.courses.CreateCourse(s.ctx, &s.course))
}

func (s *EnrollmentServiceSuite) enroll(email string) (*models.Enrollment, error) {
	return s.enrollments.Enroll(s.ctx, EnrollInput{
		UserEmail:      email,
		CourseID:       s.course.ID,
		CourseName:     s.course.Title,
		InstructorName: s.course.Instructor.Name,
		Duration:       s.course.Duration,
	})
}

func (s *EnrollmentServiceSuite) TestEnrollStartsAtZero() {
	e, err := s.enroll("user@x.com")
	s.Require().NoError(err)
	s.NotEmpty(e.ID)
	s.Equal(0, e.Progress)
	s.Equal("X", e.CourseName)
	s.Equal(5, e.Duration)
	s.False(e.EnrolledAt.IsZero())
}

func (s *EnrollmentServiceSuite) TestSecondEnrollIsRejected() {
	_, err := s.enroll("user@x.com")
	s.Require().NoError(err)

	_, err = s.enroll("user@x.com")
	s.ErrorIs(err, ErrAlreadyEnrolled)

	list, err := s.enrollments.ListEnrollments(s.ctx, "user@x.com")
	s.Require().NoError(err)
	s.Len(list, 1)
}

func (s *EnrollmentServiceSuite) TestConcurrentEnrollYieldsOneRecord() {
	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.enroll("race@x.com")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case assert.ErrorIs(s.T(), err, ErrAlreadyEnrolled):
				conflicts++
			}
		}()
	}
	wg.Wait()

	s.Equal(1, successes)
	s.Equal(workers-1, conflicts)

	list, err := s.enrollments.ListEnrollments(s.ctx, "race@x.com")
	s.Require().NoError(err)
	s.Len(list, 1)
}

func (s *EnrollmentServiceSuite) TestSameUserDifferentCourses() {
	other := models.Course{Title: "Y", Duration: 3}
	s.Require().NoError(s.courses.CreateCourse(s.ctx, &other))

	_, err := s.enroll("user@x.com")
	s.Require().NoError(err)
	_, err = s.enrollments.Enroll(s.ctx, EnrollInput{UserEmail: "user@x.com", CourseID: other.ID})
	s.Require().NoError(err)

	list, err := s.enrollments.ListEnrollments(s.ctx, "user@x.com")
	s.Require().NoError(err)
	s.Len(list, 2)
}

func (s *EnrollmentServiceSuite) TestEnrollFillsMissingCourseDetails() {
	e, err := s.enrollments.Enroll(s.ctx, EnrollInput{UserEmail: "user@x.com", CourseID: s.course.ID})
	s.Require().NoError(err)
	s.Equal("X", e.CourseName)
	s.Equal("Jane Smith", e.InstructorName)
	s.Equal(5, e.Duration)
}

func (s *EnrollmentServiceSuite) TestEnrollUnknownCourseKeepsCallerData() {
	e, err := s.enrollments.Enroll(s.ctx, EnrollInput{
		UserEmail:  "user@x.com",
		CourseID:   "external-course",
		CourseName: "Imported",
		Duration:   2,
	})
	s.Require().NoError(err)
	s.Equal("Imported", e.CourseName)
	s.Equal(2, e.Duration)
}

func (s *EnrollmentServiceSuite) TestEnrollBumpsEnrolledCount() {
	_, err := s.enroll("a@x.com")
	s.Require().NoError(err)
	_, err = s.enroll("b@x.com")
	s.Require().NoError(err)

	course, err := s.courses.GetCourse(s.ctx, s.course.ID)
	s.Require().NoError(err)
	s.EqualValues(2, course.EnrolledCount)
}

func (s *EnrollmentServiceSuite) TestUpdateProgress() {
	e, err := s.enroll("user@x.com")
	s.Require().NoError(err)

	s.Require().NoError(s.enrollments.UpdateProgress(s.ctx, e.ID, 55))

	list, err := s.enrollments.ListEnrollments(s.ctx, "user@x.com")
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal(55, list[0].Progress)
}

func (s *EnrollmentServiceSuite) TestUpdateProgressAllowsRegression() {
	e, err := s.enroll("user@x.com")
	s.Require().NoError(err)
	s.Require().NoError(s.enrollments.UpdateProgress(s.ctx, e.ID, 80))
	s.Require().NoError(s.enrollments.UpdateProgress(s.ctx, e.ID, 20))

	list, err := s.enrollments.ListEnrollments(s.ctx, "user@x.com")
	s.Require().NoError(err)
	s.Equal(20, list[0].Progress)
}

func (s *EnrollmentServiceSuite) TestUpdateProgressUnknownID() {
	err := s.enrollments.UpdateProgress(s.ctx, "missing", 10)
	s.ErrorIs(err, ErrNotFound)
}

func (s *EnrollmentServiceSuite) TestCheckEnrolled() {
	ok, err := s.enrollments.CheckEnrolled(s.ctx, "user@x.com", s.course.ID)
	s.Require().NoError(err)
	s.False(ok)

	_, err = s.enroll("user@x.com")
	s.Require().NoError(err)

	ok, err = s.enrollments.CheckEnrolled(s.ctx, "user@x.com", s.course.ID)
	s.Require().NoError(err)
	s.True(ok)
}

func (s *EnrollmentServiceSuite) TestLookupsTrimLikeEnroll() {
	_, err := s.enroll(" user@x.com ")
	s.Require().NoError(err)

	ok, err := s.enrollments.CheckEnrolled(s.ctx, " user@x.com ", " "+s.course.ID+" ")
	s.Require().NoError(err)
	s.True(ok)

	list, err := s.enrollments.ListEnrollments(s.ctx, " user@x.com ")
	s.Require().NoError(err)
	s.Len(list, 1)

	stats, err := s.enrollments.Stats(s.ctx, "user@x.com ")
	s.Require().NoError(err)
	s.Equal(1, stats.TotalCourses)
}

func (s *EnrollmentServiceSuite) TestListEnrollmentsEmpty() {
	list, err := s.enrollments.ListEnrollments(s.ctx, "nobody@x.com")
	s.Require().NoError(err)
	s.NotNil(list)
	s.Empty(list)
}

func (s *EnrollmentServiceSuite) TestStats() {
	a, err := s.enroll("user@x.com")
	s.Require().NoError(err)
	s.Require().NoError(s.enrollments.UpdateProgress(s.ctx, a.ID, 100))

	second := models.Course{Title: "Y", Duration: 7}
	s.Require().NoError(s.courses.CreateCourse(s.ctx, &second))
	b, err := s.enrollments.Enroll(s.ctx, EnrollInput{UserEmail: "user@x.com", CourseID: second.ID})
	s.Require().NoError(err)
	s.Require().NoError(s.enrollments.UpdateProgress(s.ctx, b.ID, 30))

	third := models.Course{Title: "Z", Duration: 1}
	s.Require().NoError(s.courses.CreateCourse(s.ctx, &third))
	_, err = s.enrollments.Enroll(s.ctx, EnrollInput{UserEmail: "user@x.com", CourseID: third.ID})
	s.Require().NoError(err)

	stats, err := s.enrollments.Stats(s.ctx, "user@x.com")
	s.Require().NoError(err)
	s.Equal(models.EnrollmentStats{
		TotalCourses:     3,
		CompletedCourses: 1,
		InProgress:       1,
		TotalHours:       13,
	}, stats)
}

func TestEndToEndEnrollmentScenario(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()
	courses := NewCourseService(db)
	enrollments := NewEnrollmentService(db)

	course := models.Course{Title: "X", Price: 10, Duration: 5, Category: "A"}
	require.NoError(t, courses.CreateCourse(ctx, &course))

	e, err := enrollments.Enroll(ctx, EnrollInput{UserEmail: "user@x.com", CourseID: course.ID})
	require.NoError(t, err)
	assert.Equal(t, 0, e.Progress)

	require.NoError(t, enrollments.UpdateProgress(ctx, e.ID, 100))

	list, err := enrollments.ListEnrollments(ctx, "user@x.com")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 100, list[0].Progress)

	_, err = enrollments.Enroll(ctx, EnrollInput{UserEmail: "user@x.com", CourseID: course.ID})
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)
}
