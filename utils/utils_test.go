package utils

import (
	"context"
	"testing"

	"coursehub/config"
	"coursehub/database"
	"coursehub/database/dbtest"
	"coursehub/models"
	"coursehub/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollmentEmail(t *testing.T) {
	t.Run("Should mention the course", func(t *testing.T) {
		mail := EnrollmentEmail("Go Basics")
		assert.Equal(t, "Course Enrollment Confirmation", mail.Subject)
		assert.Contains(t, mail.Text, "Go Basics")
		assert.Contains(t, mail.HTML, "Go Basics")
	})
	t.Run("Should fall back when the name is unknown", func(t *testing.T) {
		assert.Contains(t, EnrollmentEmail("").Text, "your new course")
	})
}

func TestSendEmailDisabled(t *testing.T) {
	prev := config.AppConfig
	t.Cleanup(func() { config.AppConfig = prev })
	config.AppConfig = config.Default()

	assert.NoError(t, SendEnrollmentEmail("a@x.com", "Go Basics"))
}

func TestSampleCourses(t *testing.T) {
	courses := SampleCourses()
	require.Len(t, courses, 6)
	for _, c := range courses {
		assert.NotEmpty(t, c.Title)
		assert.Greater(t, c.Duration, 0)
		assert.GreaterOrEqual(t, c.Price, 0.0)
		assert.True(t, c.Featured)
		assert.NotEmpty(t, c.Instructor.Email)
	}
}

func TestInitializeScheduler(t *testing.T) {
	t.Run("Should reject an invalid spec", func(t *testing.T) {
		_, err := InitializeScheduler(SchedulerConfig{HealthCheckSpec: "every now and then"}, func() database.DbInstance {
			return database.DbInstance{}
		})
		assert.Error(t, err)
	})

	t.Run("Should register both jobs", func(t *testing.T) {
		c, err := InitializeScheduler(SchedulerConfig{HealthCheckSpec: "@every 1h", RecountSpec: "0 3 * * *"}, func() database.DbInstance {
			return database.DbInstance{}
		})
		require.NoError(t, err)
		defer c.Stop()
		assert.Len(t, c.Entries(), 2)
	})
}

func TestCheckDatabase(t *testing.T) {
	assert.False(t, CheckDatabase(database.DbInstance{}))

	db := dbtest.New(t)
	assert.True(t, CheckDatabase(database.DbInstance{Db: db, Monitor: database.NewMonitor(db)}))
}

func TestRecountEnrollments(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	courses := services.NewCourseService(db)
	enrollments := services.NewEnrollmentService(db)

	course := models.Course{Title: "X", Price: 1, Duration: 1}
	require.NoError(t, courses.CreateCourse(ctx, &course))
	for _, email := range []string{"a@x.com", "b@x.com"} {
		_, err := enrollments.Enroll(ctx, services.EnrollInput{UserEmail: email, CourseID: course.ID})
		require.NoError(t, err)
	}
	require.NoError(t, db.Model(&models.Course{}).Where("id = ?", course.ID).UpdateColumn("enrolled_count", 42).Error)

	monitor := database.NewMonitor(db)
	require.True(t, monitor.Check())
	RecountEnrollments(database.DbInstance{Db: db, Monitor: monitor})

	got, err := courses.GetCourse(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.EnrolledCount)
}

func TestRecountSkipsWhenDisconnected(t *testing.T) {
	db := dbtest.New(t)
	// no monitor means the store is treated as unreachable
	RecountEnrollments(database.DbInstance{Db: db})
}
