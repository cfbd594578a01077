package gateway

import (
	"context"
	"net/http"
	"strconv"

	"github.com/MalithSamaradiwakara/frontend/internal/model"
)

// ListCourses fetches the full course catalog.
func (c *Client) ListCourses(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	err := c.do(ctx, http.MethodGet, "/api/courses", nil, &courses)
	return courses, err
}

// GetCourse fetches one course by id.
func (c *Client) GetCourse(ctx context.Context, id int) (model.Course, error) {
	var course model.Course
	err := c.do(ctx, http.MethodGet, "/api/courses/"+strconv.Itoa(id), nil, &course)
	return course, err
}

// CreateCourse creates a course.
func (c *Client) CreateCourse(ctx context.Context, form model.CourseForm) (model.Course, error) {
	var course model.Course
	err := c.do(ctx, http.MethodPost, "/api/courses", form, &course)
	return course, err
}

// UpdateCourse updates a course.
func (c *Client) UpdateCourse(ctx context.Context, id int, form model.CourseForm) (model.Course, error) {
	var course model.Course
	err := c.do(ctx, http.MethodPut, "/api/courses/"+strconv.Itoa(id), form, &course)
	return course, err
}

// DeleteCourse deletes a course.
func (c *Client) DeleteCourse(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/api/courses/"+strconv.Itoa(id), nil, nil)
}
