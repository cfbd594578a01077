package gateway

import (
	"context"
	"net/http"
	"strconv"

	"github.com/MalithSamaradiwakara/frontend/internal/model"
)

// ListStudents fetches all students.
func (c *Client) ListStudents(ctx context.Context) ([]model.Student, error) {
	var students []model.Student
	err := c.do(ctx, http.MethodGet, "/students", nil, &students)
	return students, err
}

// GetStudent fetches one student profile.
func (c *Client) GetStudent(ctx context.Context, id int) (model.Student, error) {
	var student model.Student
	err := c.do(ctx, http.MethodGet, "/students/"+strconv.Itoa(id), nil, &student)
	return student, err
}

// RegisterStudent self-registers a student.
func (c *Client) RegisterStudent(ctx context.Context, form model.StudentForm) (model.Student, error) {
	var student model.Student
	err := c.do(ctx, http.MethodPost, "/students/register", form, &student)
	return student, err
}

// UpdateStudent updates a student profile.
func (c *Client) UpdateStudent(ctx context.Context, id int, form model.StudentForm) (model.Student, error) {
	var student model.Student
	err := c.do(ctx, http.MethodPut, "/students/"+strconv.Itoa(id), form, &student)
	return student, err
}

// DeleteStudent removes a student.
func (c *Client) DeleteStudent(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/students/"+strconv.Itoa(id), nil, nil)
}

// ListTeachers fetches all teachers.
func (c *Client) ListTeachers(ctx context.Context) ([]model.Teacher, error) {
	var teachers []model.Teacher
	err := c.do(ctx, http.MethodGet, "/teacher", nil, &teachers)
	return teachers, err
}

// GetTeacher fetches one teacher profile.
func (c *Client) GetTeacher(ctx context.Context, id int) (model.Teacher, error) {
	var teacher model.Teacher
	err := c.do(ctx, http.MethodGet, "/teacher/"+strconv.Itoa(id), nil, &teacher)
	return teacher, err
}

// CreateTeacher creates a teacher.
func (c *Client) CreateTeacher(ctx context.Context, form model.TeacherForm) (model.Teacher, error) {
	var teacher model.Teacher
	err := c.do(ctx, http.MethodPost, "/teacher", form, &teacher)
	return teacher, err
}

// UpdateTeacher updates a teacher.
func (c *Client) UpdateTeacher(ctx context.Context, id int, form model.TeacherForm) (model.Teacher, error) {
	var teacher model.Teacher
	err := c.do(ctx, http.MethodPut, "/teacher/"+strconv.Itoa(id), form, &teacher)
	return teacher, err
}

// DeleteTeacher removes a teacher.
func (c *Client) DeleteTeacher(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/teacher/"+strconv.Itoa(id), nil, nil)
}
