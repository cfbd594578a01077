package model

// Assignment as served by the backend.
type Assignment struct {
	ID          int    `json:"assignmentId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	CourseID    int    `json:"courseId,omitempty"`
	TeacherID   int    `json:"teacherId,omitempty"`
}

// Submission is a student's answer to an assignment.
type Submission struct {
	ID             int     `json:"submissionId,omitempty"`
	AssignmentID   int     `json:"assignmentId"`
	StudentID      int     `json:"studentId"`
	Content        string  `json:"content"`
	SubmissionDate string  `json:"submissionDate"`
	Grade          float64 `json:"grade,omitempty"`
	Feedback       string  `json:"feedback,omitempty"`
}

// SubmissionForm is the local submission draft form.
type SubmissionForm struct {
	Content string `form:"content" json:"content" binding:"required"`
}
