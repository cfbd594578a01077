package model

// Quiz metadata; questions are fetched separately per quiz.
type Quiz struct {
	ID          int    `json:"quizId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CourseID    int    `json:"courseId,omitempty"`
	TeacherID   int    `json:"teacherId,omitempty"`
}

// QuizForm is the quiz authoring payload.
type QuizForm struct {
	Title       string `form:"title" json:"title" binding:"required"`
	Description string `form:"description" json:"description"`
	CourseID    int    `form:"courseId" json:"courseId" binding:"gte=0"`
}

// Quiz converts the form into the resource shape the backend expects.
func (f QuizForm) Quiz() Quiz {
	return Quiz{Title: f.Title, Description: f.Description, CourseID: f.CourseID}
}

// Question carries its options as a semicolon-joined string (backend
// format) and the 1-based index of the correct option.
type Question struct {
	ID      int    `json:"questionId"`
	Text    string `json:"question"`
	Answers string `json:"answers"`
	Correct int    `json:"correct"`
}

// AttemptKey is the composite id the backend uses for quiz attempts.
type AttemptKey struct {
	QuizID    int `json:"quizId"`
	StudentID int `json:"sId"`
}

// Attempt is a recorded quiz attempt. Marks is the provisional
// client-computed percentage; the stored value is authoritative.
type Attempt struct {
	ID             AttemptKey `json:"id"`
	Student        StudentRef `json:"student"`
	Quiz           QuizRef    `json:"quiz"`
	SubmissionDate string     `json:"submissionDate"`
	Feedback       string     `json:"feedback"`
	Marks          float64    `json:"marks"`
}

// StudentRef and QuizRef are the nested reference shapes the attempt
// endpoint expects.
type StudentRef struct {
	StudentID int `json:"studentId"`
}

type QuizRef struct {
	QuizID int `json:"quizId"`
}
