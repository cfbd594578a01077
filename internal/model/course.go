package model

// Course as served by the backend course endpoints.
type Course struct {
	ID          int     `json:"courseId"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Level       string  `json:"level"`
	Duration    string  `json:"duration"`
	Price       float64 `json:"price"`
	TeacherID   int     `json:"teacherId,omitempty"`
}

// CourseForm is the create/update payload for course management views.
type CourseForm struct {
	Title       string  `form:"title" json:"title" binding:"required"`
	Description string  `form:"description" json:"description"`
	Level       string  `form:"level" json:"level"`
	Duration    string  `form:"duration" json:"duration"`
	Price       float64 `form:"price" json:"price" binding:"gte=0"`
}

// Course converts the form into the resource shape the backend expects.
func (f CourseForm) Course() Course {
	return Course{
		Title:       f.Title,
		Description: f.Description,
		Level:       f.Level,
		Duration:    f.Duration,
		Price:       f.Price,
	}
}
