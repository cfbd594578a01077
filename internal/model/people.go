package model

// Student profile as served by the student endpoints.
type Student struct {
	ID      int    `json:"studentId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// Teacher profile as served by the teacher endpoints.
type Teacher struct {
	ID             int      `json:"teacherId"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Subject        string   `json:"subject,omitempty"`
	Qualifications []string `json:"qualifications,omitempty"`
}

// StudentForm is the student create/update payload.
type StudentForm struct {
	Name    string `form:"name" json:"name" binding:"required"`
	Email   string `form:"email" json:"email" binding:"required,email"`
	Phone   string `form:"phone" json:"phone"`
	Address string `form:"address" json:"address"`
}

// TeacherForm is the teacher create/update payload.
type TeacherForm struct {
	Name    string `form:"name" json:"name" binding:"required"`
	Email   string `form:"email" json:"email" binding:"required,email"`
	Subject string `form:"subject" json:"subject"`
}

// Teacher converts the form into the resource shape the backend expects.
func (f TeacherForm) Teacher() Teacher {
	return Teacher{Name: f.Name, Email: f.Email, Subject: f.Subject}
}
