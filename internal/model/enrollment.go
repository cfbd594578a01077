package model

// EnrollmentStatus is owned by the backend; the frontend only displays it.
type EnrollmentStatus string

const (
	EnrollmentPending  EnrollmentStatus = "Pending"
	EnrollmentApproved EnrollmentStatus = "Approved"
	EnrollmentRejected EnrollmentStatus = "Rejected"
)

// Enrollment is the backend's enrollment record.
type Enrollment struct {
	StudentID       string           `json:"studentId"`
	CourseID        string           `json:"courseId"`
	PaymentRef      string           `json:"paymentRef"`
	Date            string           `json:"date"`
	PaymentSlipPath string           `json:"paymentSlipPath"`
	Status          EnrollmentStatus `json:"status,omitempty"`
	CourseTitle     string           `json:"courseTitle,omitempty"`
	StudentName     string           `json:"studentName,omitempty"`
}

// UploadResult is returned by the payment-slip upload endpoint.
type UploadResult struct {
	FilePath string `json:"filePath"`
}
