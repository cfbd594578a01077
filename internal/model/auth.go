package model

// LoginRequest is the credential form posted to /login and forwarded to
// the backend as-is.
type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
	UserType string `form:"userType" json:"userType" binding:"required,oneof=Student Teacher Admin"`
}

// SessionSeed is the backend's login response: the minimum needed to
// establish a session. Token is an opaque bearer credential.
type SessionSeed struct {
	ActorID     string `json:"id"`
	Role        string `json:"userType"`
	DisplayName string `json:"name"`
	Token       string `json:"token"`
}

// LoginDetails is the secondary lookup keyed by the login id; only the
// studentId is consumed, and only for students.
type LoginDetails struct {
	LoginID   string `json:"loginId"`
	StudentID string `json:"studentId"`
}
