package types

import "time"

type UserResponse struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
}

type AuthResponse struct {
	Email    string `json:"email"`
	Fullname string `json:"fullname"`
	Role     Role   `json:"role"`
}

type TaskResponse struct {
	ID          uint           `json:"id"`
	Name        string         `json:"name"`
	Description *string        `json:"description"`
	DueDate     time.Time      `json:"dueDate"`
	Completed   bool           `json:"completed"`
	ProjectID   uint           `json:"projectId"`
	Users       []UserResponse `json:"users,omitempty"`
}

type ProjectResponse struct {
	ID    uint           `json:"id"`
	Name  string         `json:"name"`
	Users []UserResponse `json:"users"`
	Tasks []TaskResponse `json:"tasks"`
}
