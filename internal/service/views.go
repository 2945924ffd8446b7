package service

import "tasktrack/internal/model"

// Lightweight summaries embedded in composed responses, mirroring what clients
// need for direct display without exposing full records.

// UserSummary identifies a user for display.
type UserSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DepartmentSummary identifies a department for display.
type DepartmentSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// TaskSummary identifies a task for display.
type TaskSummary struct {
	ID          uint   `json:"id"`
	TaskName    string `json:"task_name"`
	Description string `json:"description"`
}

func userSummary(u *model.User) *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}

func departmentSummary(d *model.Department) *DepartmentSummary {
	if d == nil {
		return nil
	}
	return &DepartmentSummary{ID: d.ID, Name: d.Name}
}

func taskSummary(t *model.Task) *TaskSummary {
	if t == nil {
		return nil
	}
	return &TaskSummary{ID: t.ID, TaskName: t.TaskName, Description: t.Description}
}
