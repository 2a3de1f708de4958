package domain

// TaskDue is the due-date attribute of a task, as the backend reports it.
type TaskDue struct {
	Date   string `json:"date"`
	String string `json:"string,omitempty"`
}

// Task is owned by the external task backend; the core only reads the
// attributes the collaborator returns and never persists them itself.
type Task struct {
	ID      string   `json:"id"`
	Content string   `json:"content"`
	Due     *TaskDue `json:"due,omitempty"`
}
