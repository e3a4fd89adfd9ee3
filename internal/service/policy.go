package service

import "tasktracker/internal/model"

type Action string

const (
	ActionList     Action = "list"
	ActionRetrieve Action = "retrieve"
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
	ActionComment  Action = "comment"
)

// Authorize decides whether caller may perform action on task. Visibility is
// global to authenticated users; only mutation of an existing task is
// restricted to its creator and its current assignee. task may be nil for
// actions that do not target a single task.
func Authorize(caller *model.User, task *model.Task, action Action) error {
	if caller == nil {
		return NewUnauthenticated("")
	}

	switch action {
	case ActionList, ActionRetrieve, ActionCreate, ActionComment:
		return nil
	case ActionUpdate, ActionDelete:
		if task != nil && (task.IsCreator(caller) || task.IsAssignee(caller)) {
			return nil
		}
	}
	return NewForbidden()
}
