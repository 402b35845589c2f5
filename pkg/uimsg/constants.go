package uimsg

const (
	MsgMenuHeader    = "menuHeader"
	MsgMenuAdd       = "menuAdd"
	MsgMenuList      = "menuList"
	MsgMenuUpdate    = "menuUpdate"
	MsgMenuComplete  = "menuComplete"
	MsgMenuDelete    = "menuDelete"
	MsgMenuFilter    = "menuFilter"
	MsgMenuExit      = "menuExit"
	MsgPromptChoice  = "promptChoice"
	MsgInvalidChoice = "invalidChoice"

	MsgPromptTitle       = "promptTitle"
	MsgPromptDescription = "promptDescription"
	MsgPromptDueDate     = "promptDueDate"
	MsgPromptPriority    = "promptPriority"
	MsgPromptStatus      = "promptStatus"
	MsgPromptTaskID      = "promptTaskID"
	MsgInvalidTaskID     = "invalidTaskID"

	MsgTaskAdded      = "taskAdded"
	MsgTaskUpdated    = "taskUpdated"
	MsgTaskCompleted  = "taskCompleted"
	MsgTaskDeleted    = "taskDeleted"
	MsgConfirmDelete  = "confirmDelete"
	MsgDeleteCanceled = "deleteCanceled"
	MsgTaskNotFound   = "taskNotFound"

	MsgNoTasks    = "noTasks"
	MsgTotalTasks = "totalTasks"
	MsgGoodbye    = "goodbye"
)
