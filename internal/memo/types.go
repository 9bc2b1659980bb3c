package memo

const (
	MsgRequired      = "Please enter both a title and content."
	MsgConfirmDelete = "Are you sure you want to delete this memo?"
)
