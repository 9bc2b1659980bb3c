package response

const (
	MessageSuccess  = "Success"
	MessageNotFound = "Not Found"
)
