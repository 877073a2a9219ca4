package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	ErrorCodeOK             = 0
	ErrorCodeBadRequest     = 1
	InternalServerErrorCode = 500

	DateTimeFormat = "2006-01-02 15:04:05"
)
