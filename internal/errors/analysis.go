package errors

var (
	ErrModelUnavailable = &DomainError{
		Code:    "MODEL_UNAVAILABLE",
		Message: "no trained model is available",
	}
	ErrResultExpired = &DomainError{
		Code:    "RESULT_EXPIRED",
		Message: "download link has expired, re-run the analysis",
	}
	ErrNoFile = &DomainError{
		Code:    "NO_FILE",
		Message: "no dataset file in request",
	}
	ErrFileTooLarge = &DomainError{
		Code:    "FILE_TOO_LARGE",
		Message: "uploaded file exceeds the size limit",
	}
)
