package dto

// BaseResponse is the uniform envelope returned by every endpoint.
type BaseResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Object  any      `json:"object"`
	Errors  []string `json:"errors"`
}

// PaginatedResponse wraps list results with the page that produced them.
type PaginatedResponse struct {
	Success    bool     `json:"success"`
	Message    string   `json:"message"`
	Object     any      `json:"object"`
	PageNumber int      `json:"page_number"`
	PageSize   int      `json:"page_size"`
	TotalSize  int      `json:"total_size"`
	Errors     []string `json:"errors"`
}

// OK builds a success envelope.
func OK(message string, object any) BaseResponse {
	return BaseResponse{Success: true, Message: message, Object: object}
}

// Paginated builds a success envelope with page metadata.
func Paginated(message string, object any, pageNumber, pageSize, totalSize int) PaginatedResponse {
	return PaginatedResponse{
		Success:    true,
		Message:    message,
		Object:     object,
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalSize:  totalSize,
	}
}

// Fail builds a failure envelope.
func Fail(message string, errs ...string) BaseResponse {
	if len(errs) == 0 {
		errs = []string{message}
	}
	return BaseResponse{Success: false, Message: message, Errors: errs}
}
