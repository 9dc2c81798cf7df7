package entities

// Response is the standard success envelope.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// PagedResponse wraps list endpoints with their pagination block.
type PagedResponse struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

type Pagination struct {
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	TotalCount  int  `json:"total_count"`
	HasNext     bool `json:"has_next"`
	HasPrev     bool `json:"has_prev"`
	Limit       int  `json:"limit"`
}

func NewPagination(page, limit, totalCount int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (totalCount + limit - 1) / limit
	}

	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  totalCount,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
		Limit:       limit,
	}
}

func OK(data interface{}) Response {
	return Response{Success: true, Data: data}
}

func OKWithMessage(message string, data interface{}) Response {
	return Response{Success: true, Message: message, Data: data}
}

func Paged(data interface{}, page, limit, totalCount int) PagedResponse {
	return PagedResponse{
		Success:    true,
		Data:       data,
		Pagination: NewPagination(page, limit, totalCount),
	}
}
