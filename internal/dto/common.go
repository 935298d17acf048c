package dto

// MessageResponse is the generic success/message envelope used by
// mutation endpoints that return no entity.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// PageParams are shared pagination query parameters.
type PageParams struct {
	Page     int `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}
