package models

import "math"

// PaginationParams ค่าการแบ่งหน้า ค้นหา และเรียงลำดับ
type PaginationParams struct {
	Page   int    `json:"page" query:"page" example:"1"`
	Limit  int    `json:"limit" query:"limit" example:"10"`
	Search string `json:"search" query:"search" example:""`
	SortBy string `json:"sortBy" query:"sortBy" example:"date"`
	Order  string `json:"order" query:"order" example:"asc"`
}

// DefaultPagination ค่าตั้งต้นสำหรับ Pagination
func DefaultPagination() PaginationParams {
	return PaginationParams{Page: 1, Limit: 10, SortBy: "date", Order: "asc"}
}

// Normalize ปรับค่า page/limit ที่อยู่นอกช่วงให้กลับเป็นค่าตั้งต้น
func (p *PaginationParams) Normalize() {
	def := DefaultPagination()
	if p.Page < 1 {
		p.Page = def.Page
	}
	if p.Limit < 1 {
		p.Limit = def.Limit
	}
}

// GetSkip จำนวนรายการที่ต้องข้าม
func (p *PaginationParams) GetSkip() int64 {
	return int64((p.Page - 1) * p.Limit)
}

// PaginatedResponse โครงสร้างตอบกลับแบบแบ่งหน้า
type PaginatedResponse struct {
	Data        interface{} `json:"data"`
	Total       int64       `json:"total"`
	Page        int         `json:"page"`
	Limit       int         `json:"limit"`
	TotalPages  int         `json:"totalPages"`
	HasNext     bool        `json:"hasNext"`
	HasPrevious bool        `json:"hasPrevious"`
}

// NewPaginatedResponse สร้าง PaginatedResponse จากผลลัพธ์และพารามิเตอร์
func NewPaginatedResponse(data interface{}, total int64, params PaginationParams) *PaginatedResponse {
	totalPages := int(math.Ceil(float64(total) / float64(params.Limit)))
	return &PaginatedResponse{
		Data:        data,
		Total:       total,
		Page:        params.Page,
		Limit:       params.Limit,
		TotalPages:  totalPages,
		HasNext:     params.Page < totalPages,
		HasPrevious: params.Page > 1,
	}
}
