package request

import (
	"seat-redeem/internal/usecase/queries"
)

type GenerateVoucherRequest struct {
	Code         *string `json:"code" binding:"omitempty,max=64"`
	ExpiryDays   int     `json:"expiry_days" binding:"min=0"`
	WarrantyDays int     `json:"warranty_days" binding:"min=0"`
}

type BatchGenerateRequest struct {
	Count        int `json:"count" binding:"required,min=1,max=1000"`
	ExpiryDays   int `json:"expiry_days" binding:"min=0"`
	WarrantyDays int `json:"warranty_days" binding:"min=0"`
}

type PageQuery struct {
	Limit  int `form:"limit" binding:"omitempty,min=1,max=1000"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}

func (q *PageQuery) ToPage() queries.Page {
	return queries.Page{Limit: q.Limit, Offset: q.Offset}
}

type UsageRecordListQuery struct {
	PageQuery
	Email      *string `form:"email"`
	Code       *string `form:"code"`
	ResourceID *int64  `form:"resource_id" binding:"omitempty,min=1"`
}

func (q *UsageRecordListQuery) ToFilters() queries.UsageRecordFilters {
	return queries.UsageRecordFilters{
		Email:      q.Email,
		Code:       q.Code,
		ResourceID: q.ResourceID,
	}
}
