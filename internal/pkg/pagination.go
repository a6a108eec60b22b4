package pkg

import (
	"net/http"
	"strconv"

	"gorm.io/gorm"
)

type PaginationParams struct {
	Page  int
	Limit int
}

func (p *PaginationParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

func (p *PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PaginacaoDaQuery lê ?page= e ?limit= já normalizados.
func PaginacaoDaQuery(r *http.Request) PaginationParams {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	p := PaginationParams{Page: page, Limit: limit}
	p.Normalize()
	return p
}

type PaginatedResponse[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func NewPaginatedResponse[T any](data []T, p PaginationParams, total int64) PaginatedResponse[T] {
	totalPages := int(total) / p.Limit
	if int(total)%p.Limit > 0 {
		totalPages++
	}
	if totalPages == 0 {
		totalPages = 1
	}
	if data == nil {
		data = []T{}
	}
	return PaginatedResponse[T]{
		Data:       data,
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// Paginate conta e busca uma página de query, na ordem informada.
func Paginate[T any](query *gorm.DB, p PaginationParams, orderBy string) (PaginatedResponse[T], error) {
	p.Normalize()

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return PaginatedResponse[T]{}, err
	}

	var rows []T
	if err := query.Order(orderBy).Offset(p.Offset()).Limit(p.Limit).Find(&rows).Error; err != nil {
		return PaginatedResponse[T]{}, err
	}
	return NewPaginatedResponse(rows, p, total), nil
}
