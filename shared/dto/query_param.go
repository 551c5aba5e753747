package dto

import (
	"net/http"
	"shareit/shared/constant"
	"shareit/shared/failure"
	"strconv"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams is what the generic repository understands: 1-based page, limit and ordering.
type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// PageRequest is the from/size window clients send.
type PageRequest struct {
	From int `json:"from"`
	Size int `json:"size"`
}

func NewPageRequest(from, size int) PageRequest {
	return PageRequest{From: from, Size: size}
}

// FromRequest reads from and size from the query string, falling back to 0 and 10.
// Values that are not integers or fall outside their bounds are rejected.
func (p *PageRequest) FromRequest(r *http.Request) error {
	queryParams := r.URL.Query()

	p.From = constant.DefaultValueFrom
	p.Size = constant.DefaultValueSize

	if from := queryParams.Get(constant.RequestParamFrom); from != "" {
		fromInt, err := strconv.Atoi(from)
		if err != nil {
			return failure.InvalidFromParam
		}

		p.From = fromInt
	}

	if size := queryParams.Get(constant.RequestParamSize); size != "" {
		sizeInt, err := strconv.Atoi(size)
		if err != nil {
			return failure.InvalidSizeParam
		}

		p.Size = sizeInt
	}

	return p.Validate()
}

func (p PageRequest) Validate() error {
	if p.From < 0 {
		return failure.InvalidFromParam
	}

	if p.Size < 1 {
		return failure.InvalidSizeParam
	}

	return nil
}

// ToQueryParams maps the window onto page arithmetic: page = from / size.
// A from that is not a multiple of size is truncated to the start of its page.
func (p PageRequest) ToQueryParams(sortBy, sortDir string) QueryParams {
	return QueryParams{
		Page:    p.From/p.Size + 1,
		Limit:   p.Size,
		SortBy:  sortBy,
		SortDir: sortDir,
	}
}
