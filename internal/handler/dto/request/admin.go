package request

import "atlas-hotel/internal/usecase/queries"

type DashboardQuery struct {
	Query    string `form:"q"`
	Status   string `form:"status"`
	DateFrom string `form:"dateFrom"`
	DateTo   string `form:"dateTo"`
}

func (q DashboardQuery) ToFilter() queries.DashboardFilter {
	return queries.DashboardFilter{
		Query:    q.Query,
		Status:   q.Status,
		DateFrom: q.DateFrom,
		DateTo:   q.DateTo,
	}
}

type ChangeStatusRequest struct {
	Status string `json:"status"`
}
