package dto

// PageQuery is bound from the query string of every search / pagination
// endpoint. Sort is matched against a per-entity whitelist in the repository
// layer; an unknown sort field falls back to updated_at, an unknown order
// token falls back to DESC.
type PageQuery struct {
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=10" validate:"min=1,max=200"`
	Sort      string `form:"sort"`
	Order     string `form:"order"`
	Search    string `form:"search"`
	StartDate string `form:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"endDate"   validate:"omitempty,datetime=2006-01-02"`
	// Deleted includes soft-deleted rows in the result set.
	Deleted bool `form:"deleted"`
}

// Defaults clamps page and limit so repositories never see zero or
// unbounded values.
func (q *PageQuery) Defaults() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > 200 {
		q.Limit = 10
	}
}
