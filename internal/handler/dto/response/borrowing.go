package response

import (
	"time"

	"borrowing-service/internal/pkg/dates"
	"borrowing-service/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type BorrowingResponse struct {
	ID              int64  `json:"id" example:"1"`
	UserID          int64  `json:"userId" example:"42"`
	BookUnitID      int64  `json:"bookUnitId" example:"7"`
	ShippingAddress string `json:"shippingAddress" example:"742 Evergreen Terrace, Springfield"`
	StartDate       string `json:"startDate" example:"2026-05-01"`
	EndDate         string `json:"endDate" example:"2026-05-15"`
	Active          bool   `json:"active" example:"true"`
	CreatedAt       string `json:"createdAt" example:"2026-04-20"`
}

var dateFormatter = copier.TypeConverter{
	SrcType: time.Time{},
	DstType: copier.String,
	Fn: func(src any) (any, error) {
		return dates.Format(src.(time.Time)), nil
	},
}

func FromBorrowingView(v *queries.BorrowingView) BorrowingResponse {
	var resp BorrowingResponse
	// only the date converter can fail, and it never does
	_ = copier.CopyWithOption(&resp, v, copier.Option{Converters: []copier.TypeConverter{dateFormatter}})
	return resp
}

func FromBorrowingViews(vs []*queries.BorrowingView) []BorrowingResponse {
	out := make([]BorrowingResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromBorrowingView(v))
	}
	return out
}
