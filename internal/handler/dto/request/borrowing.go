package request

import (
	"reflect"
	"strings"
	"sync"
	"time"

	"borrowing-service/internal/pkg/dates"
	"borrowing-service/internal/usecase/commands"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/jinzhu/copier"
)

type CreateBorrowingRequest struct {
	UserID          int64  `json:"userId" binding:"required,gt=0" example:"42"`
	BookUnitID      int64  `json:"bookUnitId" binding:"required,gt=0" example:"7"`
	ShippingAddress string `json:"shippingAddress" binding:"required,min=10,max=100" example:"742 Evergreen Terrace, Springfield"`
	StartDate       string `json:"startDate" binding:"required,datetime=2006-01-02" example:"2026-05-01"`
	EndDate         string `json:"endDate" binding:"required,datetime=2006-01-02" example:"2026-05-15"`
}

type ListBorrowingsQuery struct {
	UserID int64 `form:"userId" binding:"required,gt=0"`
	Active *bool `form:"active"`
}

var dateConverter = copier.TypeConverter{
	SrcType: copier.String,
	DstType: time.Time{},
	Fn: func(src any) (any, error) {
		return dates.Parse(src.(string))
	},
}

func (r CreateBorrowingRequest) ToInput() (commands.CreateBorrowingInput, error) {
	var in commands.CreateBorrowingInput
	err := copier.CopyWithOption(&in, &r, copier.Option{Converters: []copier.TypeConverter{dateConverter}})
	return in, err
}

var registerOnce sync.Once

// RegisterJSONFieldNames makes validation errors report JSON field names.
func RegisterJSONFieldNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return fld.Name
		})
	})
}
