package sparepart

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"mantis/internal/application/sparepart/usecases"
	"mantis/internal/shared/errors"
)

type CreateSparePartRequest struct {
	Code          string  `json:"code" binding:"required,max=50"`
	Name          string  `json:"name" binding:"required,max=200"`
	Specification string  `json:"specification,omitempty"`
	Category      string  `json:"category,omitempty"`
	Unit          string  `json:"unit,omitempty"`
	Supplier      string  `json:"supplier,omitempty"`
	SafetyStock   float64 `json:"safety_stock,omitempty"`
	MinQuantity   float64 `json:"min_quantity,omitempty"`
	MaxQuantity   float64 `json:"max_quantity,omitempty"`
	UnitPrice     float64 `json:"unit_price,omitempty"`
	Location      string  `json:"location,omitempty"`
}

func (r *CreateSparePartRequest) ToCommand() usecases.CreateSparePartCommand {
	return usecases.CreateSparePartCommand{
		Code:          r.Code,
		Name:          r.Name,
		Specification: r.Specification,
		Category:      r.Category,
		Unit:          r.Unit,
		Supplier:      r.Supplier,
		SafetyStock:   r.SafetyStock,
		MinQuantity:   r.MinQuantity,
		MaxQuantity:   r.MaxQuantity,
		UnitPrice:     r.UnitPrice,
		Location:      r.Location,
	}
}

type StockInRequest struct {
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
	Reason   string  `json:"reason,omitempty"`
}

type StockOutRequest struct {
	Quantity    float64 `json:"quantity" binding:"required,gt=0"`
	WorkOrderID *uint   `json:"work_order_id,omitempty"`
	Reason      string  `json:"reason,omitempty"`
}

type AdjustStockRequest struct {
	NewQuantity float64 `json:"new_quantity"`
	Reason      string  `json:"reason" binding:"required,max=500"`
}

func parsePartID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid spare part ID")
	}
	return uint(id), nil
}

func parseListSparePartsQuery(c *gin.Context) usecases.ListSparePartsQuery {
	query := usecases.ListSparePartsQuery{
		Keyword: c.Query("keyword"),
	}

	query.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	query.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))

	if v := c.Query("below_minimum"); v != "" {
		below := v == "true"
		query.BelowMinimum = &below
	}

	return query
}
