package asset

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"mantis/internal/application/asset/usecases"
	"mantis/internal/shared/errors"
)

type CreateAssetRequest struct {
	Code           string     `json:"code" binding:"required,max=50"`
	Name           string     `json:"name" binding:"required,max=200"`
	Factory        string     `json:"factory,omitempty"`
	Workshop       string     `json:"workshop,omitempty"`
	Line           string     `json:"line,omitempty"`
	Station        string     `json:"station,omitempty"`
	Vendor         string     `json:"vendor,omitempty"`
	Model          string     `json:"model,omitempty"`
	SerialNumber   string     `json:"serial_number,omitempty"`
	Specification  string     `json:"specification,omitempty"`
	Criticality    string     `json:"criticality,omitempty"`
	CommissionedOn *time.Time `json:"commissioned_on,omitempty"`
}

func (r *CreateAssetRequest) ToCommand(createdBy uint) usecases.CreateAssetCommand {
	return usecases.CreateAssetCommand{
		Code:           r.Code,
		Name:           r.Name,
		Factory:        r.Factory,
		Workshop:       r.Workshop,
		Line:           r.Line,
		Station:        r.Station,
		Vendor:         r.Vendor,
		Model:          r.Model,
		SerialNumber:   r.SerialNumber,
		Specification:  r.Specification,
		Criticality:    r.Criticality,
		CommissionedOn: r.CommissionedOn,
		CreatedBy:      createdBy,
	}
}

type UpdateAssetStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive maintenance retired"`
}

func parseAssetID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid asset ID")
	}
	return uint(id), nil
}

func parseListAssetsQuery(c *gin.Context) usecases.ListAssetsQuery {
	query := usecases.ListAssetsQuery{
		Status:    c.Query("status"),
		Factory:   c.Query("factory"),
		Workshop:  c.Query("workshop"),
		Search:    c.Query("search"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	query.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	query.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))

	return query
}
