package inspection

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"mantis/internal/application/inspection/usecases"
	"mantis/internal/shared/errors"
)

type RecordInspectionRequest struct {
	AssetID       uint       `json:"asset_id" binding:"required"`
	Item          string     `json:"item" binding:"required,max=200"`
	Result        string     `json:"result" binding:"required,oneof=ok ng"`
	MeasuredValue *float64   `json:"measured_value,omitempty"`
	StandardRange string     `json:"standard_range,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	InspectedAt   *time.Time `json:"inspected_at,omitempty"`
}

func (r *RecordInspectionRequest) ToCommand(inspectorID uint) usecases.RecordInspectionCommand {
	return usecases.RecordInspectionCommand{
		AssetID:       r.AssetID,
		InspectorID:   inspectorID,
		Item:          r.Item,
		Result:        r.Result,
		MeasuredValue: r.MeasuredValue,
		StandardRange: r.StandardRange,
		Notes:         r.Notes,
		InspectedAt:   r.InspectedAt,
	}
}

func parseSummaryQuery(c *gin.Context) (usecases.GetInspectionSummaryQuery, error) {
	var query usecases.GetInspectionSummaryQuery

	assetID, err := strconv.ParseUint(c.Query("asset_id"), 10, 32)
	if err != nil || assetID == 0 {
		return query, errors.NewValidationError("invalid asset ID")
	}
	query.AssetID = uint(assetID)

	if v := c.Query("from"); v != "" {
		from, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return query, errors.NewValidationError("invalid from date, expected RFC3339")
		}
		query.From = from
	}
	if v := c.Query("to"); v != "" {
		to, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return query, errors.NewValidationError("invalid to date, expected RFC3339")
		}
		query.To = to
	}

	return query, nil
}
