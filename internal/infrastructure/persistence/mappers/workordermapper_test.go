package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mantis/internal/domain/workorder"
	"mantis/internal/infrastructure/persistence/models"
)

func TestWorkOrderMapper_ToDomain_ParsesChecklist(t *testing.T) {
	mapper := NewWorkOrderMapper()
	now := time.Now().UnixMilli()

	model := &models.WorkOrderModel{
		ID:          3,
		Code:        "WO-20260301-003",
		AssetID:     42,
		Type:        "PM",
		Status:      "open",
		Summary:     "Monthly lubrication",
		Priority:    "medium",
		RequestedBy: 7,
		Checklist:   `[{"item":"Check oil level","standard":"between min and max"},{"item":"Grease bearings"}]`,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	wo, err := mapper.ToDomain(model)
	require.NoError(t, err)

	checklist := wo.Checklist()
	require.Len(t, checklist, 2)
	assert.Equal(t, "Check oil level", checklist[0].Item)
	assert.Equal(t, "between min and max", checklist[0].Standard)
	assert.Equal(t, "Grease bearings", checklist[1].Item)
}

func TestWorkOrderMapper_ToDomain_CorruptChecklist(t *testing.T) {
	mapper := NewWorkOrderMapper()
	now := time.Now().UnixMilli()

	model := &models.WorkOrderModel{
		ID:          9,
		Code:        "WO-20260301-009",
		AssetID:     42,
		Type:        "CM",
		Status:      "open",
		Summary:     "Broken belt",
		Priority:    "high",
		RequestedBy: 7,
		Checklist:   "{not json",
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := mapper.ToDomain(model)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "id=9")
}

func TestWorkOrderMapper_ToModel_EmptyChecklistStaysEmpty(t *testing.T) {
	mapper := NewWorkOrderMapper()

	wo, err := workorder.NewWorkOrder(42, "CM", "Spindle noise", "", "high", 7, time.Now())
	require.NoError(t, err)
	require.NoError(t, wo.SetID(5))
	require.NoError(t, wo.SetCode("WO-20260301-005"))

	model := mapper.ToModel(wo)
	assert.Empty(t, model.Checklist)
	assert.Equal(t, "open", model.Status)
	assert.Equal(t, uint(42), model.AssetID)
}
