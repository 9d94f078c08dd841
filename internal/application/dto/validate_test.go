package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_FulfillmentRequest(t *testing.T) {
	valid := FulfillmentRequest{
		IDProduct:   1,
		IDWarehouse: 5,
		Amount:      3,
		CreatedAt:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, Validate(valid))

	missingDate := valid
	missingDate.CreatedAt = time.Time{}
	assert.Error(t, Validate(missingDate), "created_at es obligatorio")

	negative := valid
	negative.Amount = -1
	err := Validate(negative)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount", "el mensaje debe nombrar el campo por su tag json")

	missingProduct := valid
	missingProduct.IDProduct = 0
	assert.Error(t, Validate(missingProduct))
}
