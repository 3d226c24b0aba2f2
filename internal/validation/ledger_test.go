package validation

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func oversizedMetadata() map[string]interface{} {
	m := make(map[string]interface{}, maxMetadataKeys+1)
	for i := 0; i <= maxMetadataKeys; i++ {
		m[fmt.Sprintf("key_%d", i)] = i
	}
	return m
}

func TestValidateTransfer(t *testing.T) {
	tests := []struct {
		name      string
		input     TransferInput
		wantValid bool
		wantField string
	}{
		{
			name:      "valid transfer",
			input:     TransferInput{FromUserID: 1, ToUserID: 2, Amount: 40, Type: "transfer"},
			wantValid: true,
		},
		{
			name:      "missing sender",
			input:     TransferInput{ToUserID: 2, Amount: 40, Type: "transfer"},
			wantField: "from_user_id",
		},
		{
			name:      "missing recipient",
			input:     TransferInput{FromUserID: 1, Amount: 40, Type: "transfer"},
			wantField: "to_user_id",
		},
		{
			name:      "zero amount",
			input:     TransferInput{FromUserID: 1, ToUserID: 2, Amount: 0, Type: "transfer"},
			wantField: "amount",
		},
		{
			name:      "negative amount",
			input:     TransferInput{FromUserID: 1, ToUserID: 2, Amount: -5, Type: "transfer"},
			wantField: "amount",
		},
		{
			name:      "missing type",
			input:     TransferInput{FromUserID: 1, ToUserID: 2, Amount: 40},
			wantField: "type",
		},
		{
			name: "oversized description",
			input: TransferInput{
				FromUserID: 1, ToUserID: 2, Amount: 40, Type: "transfer",
				Description: strings.Repeat("x", 501),
			},
			wantField: "description",
		},
		{
			name: "metadata within key budget",
			input: TransferInput{
				FromUserID: 1, ToUserID: 2, Amount: 40, Type: "transfer",
				Metadata: map[string]interface{}{"order_id": "ord-1", "sku": "coin-pack"},
			},
			wantValid: true,
		},
		{
			name: "too many metadata keys",
			input: TransferInput{
				FromUserID: 1, ToUserID: 2, Amount: 40, Type: "transfer",
				Metadata: oversizedMetadata(),
			},
			wantField: "metadata",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ValidateTransfer(tt.input)
			if tt.wantValid {
				assert.True(t, v.Valid())
				return
			}
			assert.False(t, v.Valid())
			assert.Contains(t, v.Errors, tt.wantField)
		})
	}
}

func TestValidateCredit(t *testing.T) {
	v := ValidateCredit(CreditInput{ToUserID: 2, Amount: 100, Type: "purchase"})
	assert.True(t, v.Valid())

	v = ValidateCredit(CreditInput{Amount: -1})
	assert.False(t, v.Valid())
	assert.Contains(t, v.Errors, "to_user_id")
	assert.Contains(t, v.Errors, "amount")
	assert.Contains(t, v.Errors, "type")
	assert.NotEmpty(t, v.First())
}
