package validation

// TransferInput mirrors the transfer request body.
type TransferInput struct {
	FromUserID  uint                   `json:"from_user_id"`
	ToUserID    uint                   `json:"to_user_id"`
	Amount      int64                  `json:"amount"`
	Type        string                 `json:"type"`
	ReferenceID string                 `json:"reference_id"`
	Description string                 `json:"description"`
	Metadata    map[string]interface{} `json:"metadata"`
}

// CreditInput mirrors the system credit request body.
type CreditInput struct {
	ToUserID    uint                   `json:"to_user_id"`
	Amount      int64                  `json:"amount"`
	Type        string                 `json:"type"`
	ReferenceID string                 `json:"reference_id"`
	Description string                 `json:"description"`
	Metadata    map[string]interface{} `json:"metadata"`
}

const (
	maxDescriptionLength = 500
	maxMetadataKeys      = 16
)

// ValidateTransfer checks a transfer request body. Balance and wallet
// existence checks belong to the ledger service; this covers only what can
// be decided from the body alone.
func ValidateTransfer(in TransferInput) *Validator {
	v := New()
	v.Check(in.FromUserID != 0, "from_user_id", "must be provided")
	v.Check(in.ToUserID != 0, "to_user_id", "must be provided")
	v.Check(in.Amount > 0, "amount", "must be greater than zero")
	v.Check(in.Type != "", "type", "must be provided")
	v.Check(len(in.Description) <= maxDescriptionLength, "description", "must be at most 500 characters")
	v.Check(len(in.Metadata) <= maxMetadataKeys, "metadata", "must have at most 16 keys")
	return v
}

// ValidateCredit checks a system credit request body.
func ValidateCredit(in CreditInput) *Validator {
	v := New()
	v.Check(in.ToUserID != 0, "to_user_id", "must be provided")
	v.Check(in.Amount > 0, "amount", "must be greater than zero")
	v.Check(in.Type != "", "type", "must be provided")
	v.Check(len(in.Description) <= maxDescriptionLength, "description", "must be at most 500 characters")
	v.Check(len(in.Metadata) <= maxMetadataKeys, "metadata", "must have at most 16 keys")
	return v
}
