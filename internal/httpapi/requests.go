package httpapi

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/ganot/builderp/internal/money"
	"github.com/shopspring/decimal"
)

// AmountText accepts a JSON number or string and keeps the raw text so the
// money package decides what is valid.
type AmountText string

func (a *AmountText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = AmountText(s)
		return nil
	}
	*a = AmountText(data)
	return nil
}

func (a AmountText) parse() (decimal.Decimal, error) {
	return money.Parse(string(a))
}

func (a AmountText) parseOptional() (decimal.Decimal, error) {
	if strings.TrimSpace(string(a)) == "" {
		return decimal.Zero, nil
	}
	return a.parse()
}

func (a AmountText) parsePositive() (decimal.Decimal, error) {
	return money.ParsePositive(string(a))
}

type createProjectRequest struct {
	Name      string     `json:"name"`
	Budget    AmountText `json:"budget"`
	Spent     AmountText `json:"spent"`
	Progress  int        `json:"progress"`
	Status    string     `json:"status"`
	StartDate string     `json:"start_date"`
	EndDate   string     `json:"end_date"`
}

type recordInvoiceRequest struct {
	ProjectID   int64      `json:"project_id"`
	Amount      AmountText `json:"amount"`
	Description string     `json:"description"`
	Date        string     `json:"date"`
	Status      string     `json:"status"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
