package rental

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// Persisted JSON shape:
//
//	{"properties":[{"createdAt":1718000000000,"address":"12 rue X",
//	  "propertyPrice":300000,"downPayment":60000,"apr":0.04,"termYears":30,
//	  "revenueStreams":[{"value":2500,"count":1}],"occupancyRatePercent":0.9,
//	  "propertyTax":300,"insuranceCost":80,"managementExpensePercent":0.1}]}
//
// Percent-like fields hold fractions despite their names: they are never
// normalized again when decoded.

// inputJSON is the decoding form of an Input. It carries no method so it can
// be embedded in other decoding structs.
type inputJSON struct {
	PropertyPrice     decimal.Decimal `json:"propertyPrice"`
	DownPayment       decimal.Decimal `json:"downPayment"`
	APR               decimal.Decimal `json:"apr"`
	TermYears         int             `json:"termYears"`
	RevenueStreams    []streamJSON    `json:"revenueStreams"`
	OccupancyRate     decimal.Decimal `json:"occupancyRatePercent"`
	PropertyTax       decimal.Decimal `json:"propertyTax"`
	InsuranceCost     decimal.Decimal `json:"insuranceCost"`
	ManagementExpense decimal.Decimal `json:"managementExpensePercent"`
}

type streamJSON struct {
	Value decimal.Decimal `json:"value"`
	Count int             `json:"count"`
}

func (j inputJSON) Input() Input {
	in := Input{
		PropertyPrice:     j.PropertyPrice,
		DownPayment:       j.DownPayment,
		APR:               j.APR,
		TermYears:         j.TermYears,
		OccupancyRate:     j.OccupancyRate,
		PropertyTax:       j.PropertyTax,
		InsuranceCost:     j.InsuranceCost,
		ManagementExpense: j.ManagementExpense,
	}
	for _, s := range j.RevenueStreams {
		in.RevenueStreams = append(in.RevenueStreams, RevenueStream{Value: s.Value, Count: s.Count})
	}
	return in
}

// MarshalJSON implements the json.Marshaler interface for RevenueStream.
func (s RevenueStream) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("value", s.Value)
	w.Append("count", s.Count)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for Input.
func (in Input) MarshalJSON() ([]byte, error) {
	streams := in.RevenueStreams
	if streams == nil {
		streams = []RevenueStream{}
	}
	var w jsonObjectWriter
	w.Append("propertyPrice", in.PropertyPrice)
	w.Append("downPayment", in.DownPayment)
	w.Append("apr", in.APR)
	w.Append("termYears", in.TermYears)
	w.Append("revenueStreams", streams)
	w.Append("occupancyRatePercent", in.OccupancyRate)
	w.Append("propertyTax", in.PropertyTax)
	w.Append("insuranceCost", in.InsuranceCost)
	w.Append("managementExpensePercent", in.ManagementExpense)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Input.
func (in *Input) UnmarshalJSON(data []byte) error {
	var temp inputJSON
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*in = temp.Input()
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Property.
func (p Property) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("createdAt", p.createdAt)
	w.Optional("address", p.address)
	w.EmbedFrom(p.Input)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Property.
// A property is identified by its creation timestamp: null and records
// without a positive createdAt are rejected.
func (p *Property) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return errors.New("property is null")
	}
	var temp struct {
		inputJSON
		CreatedAt int64  `json:"createdAt"`
		Address   string `json:"address"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	if temp.CreatedAt <= 0 {
		return fmt.Errorf("property createdAt %d: must be positive", temp.CreatedAt)
	}
	*p = newPropertyFrom(temp.CreatedAt, temp.Address, temp.inputJSON.Input())
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Portfolio.
func (p Portfolio) MarshalJSON() ([]byte, error) {
	properties := p.properties
	if properties == nil {
		properties = []Property{}
	}
	var w jsonObjectWriter
	w.Append("properties", properties)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Portfolio.
// A missing "properties" field decodes as an empty portfolio.
func (p *Portfolio) UnmarshalJSON(data []byte) error {
	var temp struct {
		Properties []Property `json:"properties"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	p.properties = temp.Properties
	return nil
}

// Serialize returns the JSON form of p.
func Serialize(p Portfolio) ([]byte, error) {
	return json.Marshal(p)
}

// Deserialize decodes a Portfolio from its JSON form.
func Deserialize(data []byte) (Portfolio, error) {
	var p Portfolio
	if len(bytes.TrimSpace(data)) == 0 {
		return p, fmt.Errorf("decode portfolio: empty data")
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return Portfolio{}, fmt.Errorf("decode portfolio: %w", err)
	}
	return p, nil
}

// EncodePortfolio writes the JSON form of p into w, indented for humans.
func EncodePortfolio(w io.Writer, p Portfolio) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode portfolio: %w", err)
	}
	return nil
}

// DecodePortfolio reads a Portfolio from r.
func DecodePortfolio(r io.Reader) (Portfolio, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Portfolio{}, fmt.Errorf("read portfolio: %w", err)
	}
	return Deserialize(data)
}
