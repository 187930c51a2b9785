// Package api defines the request and response messages of the commission
// service. Messages are plain structs carried over Connect with a JSON codec
// (see package apiconnect).
package api

// Person is one roster row as entered by the user.
type Person struct {
	Id     string  `json:"id"`
	Name   string  `json:"name"`
	Profit float64 `json:"profit"`
	Month  string  `json:"month"`
}

// Result is the computed payout for one profit figure, at full precision.
type Result struct {
	BaseSalary float64  `json:"baseSalary"`
	Commission float64  `json:"commission"`
	Tax        float64  `json:"tax"`
	Cost       float64  `json:"cost"`
	Final      float64  `json:"final"`
	Detail     []string `json:"detail"`
}

// Display is Result formatted for presentation.
// Money values carry two decimals; base salary and cost are flat integers.
type Display struct {
	Name       string   `json:"name"`
	Profit     string   `json:"profit"`
	BaseSalary string   `json:"baseSalary"`
	Commission string   `json:"commission"`
	Tax        string   `json:"tax"`
	Cost       string   `json:"cost"`
	Final      string   `json:"final"`
	Detail     []string `json:"detail"`
}

// Row is a person together with their computed payout.
type Row struct {
	Person  Person  `json:"person"`
	Result  Result  `json:"result"`
	Display Display `json:"display"`
}

// Totals sums the money columns over the whole roster.
type Totals struct {
	People     int     `json:"people"`
	Profit     float64 `json:"profit"`
	Commission float64 `json:"commission"`
	Tax        float64 `json:"tax"`
	Final      float64 `json:"final"`
}

// Bracket is one step of the commission schedule.
// Upper is omitted for the open-ended top bracket.
type Bracket struct {
	Lower float64  `json:"lower"`
	Upper *float64 `json:"upper,omitempty"`
	Rate  float64  `json:"rate"`
}

type ListPeopleRequest struct{}

type ListPeopleResponse struct {
	Rows   []*Row `json:"rows"`
	Totals Totals `json:"totals"`
}

type AddPersonRequest struct{}

type AddPersonResponse struct {
	Row *Row `json:"row"`
}

type RemovePersonRequest struct {
	Id string `json:"id"`
}

type RemovePersonResponse struct{}

// UpdatePersonRequest patches a person. Nil fields are left unchanged.
// ProfitText is raw user input; it is coerced to 0 when it is not a number.
// At most one of Profit and ProfitText may be set.
type UpdatePersonRequest struct {
	Id         string   `json:"id"`
	Name       *string  `json:"name,omitempty"`
	Profit     *float64 `json:"profit,omitempty"`
	ProfitText *string  `json:"profitText,omitempty"`
	Month      *string  `json:"month,omitempty"`
}

type UpdatePersonResponse struct {
	Row *Row `json:"row"`
}

type ResetRequest struct{}

type ResetResponse struct {
	Row *Row `json:"row"`
}

type CalculateRequest struct {
	Profit float64 `json:"profit"`
}

type CalculateResponse struct {
	Result  Result  `json:"result"`
	Display Display `json:"display"`
}

type GetRulesRequest struct{}

type GetRulesResponse struct {
	Brackets   []Bracket `json:"brackets"`
	BaseSalary float64   `json:"baseSalary"`
	TaxRate    float64   `json:"taxRate"`
	Cost       float64   `json:"cost"`
	Summary    string    `json:"summary"`
}
