package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/commissioner/internal/calculator"
	"github.com/mmynk/commissioner/internal/models"
	"github.com/mmynk/commissioner/internal/report"
	"github.com/mmynk/commissioner/internal/roster"
	"github.com/mmynk/commissioner/pkg/api"
	"github.com/mmynk/commissioner/pkg/api/apiconnect"
)

// Observer is notified after every committed roster mutation.
type Observer interface {
	RosterChanged(op string, size int)
}

type noopObserver struct{}

func (noopObserver) RosterChanged(string, int) {}

// CommissionService implements the Connect CommissionService
type CommissionService struct {
	apiconnect.UnimplementedCommissionServiceHandler
	roster   *roster.Roster
	format   *report.Formatter
	observer Observer
}

// NewCommissionService creates a CommissionService over the given roster.
// observer may be nil.
func NewCommissionService(r *roster.Roster, format *report.Formatter, observer Observer) *CommissionService {
	if observer == nil {
		observer = noopObserver{}
	}
	return &CommissionService{roster: r, format: format, observer: observer}
}

// ListPeople returns every roster row with its computed payout, plus totals.
func (s *CommissionService) ListPeople(ctx context.Context, req *connect.Request[api.ListPeopleRequest]) (*connect.Response[api.ListPeopleResponse], error) {
	people := s.roster.People()

	resp := &api.ListPeopleResponse{Rows: make([]*api.Row, 0, len(people))}
	for _, p := range people {
		row := s.buildRow(p)
		resp.Rows = append(resp.Rows, row)

		resp.Totals.People++
		resp.Totals.Profit += p.Profit
		resp.Totals.Commission += row.Result.Commission
		resp.Totals.Tax += row.Result.Tax
		resp.Totals.Final += row.Result.Final
	}

	return connect.NewResponse(resp), nil
}

// AddPerson appends a default person to the roster.
func (s *CommissionService) AddPerson(ctx context.Context, req *connect.Request[api.AddPersonRequest]) (*connect.Response[api.AddPersonResponse], error) {
	person, err := s.roster.Add(ctx)
	if err != nil {
		slog.Error("AddPerson failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	s.changed("add")

	slog.Info("Person added", "person_id", person.ID, "month", person.Month)

	return connect.NewResponse(&api.AddPersonResponse{Row: s.buildRow(person)}), nil
}

// RemovePerson deletes a person. Removing the last person is rejected with
// FailedPrecondition; unknown ids succeed without changing anything.
func (s *CommissionService) RemovePerson(ctx context.Context, req *connect.Request[api.RemovePersonRequest]) (*connect.Response[api.RemovePersonResponse], error) {
	id := strings.TrimSpace(req.Msg.Id)
	if id == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("id is required"))
	}

	removed, err := s.roster.Remove(ctx, id)
	if errors.Is(err, roster.ErrLastPerson) {
		slog.Info("RemovePerson rejected", "person_id", id, "reason", err)
		return nil, connect.NewError(connect.CodeFailedPrecondition, err)
	}
	if err != nil {
		slog.Error("RemovePerson failed", "person_id", id, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if !removed {
		slog.Debug("RemovePerson ignored unknown id", "person_id", id)
		return connect.NewResponse(&api.RemovePersonResponse{}), nil
	}
	s.changed("remove")

	slog.Info("Person removed", "person_id", id)

	return connect.NewResponse(&api.RemovePersonResponse{}), nil
}

// UpdatePerson merges the provided fields into a person.
func (s *CommissionService) UpdatePerson(ctx context.Context, req *connect.Request[api.UpdatePersonRequest]) (*connect.Response[api.UpdatePersonResponse], error) {
	id := strings.TrimSpace(req.Msg.Id)
	if id == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("id is required"))
	}

	patch, err := patchFromRequest(req.Msg)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	person, found, err := s.roster.Update(ctx, id, patch)
	if err != nil {
		slog.Error("UpdatePerson failed", "person_id", id, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if !found {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("person not found: %s", id))
	}
	s.changed("update")

	slog.Debug("Person updated",
		"person_id", person.ID,
		"profit", person.Profit,
		"month", person.Month,
	)

	return connect.NewResponse(&api.UpdatePersonResponse{Row: s.buildRow(person)}), nil
}

// Reset replaces the roster with a single default person.
func (s *CommissionService) Reset(ctx context.Context, req *connect.Request[api.ResetRequest]) (*connect.Response[api.ResetResponse], error) {
	person, err := s.roster.Reset(ctx)
	if err != nil {
		slog.Error("Reset failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	s.changed("reset")

	slog.Info("Roster reset", "person_id", person.ID)

	return connect.NewResponse(&api.ResetResponse{Row: s.buildRow(person)}), nil
}

// Calculate computes the payout for an ad-hoc profit without touching the roster.
func (s *CommissionService) Calculate(ctx context.Context, req *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error) {
	if err := validateProfit(req.Msg.Profit); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	result := calculator.ComputeAll(req.Msg.Profit)
	return connect.NewResponse(&api.CalculateResponse{
		Result:  toAPIResult(result),
		Display: s.format.Display(models.Person{Profit: req.Msg.Profit}, result),
	}), nil
}

// GetRules describes the commission schedule and the fixed payout terms.
func (s *CommissionService) GetRules(ctx context.Context, req *connect.Request[api.GetRulesRequest]) (*connect.Response[api.GetRulesResponse], error) {
	resp := &api.GetRulesResponse{
		BaseSalary: calculator.BaseSalary,
		TaxRate:    calculator.TaxRate,
		Cost:       calculator.Cost,
		Summary:    s.format.Rules(),
	}
	for _, b := range calculator.Brackets() {
		bracket := api.Bracket{Lower: b.Lower, Rate: b.Rate}
		if !math.IsInf(b.Upper, 1) {
			upper := b.Upper
			bracket.Upper = &upper
		}
		resp.Brackets = append(resp.Brackets, bracket)
	}

	return connect.NewResponse(resp), nil
}

func (s *CommissionService) changed(op string) {
	s.observer.RosterChanged(op, len(s.roster.People()))
}

func (s *CommissionService) buildRow(p models.Person) *api.Row {
	result := calculator.ComputeAll(p.Profit)
	slog.Debug("Computed commission",
		"person_id", p.ID,
		"profit", p.Profit,
		"commission", result.Commission,
		"final", result.Final,
	)
	return &api.Row{
		Person: api.Person{
			Id:     p.ID,
			Name:   p.Name,
			Profit: p.Profit,
			Month:  p.Month,
		},
		Result:  toAPIResult(result),
		Display: s.format.Display(p, result),
	}
}

func toAPIResult(r calculator.Result) api.Result {
	return api.Result{
		BaseSalary: r.BaseSalary,
		Commission: r.Commission,
		Tax:        r.Tax,
		Cost:       r.Cost,
		Final:      r.Final,
		Detail:     r.Detail,
	}
}

// patchFromRequest validates an update request and converts it to a roster patch.
func patchFromRequest(msg *api.UpdatePersonRequest) (roster.Patch, error) {
	patch := roster.Patch{Name: msg.Name, Month: msg.Month}

	switch {
	case msg.Profit != nil && msg.ProfitText != nil:
		return roster.Patch{}, fmt.Errorf("profit and profit_text are mutually exclusive")
	case msg.ProfitText != nil:
		profit := calculator.ParseProfit(*msg.ProfitText)
		patch.Profit = &profit
	case msg.Profit != nil:
		profit := *msg.Profit
		patch.Profit = &profit
	}

	if patch.Profit != nil {
		if err := validateProfit(*patch.Profit); err != nil {
			return roster.Patch{}, err
		}
	}
	if patch.Month != nil {
		if _, err := time.Parse(roster.MonthLayout, *patch.Month); err != nil {
			return roster.Patch{}, fmt.Errorf("month must be in YYYY-MM form: %q", *patch.Month)
		}
	}

	return patch, nil
}

func validateProfit(profit float64) error {
	if math.IsNaN(profit) || math.IsInf(profit, 0) || profit < 0 {
		return fmt.Errorf("profit must be a non-negative number, got %v", profit)
	}
	return nil
}
