// Package apiconnect wires the commission service messages to Connect
// handlers and clients.
package apiconnect

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/commissioner/pkg/api"
)

// CommissionServiceName is the fully-qualified name of the CommissionService service.
const CommissionServiceName = "commissioner.v1.CommissionService"

// Procedure paths of the CommissionService RPCs.
const (
	CommissionServiceListPeopleProcedure   = "/commissioner.v1.CommissionService/ListPeople"
	CommissionServiceAddPersonProcedure    = "/commissioner.v1.CommissionService/AddPerson"
	CommissionServiceRemovePersonProcedure = "/commissioner.v1.CommissionService/RemovePerson"
	CommissionServiceUpdatePersonProcedure = "/commissioner.v1.CommissionService/UpdatePerson"
	CommissionServiceResetProcedure        = "/commissioner.v1.CommissionService/Reset"
	CommissionServiceCalculateProcedure    = "/commissioner.v1.CommissionService/Calculate"
	CommissionServiceGetRulesProcedure     = "/commissioner.v1.CommissionService/GetRules"
)

// JSONCodec marshals plain Go messages as JSON under the "json" codec name,
// which Connect maps to the application/json content type.
type JSONCodec struct{}

var _ connect.Codec = JSONCodec{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Marshal(msg any) ([]byte, error) { return json.Marshal(msg) }

func (JSONCodec) Unmarshal(data []byte, msg any) error { return json.Unmarshal(data, msg) }

// CommissionServiceHandler is implemented by the server side of CommissionService.
type CommissionServiceHandler interface {
	ListPeople(context.Context, *connect.Request[api.ListPeopleRequest]) (*connect.Response[api.ListPeopleResponse], error)
	AddPerson(context.Context, *connect.Request[api.AddPersonRequest]) (*connect.Response[api.AddPersonResponse], error)
	RemovePerson(context.Context, *connect.Request[api.RemovePersonRequest]) (*connect.Response[api.RemovePersonResponse], error)
	UpdatePerson(context.Context, *connect.Request[api.UpdatePersonRequest]) (*connect.Response[api.UpdatePersonResponse], error)
	Reset(context.Context, *connect.Request[api.ResetRequest]) (*connect.Response[api.ResetResponse], error)
	Calculate(context.Context, *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error)
	GetRules(context.Context, *connect.Request[api.GetRulesRequest]) (*connect.Response[api.GetRulesResponse], error)
}

// NewCommissionServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself.
func NewCommissionServiceHandler(svc CommissionServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)

	handlers := map[string]http.Handler{
		CommissionServiceListPeopleProcedure:   connect.NewUnaryHandler(CommissionServiceListPeopleProcedure, svc.ListPeople, opts...),
		CommissionServiceAddPersonProcedure:    connect.NewUnaryHandler(CommissionServiceAddPersonProcedure, svc.AddPerson, opts...),
		CommissionServiceRemovePersonProcedure: connect.NewUnaryHandler(CommissionServiceRemovePersonProcedure, svc.RemovePerson, opts...),
		CommissionServiceUpdatePersonProcedure: connect.NewUnaryHandler(CommissionServiceUpdatePersonProcedure, svc.UpdatePerson, opts...),
		CommissionServiceResetProcedure:        connect.NewUnaryHandler(CommissionServiceResetProcedure, svc.Reset, opts...),
		CommissionServiceCalculateProcedure:    connect.NewUnaryHandler(CommissionServiceCalculateProcedure, svc.Calculate, opts...),
		CommissionServiceGetRulesProcedure:     connect.NewUnaryHandler(CommissionServiceGetRulesProcedure, svc.GetRules, opts...),
	}

	return "/" + CommissionServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := handlers[r.URL.Path]; ok {
			h.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
}

// UnimplementedCommissionServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedCommissionServiceHandler struct{}

func errUnimplemented(procedure string) error {
	name := procedure[strings.LastIndex(procedure, "/")+1:]
	return connect.NewError(connect.CodeUnimplemented, errors.New(CommissionServiceName+"."+name+" is not implemented"))
}

func (UnimplementedCommissionServiceHandler) ListPeople(context.Context, *connect.Request[api.ListPeopleRequest]) (*connect.Response[api.ListPeopleResponse], error) {
	return nil, errUnimplemented(CommissionServiceListPeopleProcedure)
}

func (UnimplementedCommissionServiceHandler) AddPerson(context.Context, *connect.Request[api.AddPersonRequest]) (*connect.Response[api.AddPersonResponse], error) {
	return nil, errUnimplemented(CommissionServiceAddPersonProcedure)
}

func (UnimplementedCommissionServiceHandler) RemovePerson(context.Context, *connect.Request[api.RemovePersonRequest]) (*connect.Response[api.RemovePersonResponse], error) {
	return nil, errUnimplemented(CommissionServiceRemovePersonProcedure)
}

func (UnimplementedCommissionServiceHandler) UpdatePerson(context.Context, *connect.Request[api.UpdatePersonRequest]) (*connect.Response[api.UpdatePersonResponse], error) {
	return nil, errUnimplemented(CommissionServiceUpdatePersonProcedure)
}

func (UnimplementedCommissionServiceHandler) Reset(context.Context, *connect.Request[api.ResetRequest]) (*connect.Response[api.ResetResponse], error) {
	return nil, errUnimplemented(CommissionServiceResetProcedure)
}

func (UnimplementedCommissionServiceHandler) Calculate(context.Context, *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error) {
	return nil, errUnimplemented(CommissionServiceCalculateProcedure)
}

func (UnimplementedCommissionServiceHandler) GetRules(context.Context, *connect.Request[api.GetRulesRequest]) (*connect.Response[api.GetRulesResponse], error) {
	return nil, errUnimplemented(CommissionServiceGetRulesProcedure)
}

// CommissionServiceClient is a client for the CommissionService service.
type CommissionServiceClient interface {
	ListPeople(context.Context, *connect.Request[api.ListPeopleRequest]) (*connect.Response[api.ListPeopleResponse], error)
	AddPerson(context.Context, *connect.Request[api.AddPersonRequest]) (*connect.Response[api.AddPersonResponse], error)
	RemovePerson(context.Context, *connect.Request[api.RemovePersonRequest]) (*connect.Response[api.RemovePersonResponse], error)
	UpdatePerson(context.Context, *connect.Request[api.UpdatePersonRequest]) (*connect.Response[api.UpdatePersonResponse], error)
	Reset(context.Context, *connect.Request[api.ResetRequest]) (*connect.Response[api.ResetResponse], error)
	Calculate(context.Context, *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error)
	GetRules(context.Context, *connect.Request[api.GetRulesRequest]) (*connect.Response[api.GetRulesResponse], error)
}

// NewCommissionServiceClient constructs a client for the CommissionService
// service at baseURL (for example, http://localhost:8080).
func NewCommissionServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) CommissionServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)

	return &commissionServiceClient{
		listPeople:   connect.NewClient[api.ListPeopleRequest, api.ListPeopleResponse](httpClient, baseURL+CommissionServiceListPeopleProcedure, opts...),
		addPerson:    connect.NewClient[api.AddPersonRequest, api.AddPersonResponse](httpClient, baseURL+CommissionServiceAddPersonProcedure, opts...),
		removePerson: connect.NewClient[api.RemovePersonRequest, api.RemovePersonResponse](httpClient, baseURL+CommissionServiceRemovePersonProcedure, opts...),
		updatePerson: connect.NewClient[api.UpdatePersonRequest, api.UpdatePersonResponse](httpClient, baseURL+CommissionServiceUpdatePersonProcedure, opts...),
		reset:        connect.NewClient[api.ResetRequest, api.ResetResponse](httpClient, baseURL+CommissionServiceResetProcedure, opts...),
		calculate:    connect.NewClient[api.CalculateRequest, api.CalculateResponse](httpClient, baseURL+CommissionServiceCalculateProcedure, opts...),
		getRules:     connect.NewClient[api.GetRulesRequest, api.GetRulesResponse](httpClient, baseURL+CommissionServiceGetRulesProcedure, opts...),
	}
}

type commissionServiceClient struct {
	listPeople   *connect.Client[api.ListPeopleRequest, api.ListPeopleResponse]
	addPerson    *connect.Client[api.AddPersonRequest, api.AddPersonResponse]
	removePerson *connect.Client[api.RemovePersonRequest, api.RemovePersonResponse]
	updatePerson *connect.Client[api.UpdatePersonRequest, api.UpdatePersonResponse]
	reset        *connect.Client[api.ResetRequest, api.ResetResponse]
	calculate    *connect.Client[api.CalculateRequest, api.CalculateResponse]
	getRules     *connect.Client[api.GetRulesRequest, api.GetRulesResponse]
}

func (c *commissionServiceClient) ListPeople(ctx context.Context, req *connect.Request[api.ListPeopleRequest]) (*connect.Response[api.ListPeopleResponse], error) {
	return c.listPeople.CallUnary(ctx, req)
}

func (c *commissionServiceClient) AddPerson(ctx context.Context, req *connect.Request[api.AddPersonRequest]) (*connect.Response[api.AddPersonResponse], error) {
	return c.addPerson.CallUnary(ctx, req)
}

func (c *commissionServiceClient) RemovePerson(ctx context.Context, req *connect.Request[api.RemovePersonRequest]) (*connect.Response[api.RemovePersonResponse], error) {
	return c.removePerson.CallUnary(ctx, req)
}

func (c *commissionServiceClient) UpdatePerson(ctx context.Context, req *connect.Request[api.UpdatePersonRequest]) (*connect.Response[api.UpdatePersonResponse], error) {
	return c.updatePerson.CallUnary(ctx, req)
}

func (c *commissionServiceClient) Reset(ctx context.Context, req *connect.Request[api.ResetRequest]) (*connect.Response[api.ResetResponse], error) {
	return c.reset.CallUnary(ctx, req)
}

func (c *commissionServiceClient) Calculate(ctx context.Context, req *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error) {
	return c.calculate.CallUnary(ctx, req)
}

func (c *commissionServiceClient) GetRules(ctx context.Context, req *connect.Request[api.GetRulesRequest]) (*connect.Response[api.GetRulesResponse], error) {
	return c.getRules.CallUnary(ctx, req)
}
