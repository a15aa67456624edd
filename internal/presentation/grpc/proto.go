package grpc

// proto.go defines the gRPC server interface derived from
// loanworks/amortization/v1/amortization.proto. This file serves as a
// stand-in for buf-generated code. Once `buf generate` is run, replace this
// file with the import from
// github.com/loanworks/api/gen/go/loanworks/amortization/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AmortizationServiceServer is the server API for AmortizationService.
// It mirrors the proto-generated interface from
// loanworks.amortization.v1.AmortizationService.
type AmortizationServiceServer interface {
	BookLoan(context.Context, *BookLoanRequest) (*LoanResponse, error)
	GetLoan(context.Context, *GetLoanRequest) (*LoanResponse, error)
	ListLoans(context.Context, *ListLoansRequest) (*ListLoansResponse, error)
	GenerateSchedule(context.Context, *GenerateScheduleRequest) (*ScheduleResponse, error)
	PriceSchedule(context.Context, *PriceScheduleRequest) (*PriceResponse, error)
	mustEmbedUnimplementedAmortizationServiceServer()
}

// UnimplementedAmortizationServiceServer provides forward-compatible default implementations.
type UnimplementedAmortizationServiceServer struct{}

func (UnimplementedAmortizationServiceServer) BookLoan(context.Context, *BookLoanRequest) (*LoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method BookLoan not implemented")
}
func (UnimplementedAmortizationServiceServer) GetLoan(context.Context, *GetLoanRequest) (*LoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLoan not implemented")
}
func (UnimplementedAmortizationServiceServer) ListLoans(context.Context, *ListLoansRequest) (*ListLoansResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListLoans not implemented")
}
func (UnimplementedAmortizationServiceServer) GenerateSchedule(context.Context, *GenerateScheduleRequest) (*ScheduleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GenerateSchedule not implemented")
}
func (UnimplementedAmortizationServiceServer) PriceSchedule(context.Context, *PriceScheduleRequest) (*PriceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PriceSchedule not implemented")
}
func (UnimplementedAmortizationServiceServer) mustEmbedUnimplementedAmortizationServiceServer() {}

// RegisterAmortizationServiceServer registers the AmortizationServiceServer with the gRPC server.
func RegisterAmortizationServiceServer(s *grpclib.Server, srv AmortizationServiceServer) {
	s.RegisterService(&_AmortizationService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _AmortizationService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "loanworks.amortization.v1.AmortizationService",
	HandlerType: (*AmortizationServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "BookLoan", Handler: _AmortizationService_BookLoan_Handler},                 //nolint:revive // gRPC handler registration
		{MethodName: "GetLoan", Handler: _AmortizationService_GetLoan_Handler},                   //nolint:revive // gRPC handler registration
		{MethodName: "ListLoans", Handler: _AmortizationService_ListLoans_Handler},               //nolint:revive // gRPC handler registration
		{MethodName: "GenerateSchedule", Handler: _AmortizationService_GenerateSchedule_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "PriceSchedule", Handler: _AmortizationService_PriceSchedule_Handler},       //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _AmortizationService_BookLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(BookLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AmortizationServiceServer).BookLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loanworks.amortization.v1.AmortizationService/BookLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AmortizationServiceServer).BookLoan(ctx, req.(*BookLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _AmortizationService_GetLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AmortizationServiceServer).GetLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loanworks.amortization.v1.AmortizationService/GetLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AmortizationServiceServer).GetLoan(ctx, req.(*GetLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _AmortizationService_ListLoans_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListLoansRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AmortizationServiceServer).ListLoans(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loanworks.amortization.v1.AmortizationService/ListLoans",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AmortizationServiceServer).ListLoans(ctx, req.(*ListLoansRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _AmortizationService_GenerateSchedule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GenerateScheduleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AmortizationServiceServer).GenerateSchedule(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loanworks.amortization.v1.AmortizationService/GenerateSchedule",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AmortizationServiceServer).GenerateSchedule(ctx, req.(*GenerateScheduleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _AmortizationService_PriceSchedule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(PriceScheduleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AmortizationServiceServer).PriceSchedule(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loanworks.amortization.v1.AmortizationService/PriceSchedule",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AmortizationServiceServer).PriceSchedule(ctx, req.(*PriceScheduleRequest))
	}
	return interceptor(ctx, in, info, handler)
}
