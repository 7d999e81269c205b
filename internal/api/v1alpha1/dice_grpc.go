package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	DiceService_RollSkillCheck_FullMethodName = "/anyventure.api.v1alpha1.DiceService/RollSkillCheck"
	DiceService_GetRollLog_FullMethodName     = "/anyventure.api.v1alpha1.DiceService/GetRollLog"
	DiceService_ClearRollLog_FullMethodName   = "/anyventure.api.v1alpha1.DiceService/ClearRollLog"
)

// DiceServiceClient is the client API for DiceService.
type DiceServiceClient interface {
	RollSkillCheck(ctx context.Context, in *RollSkillCheckRequest, opts ...grpc.CallOption) (*RollSkillCheckResponse, error)
	GetRollLog(ctx context.Context, in *GetRollLogRequest, opts ...grpc.CallOption) (*GetRollLogResponse, error)
	ClearRollLog(ctx context.Context, in *ClearRollLogRequest, opts ...grpc.CallOption) (*ClearRollLogResponse, error)
}

type diceServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewDiceServiceClient returns a client that sends every call with the JSON codec
func NewDiceServiceClient(cc grpc.ClientConnInterface) DiceServiceClient {
	return &diceServiceClient{cc}
}

func (c *diceServiceClient) RollSkillCheck(ctx context.Context, in *RollSkillCheckRequest, opts ...grpc.CallOption) (*RollSkillCheckResponse, error) {
	out := new(RollSkillCheckResponse)
	if err := c.cc.Invoke(ctx, DiceService_RollSkillCheck_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *diceServiceClient) GetRollLog(ctx context.Context, in *GetRollLogRequest, opts ...grpc.CallOption) (*GetRollLogResponse, error) {
	out := new(GetRollLogResponse)
	if err := c.cc.Invoke(ctx, DiceService_GetRollLog_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *diceServiceClient) ClearRollLog(ctx context.Context, in *ClearRollLogRequest, opts ...grpc.CallOption) (*ClearRollLogResponse, error) {
	out := new(ClearRollLogResponse)
	if err := c.cc.Invoke(ctx, DiceService_ClearRollLog_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

// DiceServiceServer is the server API for DiceService.
// Skill checks and per-character roll logs.
type DiceServiceServer interface {
	RollSkillCheck(context.Context, *RollSkillCheckRequest) (*RollSkillCheckResponse, error)
	GetRollLog(context.Context, *GetRollLogRequest) (*GetRollLogResponse, error)
	ClearRollLog(context.Context, *ClearRollLogRequest) (*ClearRollLogResponse, error)
}

// UnimplementedDiceServiceServer can be embedded to have forward compatible implementations.
type UnimplementedDiceServiceServer struct{}

func (UnimplementedDiceServiceServer) RollSkillCheck(context.Context, *RollSkillCheckRequest) (*RollSkillCheckResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RollSkillCheck not implemented")
}

func (UnimplementedDiceServiceServer) GetRollLog(context.Context, *GetRollLogRequest) (*GetRollLogResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetRollLog not implemented")
}

func (UnimplementedDiceServiceServer) ClearRollLog(context.Context, *ClearRollLogRequest) (*ClearRollLogResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ClearRollLog not implemented")
}

// RegisterDiceServiceServer registers srv on s
func RegisterDiceServiceServer(s grpc.ServiceRegistrar, srv DiceServiceServer) {
	s.RegisterService(&DiceService_ServiceDesc, srv)
}

func _DiceService_RollSkillCheck_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RollSkillCheckRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DiceServiceServer).RollSkillCheck(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DiceService_RollSkillCheck_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DiceServiceServer).RollSkillCheck(ctx, req.(*RollSkillCheckRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DiceService_GetRollLog_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetRollLogRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DiceServiceServer).GetRollLog(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DiceService_GetRollLog_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DiceServiceServer).GetRollLog(ctx, req.(*GetRollLogRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DiceService_ClearRollLog_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ClearRollLogRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DiceServiceServer).ClearRollLog(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DiceService_ClearRollLog_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DiceServiceServer).ClearRollLog(ctx, req.(*ClearRollLogRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// DiceService_ServiceDesc is the grpc.ServiceDesc for DiceService
var DiceService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "anyventure.api.v1alpha1.DiceService",
	HandlerType: (*DiceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RollSkillCheck",
			Handler:    _DiceService_RollSkillCheck_Handler,
		},
		{
			MethodName: "GetRollLog",
			Handler:    _DiceService_GetRollLog_Handler,
		},
		{
			MethodName: "ClearRollLog",
			Handler:    _DiceService_ClearRollLog_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "anyventure/api/v1alpha1/dice",
}
