package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	CharacterService_CreateCharacter_FullMethodName = "/anyventure.api.v1alpha1.CharacterService/CreateCharacter"
	CharacterService_GetCharacter_FullMethodName    = "/anyventure.api.v1alpha1.CharacterService/GetCharacter"
	CharacterService_ListCharacters_FullMethodName  = "/anyventure.api.v1alpha1.CharacterService/ListCharacters"
	CharacterService_LearnSpell_FullMethodName      = "/anyventure.api.v1alpha1.CharacterService/LearnSpell"
	CharacterService_ForgetSpell_FullMethodName     = "/anyventure.api.v1alpha1.CharacterService/ForgetSpell"
	CharacterService_SetExoticAccess_FullMethodName = "/anyventure.api.v1alpha1.CharacterService/SetExoticAccess"
)

// CharacterServiceClient is the client API for CharacterService.
type CharacterServiceClient interface {
	CreateCharacter(ctx context.Context, in *CreateCharacterRequest, opts ...grpc.CallOption) (*CreateCharacterResponse, error)
	GetCharacter(ctx context.Context, in *GetCharacterRequest, opts ...grpc.CallOption) (*GetCharacterResponse, error)
	ListCharacters(ctx context.Context, in *ListCharactersRequest, opts ...grpc.CallOption) (*ListCharactersResponse, error)
	LearnSpell(ctx context.Context, in *LearnSpellRequest, opts ...grpc.CallOption) (*LearnSpellResponse, error)
	ForgetSpell(ctx context.Context, in *ForgetSpellRequest, opts ...grpc.CallOption) (*ForgetSpellResponse, error)
	SetExoticAccess(ctx context.Context, in *SetExoticAccessRequest, opts ...grpc.CallOption) (*SetExoticAccessResponse, error)
}

type characterServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCharacterServiceClient returns a client that sends every call with the JSON codec
func NewCharacterServiceClient(cc grpc.ClientConnInterface) CharacterServiceClient {
	return &characterServiceClient{cc}
}

func (c *characterServiceClient) CreateCharacter(ctx context.Context, in *CreateCharacterRequest, opts ...grpc.CallOption) (*CreateCharacterResponse, error) {
	out := new(CreateCharacterResponse)
	if err := c.cc.Invoke(ctx, CharacterService_CreateCharacter_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *characterServiceClient) GetCharacter(ctx context.Context, in *GetCharacterRequest, opts ...grpc.CallOption) (*GetCharacterResponse, error) {
	out := new(GetCharacterResponse)
	if err := c.cc.Invoke(ctx, CharacterService_GetCharacter_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *characterServiceClient) ListCharacters(ctx context.Context, in *ListCharactersRequest, opts ...grpc.CallOption) (*ListCharactersResponse, error) {
	out := new(ListCharactersResponse)
	if err := c.cc.Invoke(ctx, CharacterService_ListCharacters_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *characterServiceClient) LearnSpell(ctx context.Context, in *LearnSpellRequest, opts ...grpc.CallOption) (*LearnSpellResponse, error) {
	out := new(LearnSpellResponse)
	if err := c.cc.Invoke(ctx, CharacterService_LearnSpell_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *characterServiceClient) ForgetSpell(ctx context.Context, in *ForgetSpellRequest, opts ...grpc.CallOption) (*ForgetSpellResponse, error) {
	out := new(ForgetSpellResponse)
	if err := c.cc.Invoke(ctx, CharacterService_ForgetSpell_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *characterServiceClient) SetExoticAccess(ctx context.Context, in *SetExoticAccessRequest, opts ...grpc.CallOption) (*SetExoticAccessResponse, error) {
	out := new(SetExoticAccessResponse)
	if err := c.cc.Invoke(ctx, CharacterService_SetExoticAccess_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

// CharacterServiceServer is the server API for CharacterService.
// Characters, spellbooks and exotic access.
type CharacterServiceServer interface {
	CreateCharacter(context.Context, *CreateCharacterRequest) (*CreateCharacterResponse, error)
	GetCharacter(context.Context, *GetCharacterRequest) (*GetCharacterResponse, error)
	ListCharacters(context.Context, *ListCharactersRequest) (*ListCharactersResponse, error)
	LearnSpell(context.Context, *LearnSpellRequest) (*LearnSpellResponse, error)
	ForgetSpell(context.Context, *ForgetSpellRequest) (*ForgetSpellResponse, error)
	SetExoticAccess(context.Context, *SetExoticAccessRequest) (*SetExoticAccessResponse, error)
}

// UnimplementedCharacterServiceServer can be embedded to have forward compatible implementations.
type UnimplementedCharacterServiceServer struct{}

func (UnimplementedCharacterServiceServer) CreateCharacter(context.Context, *CreateCharacterRequest) (*CreateCharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateCharacter not implemented")
}

func (UnimplementedCharacterServiceServer) GetCharacter(context.Context, *GetCharacterRequest) (*GetCharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCharacter not implemented")
}

func (UnimplementedCharacterServiceServer) ListCharacters(context.Context, *ListCharactersRequest) (*ListCharactersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListCharacters not implemented")
}

func (UnimplementedCharacterServiceServer) LearnSpell(context.Context, *LearnSpellRequest) (*LearnSpellResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method LearnSpell not implemented")
}

func (UnimplementedCharacterServiceServer) ForgetSpell(context.Context, *ForgetSpellRequest) (*ForgetSpellResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ForgetSpell not implemented")
}

func (UnimplementedCharacterServiceServer) SetExoticAccess(context.Context, *SetExoticAccessRequest) (*SetExoticAccessResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetExoticAccess not implemented")
}

// RegisterCharacterServiceServer registers srv on s
func RegisterCharacterServiceServer(s grpc.ServiceRegistrar, srv CharacterServiceServer) {
	s.RegisterService(&CharacterService_ServiceDesc, srv)
}

func _CharacterService_CreateCharacter_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateCharacterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CharacterServiceServer).CreateCharacter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CharacterService_CreateCharacter_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CharacterServiceServer).CreateCharacter(ctx, req.(*CreateCharacterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CharacterService_GetCharacter_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetCharacterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CharacterServiceServer).GetCharacter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CharacterService_GetCharacter_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CharacterServiceServer).GetCharacter(ctx, req.(*GetCharacterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CharacterService_ListCharacters_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListCharactersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CharacterServiceServer).ListCharacters(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CharacterService_ListCharacters_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CharacterServiceServer).ListCharacters(ctx, req.(*ListCharactersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CharacterService_LearnSpell_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(LearnSpellRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CharacterServiceServer).LearnSpell(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CharacterService_LearnSpell_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CharacterServiceServer).LearnSpell(ctx, req.(*LearnSpellRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CharacterService_ForgetSpell_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ForgetSpellRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CharacterServiceServer).ForgetSpell(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CharacterService_ForgetSpell_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CharacterServiceServer).ForgetSpell(ctx, req.(*ForgetSpellRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CharacterService_SetExoticAccess_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SetExoticAccessRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CharacterServiceServer).SetExoticAccess(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CharacterService_SetExoticAccess_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CharacterServiceServer).SetExoticAccess(ctx, req.(*SetExoticAccessRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// CharacterService_ServiceDesc is the grpc.ServiceDesc for CharacterService
var CharacterService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "anyventure.api.v1alpha1.CharacterService",
	HandlerType: (*CharacterServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateCharacter",
			Handler:    _CharacterService_CreateCharacter_Handler,
		},
		{
			MethodName: "GetCharacter",
			Handler:    _CharacterService_GetCharacter_Handler,
		},
		{
			MethodName: "ListCharacters",
			Handler:    _CharacterService_ListCharacters_Handler,
		},
		{
			MethodName: "LearnSpell",
			Handler:    _CharacterService_LearnSpell_Handler,
		},
		{
			MethodName: "ForgetSpell",
			Handler:    _CharacterService_ForgetSpell_Handler,
		},
		{
			MethodName: "SetExoticAccess",
			Handler:    _CharacterService_SetExoticAccess_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "anyventure/api/v1alpha1/character",
}
