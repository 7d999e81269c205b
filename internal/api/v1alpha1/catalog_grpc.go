package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	CatalogService_ListSpells_FullMethodName    = "/anyventure.api.v1alpha1.CatalogService/ListSpells"
	CatalogService_ListItems_FullMethodName     = "/anyventure.api.v1alpha1.CatalogService/ListItems"
	CatalogService_GetItem_FullMethodName       = "/anyventure.api.v1alpha1.CatalogService/GetItem"
	CatalogService_GetCreature_FullMethodName   = "/anyventure.api.v1alpha1.CatalogService/GetCreature"
	CatalogService_ListCreatures_FullMethodName = "/anyventure.api.v1alpha1.CatalogService/ListCreatures"
)

// CatalogServiceClient is the client API for CatalogService.
type CatalogServiceClient interface {
	ListSpells(ctx context.Context, in *ListSpellsRequest, opts ...grpc.CallOption) (*ListSpellsResponse, error)
	ListItems(ctx context.Context, in *ListItemsRequest, opts ...grpc.CallOption) (*ListItemsResponse, error)
	GetItem(ctx context.Context, in *GetItemRequest, opts ...grpc.CallOption) (*GetItemResponse, error)
	GetCreature(ctx context.Context, in *GetCreatureRequest, opts ...grpc.CallOption) (*GetCreatureResponse, error)
	ListCreatures(ctx context.Context, in *ListCreaturesRequest, opts ...grpc.CallOption) (*ListCreaturesResponse, error)
}

type catalogServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCatalogServiceClient returns a client that sends every call with the JSON codec
func NewCatalogServiceClient(cc grpc.ClientConnInterface) CatalogServiceClient {
	return &catalogServiceClient{cc}
}

func (c *catalogServiceClient) ListSpells(ctx context.Context, in *ListSpellsRequest, opts ...grpc.CallOption) (*ListSpellsResponse, error) {
	out := new(ListSpellsResponse)
	if err := c.cc.Invoke(ctx, CatalogService_ListSpells_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) ListItems(ctx context.Context, in *ListItemsRequest, opts ...grpc.CallOption) (*ListItemsResponse, error) {
	out := new(ListItemsResponse)
	if err := c.cc.Invoke(ctx, CatalogService_ListItems_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) GetItem(ctx context.Context, in *GetItemRequest, opts ...grpc.CallOption) (*GetItemResponse, error) {
	out := new(GetItemResponse)
	if err := c.cc.Invoke(ctx, CatalogService_GetItem_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) GetCreature(ctx context.Context, in *GetCreatureRequest, opts ...grpc.CallOption) (*GetCreatureResponse, error) {
	out := new(GetCreatureResponse)
	if err := c.cc.Invoke(ctx, CatalogService_GetCreature_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) ListCreatures(ctx context.Context, in *ListCreaturesRequest, opts ...grpc.CallOption) (*ListCreaturesResponse, error) {
	out := new(ListCreaturesResponse)
	if err := c.cc.Invoke(ctx, CatalogService_ListCreatures_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

// CatalogServiceServer is the server API for CatalogService.
// Browsing of spells, items and creatures.
type CatalogServiceServer interface {
	ListSpells(context.Context, *ListSpellsRequest) (*ListSpellsResponse, error)
	ListItems(context.Context, *ListItemsRequest) (*ListItemsResponse, error)
	GetItem(context.Context, *GetItemRequest) (*GetItemResponse, error)
	GetCreature(context.Context, *GetCreatureRequest) (*GetCreatureResponse, error)
	ListCreatures(context.Context, *ListCreaturesRequest) (*ListCreaturesResponse, error)
}

// UnimplementedCatalogServiceServer can be embedded to have forward compatible implementations.
type UnimplementedCatalogServiceServer struct{}

func (UnimplementedCatalogServiceServer) ListSpells(context.Context, *ListSpellsRequest) (*ListSpellsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListSpells not implemented")
}

func (UnimplementedCatalogServiceServer) ListItems(context.Context, *ListItemsRequest) (*ListItemsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListItems not implemented")
}

func (UnimplementedCatalogServiceServer) GetItem(context.Context, *GetItemRequest) (*GetItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetItem not implemented")
}

func (UnimplementedCatalogServiceServer) GetCreature(context.Context, *GetCreatureRequest) (*GetCreatureResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCreature not implemented")
}

func (UnimplementedCatalogServiceServer) ListCreatures(context.Context, *ListCreaturesRequest) (*ListCreaturesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListCreatures not implemented")
}

// RegisterCatalogServiceServer registers srv on s
func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&CatalogService_ServiceDesc, srv)
}

func _CatalogService_ListSpells_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListSpellsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).ListSpells(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CatalogService_ListSpells_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogServiceServer).ListSpells(ctx, req.(*ListSpellsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CatalogService_ListItems_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListItemsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).ListItems(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CatalogService_ListItems_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogServiceServer).ListItems(ctx, req.(*ListItemsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CatalogService_GetItem_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetItemRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).GetItem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CatalogService_GetItem_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogServiceServer).GetItem(ctx, req.(*GetItemRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CatalogService_GetCreature_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetCreatureRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).GetCreature(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CatalogService_GetCreature_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogServiceServer).GetCreature(ctx, req.(*GetCreatureRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CatalogService_ListCreatures_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListCreaturesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).ListCreatures(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CatalogService_ListCreatures_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogServiceServer).ListCreatures(ctx, req.(*ListCreaturesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// CatalogService_ServiceDesc is the grpc.ServiceDesc for CatalogService
var CatalogService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "anyventure.api.v1alpha1.CatalogService",
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListSpells",
			Handler:    _CatalogService_ListSpells_Handler,
		},
		{
			MethodName: "ListItems",
			Handler:    _CatalogService_ListItems_Handler,
		},
		{
			MethodName: "GetItem",
			Handler:    _CatalogService_GetItem_Handler,
		},
		{
			MethodName: "GetCreature",
			Handler:    _CatalogService_GetCreature_Handler,
		},
		{
			MethodName: "ListCreatures",
			Handler:    _CatalogService_ListCreatures_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "anyventure/api/v1alpha1/catalog",
}
