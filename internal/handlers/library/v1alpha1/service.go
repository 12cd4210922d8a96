package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "dracolich.library.v1alpha1.LibraryService"

// LibraryServiceServer is the server API for the library service. Requests
// and responses are protobuf well-known types; records travel as Struct.
type LibraryServiceServer interface {
	GetClass(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	ListClasses(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	GetRace(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	ListRaces(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	ListAttributes(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	ListAlignments(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	ListBackgrounds(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	ListFeatures(context.Context, *wrapperspb.StringValue) (*structpb.ListValue, error)
	GetSpell(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	ListSpells(context.Context, *structpb.Struct) (*structpb.ListValue, error)
	ListEquipment(context.Context, *wrapperspb.StringValue) (*structpb.ListValue, error)
	GetEquipment(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
}

// RegisterLibraryServiceServer registers srv with s
func RegisterLibraryServiceServer(s grpc.ServiceRegistrar, srv LibraryServiceServer) {
	s.RegisterService(&LibraryServiceDesc, srv)
}

// LibraryServiceDesc describes the library service for grpc.Server
var LibraryServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*LibraryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("GetClass", newString, LibraryServiceServer.GetClass),
		unary("ListClasses", newEmpty, LibraryServiceServer.ListClasses),
		unary("GetRace", newString, LibraryServiceServer.GetRace),
		unary("ListRaces", newEmpty, LibraryServiceServer.ListRaces),
		unary("ListAttributes", newEmpty, LibraryServiceServer.ListAttributes),
		unary("ListAlignments", newEmpty, LibraryServiceServer.ListAlignments),
		unary("ListBackgrounds", newEmpty, LibraryServiceServer.ListBackgrounds),
		unary("ListFeatures", newString, LibraryServiceServer.ListFeatures),
		unary("GetSpell", newString, LibraryServiceServer.GetSpell),
		unary("ListSpells", newStruct, LibraryServiceServer.ListSpells),
		unary("ListEquipment", newString, LibraryServiceServer.ListEquipment),
		unary("GetEquipment", newString, LibraryServiceServer.GetEquipment),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dracolich/library/v1alpha1/library.proto",
}

func newString() *wrapperspb.StringValue { return &wrapperspb.StringValue{} }
func newEmpty() *emptypb.Empty { return &emptypb.Empty{} }
func newStruct() *structpb.Struct { return &structpb.Struct{} }

func fullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

// unary adapts a typed server method to grpc.MethodDesc
func unary[Req, Resp proto.Message](
	name string,
	newReq func() Req,
	call func(LibraryServiceServer, context.Context, Req) (Resp, error),
) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := newReq()
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(LibraryServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod(name),
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(LibraryServiceServer), ctx, req.(Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// LibraryServiceClient is the client API for the library service
type LibraryServiceClient interface {
	GetClass(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListClasses(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error)
	GetRace(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListRaces(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error)
	ListAttributes(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error)
	ListAlignments(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error)
	ListBackgrounds(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error)
	ListFeatures(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.ListValue, error)
	GetSpell(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListSpells(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.ListValue, error)
	ListEquipment(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.ListValue, error)
	GetEquipment(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type libraryServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewLibraryServiceClient creates a client over cc
func NewLibraryServiceClient(cc grpc.ClientConnInterface) LibraryServiceClient {
	return &libraryServiceClient{cc: cc}
}

func invoke[Resp proto.Message](ctx context.Context, cc grpc.ClientConnInterface, name string, in proto.Message, out Resp, opts []grpc.CallOption) (Resp, error) {
	if err := cc.Invoke(ctx, fullMethod(name), in, out, opts...); err != nil {
		var zero Resp
		return zero, err
	}
	return out, nil
}

func (c *libraryServiceClient) GetClass(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke(ctx, c.cc, "GetClass", in, &structpb.Struct{}, opts)
}

func (c *libraryServiceClient) ListClasses(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	return invoke(ctx, c.cc, "ListClasses", in, &structpb.ListValue{}, opts)
}

func (c *libraryServiceClient) GetRace(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke(ctx, c.cc, "GetRace", in, &structpb.Struct{}, opts)
}

func (c *libraryServiceClient) ListRaces(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	return invoke(ctx, c.cc, "ListRaces", in, &structpb.ListValue{}, opts)
}

func (c *libraryServiceClient) ListAttributes(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	return invoke(ctx, c.cc, "ListAttributes", in, &structpb.ListValue{}, opts)
}

func (c *libraryServiceClient) ListAlignments(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	return invoke(ctx, c.cc, "ListAlignments", in, &structpb.ListValue{}, opts)
}

func (c *libraryServiceClient) ListBackgrounds(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	return invoke(ctx, c.cc, "ListBackgrounds", in, &structpb.ListValue{}, opts)
}

func (c *libraryServiceClient) ListFeatures(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	return invoke(ctx, c.cc, "ListFeatures", in, &structpb.ListValue{}, opts)
}

func (c *libraryServiceClient) GetSpell(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke(ctx, c.cc, "GetSpell", in, &structpb.Struct{}, opts)
}

func (c *libraryServiceClient) ListSpells(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	return invoke(ctx, c.cc, "ListSpells", in, &structpb.ListValue{}, opts)
}

func (c *libraryServiceClient) ListEquipment(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	return invoke(ctx, c.cc, "ListEquipment", in, &structpb.ListValue{}, opts)
}

func (c *libraryServiceClient) GetEquipment(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke(ctx, c.cc, "GetEquipment", in, &structpb.Struct{}, opts)
}
