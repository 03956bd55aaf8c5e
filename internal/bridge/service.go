package bridge

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/shhac/gradebook/internal/command"
)

// ServiceName is the fully-qualified gRPC service name.
const ServiceName = "gradebook.v1.DocumentService"

const (
	methodSaveData        = "/" + ServiceName + "/SaveData"
	methodLoadData        = "/" + ServiceName + "/LoadData"
	methodGetDataLocation = "/" + ServiceName + "/GetDataLocation"
)

// DocumentServiceServer is the server API for the document bridge. Messages
// are protobuf well-known types, so no generated code is needed.
type DocumentServiceServer interface {
	SaveData(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error)
	LoadData(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
	GetDataLocation(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
}

// RegisterDocumentServiceServer registers srv on s.
func RegisterDocumentServiceServer(s grpc.ServiceRegistrar, srv DocumentServiceServer) {
	s.RegisterService(&documentServiceDesc, srv)
}

var documentServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*DocumentServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SaveData", Handler: saveDataHandler},
		{MethodName: "LoadData", Handler: loadDataHandler},
		{MethodName: "GetDataLocation", Handler: getDataLocationHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: documentProtoPath,
}

func saveDataHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentServiceServer).SaveData(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodSaveData}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DocumentServiceServer).SaveData(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func loadDataHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentServiceServer).LoadData(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodLoadData}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DocumentServiceServer).LoadData(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func getDataLocationHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentServiceServer).GetDataLocation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodGetDataLocation}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DocumentServiceServer).GetDataLocation(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// documentService routes RPCs through the named command surface.
type documentService struct {
	commands *command.Handler
}

func (s *documentService) SaveData(_ context.Context, in *wrapperspb.StringValue) (*emptypb.Empty, error) {
	if _, err := s.commands.Invoke(command.SaveData, map[string]string{command.ArgData: in.GetValue()}); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &emptypb.Empty{}, nil
}

func (s *documentService) LoadData(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error) {
	data, err := s.commands.Invoke(command.LoadData, nil)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return wrapperspb.String(data), nil
}

func (s *documentService) GetDataLocation(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error) {
	location, err := s.commands.Invoke(command.GetDataLocation, nil)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return wrapperspb.String(location), nil
}
