package bridge

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
	_ "google.golang.org/protobuf/types/known/emptypb"
	_ "google.golang.org/protobuf/types/known/wrapperspb"
)

// documentProtoPath names the descriptor file that declares the service.
const documentProtoPath = "gradebook/v1/document.proto"

// documentFile is the registered descriptor, so server reflection can
// describe the service to tools such as grpcurl.
var documentFile protoreflect.FileDescriptor

func init() {
	fd, err := protodesc.NewFile(documentFileProto(), protoregistry.GlobalFiles)
	if err != nil {
		panic(fmt.Sprintf("bridge: build %s: %v", documentProtoPath, err))
	}
	if err := protoregistry.GlobalFiles.RegisterFile(fd); err != nil {
		panic(fmt.Sprintf("bridge: register %s: %v", documentProtoPath, err))
	}
	documentFile = fd
}

func documentFileProto() *descriptorpb.FileDescriptorProto {
	method := func(name, in, out string) *descriptorpb.MethodDescriptorProto {
		return &descriptorpb.MethodDescriptorProto{
			Name:       proto.String(name),
			InputType:  proto.String(in),
			OutputType: proto.String(out),
		}
	}
	const (
		empty       = ".google.protobuf.Empty"
		stringValue = ".google.protobuf.StringValue"
	)

	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String(documentProtoPath),
		Package: proto.String("gradebook.v1"),
		Dependency: []string{
			"google/protobuf/empty.proto",
			"google/protobuf/wrappers.proto",
		},
		Service: []*descriptorpb.ServiceDescriptorProto{{
			Name: proto.String("DocumentService"),
			Method: []*descriptorpb.MethodDescriptorProto{
				method("SaveData", stringValue, empty),
				method("LoadData", empty, stringValue),
				method("GetDataLocation", empty, stringValue),
			},
		}},
		Options: &descriptorpb.FileOptions{
			GoPackage: proto.String("github.com/shhac/gradebook/internal/bridge"),
		},
		Syntax: proto.String("proto3"),
	}
}
