package bridge

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhump/protoreflect/grpcreflect"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Client calls the document bridge.
type Client struct {
	conn *grpc.ClientConn
}

// Dial connects to a bridge on addr. Only loopback addresses are accepted,
// so no transport security is used.
func Dial(addr string, opts ...grpc.DialOption) (*Client, error) {
	if err := CheckLoopback(addr); err != nil {
		return nil, err
	}
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("dial document bridge %s: %w", addr, err)
	}
	return NewClient(conn), nil
}

// NewClient wraps an existing connection. Close closes it.
func NewClient(conn *grpc.ClientConn) *Client {
	return &Client{conn: conn}
}

// SaveData overwrites the stored document.
func (c *Client) SaveData(ctx context.Context, data string) error {
	return c.conn.Invoke(ctx, methodSaveData, wrapperspb.String(data), new(emptypb.Empty))
}

// LoadData returns the stored document, or "{}" if nothing has been saved.
func (c *Client) LoadData(ctx context.Context) (string, error) {
	out := new(wrapperspb.StringValue)
	if err := c.conn.Invoke(ctx, methodLoadData, new(emptypb.Empty), out); err != nil {
		return "", err
	}
	return out.GetValue(), nil
}

// GetDataLocation returns the document path.
func (c *Client) GetDataLocation(ctx context.Context) (string, error) {
	out := new(wrapperspb.StringValue)
	if err := c.conn.Invoke(ctx, methodGetDataLocation, new(emptypb.Empty), out); err != nil {
		return "", err
	}
	return out.GetValue(), nil
}

// Describe asks the bridge, through server reflection, for the methods of
// the document service. Each entry is the full method name with its
// request and response types, e.g.
// "gradebook.v1.DocumentService.SaveData(google.protobuf.StringValue) google.protobuf.Empty".
func (c *Client) Describe(ctx context.Context) ([]string, error) {
	rc := grpcreflect.NewClientAuto(ctx, c.conn)
	defer rc.Reset()

	sd, err := rc.ResolveService(ServiceName)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", ServiceName, err)
	}

	methods := make([]string, 0, len(sd.GetMethods()))
	for _, m := range sd.GetMethods() {
		methods = append(methods, fmt.Sprintf("%s(%s) %s",
			m.GetFullyQualifiedName(),
			m.GetInputType().GetFullyQualifiedName(),
			m.GetOutputType().GetFullyQualifiedName()))
	}
	sort.Strings(methods)
	return methods, nil
}

// Close closes the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
