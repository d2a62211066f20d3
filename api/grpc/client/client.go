// Package client implements the gRPC worker client consumed by the
// dispatcher.
package client

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/status"

	"distql/scheduler/api/grpc/converter"
	pb "distql/scheduler/api/grpc/proto"
	"distql/scheduler/internal/dispatch"
	"distql/scheduler/pkg/types"
)

// Config holds the configuration for worker connections.
type Config struct {
	// DialTimeout bounds connection establishment.
	DialTimeout time.Duration

	// MaxRecvMsgSize is the maximum inbound message size.
	MaxRecvMsgSize int

	// MaxSendMsgSize is the maximum outbound message size.
	MaxSendMsgSize int

	// KeepaliveTime is the client keepalive ping interval.
	KeepaliveTime time.Duration

	// KeepaliveTimeout is how long a ping may go unanswered.
	KeepaliveTimeout time.Duration
}

// DefaultConfig returns a default client configuration.
func DefaultConfig() *Config {
	return &Config{
		DialTimeout:      5 * time.Second,
		MaxRecvMsgSize:   4 * 1024 * 1024, // 4MB
		MaxSendMsgSize:   4 * 1024 * 1024, // 4MB
		KeepaliveTime:    30 * time.Second,
		KeepaliveTimeout: 10 * time.Second,
	}
}

// Client is the gRPC client for one worker node. Connections are
// established lazily on first use and reused afterwards.
type Client struct {
	config *Config
	node   types.WorkerNode
	target string

	mu        sync.Mutex
	conn      *grpc.ClientConn
	client    pb.WorkerServiceClient
	connected atomic.Bool
}

// NewClient creates a client for one worker node.
func NewClient(node types.WorkerNode, config *Config) *Client {
	if config == nil {
		config = DefaultConfig()
	}
	return &Client{
		config: config,
		node:   node,
		target: fmt.Sprintf("%s:%d", node.Address, node.RPCPort),
	}
}

// Address returns the worker's dial address.
func (c *Client) Address() string {
	return c.node.Address
}

// ensureConnected dials the worker on first use.
func (c *Client) ensureConnected(ctx context.Context) (pb.WorkerServiceClient, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.connected.Load() {
		return c.client, nil
	}

	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                c.config.KeepaliveTime,
			Timeout:             c.config.KeepaliveTimeout,
			PermitWithoutStream: true,
		}),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(c.config.MaxRecvMsgSize),
			grpc.MaxCallSendMsgSize(c.config.MaxSendMsgSize),
		),
	}

	dialCtx, cancel := context.WithTimeout(ctx, c.config.DialTimeout)
	defer cancel()

	conn, err := grpc.DialContext(dialCtx, c.target, opts...)
	if err != nil {
		return nil, types.NewTransportError("Dial", c.node.Address, err)
	}

	c.conn = conn
	c.client = pb.NewWorkerServiceClient(conn)
	c.connected.Store(true)
	return c.client, nil
}

// Close tears down the connection.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.connected.Load() {
		return nil
	}
	c.connected.Store(false)
	return c.conn.Close()
}

// checkAck maps worker responses onto the error taxonomy: transport
// errors wrap the RPC failure, non-ok responses become application
// errors.
func (c *Client) checkAck(op string, ack *pb.Ack, err error) error {
	if err != nil {
		if st, ok := status.FromError(err); ok {
			return types.NewTransportError(op, c.node.Address,
				fmt.Errorf("%s: %s", st.Code(), st.Message()))
		}
		return types.NewTransportError(op, c.node.Address, err)
	}
	if ack == nil {
		return types.NewTransportError(op, c.node.Address, fmt.Errorf("empty response"))
	}
	if !ack.Ok {
		return types.NewApplicationError(op, ack.Code, ack.Message)
	}
	return nil
}

// SendResources pushes resources synchronously.
func (c *Client) SendResources(ctx context.Context, req *dispatch.ResourceRequest) error {
	client, err := c.ensureConnected(ctx)
	if err != nil {
		return err
	}
	ack, err := client.SendResources(ctx, converter.ResourceRequestToProto(req))
	return c.checkAck("SendResources", ack, err)
}

// SendResourcesAsync pushes resources on a transport goroutine.
func (c *Client) SendResourcesAsync(req *dispatch.ResourceRequest, timeout time.Duration, callback func(error)) *dispatch.AsyncCall {
	call := dispatch.NewAsyncCall("SendResources", callback)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		call.Complete(c.SendResources(ctx, req))
	}()
	return call
}

// SubmitPlanSegment submits one segment instance asynchronously.
func (c *Client) SubmitPlanSegment(req *dispatch.SubmitRequest, timeout time.Duration, callback func(error)) *dispatch.AsyncCall {
	call := dispatch.NewAsyncCall("SubmitPlanSegment", callback)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		client, err := c.ensureConnected(ctx)
		if err != nil {
			call.Complete(err)
			return
		}
		ack, err := client.SubmitPlanSegment(ctx, converter.SubmitRequestToProto(req))
		call.Complete(c.checkAck("SubmitPlanSegment", ack, err))
	}()
	return call
}

// GetTaskStatus returns a status snapshot without side effects.
func (c *Client) GetTaskStatus(ctx context.Context, attemptID string, instances []types.SegmentTaskInstance) (map[types.SegmentTaskInstance]types.TaskStatus, error) {
	client, err := c.ensureConnected(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := client.GetTaskStatus(ctx, &pb.GetTaskStatusRequest{
		AttemptId: attemptID,
		Instances: converter.InstancesToProto(instances),
	})
	var ack *pb.Ack
	if resp != nil {
		ack = resp.Ack
	}
	if err := c.checkAck("GetTaskStatus", ack, err); err != nil {
		return nil, err
	}
	return converter.StatusMapFromProto(resp.Statuses), nil
}

// CancelTasks cancels the given instances.
func (c *Client) CancelTasks(ctx context.Context, attemptID string, instances []types.SegmentTaskInstance) error {
	client, err := c.ensureConnected(ctx)
	if err != nil {
		return err
	}
	ack, err := client.CancelTasks(ctx, &pb.CancelTasksRequest{
		AttemptId: attemptID,
		Instances: converter.InstancesToProto(instances),
	})
	return c.checkAck("CancelTasks", ack, err)
}

// RemoveAttemptResource removes attempt-scoped state asynchronously.
func (c *Client) RemoveAttemptResource(attemptID string, timeout time.Duration, callback func(error)) *dispatch.AsyncCall {
	call := dispatch.NewAsyncCall("RemoveAttemptResource", callback)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		client, err := c.ensureConnected(ctx)
		if err != nil {
			call.Complete(err)
			return
		}
		ack, err := client.RemoveAttemptResource(ctx, &pb.RemoveAttemptResourceRequest{
			AttemptId: attemptID,
		})
		call.Complete(c.checkAck("RemoveAttemptResource", ack, err))
	}()
	return call
}

// SendOffloadingInfo has no defined semantics on this contract.
func (c *Client) SendOffloadingInfo(ctx context.Context) error {
	return types.ErrUnsupportedOperation
}

// Pool caches one client per worker address.
type Pool struct {
	config *Config

	mu      sync.Mutex
	clients map[string]*Client
	closed  bool
}

// NewPool creates a connection pool with the given client config.
func NewPool(config *Config) *Pool {
	if config == nil {
		config = DefaultConfig()
	}
	return &Pool{
		config:  config,
		clients: make(map[string]*Client),
	}
}

// ClientFor returns the cached client for a node, creating it on first
// use. A remote node without an RPC port is a configuration error.
func (p *Pool) ClientFor(node types.WorkerNode) (dispatch.WorkerClient, error) {
	if node.RPCPort == 0 {
		return nil, types.NewConfigurationError("rpc_port",
			fmt.Sprintf("worker %s has no rpc port", node.Address))
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil, fmt.Errorf("client pool closed")
	}

	key := fmt.Sprintf("%s:%d", node.Address, node.RPCPort)
	if c, ok := p.clients[key]; ok {
		return c, nil
	}
	c := NewClient(node, p.config)
	p.clients[key] = c
	return c, nil
}

// Close releases every pooled connection.
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true

	var firstErr error
	for _, c := range p.clients {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
