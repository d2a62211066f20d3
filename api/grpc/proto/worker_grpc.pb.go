// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: worker.proto

package proto

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	WorkerService_SendResources_FullMethodName         = "/distql.worker.WorkerService/SendResources"
	WorkerService_SubmitPlanSegment_FullMethodName     = "/distql.worker.WorkerService/SubmitPlanSegment"
	WorkerService_GetTaskStatus_FullMethodName         = "/distql.worker.WorkerService/GetTaskStatus"
	WorkerService_CancelTasks_FullMethodName           = "/distql.worker.WorkerService/CancelTasks"
	WorkerService_RemoveAttemptResource_FullMethodName = "/distql.worker.WorkerService/RemoveAttemptResource"
	WorkerService_SendOffloadingInfo_FullMethodName    = "/distql.worker.WorkerService/SendOffloadingInfo"
)

// WorkerServiceClient is the client API for WorkerService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// WorkerService is the coordinator-to-worker execution contract.
type WorkerServiceClient interface {
	// SendResources ships table definitions and attempt-scoped state a
	// worker needs before it can execute any segment of the attempt.
	SendResources(ctx context.Context, in *SendResourcesRequest, opts ...grpc.CallOption) (*Ack, error)
	// SubmitPlanSegment submits one parallel instance of a plan segment.
	SubmitPlanSegment(ctx context.Context, in *SubmitPlanSegmentRequest, opts ...grpc.CallOption) (*Ack, error)
	// GetTaskStatus returns a point-in-time status snapshot.
	GetTaskStatus(ctx context.Context, in *GetTaskStatusRequest, opts ...grpc.CallOption) (*GetTaskStatusResponse, error)
	// CancelTasks cancels instances of an attempt. Idempotent.
	CancelTasks(ctx context.Context, in *CancelTasksRequest, opts ...grpc.CallOption) (*Ack, error)
	// RemoveAttemptResource drops attempt-scoped state from the worker.
	RemoveAttemptResource(ctx context.Context, in *RemoveAttemptResourceRequest, opts ...grpc.CallOption) (*Ack, error)
	// SendOffloadingInfo is part of the wire contract but has no
	// defined semantics yet.
	SendOffloadingInfo(ctx context.Context, in *SendOffloadingInfoRequest, opts ...grpc.CallOption) (*Ack, error)
}

type workerServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewWorkerServiceClient(cc grpc.ClientConnInterface) WorkerServiceClient {
	return &workerServiceClient{cc}
}

func (c *workerServiceClient) SendResources(ctx context.Context, in *SendResourcesRequest, opts ...grpc.CallOption) (*Ack, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Ack)
	err := c.cc.Invoke(ctx, WorkerService_SendResources_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *workerServiceClient) SubmitPlanSegment(ctx context.Context, in *SubmitPlanSegmentRequest, opts ...grpc.CallOption) (*Ack, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Ack)
	err := c.cc.Invoke(ctx, WorkerService_SubmitPlanSegment_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *workerServiceClient) GetTaskStatus(ctx context.Context, in *GetTaskStatusRequest, opts ...grpc.CallOption) (*GetTaskStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetTaskStatusResponse)
	err := c.cc.Invoke(ctx, WorkerService_GetTaskStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *workerServiceClient) CancelTasks(ctx context.Context, in *CancelTasksRequest, opts ...grpc.CallOption) (*Ack, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Ack)
	err := c.cc.Invoke(ctx, WorkerService_CancelTasks_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *workerServiceClient) RemoveAttemptResource(ctx context.Context, in *RemoveAttemptResourceRequest, opts ...grpc.CallOption) (*Ack, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Ack)
	err := c.cc.Invoke(ctx, WorkerService_RemoveAttemptResource_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *workerServiceClient) SendOffloadingInfo(ctx context.Context, in *SendOffloadingInfoRequest, opts ...grpc.CallOption) (*Ack, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Ack)
	err := c.cc.Invoke(ctx, WorkerService_SendOffloadingInfo_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// WorkerServiceServer is the server API for WorkerService service.
// All implementations must embed UnimplementedWorkerServiceServer
// for forward compatibility.
//
// WorkerService is the coordinator-to-worker execution contract.
type WorkerServiceServer interface {
	// SendResources ships table definitions and attempt-scoped state a
	// worker needs before it can execute any segment of the attempt.
	SendResources(context.Context, *SendResourcesRequest) (*Ack, error)
	// SubmitPlanSegment submits one parallel instance of a plan segment.
	SubmitPlanSegment(context.Context, *SubmitPlanSegmentRequest) (*Ack, error)
	// GetTaskStatus returns a point-in-time status snapshot.
	GetTaskStatus(context.Context, *GetTaskStatusRequest) (*GetTaskStatusResponse, error)
	// CancelTasks cancels instances of an attempt. Idempotent.
	CancelTasks(context.Context, *CancelTasksRequest) (*Ack, error)
	// RemoveAttemptResource drops attempt-scoped state from the worker.
	RemoveAttemptResource(context.Context, *RemoveAttemptResourceRequest) (*Ack, error)
	// SendOffloadingInfo is part of the wire contract but has no
	// defined semantics yet.
	SendOffloadingInfo(context.Context, *SendOffloadingInfoRequest) (*Ack, error)
	mustEmbedUnimplementedWorkerServiceServer()
}

// UnimplementedWorkerServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedWorkerServiceServer struct{}

func (UnimplementedWorkerServiceServer) SendResources(context.Context, *SendResourcesRequest) (*Ack, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SendResources not implemented")
}
func (UnimplementedWorkerServiceServer) SubmitPlanSegment(context.Context, *SubmitPlanSegmentRequest) (*Ack, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitPlanSegment not implemented")
}
func (UnimplementedWorkerServiceServer) GetTaskStatus(context.Context, *GetTaskStatusRequest) (*GetTaskStatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetTaskStatus not implemented")
}
func (UnimplementedWorkerServiceServer) CancelTasks(context.Context, *CancelTasksRequest) (*Ack, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CancelTasks not implemented")
}
func (UnimplementedWorkerServiceServer) RemoveAttemptResource(context.Context, *RemoveAttemptResourceRequest) (*Ack, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RemoveAttemptResource not implemented")
}
func (UnimplementedWorkerServiceServer) SendOffloadingInfo(context.Context, *SendOffloadingInfoRequest) (*Ack, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SendOffloadingInfo not implemented")
}
func (UnimplementedWorkerServiceServer) mustEmbedUnimplementedWorkerServiceServer() {}
func (UnimplementedWorkerServiceServer) testEmbeddedByValue()                       {}

// UnsafeWorkerServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to WorkerServiceServer will
// result in compilation errors.
type UnsafeWorkerServiceServer interface {
	mustEmbedUnimplementedWorkerServiceServer()
}

func RegisterWorkerServiceServer(s grpc.ServiceRegistrar, srv WorkerServiceServer) {
	// If the following call pancis, it indicates UnimplementedWorkerServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&WorkerService_ServiceDesc, srv)
}

func _WorkerService_SendResources_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SendResourcesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WorkerServiceServer).SendResources(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WorkerService_SendResources_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WorkerServiceServer).SendResources(ctx, req.(*SendResourcesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WorkerService_SubmitPlanSegment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitPlanSegmentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WorkerServiceServer).SubmitPlanSegment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WorkerService_SubmitPlanSegment_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WorkerServiceServer).SubmitPlanSegment(ctx, req.(*SubmitPlanSegmentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WorkerService_GetTaskStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetTaskStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WorkerServiceServer).GetTaskStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WorkerService_GetTaskStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WorkerServiceServer).GetTaskStatus(ctx, req.(*GetTaskStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WorkerService_CancelTasks_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CancelTasksRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WorkerServiceServer).CancelTasks(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WorkerService_CancelTasks_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WorkerServiceServer).CancelTasks(ctx, req.(*CancelTasksRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WorkerService_RemoveAttemptResource_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RemoveAttemptResourceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WorkerServiceServer).RemoveAttemptResource(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WorkerService_RemoveAttemptResource_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WorkerServiceServer).RemoveAttemptResource(ctx, req.(*RemoveAttemptResourceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WorkerService_SendOffloadingInfo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SendOffloadingInfoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WorkerServiceServer).SendOffloadingInfo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WorkerService_SendOffloadingInfo_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WorkerServiceServer).SendOffloadingInfo(ctx, req.(*SendOffloadingInfoRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// WorkerService_ServiceDesc is the grpc.ServiceDesc for WorkerService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var WorkerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "distql.worker.WorkerService",
	HandlerType: (*WorkerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SendResources",
			Handler:    _WorkerService_SendResources_Handler,
		},
		{
			MethodName: "SubmitPlanSegment",
			Handler:    _WorkerService_SubmitPlanSegment_Handler,
		},
		{
			MethodName: "GetTaskStatus",
			Handler:    _WorkerService_GetTaskStatus_Handler,
		},
		{
			MethodName: "CancelTasks",
			Handler:    _WorkerService_CancelTasks_Handler,
		},
		{
			MethodName: "RemoveAttemptResource",
			Handler:    _WorkerService_RemoveAttemptResource_Handler,
		},
		{
			MethodName: "SendOffloadingInfo",
			Handler:    _WorkerService_SendOffloadingInfo_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "worker.proto",
}
