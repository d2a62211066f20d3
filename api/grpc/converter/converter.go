// Package converter translates between wire protobuf messages and the
// scheduler's domain types.
package converter

import (
	pb "distql/scheduler/api/grpc/proto"
	"distql/scheduler/internal/dispatch"
	"distql/scheduler/pkg/types"
)

// TaskStatusToProto converts a domain task status to its wire value.
func TaskStatusToProto(status types.TaskStatus) pb.TaskStatus {
	switch status {
	case types.TaskStatusUnknown:
		return pb.TaskStatus_TASK_STATUS_UNKNOWN
	case types.TaskStatusSuccess:
		return pb.TaskStatus_TASK_STATUS_SUCCESS
	case types.TaskStatusFail:
		return pb.TaskStatus_TASK_STATUS_FAIL
	case types.TaskStatusWait:
		return pb.TaskStatus_TASK_STATUS_WAIT
	default:
		return pb.TaskStatus_TASK_STATUS_UNSPECIFIED
	}
}

// TaskStatusFromProto converts a wire task status to its domain value.
// Unspecified wire values map to Unknown.
func TaskStatusFromProto(status pb.TaskStatus) types.TaskStatus {
	switch status {
	case pb.TaskStatus_TASK_STATUS_SUCCESS:
		return types.TaskStatusSuccess
	case pb.TaskStatus_TASK_STATUS_FAIL:
		return types.TaskStatusFail
	case pb.TaskStatus_TASK_STATUS_WAIT:
		return types.TaskStatusWait
	default:
		return types.TaskStatusUnknown
	}
}

// InstanceToProto converts one segment task instance.
func InstanceToProto(inst types.SegmentTaskInstance) *pb.TaskInstance {
	return &pb.TaskInstance{
		SegmentId:     uint64(inst.SegmentID),
		ParallelIndex: uint32(inst.ParallelIndex),
		InstanceHash:  inst.Hash(),
	}
}

// InstanceFromProto converts one wire task instance.
func InstanceFromProto(inst *pb.TaskInstance) types.SegmentTaskInstance {
	if inst == nil {
		return types.SegmentTaskInstance{}
	}
	return types.SegmentTaskInstance{
		SegmentID:     types.SegmentID(inst.SegmentId),
		ParallelIndex: int(inst.ParallelIndex),
	}
}

// InstancesToProto converts a slice of instances.
func InstancesToProto(instances []types.SegmentTaskInstance) []*pb.TaskInstance {
	out := make([]*pb.TaskInstance, len(instances))
	for i, inst := range instances {
		out[i] = InstanceToProto(inst)
	}
	return out
}

// ResourceRequestToProto converts a resource push request.
func ResourceRequestToProto(req *dispatch.ResourceRequest) *pb.SendResourcesRequest {
	return &pb.SendResourcesRequest{
		AttemptId:      req.AttemptID,
		PrimaryTxnId:   req.PrimaryTxnID,
		CreateQueries:  req.CreateQueries,
		TimeoutSeconds: req.TimeoutSeconds,
	}
}

// SubmitRequestToProto converts a segment submission request.
func SubmitRequestToProto(req *dispatch.SubmitRequest) *pb.SubmitPlanSegmentRequest {
	return &pb.SubmitPlanSegmentRequest{
		TaskId:        req.TaskID,
		AttemptId:     req.AttemptID,
		PrimaryTxnId:  req.PrimaryTxnID,
		CallbackPort:  uint32(req.CallbackPort),
		SegmentId:     uint64(req.SegmentID),
		ParallelIndex: uint32(req.ParallelIndex),
		ParallelSize:  uint32(req.ParallelSize),
		Payload:       req.Payload,
	}
}

// StatusMapFromProto converts a status snapshot response.
func StatusMapFromProto(entries []*pb.TaskStatusEntry) map[types.SegmentTaskInstance]types.TaskStatus {
	out := make(map[types.SegmentTaskInstance]types.TaskStatus, len(entries))
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		out[InstanceFromProto(entry.Instance)] = TaskStatusFromProto(entry.Status)
	}
	return out
}
