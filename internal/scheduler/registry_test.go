package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"distql/scheduler/pkg/types"
)

func TestRegistryRegister(t *testing.T) {
	r := NewWorkerRegistry()
	require.NoError(t, r.Register(types.WorkerNode{
		ID: "w1", Address: "10.0.0.1", RPCPort: 9100, Type: types.NodeTypeRemote,
	}))

	entry, ok := r.Get("w1")
	require.True(t, ok)
	assert.Equal(t, types.WorkerStateOnline, entry.State)
	assert.Equal(t, 1, r.Len())
}

func TestRegistryRegisterValidation(t *testing.T) {
	r := NewWorkerRegistry()

	err := r.Register(types.WorkerNode{Address: "10.0.0.1", RPCPort: 9100})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ID cannot be empty")

	err = r.Register(types.WorkerNode{ID: "w1", RPCPort: 9100})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "address cannot be empty")

	// A remote worker without an RPC port can never receive work.
	err = r.Register(types.WorkerNode{ID: "w1", Address: "10.0.0.1", Type: types.NodeTypeRemote})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rpc port")
}

func TestRegistryReregisterRefreshes(t *testing.T) {
	r := NewWorkerRegistry()
	node := types.WorkerNode{ID: "w1", Address: "10.0.0.1", RPCPort: 9100, Type: types.NodeTypeRemote}
	require.NoError(t, r.Register(node))
	require.NoError(t, r.MarkOffline("w1"))

	require.NoError(t, r.Register(node))
	entry, ok := r.Get("w1")
	require.True(t, ok)
	assert.Equal(t, types.WorkerStateOnline, entry.State)
}

func TestRegistryUnregister(t *testing.T) {
	r := NewWorkerRegistry()
	require.NoError(t, r.Register(types.WorkerNode{
		ID: "w1", Address: "10.0.0.1", RPCPort: 9100, Type: types.NodeTypeRemote,
	}))
	require.NoError(t, r.Unregister("w1"))
	assert.Error(t, r.Unregister("w1"))
	assert.Equal(t, 0, r.Len())
}

func TestRegistryOnlineNodesFiltersOffline(t *testing.T) {
	r := NewWorkerRegistry()
	for _, id := range []string{"w1", "w2", "w3"} {
		require.NoError(t, r.Register(types.WorkerNode{
			ID: id, Address: "10.0.0." + id[1:], RPCPort: 9100, Type: types.NodeTypeRemote,
		}))
	}
	require.NoError(t, r.MarkOffline("w2"))

	nodes := r.OnlineNodes()
	assert.Len(t, nodes, 2)
	for _, n := range nodes {
		assert.NotEqual(t, "w2", n.ID)
	}
	assert.Len(t, r.Snapshot(), 3)
}

func TestRegistryTouch(t *testing.T) {
	r := NewWorkerRegistry()
	require.NoError(t, r.Register(types.WorkerNode{
		ID: "w1", Address: "10.0.0.1", RPCPort: 9100, Type: types.NodeTypeRemote,
	}))
	require.NoError(t, r.MarkOffline("w1"))
	require.NoError(t, r.Touch("w1"))

	entry, ok := r.Get("w1")
	require.True(t, ok)
	assert.Equal(t, types.WorkerStateOnline, entry.State)
	assert.Error(t, r.Touch("missing"))
}
