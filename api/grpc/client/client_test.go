package client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"distql/scheduler/pkg/types"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 5*time.Second, cfg.DialTimeout)
	assert.Equal(t, 4*1024*1024, cfg.MaxRecvMsgSize)
	assert.Equal(t, 30*time.Second, cfg.KeepaliveTime)
}

func TestClientAddress(t *testing.T) {
	c := NewClient(types.WorkerNode{Address: "10.0.0.1", RPCPort: 9100}, nil)
	assert.Equal(t, "10.0.0.1", c.Address())
	assert.Equal(t, "10.0.0.1:9100", c.target)
}

func TestSendOffloadingInfoUnsupported(t *testing.T) {
	c := NewClient(types.WorkerNode{Address: "10.0.0.1", RPCPort: 9100}, nil)
	assert.ErrorIs(t, c.SendOffloadingInfo(context.Background()), types.ErrUnsupportedOperation)
}

func TestPoolCachesPerAddress(t *testing.T) {
	p := NewPool(nil)
	node := types.WorkerNode{Address: "10.0.0.1", RPCPort: 9100}

	c1, err := p.ClientFor(node)
	require.NoError(t, err)
	c2, err := p.ClientFor(node)
	require.NoError(t, err)
	assert.Same(t, c1, c2)

	other, err := p.ClientFor(types.WorkerNode{Address: "10.0.0.2", RPCPort: 9100})
	require.NoError(t, err)
	assert.NotSame(t, c1, other)
}

func TestPoolRejectsMissingRPCPort(t *testing.T) {
	p := NewPool(nil)
	_, err := p.ClientFor(types.WorkerNode{Address: "10.0.0.1"})
	require.Error(t, err)

	var cfgErr *types.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "rpc_port", cfgErr.Field)
}

func TestPoolClosed(t *testing.T) {
	p := NewPool(nil)
	require.NoError(t, p.Close())
	require.NoError(t, p.Close())

	_, err := p.ClientFor(types.WorkerNode{Address: "10.0.0.1", RPCPort: 9100})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "closed")
}
