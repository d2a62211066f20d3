package types

// NodeType distinguishes remote workers from the coordinator itself.
type NodeType string

const (
	// NodeTypeRemote is a worker reached over RPC.
	NodeTypeRemote NodeType = "remote"
	// NodeTypeLocal is the synthetic in-process coordinator entry.
	NodeTypeLocal NodeType = "local"
)

// WorkerNode describes one worker eligible for a query attempt.
type WorkerNode struct {
	ID      string   `yaml:"id"`
	Address string   `yaml:"address"`
	RPCPort int      `yaml:"rpc_port"`
	Type    NodeType `yaml:"-"`
}

// IsLocal reports whether the node is the coordinator entry.
func (n WorkerNode) IsLocal() bool {
	return n.Type == NodeTypeLocal
}

// ClusterNodes is the worker set eligible for one query attempt. The
// scheduler appends a synthetic local entry at construction so that
// segments with no remote affinity may run in-process.
type ClusterNodes struct {
	AllWorkers []WorkerNode
}

// NewClusterNodes copies workers into a fresh set.
func NewClusterNodes(workers []WorkerNode) ClusterNodes {
	all := make([]WorkerNode, len(workers))
	copy(all, workers)
	return ClusterNodes{AllWorkers: all}
}

// AddLocal appends the coordinator's own entry.
func (c *ClusterNodes) AddLocal(address string) {
	c.AllWorkers = append(c.AllWorkers, WorkerNode{
		ID:      "local",
		Address: address,
		Type:    NodeTypeLocal,
	})
}

// Remotes returns the remote workers only.
func (c *ClusterNodes) Remotes() []WorkerNode {
	remotes := make([]WorkerNode, 0, len(c.AllWorkers))
	for _, n := range c.AllWorkers {
		if !n.IsLocal() {
			remotes = append(remotes, n)
		}
	}
	return remotes
}

// Local returns the coordinator entry, if present.
func (c *ClusterNodes) Local() (WorkerNode, bool) {
	for _, n := range c.AllWorkers {
		if n.IsLocal() {
			return n, true
		}
	}
	return WorkerNode{}, false
}

// Placement is the chosen workers for a segment: one node per parallel
// index. Computed at most once per segment id per attempt and reused
// identically for every instance of that segment.
type Placement struct {
	SegmentID SegmentID
	Workers   []WorkerNode
}

// WorkerFor returns the node for a parallel index.
func (p *Placement) WorkerFor(parallelIndex int) WorkerNode {
	return p.Workers[parallelIndex%len(p.Workers)]
}

// WorkerState is the registry-visible availability of a worker.
type WorkerState string

const (
	// WorkerStateOnline means the worker may receive dispatches.
	WorkerStateOnline WorkerState = "online"
	// WorkerStateOffline means the worker is unavailable.
	WorkerStateOffline WorkerState = "offline"
)
