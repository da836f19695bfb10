// Package mutex implements the Ricart-Agrawala distributed mutual
// exclusion protocol over a static peer set, guarding access to a
// single shared printer.
package mutex

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"distprint/clock"
	"distprint/internal/logging"
	"distprint/rpc"
)

// sentinel is the requestTS value held while state == Released.
const sentinel = -1

// defaultRequestTimeout bounds a single peer's RequestAccess call. It
// must exceed any peer's own CS hold time, so it defaults generously.
const defaultRequestTimeout = 60 * time.Second

// peerConn is a peer's address plus its lazily-dialed client.
type peerConn struct {
	addr   string
	dialMu sync.Mutex
	client rpc.MutexServiceClient
}

// Node is one participant in the mutual-exclusion protocol. The zero
// value is not usable; build one with New.
type Node struct {
	ID      int64
	Address string
	Clock   *clock.Clock

	Policy         Policy
	RequestTimeout time.Duration
	Logger         *logging.Logger

	printerAddr   string
	printerDialMu sync.Mutex
	printerClient rpc.PrintingServiceClient

	mu        sync.Mutex
	cond      *sync.Cond
	state     State
	requestTS int64
	peers     map[int64]*peerConn

	// driverMu serializes overlapping local EnterCriticalSection calls;
	// it is distinct from mu, which only guards the state triple.
	driverMu sync.Mutex

	rpc.UnimplementedMutexServiceServer
}

// New builds a Node for id/addr, with the given peer addresses keyed
// by peer id (self, if present, is filtered out) and printer address.
func New(id int64, addr string, peers map[int64]string, printerAddr string, policy Policy, logger *logging.Logger) *Node {
	n := &Node{
		ID:             id,
		Address:        addr,
		Clock:          clock.New(),
		Policy:         policy,
		RequestTimeout: defaultRequestTimeout,
		Logger:         logger,
		printerAddr:    printerAddr,
		state:          Released,
		requestTS:      sentinel,
		peers:          make(map[int64]*peerConn, len(peers)),
	}
	n.cond = sync.NewCond(&n.mu)
	for pid, paddr := range peers {
		if pid == id {
			continue
		}
		if _, ok := n.peers[pid]; ok {
			continue
		}
		n.peers[pid] = &peerConn{addr: paddr}
	}
	return n
}

// State returns the node's current state (for tests/observability).
func (n *Node) State() State {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

// PeerCount returns the size of the filtered peer set.
func (n *Node) PeerCount() int {
	return len(n.peers)
}

func dial(addr string) (*grpc.ClientConn, error) {
	return grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
}

// peerClient returns pc's MutexServiceClient, dialing on first use.
func (n *Node) peerClient(pc *peerConn) (rpc.MutexServiceClient, error) {
	pc.dialMu.Lock()
	defer pc.dialMu.Unlock()
	if pc.client != nil {
		return pc.client, nil
	}
	conn, err := dial(pc.addr)
	if err != nil {
		return nil, errors.Wrapf(err, "dial peer at %s", pc.addr)
	}
	pc.client = rpc.NewMutexServiceClient(conn)
	return pc.client, nil
}

func (n *Node) printer() (rpc.PrintingServiceClient, error) {
	n.printerDialMu.Lock()
	defer n.printerDialMu.Unlock()
	if n.printerClient != nil {
		return n.printerClient, nil
	}
	conn, err := dial(n.printerAddr)
	if err != nil {
		return nil, errors.Wrapf(err, "dial printer at %s", n.printerAddr)
	}
	n.printerClient = rpc.NewPrintingServiceClient(conn)
	return n.printerClient, nil
}

// shouldDefer implements the step-3 deferral predicate. Callers must
// hold n.mu.
func (n *Node) shouldDefer(reqTS, reqClientID int64) bool {
	if n.state == Held {
		return true
	}
	if n.state == Wanted {
		if n.requestTS < reqTS {
			return true
		}
		if n.requestTS == reqTS && n.ID < reqClientID {
			return true
		}
	}
	return false
}

// RequestAccess implements rpc.MutexServiceServer.
func (n *Node) RequestAccess(ctx context.Context, req *rpc.AccessRequest) (*rpc.AccessResponse, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.Clock.Merge(req.LamportTs)

	for n.shouldDefer(req.LamportTs, req.ClientId) {
		n.Logger.Debugf("deferring request from node %d at ts %d (state=%s, requestTS=%d)", req.ClientId, req.LamportTs, n.state, n.requestTS)
		n.cond.Wait()
	}

	ts := n.Clock.Tick()
	return &rpc.AccessResponse{Granted: true, LamportTs: ts}, nil
}

// ReleaseAccess implements rpc.MutexServiceServer.
func (n *Node) ReleaseAccess(ctx context.Context, req *rpc.AccessRelease) (*rpc.Ack, error) {
	n.mu.Lock()
	n.Clock.Merge(req.LamportTs)
	n.mu.Unlock()

	n.cond.Broadcast()
	return &rpc.Ack{}, nil
}

// broadcastRequest sends AccessRequest to every peer in parallel and
// waits for all of them, under n.Policy's error handling.
func (n *Node) broadcastRequest(ctx context.Context, ts int64) error {
	type result struct {
		pid int64
		err error
	}

	results := make(chan result, len(n.peers))
	for pid, pc := range n.peers {
		go func(pid int64, pc *peerConn) {
			client, err := n.peerClient(pc)
			if err != nil {
				results <- result{pid, err}
				return
			}
			rctx, cancel := context.WithTimeout(ctx, n.RequestTimeout)
			defer cancel()
			resp, err := client.RequestAccess(rctx, &rpc.AccessRequest{ClientId: n.ID, LamportTs: ts})
			if err != nil {
				results <- result{pid, errors.Wrapf(err, "request access from peer %d", pid)}
				return
			}
			n.mu.Lock()
			n.Clock.Merge(resp.LamportTs)
			n.mu.Unlock()
			results <- result{pid, nil}
		}(pid, pc)
	}

	var failed []error
	for i := 0; i < len(n.peers); i++ {
		r := <-results
		if r.err != nil {
			failed = append(failed, r.err)
		}
	}

	if len(failed) > 0 {
		n.Logger.Warnf("node %d: %d/%d peers failed to grant", n.ID, len(failed), len(n.peers))
		if n.Policy == PolicyStrict {
			return errors.Errorf("broadcast request: %d of %d peers failed", len(failed), len(n.peers))
		}
	}
	return nil
}

// sendRelease ticks the clock and fires ReleaseAccess at every peer,
// discarding errors: the caller has already exited its CS locally.
func (n *Node) sendRelease(ctx context.Context) {
	n.mu.Lock()
	ts := n.Clock.Tick()
	n.mu.Unlock()

	var wg sync.WaitGroup
	for pid, pc := range n.peers {
		wg.Add(1)
		go func(pid int64, pc *peerConn) {
			defer wg.Done()
			client, err := n.peerClient(pc)
			if err != nil {
				n.Logger.Warnf("node %d: dial peer %d for release: %v", n.ID, pid, err)
				return
			}
			if _, err := client.ReleaseAccess(ctx, &rpc.AccessRelease{ClientId: n.ID, LamportTs: ts}); err != nil {
				n.Logger.Warnf("node %d: send release to peer %d: %v", n.ID, pid, err)
			}
		}(pid, pc)
	}
	wg.Wait()
}

// EnterCriticalSection runs one full WANTED -> HELD -> RELEASED cycle,
// sending content to the printer while holding the CS. Concurrent
// local callers are serialized on driverMu.
func (n *Node) EnterCriticalSection(ctx context.Context, content string) (*rpc.PrintReply, error) {
	n.driverMu.Lock()
	defer n.driverMu.Unlock()

	n.mu.Lock()
	ts := n.Clock.Tick()
	n.requestTS = ts
	n.state = Wanted
	n.mu.Unlock()

	n.Logger.Infof("node %d: requesting critical section at ts %d", n.ID, ts)

	if err := n.broadcastRequest(ctx, ts); err != nil {
		n.mu.Lock()
		n.state = Released
		n.requestTS = sentinel
		n.mu.Unlock()
		n.cond.Broadcast()
		return nil, errors.Wrap(err, "enter critical section")
	}

	n.mu.Lock()
	n.state = Held
	n.mu.Unlock()
	n.Logger.Infof("node %d: entered critical section at ts %d", n.ID, ts)

	printer, printErr := n.printer()
	var reply *rpc.PrintReply
	if printErr != nil {
		n.Logger.Warnf("node %d: dial printer: %v", n.ID, printErr)
		printErr = errors.Wrap(printErr, "dial printer")
	} else {
		n.mu.Lock()
		jobTS := n.Clock.Tick()
		n.mu.Unlock()
		reply, printErr = printer.SendToPrinter(ctx, &rpc.PrintJob{ClientId: n.ID, Content: content, LamportTs: jobTS})
		if printErr != nil {
			n.Logger.Warnf("node %d: print job failed: %v", n.ID, printErr)
			printErr = errors.Wrap(printErr, "send print job")
		} else {
			n.mu.Lock()
			n.Clock.Merge(reply.LamportTs)
			n.mu.Unlock()
		}
	}

	n.mu.Lock()
	n.state = Released
	n.requestTS = sentinel
	n.Clock.Tick()
	n.mu.Unlock()
	n.cond.Broadcast()
	n.Logger.Infof("node %d: released critical section", n.ID)

	// The node has already exited its CS locally and sends releases
	// regardless of whether the print succeeded (spec.md §7: the print
	// is lost, not retried; release is unconditional).
	n.sendRelease(ctx)

	return reply, printErr
}
