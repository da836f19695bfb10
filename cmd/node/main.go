// Command node runs one peer of the distributed printer mutual
// exclusion cluster: it serves the MutexService RPCs and, driven
// either by stdin lines or an auto job-generation loop, competes for
// the shared printer's critical section.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"math/rand"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"google.golang.org/grpc"

	"distprint/internal/logging"
	mtx "distprint/internal/mutex"
	"distprint/rpc"
)

// autoMinDelay/autoMaxDelay mirror original_source/client.py's
// auto_job_loop jitter bounds.
const (
	autoMinDelay = 3 * time.Second
	autoMaxDelay = 7 * time.Second
)

func main() {
	id := flag.Int64("id", 0, "this node's client id (required)")
	addr := flag.String("addr", "", "this node's listen address (required)")
	printerAddr := flag.String("printer", "", "printer address (required)")
	peersFlag := flag.String("peers", "", "comma-separated id@host:port peer list")
	policyFlag := flag.String("policy", "lenient", "broadcast error policy: strict|lenient")
	auto := flag.Bool("auto", false, "generate print jobs automatically instead of reading stdin")
	logLevel := flag.String("log-level", "info", "log level (debug|info|warn|error)")
	flag.Parse()

	idSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "id" {
			idSet = true
		}
	})
	if !idSet || *addr == "" || *printerAddr == "" {
		fmt.Fprintln(os.Stderr, "usage: node -id N -addr HOST:PORT -printer HOST:PORT [-peers id@host:port,...] [-policy strict|lenient] [-auto] [-log-level LEVEL]")
		os.Exit(2)
	}

	logger := logging.New(fmt.Sprintf("node[%d]", *id), *logLevel)

	policy, err := mtx.ParsePolicy(*policyFlag)
	if err != nil {
		logger.Fatalf("%v", err)
	}

	peers, err := parsePeers(*peersFlag, *id)
	if err != nil {
		logger.Fatalf("parsing -peers: %v", err)
	}

	n := mtx.New(*id, *addr, peers, *printerAddr, policy, logger)

	lis, err := net.Listen("tcp", *addr)
	if err != nil {
		logger.Fatalf("listen on %s: %v", *addr, err)
	}

	srv := grpc.NewServer()
	rpc.RegisterMutexServiceServer(srv, n)

	go func() {
		logger.Infof("node %d listening on %s with %d peers", *id, *addr, n.PeerCount())
		if err := srv.Serve(lis); err != nil {
			logger.Fatalf("serve: %v", err)
		}
	}()

	if *auto {
		runAuto(n, logger)
		return
	}
	runInteractive(n, logger)
}

// parsePeers parses a comma-separated id@host:port list, filtering out
// selfID and deduplicating ids, per spec.md §6.
func parsePeers(s string, selfID int64) (map[int64]string, error) {
	peers := make(map[int64]string)
	if s == "" {
		return peers, nil
	}
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "@", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed peer entry %q, want id@host:port", entry)
		}
		pid, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed peer id in %q: %w", entry, err)
		}
		if pid == selfID {
			continue
		}
		if _, exists := peers[pid]; exists {
			continue
		}
		peers[pid] = parts[1]
	}
	return peers, nil
}

// runInteractive reads one line of stdin per print job, matching
// original_source/client.py's non-auto path.
func runInteractive(n *mtx.Node, logger *logging.Logger) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		reply, err := n.EnterCriticalSection(context.Background(), line)
		if err != nil || reply == nil {
			logger.Warnf("critical section attempt failed: %v", err)
			continue
		}
		logger.Infof("printer replied: success=%v confirmation=%q ts=%d", reply.Success, reply.Confirmation, reply.LamportTs)
	}
}

// runAuto generates jittered, timestamped jobs forever, mirroring
// original_source/client.py's auto_job_loop.
func runAuto(n *mtx.Node, logger *logging.Logger) {
	for {
		jitter := autoMinDelay + time.Duration(rand.Int63n(int64(autoMaxDelay-autoMinDelay)))
		time.Sleep(jitter)

		content := fmt.Sprintf("auto job from node %d at %s", n.ID, time.Now().Format(time.RFC3339Nano))
		reply, err := n.EnterCriticalSection(context.Background(), content)
		if err != nil || reply == nil {
			logger.Warnf("auto job attempt failed: %v", err)
			continue
		}
		logger.Infof("printer replied: success=%v confirmation=%q ts=%d", reply.Success, reply.Confirmation, reply.LamportTs)
	}
}
