package printer

import (
	"context"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"distprint/internal/logging"
	"distprint/rpc"
)

func startTestPrinter(t *testing.T, delay time.Duration) rpc.PrintingServiceClient {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	svc := New(delay, logging.New("test-printer", "error"))
	srv := grpc.NewServer()
	rpc.RegisterPrintingServiceServer(srv, svc)
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return rpc.NewPrintingServiceClient(conn)
}

func TestSendToPrinterEchoesTimestampAndSucceeds(t *testing.T) {
	client := startTestPrinter(t, 5*time.Millisecond)

	reply, err := client.SendToPrinter(context.Background(), &rpc.PrintJob{
		ClientId:  7,
		Content:   "hello",
		LamportTs: 42,
	})
	if err != nil {
		t.Fatalf("SendToPrinter: %v", err)
	}
	if !reply.Success {
		t.Fatal("reply.Success = false, want true")
	}
	if reply.Confirmation != "Printed" {
		t.Fatalf("reply.Confirmation = %q, want %q", reply.Confirmation, "Printed")
	}
	if reply.LamportTs != 42 {
		t.Fatalf("reply.LamportTs = %d, want 42 (echoed unchanged)", reply.LamportTs)
	}
}

func TestSendToPrinterKeepsNoClockAcrossCalls(t *testing.T) {
	client := startTestPrinter(t, time.Millisecond)

	first, err := client.SendToPrinter(context.Background(), &rpc.PrintJob{ClientId: 1, Content: "a", LamportTs: 100})
	if err != nil {
		t.Fatalf("SendToPrinter: %v", err)
	}
	second, err := client.SendToPrinter(context.Background(), &rpc.PrintJob{ClientId: 1, Content: "b", LamportTs: 5})
	if err != nil {
		t.Fatalf("SendToPrinter: %v", err)
	}

	// A stateful printer would bump the second call's timestamp past the
	// first's; this one must echo exactly what it was given.
	if first.LamportTs != 100 {
		t.Fatalf("first.LamportTs = %d, want 100", first.LamportTs)
	}
	if second.LamportTs != 5 {
		t.Fatalf("second.LamportTs = %d, want 5 (no clock carried between calls)", second.LamportTs)
	}
}

func TestSendToPrinterRespectsContextCancellation(t *testing.T) {
	client := startTestPrinter(t, 500*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := client.SendToPrinter(ctx, &rpc.PrintJob{ClientId: 1, Content: "slow", LamportTs: 1}); err == nil {
		t.Fatal("SendToPrinter() error = nil, want a deadline-exceeded error")
	}
}
