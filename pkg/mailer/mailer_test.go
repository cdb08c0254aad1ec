package mailer

import (
	"net"
	"strconv"
	"testing"
	"time"

	"clinic-booking/pkg/utils"

	"go.uber.org/zap"
)

func TestSend_SilentServerTimesOut(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	// Accept connections and never send the greeting.
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			defer conn.Close()
		}
	}()

	host, portStr, err := net.SplitHostPort(ln.Addr().String())
	if err != nil {
		t.Fatalf("split addr: %v", err)
	}
	port, _ := strconv.Atoi(portStr)

	m := &smtpMailer{
		host:    host,
		port:    port,
		from:    "noreply@clinic.test",
		timeout: 200 * time.Millisecond,
		log:     zap.NewNop(),
	}

	done := make(chan error, 1)
	go func() {
		done <- m.Send("a@x.com", "subject", "body")
	}()

	// The session deadline must surface an error; the goroutine must not
	// stay blocked on a server that never greets.
	select {
	case err := <-done:
		if err == nil {
			t.Error("send against a silent server should fail")
		}
	case <-time.After(3 * time.Second):
		t.Fatal("send did not return within the session deadline")
	}
}

func TestSend_DryRunWithoutHost(t *testing.T) {
	m := NewSMTPMailer(utils.EmailConfig{}, zap.NewNop())

	if err := m.Send("a@x.com", "subject", "body"); err != nil {
		t.Errorf("dry-run send should succeed, got %v", err)
	}
}

func TestSend_UnreachableHost(t *testing.T) {
	m := &smtpMailer{
		host:    "127.0.0.1",
		port:    1, // nothing listens here
		from:    "noreply@clinic.test",
		timeout: 200 * time.Millisecond,
		log:     zap.NewNop(),
	}

	if err := m.Send("a@x.com", "subject", "body"); err == nil {
		t.Error("send to an unreachable host should fail")
	}
}
