package services

import (
	"bufio"
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// fakeSMTPServer speaks just enough SMTP for one plaintext session. It never
// advertises STARTTLS.
type fakeSMTPServer struct {
	ln net.Listener

	mu   sync.Mutex
	data string
}

func newFakeSMTPServer(t *testing.T) *fakeSMTPServer {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	s := &fakeSMTPServer{ln: ln}
	t.Cleanup(func() { ln.Close() })
	go s.serve()
	return s
}

func (s *fakeSMTPServer) addr() (host string, port int) {
	host, portStr, _ := net.SplitHostPort(s.ln.Addr().String())
	port, _ = strconv.Atoi(portStr)
	return host, port
}

func (s *fakeSMTPServer) message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}

func (s *fakeSMTPServer) serve() {
	conn, err := s.ln.Accept()
	if err != nil {
		return
	}
	defer conn.Close()

	br := bufio.NewReader(conn)
	fmt.Fprintf(conn, "220 fake ESMTP\r\n")
	for {
		line, err := br.ReadString('\n')
		if err != nil {
			return
		}
		switch {
		case strings.HasPrefix(line, "EHLO"), strings.HasPrefix(line, "HELO"):
			fmt.Fprintf(conn, "250-fake\r\n250 AUTH PLAIN\r\n")
		case strings.HasPrefix(line, "AUTH"):
			fmt.Fprintf(conn, "235 ok\r\n")
		case strings.HasPrefix(line, "DATA"):
			fmt.Fprintf(conn, "354 go ahead\r\n")
			var body strings.Builder
			for {
				l, err := br.ReadString('\n')
				if err != nil {
					return
				}
				if l == ".\r\n" {
					break
				}
				body.WriteString(l)
			}
			s.mu.Lock()
			s.data = body.String()
			s.mu.Unlock()
			fmt.Fprintf(conn, "250 accepted\r\n")
		case strings.HasPrefix(line, "QUIT"):
			fmt.Fprintf(conn, "221 bye\r\n")
			return
		default:
			fmt.Fprintf(conn, "250 ok\r\n")
		}
	}
}

func mailConfigFor(srv *fakeSMTPServer) SMTPConfig {
	host, port := srv.addr()
	return SMTPConfig{
		Host:       host,
		Port:       port,
		Username:   "mailer",
		Password:   "secret",
		From:       "no-reply@solace.app",
		FromName:   "Solace",
		AppName:    "Solace",
		AppBaseURL: "https://solace.app",
	}
}

func TestSendRequireTLSFailsWithoutSTARTTLS(t *testing.T) {
	srv := newFakeSMTPServer(t)
	cfg := mailConfigFor(srv)
	cfg.RequireTLS = true

	svc, err := NewSMTPMailService(cfg)
	if err != nil {
		t.Fatal(err)
	}

	err = svc.SendWelcomeMail("ana@example.com", "Ana")
	if err == nil || !strings.Contains(err.Error(), "STARTTLS") {
		t.Fatalf("expected STARTTLS requirement error, got %v", err)
	}
	if srv.message() != "" {
		t.Error("message was delivered over an unencrypted session")
	}
}

func TestSendPasswordResetMailPlaintext(t *testing.T) {
	srv := newFakeSMTPServer(t)

	svc, err := NewSMTPMailService(mailConfigFor(srv))
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.SendPasswordResetMail("ana@example.com", "tok/en+1"); err != nil {
		t.Fatalf("send failed: %v", err)
	}

	msg := srv.message()
	if !strings.Contains(msg, "Subject: Reset your password") {
		t.Error("subject header missing")
	}
	if !strings.Contains(msg, "To: ana@example.com") {
		t.Error("recipient header missing")
	}
	if !strings.Contains(msg, "https://solace.app/reset-password?token=tok%2Fen%2B1") {
		t.Errorf("reset link missing or token not escaped:\n%s", msg)
	}
}
