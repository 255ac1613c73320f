package tcp

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/dayanaadylkhanova/pow-wisdom/internal/adapter/quote"
	"github.com/dayanaadylkhanova/pow-wisdom/internal/entity"
	"github.com/dayanaadylkhanova/pow-wisdom/internal/protocol"
	"github.com/dayanaadylkhanova/pow-wisdom/internal/service"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fixedSource uint64

func (f fixedSource) Uint64() uint64 { return uint64(f) }

func loggerSilent() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func mustPipe(t *testing.T) (net.Conn, net.Conn) {
	t.Helper()
	c1, c2 := net.Pipe()
	// дедлайны, чтобы не повиснуть при падении теста
	_ = c1.SetDeadline(time.Now().Add(2 * time.Second))
	_ = c2.SetDeadline(time.Now().Add(2 * time.Second))
	return c1, c2
}

// serve runs srv.handle on conn and reports when it has returned.
func serve(srv *Server, conn net.Conn) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		srv.handle(conn)
	}()
	return done
}

func mustSend(t *testing.T, fc *FrameConn, msg protocol.Message) {
	t.Helper()
	data, err := protocol.Encode(msg)
	if err != nil {
		t.Fatalf("encode %s: %v", msg.Kind(), err)
	}
	if err := fc.Send(data); err != nil {
		t.Fatalf("send %s: %v", msg.Kind(), err)
	}
}

func mustReceive(t *testing.T, fc *FrameConn) protocol.Message {
	t.Helper()
	data, err := fc.Receive()
	if err != nil {
		t.Fatalf("receive: %v", err)
	}
	msg, err := protocol.Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return msg
}

func newResponder(src service.Source, quotes protocol.Quote) *protocol.Responder {
	return protocol.NewResponder(loggerSilent(), service.NewPuzzle(src), quotes, protocol.DefaultDifficulty)
}

func TestHandle_PassesFramedTransport(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	hs := NewMockHandshake(ctrl)

	// echo one frame back
	hs.EXPECT().Serve(gomock.Any()).DoAndReturn(func(tr protocol.Transport) error {
		p, err := tr.Receive()
		if err != nil {
			return err
		}
		return tr.Send(p)
	})

	srv := NewServer(loggerSilent(), "ignored:0", 0, 200*time.Millisecond, hs)

	cli, srvSide := mustPipe(t)
	defer cli.Close()
	done := serve(srv, srvSide)

	fc := NewFrameConn(cli)
	if err := fc.Send([]byte("ping")); err != nil {
		t.Fatalf("send: %v", err)
	}
	got, err := fc.Receive()
	if err != nil {
		t.Fatalf("receive: %v", err)
	}
	if string(got) != "ping" {
		t.Fatalf("echo = %q; want %q", got, "ping")
	}
	<-done
}

func TestHandle_HandshakeErrorClosesConnection(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	hs := NewMockHandshake(ctrl)
	hs.EXPECT().Serve(gomock.Any()).Return(protocol.ErrProtocolViolation)

	srv := NewServer(loggerSilent(), "ignored:0", 0, 200*time.Millisecond, hs)

	cli, srvSide := mustPipe(t)
	defer cli.Close()
	done := serve(srv, srvSide)

	if _, err := NewFrameConn(cli).Receive(); !errors.Is(err, io.EOF) {
		t.Fatalf("receive after failed handshake: err = %v; want io.EOF", err)
	}
	<-done
}

func TestHandle_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockQuote := protocol.NewMockQuote(ctrl)
	mockQuote.EXPECT().Random().Return("hello, world")

	srv := NewServer(loggerSilent(), "ignored:0", 0, 200*time.Millisecond, newResponder(fixedSource(42), mockQuote))

	cli, srvSide := mustPipe(t)
	defer cli.Close()
	done := serve(srv, srvSide)

	fc := NewFrameConn(cli)

	// 1) hello -> challenge
	mustSend(t, fc, protocol.NewMsgHello())
	chMsg, ok := mustReceive(t, fc).(*protocol.MsgChallenge)
	if !ok {
		t.Fatalf("expected challenge")
	}
	want := entity.Challenge{Value: 42, Difficulty: 1}
	if chMsg.Challenge != want {
		t.Fatalf("challenge = %+v; want %+v", chMsg.Challenge, want)
	}

	// 2) решаем и отправляем
	sol, err := service.NewPuzzle(nil).Solve(chMsg.Challenge)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	mustSend(t, fc, protocol.NewMsgSolution(sol))

	// 3) читаем мудрость
	w, ok := mustReceive(t, fc).(*protocol.MsgWisdom)
	if !ok {
		t.Fatalf("expected wisdom")
	}
	if w.Text != "hello, world" {
		t.Fatalf("wisdom = %q; want %q", w.Text, "hello, world")
	}
	<-done
}

func TestHandle_ForgedSolution_NoWisdom(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockQuote := protocol.NewMockQuote(ctrl)
	// Quote не должен вызываться

	srv := NewServer(loggerSilent(), "ignored:0", 0, 200*time.Millisecond, newResponder(fixedSource(42), mockQuote))

	cli, srvSide := mustPipe(t)
	defer cli.Close()
	done := serve(srv, srvSide)

	fc := NewFrameConn(cli)
	mustSend(t, fc, protocol.NewMsgHello())
	_ = mustReceive(t, fc)
	mustSend(t, fc, protocol.NewMsgSolution(entity.Solution{ChallengeValue: 43, Nonce: 0}))

	if _, err := fc.Receive(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected close without wisdom, got err = %v", err)
	}
	<-done
}

func TestHandle_UnknownDiscriminant(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	srv := NewServer(loggerSilent(), "ignored:0", 0, 200*time.Millisecond, newResponder(nil, protocol.NewMockQuote(ctrl)))

	cli, srvSide := mustPipe(t)
	defer cli.Close()
	done := serve(srv, srvSide)

	fc := NewFrameConn(cli)
	if err := fc.Send([]byte{0x81, 0x09}); err != nil {
		t.Fatalf("send: %v", err)
	}
	if _, err := fc.Receive(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected connection dropped, got err = %v", err)
	}
	<-done
}

func TestHandle_TimeoutEndsSilentPeer(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	srv := NewServer(loggerSilent(), "ignored:0", 100*time.Millisecond, 200*time.Millisecond, newResponder(nil, protocol.NewMockQuote(ctrl)))

	cli, srvSide := mustPipe(t)
	defer cli.Close()
	done := serve(srv, srvSide)

	start := time.Now()
	if _, err := NewFrameConn(cli).Receive(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected close after timeout, got err = %v", err)
	}
	if time.Since(start) > time.Second {
		t.Fatalf("connection outlived its deadline")
	}
	<-done
}

func TestHandle_ParallelMany(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockQuote := protocol.NewMockQuote(ctrl)

	const N = 10

	// ожидаем по N обращений
	mockQuote.EXPECT().Random().Times(N).Return("ok")

	srv := NewServer(loggerSilent(), "ignored:0", 0, 200*time.Millisecond, newResponder(nil, mockQuote))

	var wg sync.WaitGroup
	wg.Add(N)

	for i := 0; i < N; i++ {
		cli, srvSide := mustPipe(t)

		go func(c1, c2 net.Conn) {
			defer wg.Done()
			defer c1.Close()

			// серверная сторона
			done := serve(srv, c2)
			defer func() { <-done }()

			// клиентская сторона
			in := protocol.NewInitiator(loggerSilent(), service.NewPuzzle(nil))
			wisdom, err := in.Run(NewFrameConn(c1))
			if err != nil {
				t.Errorf("handshake: %v", err)
				return
			}
			if wisdom != "ok" {
				t.Errorf("wisdom = %q; want %q", wisdom, "ok")
			}
		}(cli, srvSide)
	}

	wg.Wait()
}

func TestRun_GracefulShutdown(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	hs := NewMockHandshake(ctrl)
	started := make(chan struct{})
	hs.EXPECT().Serve(gomock.Any()).DoAndReturn(func(tr protocol.Transport) error {
		close(started)
		_, err := tr.Receive()
		return err
	})

	addr := freeTCPAddr(t)
	srv := NewServer(loggerSilent(), addr, 0, 200*time.Millisecond, hs)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Run(ctx) }()

	conn := dialEventually(t, addr)
	defer conn.Close()

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("connection was not handed to the handshake")
	}

	// триггернем shutdown при открытом соединении
	cancel()

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("Run returned error on shutdown: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down in time")
	}
}

func TestClient_FetchEndToEnd(t *testing.T) {
	t.Parallel()

	book := quote.NewStaticWith([]string{"You only get one chance to make a first impression"}, nil)
	addr := freeTCPAddr(t)
	srv := NewServer(loggerSilent(), addr, time.Second, 200*time.Millisecond, newResponder(nil, book))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Run(ctx) }()
	defer func() {
		cancel()
		if err := <-errCh; err != nil {
			t.Errorf("server: %v", err)
		}
	}()
	dialEventually(t, addr).Close()

	cl := NewClient(loggerSilent(), addr, time.Second, time.Second,
		protocol.NewInitiator(loggerSilent(), service.NewPuzzle(nil)))
	wisdom, err := cl.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if wisdom != "You only get one chance to make a first impression" {
		t.Fatalf("wisdom = %q", wisdom)
	}
}

func TestClient_DialError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	cl := NewClient(loggerSilent(), freeTCPAddr(t), 200*time.Millisecond, 0, NewMockInitiator(ctrl))

	if _, err := cl.Fetch(context.Background()); err == nil {
		t.Fatal("expected dial error")
	}
}

func TestClient_CancelInterruptsHandshake(t *testing.T) {
	t.Parallel()

	// сервер принимает соединение и молчит
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()
	accepted := make(chan net.Conn, 1)
	go func() {
		c, err := ln.Accept()
		if err == nil {
			accepted <- c
		}
		close(accepted)
	}()

	cl := NewClient(loggerSilent(), ln.Addr().String(), time.Second, 0,
		protocol.NewInitiator(loggerSilent(), service.NewPuzzle(nil)))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err = cl.Fetch(ctx)
	if !errors.Is(err, protocol.ErrTransport) {
		t.Fatalf("Fetch error = %v; want transport error", err)
	}
	if time.Since(start) > time.Second {
		t.Fatal("cancel did not interrupt the handshake")
	}
	for c := range accepted {
		_ = c.Close()
	}
}

func dialEventually(t *testing.T, addr string) net.Conn {
	t.Helper()
	// ждём, пока порт начнёт слушаться
	deadline := time.Now().Add(2 * time.Second)
	var conn net.Conn
	var err error
	for time.Now().Before(deadline) {
		conn, err = net.DialTimeout("tcp", addr, 100*time.Millisecond)
		if err == nil {
			return conn
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("server did not start listening on %s: %v", addr, err)
	return nil
}

func freeTCPAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen temp: %v", err)
	}
	addr := ln.Addr().String()
	_ = ln.Close()
	return addr
}
