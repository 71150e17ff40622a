package ws

import (
	"bytes"
	"net"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

func TestHandleProgressWS_StreamsBroadcastFrames(t *testing.T) {
	hub := newRunningHub()

	app := fiber.New()
	app.Get("/ws/progress", NewHandler(hub, zerolog.Nop()).HandleProgressWS)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	url := "ws://" + ln.Addr().String() + "/ws/progress"

	var conn *websocket.Conn
	deadline := time.Now().Add(5 * time.Second)
	for {
		conn, _, err = websocket.DefaultDialer.Dial(url, nil)
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("dial %s: %v", url, err)
		}
		time.Sleep(20 * time.Millisecond)
	}
	defer conn.Close()

	waitFor(t, "client registration", func() bool { return hub.ClientCount() == 1 })

	want := []byte(`{"type":"progress","stage":"Fetching job postings...","percent":45}`)
	hub.Broadcast(want)

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, got, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read frame: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("frame = %s, want %s", got, want)
	}
}

func TestHandleProgressWS_UnavailableWithoutHub(t *testing.T) {
	app := fiber.New()
	app.Get("/ws/progress", NewHandler(nil, zerolog.Nop()).HandleProgressWS)

	resp, err := app.Test(httptest.NewRequest("GET", "/ws/progress", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusServiceUnavailable)
	}
}
