package ws

import (
	"net/http"
	"net/http/httptest"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Maxime-Guy/twigane/internal/model"
	"github.com/Maxime-Guy/twigane/internal/service"
)

func newTestServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()
	chatSvc := service.NewChatService(nil, nil, nil, nil, 0)
	srv := httptest.NewServer(http.HandlerFunc(NewHandler(chatSvc).ChatWS))
	return srv, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestChatWS_RoundTrip(t *testing.T) {
	srv, url := newTestServer(t)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(chatFrame{Question: "Muraho!"}); err != nil {
		t.Fatalf("write frame: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var resp model.ChatResponse
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("read response: %v", err)
	}
	if resp.Response == "" {
		t.Error("empty chat response over the socket")
	}
}

// A client that pipelines frames and disappears without reading must not
// leave its reader goroutine parked on the frame channel.
func TestChatWS_NoGoroutineLeakOnAbandonedConnections(t *testing.T) {
	srv, url := newTestServer(t)
	defer srv.Close()

	before := runtime.NumGoroutine()

	for i := 0; i < 5; i++ {
		conn, _, err := websocket.DefaultDialer.Dial(url, nil)
		if err != nil {
			t.Fatalf("dial: %v", err)
		}
		for j := 0; j < 5; j++ {
			if err := conn.WriteJSON(chatFrame{Question: "Muraho!"}); err != nil {
				t.Fatalf("write frame: %v", err)
			}
		}
		conn.Close()
	}

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if runtime.NumGoroutine() <= before+1 {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Errorf("goroutines = %d, want at most %d after all connections closed", runtime.NumGoroutine(), before+1)
}
