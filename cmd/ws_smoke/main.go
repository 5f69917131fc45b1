package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/websocket"
)

// End-to-end smoke: authenticate two identities over HTTP, attach both to
// the websocket event stream, trigger reward claims and check the events
// arrive. Expects a running server; no database required.
func main() {
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	// 127.0.0.1 to prefer IPv4 (avoid resolving to [::1])
	base := fmt.Sprintf("http://127.0.0.1:%s/api/v1", port)

	tokenA := authenticate(base, "smoke-a", "Smoke A")
	tokenB := authenticate(base, "smoke-b", "Smoke B")

	dialer := websocket.DefaultDialer

	connA, _, err := dialer.Dial(fmt.Sprintf("ws://127.0.0.1:%s/ws?token=%s", port, tokenA), nil)
	if err != nil {
		log.Fatalf("dial A: %v", err)
	}
	defer connA.Close()

	connB, _, err := dialer.Dial(fmt.Sprintf("ws://127.0.0.1:%s/ws?token=%s", port, tokenB), nil)
	if err != nil {
		log.Fatalf("dial B: %v", err)
	}
	defer connB.Close()

	// Trigger events. Repeat claims just answer 409, which is fine here.
	post(base+"/rewards/initial", tokenA, nil)
	post(base+"/rewards/initial", tokenB, nil)
	post(base+"/queue", tokenA, nil)
	post(base+"/queue", tokenB, nil)

	readEvents := func(conn *websocket.Conn, name string, want int) {
		deadline := time.Now().Add(10 * time.Second)
		seen := 0
		for seen < want && time.Now().Before(deadline) {
			conn.SetReadDeadline(time.Now().Add(500 * time.Millisecond))
			_, msg, err := conn.ReadMessage()
			if err != nil {
				continue
			}
			var ev map[string]any
			_ = json.Unmarshal(msg, &ev)
			log.Printf("%s got event: type=%v resource=%v", name, ev["type"], ev["resource_id"])
			seen++
		}
		if seen < want {
			log.Printf("%s: expected at least %d events, saw %d", name, want, seen)
		}
	}

	// Both clients subscribe without a filter, so each sees all events.
	readEvents(connA, "A", 2)
	readEvents(connB, "B", 2)

	log.Println("smoke test finished")
}

func authenticate(base, identityID, name string) string {
	body, _ := json.Marshal(map[string]string{"identity_id": identityID, "name": name})
	resp, err := http.Post(base+"/auth", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("auth %s: %v", identityID, err)
	}
	defer resp.Body.Close()

	var out struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil || out.Token == "" {
		log.Fatalf("auth %s: bad response (status %d)", identityID, resp.StatusCode)
	}
	return out.Token
}

func post(url, token string, payload any) {
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Printf("post %s: %v", url, err)
		return
	}
	resp.Body.Close()
}
