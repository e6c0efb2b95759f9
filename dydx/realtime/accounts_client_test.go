package realtime

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/dexbot/godydx/dydx/signing"
	"github.com/dexbot/godydx/dydx/types"
)

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func testCreds() *types.APIKeyCredentials {
	return &types.APIKeyCredentials{
		Key:        "11223344-5566-7788-99aa-bbccddeeff00",
		Secret:     "c2VjcmV0",
		Passphrase: "my-passphrase",
	}
}

func TestAccountsClient_SubscribeAuth(t *testing.T) {
	received := make(chan subscribeRequest, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade 失败: %v", err)
			return
		}
		defer conn.Close()

		var sub subscribeRequest
		if err := conn.ReadJSON(&sub); err != nil {
			t.Errorf("读取订阅请求失败: %v", err)
			return
		}
		received <- sub

		conn.WriteJSON(&Message{Type: "connected", ConnectionID: "conn-1"})
		// 等客户端主动关闭
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	c := NewAccountsClient(url, testCreds(), nil)
	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("Start 失败: %v", err)
	}
	defer c.Stop()

	var sub subscribeRequest
	select {
	case sub = <-received:
	case <-time.After(3 * time.Second):
		t.Fatal("未收到订阅请求")
	}

	if sub.Type != "subscribe" || sub.Channel != accountsChannel {
		t.Errorf("订阅请求错误: %+v", sub)
	}
	if sub.AccountNumber != "0" {
		t.Errorf("accountNumber = %q, want 0", sub.AccountNumber)
	}
	if sub.APIKey != testCreds().Key || sub.Passphrase != testCreds().Passphrase {
		t.Error("订阅请求未携带凭证")
	}
	// 签名可用凭证和时间戳独立复算
	want, err := signing.BuildRequestSignature(testCreds().Secret, sub.Timestamp, "GET", wsRequestPath, "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if sub.Signature != want {
		t.Errorf("签名不一致: got %q, want %q", sub.Signature, want)
	}

	select {
	case msg := <-c.Messages():
		if msg.Type != "connected" {
			t.Errorf("消息类型 = %q, want connected", msg.Type)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("未收到服务端消息")
	}
}

func TestAccountsClient_StartTwice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	c := NewAccountsClient(url, testCreds(), nil)
	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("Start 失败: %v", err)
	}
	defer c.Stop()

	if err := c.Start(context.Background()); err == nil {
		t.Error("重复 Start 应报错")
	}
}

func TestAccountsClient_StartAfterStop(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	c := NewAccountsClient(url, testCreds(), nil)
	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("Start 失败: %v", err)
	}
	c.Stop()

	// 客户端是一次性的：Stop 后重新 Start 必须报错而不是崩溃
	if err := c.Start(context.Background()); err == nil {
		t.Error("Stop 之后 Start 应报错")
	}
	// 重复 Stop 也应安全返回
	c.Stop()
}
