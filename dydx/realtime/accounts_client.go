// Package realtime 提供私有账户频道的 WebSocket 客户端
// 订阅认证复用 REST 层的 HMAC 签名：消息为 timestamp + GET + /ws/accounts
package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/dexbot/godydx/dydx/signing"
	"github.com/dexbot/godydx/dydx/types"
	"github.com/dexbot/godydx/pkg/logger"
)

const (
	// accountsChannel 私有账户频道
	accountsChannel = "v3_accounts"
	// wsRequestPath 订阅签名使用的请求路径
	wsRequestPath = "/ws/accounts"
)

// Message 账户频道推送的消息
type Message struct {
	Type         string          `json:"type"`
	Channel      string          `json:"channel,omitempty"`
	ConnectionID string          `json:"connection_id,omitempty"`
	ID           string          `json:"id,omitempty"`
	Contents     json.RawMessage `json:"contents,omitempty"`
	Message      string          `json:"message,omitempty"`
}

// subscribeRequest 订阅请求
type subscribeRequest struct {
	Type          string `json:"type"`
	Channel       string `json:"channel"`
	AccountNumber string `json:"accountNumber"`
	APIKey        string `json:"apiKey"`
	Signature     string `json:"signature"`
	Timestamp     string `json:"timestamp"`
	Passphrase    string `json:"passphrase"`
}

// Config 客户端配置
type Config struct {
	PingInterval      time.Duration
	MessageBufferSize int
}

// DefaultConfig 默认配置
func DefaultConfig() *Config {
	return &Config{
		PingInterval:      30 * time.Second,
		MessageBufferSize: 256,
	}
}

// AccountsClient 私有账户频道客户端
type AccountsClient struct {
	url    string
	creds  *types.APIKeyCredentials
	config *Config

	conn   *websocket.Conn
	connMu sync.Mutex

	running   bool
	stopped   bool
	runningMu sync.RWMutex

	msgChan chan *Message
	errChan chan error
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewAccountsClient 创建私有账户频道客户端
// url 形如 wss://api.dydx.exchange/v3/ws
func NewAccountsClient(url string, creds *types.APIKeyCredentials, config *Config) *AccountsClient {
	if config == nil {
		config = DefaultConfig()
	}
	return &AccountsClient{
		url:     url,
		creds:   creds,
		config:  config,
		msgChan: make(chan *Message, config.MessageBufferSize),
		errChan: make(chan error, 8),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Start 建立连接并发送带认证的订阅请求
// 客户端是一次性的：Stop 之后不能再次 Start，需要新连接就创建新客户端
func (c *AccountsClient) Start(ctx context.Context) error {
	c.runningMu.Lock()
	if c.stopped {
		c.runningMu.Unlock()
		return fmt.Errorf("账户频道客户端已关闭，不能重新启动")
	}
	if c.running {
		c.runningMu.Unlock()
		return fmt.Errorf("账户频道客户端已在运行")
	}
	c.running = true
	c.runningMu.Unlock()

	isoTimestamp := time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
	signature, err := signing.BuildRequestSignature(c.creds.Secret, isoTimestamp, "GET", wsRequestPath, "")
	if err != nil {
		c.setStopped()
		return err
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.url, nil)
	if err != nil {
		c.setStopped()
		return fmt.Errorf("连接 WebSocket 失败: %w", err)
	}
	c.connMu.Lock()
	c.conn = conn
	c.connMu.Unlock()

	sub := &subscribeRequest{
		Type:          "subscribe",
		Channel:       accountsChannel,
		AccountNumber: "0",
		APIKey:        c.creds.Key,
		Signature:     signature,
		Timestamp:     isoTimestamp,
		Passphrase:    c.creds.Passphrase,
	}
	if err := conn.WriteJSON(sub); err != nil {
		conn.Close()
		c.setStopped()
		return fmt.Errorf("发送订阅请求失败: %w", err)
	}

	go c.readLoop()
	go c.pingLoop()

	logger.Infof("账户频道已连接: %s", c.url)
	return nil
}

// Stop 关闭连接
func (c *AccountsClient) Stop() {
	c.runningMu.Lock()
	if !c.running {
		c.runningMu.Unlock()
		return
	}
	c.running = false
	c.stopped = true
	c.runningMu.Unlock()

	close(c.stopCh)

	c.connMu.Lock()
	if c.conn != nil {
		c.conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		c.conn.Close()
		c.conn = nil
	}
	c.connMu.Unlock()

	select {
	case <-c.doneCh:
	case <-time.After(5 * time.Second):
		logger.Warnf("账户频道关闭超时")
	}
}

// Messages 返回消息通道
func (c *AccountsClient) Messages() <-chan *Message {
	return c.msgChan
}

// Errors 返回错误通道
func (c *AccountsClient) Errors() <-chan error {
	return c.errChan
}

// readLoop 读取并分发消息
func (c *AccountsClient) readLoop() {
	defer close(c.doneCh)
	for {
		c.connMu.Lock()
		conn := c.conn
		c.connMu.Unlock()
		if conn == nil {
			return
		}

		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			select {
			case <-c.stopCh:
			case c.errChan <- err:
			default:
			}
			return
		}

		select {
		case c.msgChan <- &msg:
		default:
			// 缓冲满时丢弃最旧以外的消息，避免阻塞读取
			logger.Warnf("账户频道消息缓冲已满，消息被丢弃")
		}
	}
}

// pingLoop 定期发送 ping 保活
func (c *AccountsClient) pingLoop() {
	ticker := time.NewTicker(c.config.PingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.connMu.Lock()
			conn := c.conn
			c.connMu.Unlock()
			if conn == nil {
				return
			}
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *AccountsClient) setStopped() {
	c.runningMu.Lock()
	c.running = false
	c.runningMu.Unlock()
}
