package client

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/dexbot/godydx/dydx/signing"
	"github.com/dexbot/godydx/dydx/starkex"
	"github.com/dexbot/godydx/dydx/types"
	"github.com/dexbot/godydx/pkg/ratelimit"
)

// Client dYdX v3 私有 API 客户端
// 凭证在进程生命周期内不可变；两个签名器都是纯函数，
// 并发调用无需额外协调，会话的并发安全由底层连接池保证
type Client struct {
	host            string
	networkID       types.NetworkID
	starkPrivateKey string
	starkSigner     starkex.Signer
	ethereumAddress string
	apiTimeout      time.Duration
	creds           *types.APIKeyCredentials

	// session 在构造时即创建（而不是首次使用时懒加载），
	// 避免并发首调时的重复创建问题
	session    *resty.Client
	ownSession bool

	limiter *ratelimit.PrivateLimiter
}

// Options 客户端可选配置
type Options struct {
	// StarkPrivateKey STARK 私钥（十六进制标量），只作为签名原语的输入，永不发送
	StarkPrivateKey string
	// StarkSigner 外部 STARK 签名原语；签交易动作时必须注入
	StarkSigner starkex.Signer
	// EthereumAddress 默认以太坊地址，用于派生账户 ID
	EthereumAddress string
	// Timeout 单次请求超时
	Timeout time.Duration
	// Session 调用方共享的会话；生命周期归调用方，本层不会关闭它
	Session *resty.Client
	// DisableRateLimit 关闭客户端侧限速（默认开启）
	DisableRateLimit bool
}

// NewClient 创建私有 API 客户端
// 未提供共享会话时，客户端持有一个自己的会话并负责其释放
func NewClient(host string, networkID types.NetworkID, creds *types.APIKeyCredentials, opts *Options) *Client {
	if opts == nil {
		opts = &Options{}
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	session := opts.Session
	ownSession := false
	if session == nil {
		session = newSession(timeout)
		ownSession = true
	}

	var limiter *ratelimit.PrivateLimiter
	if !opts.DisableRateLimit {
		limiter = ratelimit.NewPrivateLimiter()
	}

	return &Client{
		host:            strings.TrimSuffix(host, "/"),
		networkID:       networkID,
		starkPrivateKey: opts.StarkPrivateKey,
		starkSigner:     opts.StarkSigner,
		ethereumAddress: opts.EthereumAddress,
		apiTimeout:      timeout,
		creds:           creds,
		session:         session,
		ownSession:      ownSession,
		limiter:         limiter,
	}
}

// Host 返回主机地址
func (c *Client) Host() string {
	return c.host
}

// NetworkID 返回网络 ID
func (c *Client) NetworkID() types.NetworkID {
	return c.networkID
}

// Close 释放客户端自有的会话
// 调用方传入的共享会话不受影响
func (c *Client) Close() {
	if c.ownSession {
		c.session.GetClient().CloseIdleConnections()
	}
}

// privateRequest 执行一次带 DYDX-* 认证头的私有请求
// 请求体只序列化一次：签名覆盖的字节与实际发送的字节完全一致，
// null 字段通过 omitempty 在序列化前剔除，字段顺序即结构体声明顺序
func (c *Client) privateRequest(ctx context.Context, verb Verb, endpoint string, payload interface{}, out interface{}) error {
	if c.limiter != nil {
		var err error
		if verb == VerbGet {
			err = c.limiter.WaitRead(ctx)
		} else {
			err = c.limiter.WaitWrite(ctx)
		}
		if err != nil {
			return err
		}
	}

	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return err
		}
	}

	isoTimestamp := GenerateNowISO()
	requestPath := apiVersionPrefix + "/" + endpoint
	headers, err := signing.CreatePrivateHeaders(c.creds, isoTimestamp, verb.String(), requestPath, string(body))
	if err != nil {
		return err
	}

	return do(ctx, c.session, verb, c.host+requestPath, headers.Map(), body, c.apiTimeout, out)
}

// get 读请求：参数折叠进查询串，无请求体
func (c *Client) get(ctx context.Context, endpoint string, params map[string]string, out interface{}) error {
	return c.privateRequest(ctx, VerbGet, GenerateQueryPath(endpoint, params), nil, out)
}

// post 写请求
func (c *Client) post(ctx context.Context, endpoint string, payload, out interface{}) error {
	return c.privateRequest(ctx, VerbPost, endpoint, payload, out)
}

// put 写请求
func (c *Client) put(ctx context.Context, endpoint string, payload, out interface{}) error {
	return c.privateRequest(ctx, VerbPut, endpoint, payload, out)
}

// delete 删除请求：参数折叠进查询串
func (c *Client) delete(ctx context.Context, endpoint string, params map[string]string, out interface{}) error {
	return c.privateRequest(ctx, VerbDelete, GenerateQueryPath(endpoint, params), nil, out)
}
