package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/dexbot/godydx/pkg/logger"
)

// Verb 显式枚举的 HTTP 动词
// 用枚举代替字符串分发，杜绝不支持动词的运行时失败
type Verb int

const (
	VerbGet Verb = iota
	VerbPost
	VerbPut
	VerbDelete
)

// String 返回大写的动词名，签名消息使用同一形式
func (v Verb) String() string {
	switch v {
	case VerbGet:
		return "GET"
	case VerbPost:
		return "POST"
	case VerbPut:
		return "PUT"
	case VerbDelete:
		return "DELETE"
	}
	return fmt.Sprintf("Verb(%d)", int(v))
}

const defaultTimeout = 10 * time.Second

// newSession 创建带默认请求头的会话
// 不开启 resty 的自动重试：重试策略由调用方负责，本层只做单次分发
func newSession(timeout time.Duration) *resty.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", "godydx-client")
}

// do 执行一次请求并分类响应
// session 为 nil 时创建临时会话，并保证在任何退出路径上释放；
// 调用方传入的会话永远不会被本层关闭。
// 2xx 且响应体为空时按空对象 "{}" 处理；非 2xx 包装为 APIError；
// 传输层失败包装为 TransportError。不做任何静默重试。
func do(
	ctx context.Context,
	session *resty.Client,
	verb Verb,
	requestURL string,
	headers map[string]string,
	body []byte,
	timeout time.Duration,
	out interface{},
) error {
	if session == nil {
		temp := newSession(timeout)
		defer temp.GetClient().CloseIdleConnections()
		session = temp
	}

	req := session.R().SetContext(ctx)
	for k, v := range headers {
		req.SetHeader(k, v)
	}
	if len(body) > 0 {
		req.SetHeader("Content-Type", "application/json")
		req.SetBody(body)
	}

	logger.Debugf("dydx 请求: %s %s", verb, requestURL)

	var resp *resty.Response
	var err error
	switch verb {
	case VerbGet:
		resp, err = req.Get(requestURL)
	case VerbPost:
		resp, err = req.Post(requestURL)
	case VerbPut:
		resp, err = req.Put(requestURL)
	case VerbDelete:
		resp, err = req.Delete(requestURL)
	default:
		return fmt.Errorf("不支持的 HTTP 动词: %d", int(verb))
	}
	if err != nil {
		return &TransportError{Method: verb.String(), URL: requestURL, Err: err}
	}

	if !resp.IsSuccess() {
		return responseToError(resp, verb, requestURL)
	}

	raw := resp.Body()
	if len(raw) == 0 {
		// 空响应体统一按空对象处理，调用方无需判空
		raw = []byte("{}")
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("解析响应失败: %w, 响应体: %s", err, string(raw))
		}
	}
	return nil
}

// responseToError 把非 2xx 响应包装为 APIError
// 响应体优先按 JSON 解析，失败时保留原始文本
func responseToError(resp *resty.Response, verb Verb, requestURL string) error {
	raw := resp.Body()
	var parsed interface{}
	if len(raw) > 0 && json.Unmarshal(raw, &parsed) == nil {
		return &APIError{StatusCode: resp.StatusCode(), Body: parsed, Method: verb.String(), URL: requestURL}
	}
	return &APIError{StatusCode: resp.StatusCode(), Body: string(raw), Method: verb.String(), URL: requestURL}
}
