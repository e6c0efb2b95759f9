package client

import (
	"fmt"
)

// APIError 交易所返回的非 2xx 响应
// Body 为尽力解析后的 JSON 结构，解析失败时退化为原始文本；
// Method/URL 保留原始请求的引用，便于调用方定位
type APIError struct {
	StatusCode int
	Body       interface{}
	Method     string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("dydx api 错误: status=%d %s %s: %v", e.StatusCode, e.Method, e.URL, e.Body)
}

// TransportError 传输层失败（连接、超时、DNS 等）
// 与 APIError 区分开：这类失败没有 HTTP 状态码
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("dydx 传输错误: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
