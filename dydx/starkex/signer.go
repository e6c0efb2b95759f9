// Package starkex 负责把交易动作规范化为外部 STARK 签名原语可消费的消息。
// 曲线运算本身（点乘、确定性 nonce、hash-to-field）不在本包实现，
// 由调用方注入的 Signer 完成。
package starkex

import (
	"errors"
	"fmt"
)

// ErrMissingStarkPrivateKey 未提供 STARK 私钥
// 与签名原语内部的格式错误区分开，便于调用方分别处理
var ErrMissingStarkPrivateKey = errors.New("未配置 stark 私钥")

// PreconditionError 构建可签名动作的前置条件不满足
// 在任何网络调用或曲线运算发生之前抛出
type PreconditionError struct {
	Reason string
	Err    error
}

func (e *PreconditionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("签名前置条件不满足: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("签名前置条件不满足: %s", e.Reason)
}

func (e *PreconditionError) Unwrap() error {
	return e.Err
}

// newPreconditionError 包一层便于 errors.As 匹配
func newPreconditionError(format string, args ...interface{}) error {
	return &PreconditionError{Reason: fmt.Sprintf(format, args...)}
}

// Message 外部签名原语消费的有序字段集
// Fields 的顺序由各动作类型固定，签名与校验两侧必须一致
type Message struct {
	Action string
	Fields []string
}

// Signer 外部 STARK 曲线签名原语
// 实现方负责 hash-to-field 编码与曲线运算；私钥为十六进制标量，
// 结构无效时返回错误
type Signer interface {
	Sign(message *Message, privateKeyHex string) (string, error)
}

// SignerFunc 函数形式的 Signer 适配器
type SignerFunc func(message *Message, privateKeyHex string) (string, error)

// Sign 实现 Signer 接口
func (f SignerFunc) Sign(message *Message, privateKeyHex string) (string, error) {
	return f(message, privateKeyHex)
}

// signWith 公共的签名入口：校验私钥存在后委托给外部原语
func signWith(signer Signer, message *Message, privateKeyHex string) (string, error) {
	if privateKeyHex == "" {
		return "", &PreconditionError{Reason: "stark 私钥缺失", Err: ErrMissingStarkPrivateKey}
	}
	if signer == nil {
		return "", newPreconditionError("未注入 stark 签名原语")
	}
	return signer.Sign(message, privateKeyHex)
}
