package signing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"
)

// CredentialsError API 凭证缺失或格式错误
// 属于调用方配置问题，不应在本层内部重试
type CredentialsError struct {
	Field string
	Err   error
}

func (e *CredentialsError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("API 凭证无效 (%s): %v", e.Field, e.Err)
	}
	return fmt.Sprintf("API 凭证缺失: %s", e.Field)
}

func (e *CredentialsError) Unwrap() error {
	return e.Err
}

// BuildSignableMessage 构建私有请求的签名消息
// 拼接顺序固定：ISO 时间戳 + 大写方法名 + 请求路径 + 序列化后的请求体
// 请求体为空时对应空字符串（而不是 "{}"）
func BuildSignableMessage(isoTimestamp, method, requestPath, body string) string {
	return isoTimestamp + strings.ToUpper(method) + requestPath + body
}

// Sign 计算请求消息的 HMAC-SHA256 签名
// secret 为 base64url 编码的二进制密钥；解码失败返回 CredentialsError
// 相同的 (secret, message) 永远产生相同签名
func Sign(secret, message string) (string, error) {
	key, err := base64.URLEncoding.DecodeString(secret)
	if err != nil {
		return "", &CredentialsError{Field: "secret", Err: err}
	}

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(message))

	return base64.URLEncoding.EncodeToString(mac.Sum(nil)), nil
}

// BuildRequestSignature 构建消息并签名，是 BuildSignableMessage + Sign 的组合
func BuildRequestSignature(secret, isoTimestamp, method, requestPath, body string) (string, error) {
	return Sign(secret, BuildSignableMessage(isoTimestamp, method, requestPath, body))
}
