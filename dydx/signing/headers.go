package signing

import (
	"github.com/dexbot/godydx/dydx/types"
)

// 私有请求头名称
const (
	HeaderSignature  = "DYDX-SIGNATURE"
	HeaderAPIKey     = "DYDX-API-KEY"
	HeaderTimestamp  = "DYDX-TIMESTAMP"
	HeaderPassphrase = "DYDX-PASSPHRASE"
)

// PrivateHeaders 私有请求头集合
// 由凭证和单个请求的签名消息派生，生命周期为一次请求
type PrivateHeaders struct {
	Signature  string
	APIKey     string
	Timestamp  string
	Passphrase string
}

// Map 转换为可直接附加到请求上的 header 映射
func (h *PrivateHeaders) Map() map[string]string {
	return map[string]string{
		HeaderSignature:  h.Signature,
		HeaderAPIKey:     h.APIKey,
		HeaderTimestamp:  h.Timestamp,
		HeaderPassphrase: h.Passphrase,
	}
}

// CreatePrivateHeaders 为一次私有请求生成 DYDX-* 认证头
// 凭证字段缺失返回 CredentialsError；签名在此处计算，时间戳包含在签名消息内，
// 重放窗口由服务端时钟偏差容忍度决定
func CreatePrivateHeaders(
	creds *types.APIKeyCredentials,
	isoTimestamp string,
	method string,
	requestPath string,
	body string,
) (*PrivateHeaders, error) {
	if creds == nil {
		return nil, &CredentialsError{Field: "api_key_credentials"}
	}
	if creds.Key == "" {
		return nil, &CredentialsError{Field: "key"}
	}
	if creds.Passphrase == "" {
		return nil, &CredentialsError{Field: "passphrase"}
	}

	signature, err := BuildRequestSignature(creds.Secret, isoTimestamp, method, requestPath, body)
	if err != nil {
		return nil, err
	}

	return &PrivateHeaders{
		Signature:  signature,
		APIKey:     creds.Key,
		Timestamp:  isoTimestamp,
		Passphrase: creds.Passphrase,
	}, nil
}
