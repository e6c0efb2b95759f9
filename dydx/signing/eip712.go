package signing

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/dexbot/godydx/dydx/types"
)

// BuildOnboardingSignature 构建开户动作的 EIP712 签名
// 用于 POST /v3/onboarding 以及账户恢复等需要以太坊私钥证明的接口
func BuildOnboardingSignature(privateKey *ecdsa.PrivateKey, networkID types.NetworkID) (string, error) {
	message := apitypes.TypedDataMessage{
		"action":     OnboardingAction,
		"onlySignOn": OnboardingOnlySignOn,
	}
	messageTypes := []apitypes.Type{
		{Name: "action", Type: "string"},
		{Name: "onlySignOn", Type: "string"},
	}
	return signTypedData(privateKey, networkID, messageTypes, message)
}

// BuildAPIKeyActionSignature 构建 API 密钥管理请求的 EIP712 签名
// 消息内容为 {method, requestPath, body, timestamp}，body 为空时不参与签名
func BuildAPIKeyActionSignature(
	privateKey *ecdsa.PrivateKey,
	networkID types.NetworkID,
	method string,
	requestPath string,
	body string,
	isoTimestamp string,
) (string, error) {
	messageTypes := []apitypes.Type{
		{Name: "method", Type: "string"},
		{Name: "requestPath", Type: "string"},
		{Name: "timestamp", Type: "string"},
	}
	message := apitypes.TypedDataMessage{
		"method":      method,
		"requestPath": requestPath,
		"timestamp":   isoTimestamp,
	}
	if body != "" {
		messageTypes = append(messageTypes, apitypes.Type{Name: "body", Type: "string"})
		message["body"] = body
	}
	return signTypedData(privateKey, networkID, messageTypes, message)
}

// signTypedData 按 dYdX 的 EIP712 域签名任意消息
func signTypedData(
	privateKey *ecdsa.PrivateKey,
	networkID types.NetworkID,
	messageTypes []apitypes.Type,
	message apitypes.TypedDataMessage,
) (string, error) {
	if privateKey == nil {
		return "", &CredentialsError{Field: "ethereum_private_key"}
	}

	typedData := apitypes.TypedData{
		Types: apitypes.Types{
			"dYdX": messageTypes,
			"EIP712Domain": {
				{Name: "name", Type: "string"},
				{Name: "version", Type: "string"},
				{Name: "chainId", Type: "uint256"},
			},
		},
		PrimaryType: "dYdX",
		Domain: apitypes.TypedDataDomain{
			Name:    EIP712DomainName,
			Version: EIP712DomainVersion,
			ChainId: math.NewHexOrDecimal256(int64(networkID)),
		},
		Message: message,
	}

	domainSeparator, err := typedData.HashStruct("EIP712Domain", typedData.Domain.Map())
	if err != nil {
		return "", fmt.Errorf("计算域分隔符失败: %w", err)
	}
	typedDataHash, err := typedData.HashStruct(typedData.PrimaryType, typedData.Message)
	if err != nil {
		return "", fmt.Errorf("计算消息哈希失败: %w", err)
	}

	// 最终哈希：\x19\x01 + domainSeparator + typedDataHash
	rawData := []byte("\x19\x01")
	rawData = append(rawData, domainSeparator...)
	rawData = append(rawData, typedDataHash...)
	hash := crypto.Keccak256(rawData)

	signature, err := crypto.Sign(hash, privateKey)
	if err != nil {
		return "", fmt.Errorf("EIP712 签名失败: %w", err)
	}
	// crypto.Sign 返回 r(32) + s(32) + v(1)，v 需要规范化到 27/28
	if signature[64] < 27 {
		signature[64] += 27
	}
	return hexutil.Encode(signature), nil
}
