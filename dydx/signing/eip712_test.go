package signing

import (
	"errors"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/dexbot/godydx/dydx/types"
)

func TestBuildOnboardingSignature(t *testing.T) {
	key, err := crypto.HexToECDSA("289c2857d4598e37fb9fe61b1c56eaed3078f32c3f31182cd4bd72e0292d1b39")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	sig, err := BuildOnboardingSignature(key, types.NetworkIDMainnet)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	// r(32) + s(32) + v(1) 的十六进制编码
	if !strings.HasPrefix(sig, "0x") || len(sig) != 132 {
		t.Errorf("签名格式错误: %q (len=%d)", sig, len(sig))
	}
	v := sig[len(sig)-2:]
	if v != "1b" && v != "1c" {
		t.Errorf("v 应规范化为 27/28, 实际 0x%s", v)
	}

	// 确定性签名：相同输入产生相同结果
	again, err := BuildOnboardingSignature(key, types.NetworkIDMainnet)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if sig != again {
		t.Errorf("签名不确定: %q vs %q", sig, again)
	}

	// 不同网络的域分隔符不同，签名必须不同
	goerli, err := BuildOnboardingSignature(key, types.NetworkIDGoerli)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if sig == goerli {
		t.Error("不同 chainId 不应产生相同签名")
	}
}

func TestBuildAPIKeyActionSignature(t *testing.T) {
	key, err := crypto.HexToECDSA("289c2857d4598e37fb9fe61b1c56eaed3078f32c3f31182cd4bd72e0292d1b39")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	withBody, err := BuildAPIKeyActionSignature(
		key, types.NetworkIDMainnet, "POST", "/v3/api-keys", `{"a":1}`, testTimestamp)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	withoutBody, err := BuildAPIKeyActionSignature(
		key, types.NetworkIDMainnet, "GET", "/v3/api-keys", "", testTimestamp)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if withBody == withoutBody {
		t.Error("不同消息不应产生相同签名")
	}
	if !strings.HasPrefix(withoutBody, "0x") || len(withoutBody) != 132 {
		t.Errorf("签名格式错误: %q", withoutBody)
	}
}

func TestSignTypedData_NilKey(t *testing.T) {
	_, err := BuildOnboardingSignature(nil, types.NetworkIDMainnet)
	if err == nil {
		t.Fatal("私钥为 nil 应报错")
	}
	var credErr *CredentialsError
	if !errors.As(err, &credErr) {
		t.Fatalf("err 类型应为 *CredentialsError，实际为 %T", err)
	}
}
