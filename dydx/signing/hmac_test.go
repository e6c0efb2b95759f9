package signing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 固定向量：secret 为 "secret" 的 base64url 编码
const (
	testSecret    = "c2VjcmV0"
	testTimestamp = "2023-01-01T00:00:00.000Z"
)

func TestBuildSignableMessage(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   string
	}{
		{
			name:   "GET 无请求体",
			method: "GET",
			path:   "/v3/accounts",
			body:   "",
			want:   "2023-01-01T00:00:00.000ZGET/v3/accounts",
		},
		{
			name:   "小写方法名转大写",
			method: "get",
			path:   "/v3/accounts",
			body:   "",
			want:   "2023-01-01T00:00:00.000ZGET/v3/accounts",
		},
		{
			name:   "POST 带请求体",
			method: "POST",
			path:   "/v3/orders",
			body:   `{"market":"BTC-USD"}`,
			want:   `2023-01-01T00:00:00.000ZPOST/v3/orders{"market":"BTC-USD"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildSignableMessage(testTimestamp, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSign_KnownVector(t *testing.T) {
	got, err := Sign(testSecret, testTimestamp+"GET/v3/accounts")
	require.NoError(t, err)
	assert.Equal(t, "lA0lHT48YTGGbxkDAUZGvSy19zwvtVgyk3Q7gEuc-Vg=", got)
}

func TestSign_Deterministic(t *testing.T) {
	a, err := Sign(testSecret, "some message")
	require.NoError(t, err)
	b, err := Sign(testSecret, "some message")
	require.NoError(t, err)
	assert.Equal(t, a, b, "相同输入应产生相同签名")
}

func TestSign_MessageSensitivity(t *testing.T) {
	// 消息任何一个字符变化都应改变签名
	a, err := Sign(testSecret, testTimestamp+"GET/v3/accounts")
	require.NoError(t, err)
	b, err := Sign(testSecret, testTimestamp+"GET/v3/account")
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "不同消息不应产生相同签名")
}

func TestSign_InvalidSecret(t *testing.T) {
	_, err := Sign("not-valid-base64!!", "message")
	require.Error(t, err, "非法 secret 应报错")

	var credErr *CredentialsError
	require.ErrorAs(t, err, &credErr)
	assert.Equal(t, "secret", credErr.Field)
}

func TestBuildRequestSignature(t *testing.T) {
	got, err := BuildRequestSignature(testSecret, testTimestamp, "GET", "/v3/accounts", "")
	require.NoError(t, err)

	want, err := Sign(testSecret, BuildSignableMessage(testTimestamp, "GET", "/v3/accounts", ""))
	require.NoError(t, err)
	assert.Equal(t, want, got, "组合签名应与分步签名一致")
}
