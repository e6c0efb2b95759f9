package starkex

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNonceFromClientID(t *testing.T) {
	tests := []struct {
		clientID string
		want     uint64
	}{
		{clientID: "my-client-id", want: 2790569295},
		{clientID: "This is an ID that one would really like.", want: 3855033021},
	}
	for _, tt := range tests {
		t.Run(tt.clientID, func(t *testing.T) {
			got := NonceFromClientID(tt.clientID)
			assert.Equal(t, tt.want, got.Uint64())
		})
	}
}

func TestNonceFromClientID_Range(t *testing.T) {
	bound := new(big.Int).Lsh(big.NewInt(1), 32)
	for _, id := range []string{"", "a", "一个中文 id", "0x1234"} {
		got := NonceFromClientID(id)
		assert.True(t, got.Sign() >= 0 && got.Cmp(bound) < 0,
			"nonce %s 超出 [0, 2^32) 范围, clientID=%q", got, id)
	}
}

func TestGetTransferERC20Fact(t *testing.T) {
	got, err := GetTransferERC20Fact(
		"0x1234567890123456789012345678901234567890",
		3,
		"123.456",
		"0xCDEF567890123456789012345678901234567890",
		big.NewInt(0x1234567890abcdef),
	)
	require.NoError(t, err)
	assert.Equal(t, "0x679f412fc7fb68aa52ba565948fb9ce5e145e6b0d88a2b1fbf8a2343626428c6", got)
}

func TestGetTransferERC20Fact_CaseInsensitiveAddress(t *testing.T) {
	// 同一地址的不同大小写必须派生出相同 fact
	lower, err := GetTransferERC20Fact(
		"0xabcdef0123456789abcdef0123456789abcdef01",
		6, "100", "0xcdef567890123456789012345678901234567890", big.NewInt(42),
	)
	require.NoError(t, err)
	upper, err := GetTransferERC20Fact(
		"0xABCDEF0123456789ABCDEF0123456789ABCDEF01",
		6, "100", "0xCDEF567890123456789012345678901234567890", big.NewInt(42),
	)
	require.NoError(t, err)
	assert.Equal(t, lower, upper, "大小写不同的地址不应产生不同 fact")
}

func TestGetTransferERC20Fact_InvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		recipient string
		decimals  int
		amount    string
		token     string
		salt      *big.Int
	}{
		{
			name:      "接收地址无效",
			recipient: "not-an-address",
			decimals:  6, amount: "100",
			token: "0xcdef567890123456789012345678901234567890",
			salt:  big.NewInt(1),
		},
		{
			name:      "代币地址无效",
			recipient: "0x1234567890123456789012345678901234567890",
			decimals:  6, amount: "100",
			token: "0x123",
			salt:  big.NewInt(1),
		},
		{
			name:      "金额精度超限",
			recipient: "0x1234567890123456789012345678901234567890",
			decimals:  2, amount: "1.005",
			token: "0xcdef567890123456789012345678901234567890",
			salt:  big.NewInt(1),
		},
		{
			name:      "salt 为 nil",
			recipient: "0x1234567890123456789012345678901234567890",
			decimals:  6, amount: "100",
			token: "0xcdef567890123456789012345678901234567890",
			salt:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GetTransferERC20Fact(tt.recipient, tt.decimals, tt.amount, tt.token, tt.salt)
			require.Error(t, err, "非法输入应报错")

			var pre *PreconditionError
			assert.ErrorAs(t, err, &pre)
		})
	}
}

func TestQuantizeAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		decimals int
		want     int64
		wantErr  bool
	}{
		{name: "整数量化", amount: "100", decimals: 6, want: 100000000},
		{name: "小数量化", amount: "123.456", decimals: 3, want: 123456},
		{name: "精度恰好用满", amount: "0.000001", decimals: 6, want: 1},
		{name: "精度超限", amount: "0.0000001", decimals: 6, wantErr: true},
		{name: "零金额", amount: "0", decimals: 6, wantErr: true},
		{name: "负数金额", amount: "-5", decimals: 6, wantErr: true},
		{name: "非数字", amount: "abc", decimals: 6, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := QuantizeAmount(tt.amount, tt.decimals)
			if tt.wantErr {
				require.Error(t, err, "amount=%s 应报错", tt.amount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Int64())
		})
	}
}
