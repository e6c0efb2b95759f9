package starkex

import (
	"strconv"

	"github.com/dexbot/godydx/dydx/types"
)

// SignableConditionalTransfer 待签名的条件转账（快速提现）
// Fact 把转账绑定到链上条件，签名与校验两侧必须按相同输入派生
type SignableConditionalTransfer struct {
	NetworkID              types.NetworkID
	SenderPositionID       string
	ReceiverPositionID     string
	ReceiverPublicKey      string
	FactRegistryAddress    string
	Fact                   string
	ClientID               string
	HumanAmount            string
	ExpirationEpochSeconds int64
}

// Message 组装条件转账签名的有序字段集
func (t *SignableConditionalTransfer) Message() (*Message, error) {
	switch {
	case t.SenderPositionID == "":
		return nil, newPreconditionError("条件转账缺少发送方 position id")
	case t.ReceiverPositionID == "":
		return nil, newPreconditionError("条件转账缺少接收方 position id")
	case t.ReceiverPublicKey == "":
		return nil, newPreconditionError("条件转账缺少接收方公钥")
	case t.FactRegistryAddress == "":
		return nil, newPreconditionError("条件转账缺少 fact 注册合约地址")
	case t.Fact == "":
		return nil, newPreconditionError("条件转账缺少 fact")
	case t.ClientID == "":
		return nil, newPreconditionError("条件转账缺少 client id")
	case t.HumanAmount == "":
		return nil, newPreconditionError("条件转账缺少 amount")
	case t.ExpirationEpochSeconds <= 0:
		return nil, newPreconditionError("条件转账过期时间无效")
	}

	return &Message{
		Action: "CONDITIONAL_TRANSFER",
		Fields: []string{
			strconv.Itoa(int(t.NetworkID)),
			t.SenderPositionID,
			t.ReceiverPositionID,
			t.ReceiverPublicKey,
			t.FactRegistryAddress,
			t.Fact,
			t.ClientID,
			t.HumanAmount,
			strconv.FormatInt(t.ExpirationEpochSeconds, 10),
		},
	}, nil
}

// Sign 校验前置条件后委托外部原语签名
func (t *SignableConditionalTransfer) Sign(signer Signer, privateKeyHex string) (string, error) {
	message, err := t.Message()
	if err != nil {
		return "", err
	}
	return signWith(signer, message, privateKeyHex)
}
