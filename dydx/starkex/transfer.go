package starkex

import (
	"strconv"

	"github.com/dexbot/godydx/dydx/types"
)

// SignableTransfer 待签名的账户间转账
type SignableTransfer struct {
	NetworkID              types.NetworkID
	SenderPositionID       string
	ReceiverPositionID     string
	ReceiverPublicKey      string
	ClientID               string
	HumanAmount            string
	ExpirationEpochSeconds int64
}

// Message 组装转账签名的有序字段集
func (t *SignableTransfer) Message() (*Message, error) {
	switch {
	case t.SenderPositionID == "":
		return nil, newPreconditionError("转账缺少发送方 position id")
	case t.ReceiverPositionID == "":
		return nil, newPreconditionError("转账缺少接收方 position id")
	case t.ReceiverPublicKey == "":
		return nil, newPreconditionError("转账缺少接收方公钥")
	case t.ClientID == "":
		return nil, newPreconditionError("转账缺少 client id")
	case t.HumanAmount == "":
		return nil, newPreconditionError("转账缺少 amount")
	case t.ExpirationEpochSeconds <= 0:
		return nil, newPreconditionError("转账过期时间无效")
	}

	return &Message{
		Action: "TRANSFER",
		Fields: []string{
			strconv.Itoa(int(t.NetworkID)),
			t.SenderPositionID,
			t.ReceiverPositionID,
			t.ReceiverPublicKey,
			t.ClientID,
			t.HumanAmount,
			strconv.FormatInt(t.ExpirationEpochSeconds, 10),
		},
	}, nil
}

// Sign 校验前置条件后委托外部原语签名
func (t *SignableTransfer) Sign(signer Signer, privateKeyHex string) (string, error) {
	message, err := t.Message()
	if err != nil {
		return "", err
	}
	return signWith(signer, message, privateKeyHex)
}
