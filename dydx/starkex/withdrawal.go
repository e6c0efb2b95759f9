package starkex

import (
	"strconv"

	"github.com/dexbot/godydx/dydx/types"
)

// SignableWithdrawal 待签名的提现
type SignableWithdrawal struct {
	NetworkID              types.NetworkID
	PositionID             string
	ClientID               string
	HumanAmount            string
	ExpirationEpochSeconds int64
}

// Message 组装提现签名的有序字段集
func (w *SignableWithdrawal) Message() (*Message, error) {
	switch {
	case w.PositionID == "":
		return nil, newPreconditionError("提现缺少 position id")
	case w.ClientID == "":
		return nil, newPreconditionError("提现缺少 client id")
	case w.HumanAmount == "":
		return nil, newPreconditionError("提现缺少 amount")
	case w.ExpirationEpochSeconds <= 0:
		return nil, newPreconditionError("提现过期时间无效")
	}

	return &Message{
		Action: "WITHDRAWAL",
		Fields: []string{
			strconv.Itoa(int(w.NetworkID)),
			w.PositionID,
			w.ClientID,
			w.HumanAmount,
			strconv.FormatInt(w.ExpirationEpochSeconds, 10),
		},
	}, nil
}

// Sign 校验前置条件后委托外部原语签名
func (w *SignableWithdrawal) Sign(signer Signer, privateKeyHex string) (string, error) {
	message, err := w.Message()
	if err != nil {
		return "", err
	}
	return signWith(signer, message, privateKeyHex)
}
