package starkex

import (
	"strconv"

	"github.com/dexbot/godydx/dydx/types"
)

// SignableOrder 待签名的订单
// 金额与价格均为人类可读的十进制字符串，不做任何客户端侧舍入
type SignableOrder struct {
	NetworkID              types.NetworkID
	PositionID             string
	ClientID               string
	Market                 types.Market
	Side                   types.Side
	HumanSize              string
	HumanPrice             string
	LimitFee               string
	ExpirationEpochSeconds int64
}

// Message 组装订单签名的有序字段集
func (o *SignableOrder) Message() (*Message, error) {
	switch {
	case o.PositionID == "":
		return nil, newPreconditionError("订单缺少 position id")
	case o.ClientID == "":
		return nil, newPreconditionError("订单缺少 client id")
	case o.Market == "":
		return nil, newPreconditionError("订单缺少 market")
	case o.Side != types.SideBuy && o.Side != types.SideSell:
		return nil, newPreconditionError("订单方向无效: %q", o.Side)
	case o.HumanSize == "":
		return nil, newPreconditionError("订单缺少 size")
	case o.HumanPrice == "":
		return nil, newPreconditionError("订单缺少 price")
	case o.LimitFee == "":
		return nil, newPreconditionError("订单缺少 limit fee")
	case o.ExpirationEpochSeconds <= 0:
		return nil, newPreconditionError("订单过期时间无效")
	}

	return &Message{
		Action: "ORDER",
		Fields: []string{
			strconv.Itoa(int(o.NetworkID)),
			o.PositionID,
			o.ClientID,
			string(o.Market),
			string(o.Side),
			o.HumanSize,
			o.HumanPrice,
			o.LimitFee,
			strconv.FormatInt(o.ExpirationEpochSeconds, 10),
		},
	}, nil
}

// Sign 校验前置条件后委托外部原语签名
func (o *SignableOrder) Sign(signer Signer, privateKeyHex string) (string, error) {
	message, err := o.Message()
	if err != nil {
		return "", err
	}
	return signWith(signer, message, privateKeyHex)
}
