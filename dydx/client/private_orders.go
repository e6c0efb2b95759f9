package client

import (
	"context"

	"github.com/dexbot/godydx/dydx/starkex"
	"github.com/dexbot/godydx/dydx/types"
)

// CreateOrderInput 下单参数
// Expiration 和 ExpirationEpochSeconds 必须且只能提供一个；
// ClientID 缺省时自动生成；Signature 缺省时用 STARK 私钥现场签名
type CreateOrderInput struct {
	PositionID             string
	Market                 types.Market
	Side                   types.Side
	Type                   types.OrderType
	PostOnly               bool
	Size                   string
	Price                  string
	LimitFee               string
	TimeInForce            types.TimeInForce
	CancelID               string
	TriggerPrice           string
	TrailingPercent        string
	ClientID               string
	Expiration             string
	ExpirationEpochSeconds int64
	Signature              string
	ReduceOnly             bool
}

// orderPayload 下单请求体，字段顺序即序列化顺序
type orderPayload struct {
	Market          types.Market      `json:"market"`
	Side            types.Side        `json:"side"`
	Type            types.OrderType   `json:"type"`
	TimeInForce     types.TimeInForce `json:"timeInForce"`
	Size            string            `json:"size"`
	Price           string            `json:"price"`
	LimitFee        string            `json:"limitFee"`
	Expiration      string            `json:"expiration"`
	CancelID        string            `json:"cancelId,omitempty"`
	TriggerPrice    string            `json:"triggerPrice,omitempty"`
	TrailingPercent string            `json:"trailingPercent,omitempty"`
	PostOnly        bool              `json:"postOnly"`
	ClientID        string            `json:"clientId"`
	Signature       string            `json:"signature"`
	ReduceOnly      bool              `json:"reduceOnly,omitempty"`
}

// CreateOrder 下单
// 签名前置校验失败时在任何网络调用之前返回错误
func (c *Client) CreateOrder(ctx context.Context, input *CreateOrderInput) (*types.Order, error) {
	clientID := input.ClientID
	if clientID == "" {
		clientID = RandomClientID()
	}
	expiration, expirationEpochSeconds, err := ResolveExpiration(input.Expiration, input.ExpirationEpochSeconds)
	if err != nil {
		return nil, err
	}

	signature := input.Signature
	if signature == "" {
		order := &starkex.SignableOrder{
			NetworkID:              c.networkID,
			PositionID:             input.PositionID,
			ClientID:               clientID,
			Market:                 input.Market,
			Side:                   input.Side,
			HumanSize:              input.Size,
			HumanPrice:             input.Price,
			LimitFee:               input.LimitFee,
			ExpirationEpochSeconds: expirationEpochSeconds,
		}
		signature, err = order.Sign(c.starkSigner, c.starkPrivateKey)
		if err != nil {
			return nil, err
		}
	}

	timeInForce := input.TimeInForce
	if timeInForce == "" {
		timeInForce = types.TimeInForceGTT
	}

	payload := &orderPayload{
		Market:          input.Market,
		Side:            input.Side,
		Type:            input.Type,
		TimeInForce:     timeInForce,
		Size:            input.Size,
		Price:           input.Price,
		LimitFee:        input.LimitFee,
		Expiration:      expiration,
		CancelID:        input.CancelID,
		TriggerPrice:    input.TriggerPrice,
		TrailingPercent: input.TrailingPercent,
		PostOnly:        input.PostOnly,
		ClientID:        clientID,
		Signature:       signature,
		ReduceOnly:      input.ReduceOnly,
	}

	var resp struct {
		Order types.Order `json:"order"`
	}
	if err := c.post(ctx, EndpointOrders, payload, &resp); err != nil {
		return nil, err
	}
	return &resp.Order, nil
}

// OrdersFilter 订单列表的过滤条件
type OrdersFilter struct {
	Market             types.Market
	Status             types.OrderStatus
	Side               types.Side
	Type               types.OrderType
	Limit              string
	CreatedBeforeOrAt  string
	ReturnLatestOrders string
}

// GetOrders 查询订单列表
func (c *Client) GetOrders(ctx context.Context, filter *OrdersFilter) ([]types.Order, error) {
	params := map[string]string{}
	if filter != nil {
		params["market"] = string(filter.Market)
		params["status"] = string(filter.Status)
		params["side"] = string(filter.Side)
		params["type"] = string(filter.Type)
		params["limit"] = filter.Limit
		params["createdBeforeOrAt"] = filter.CreatedBeforeOrAt
		params["returnLatestOrders"] = filter.ReturnLatestOrders
	}
	var resp struct {
		Orders []types.Order `json:"orders"`
	}
	if err := c.get(ctx, EndpointOrders, params, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

// GetActiveOrders 查询活跃订单
func (c *Client) GetActiveOrders(ctx context.Context, market types.Market, side types.Side, id string) ([]types.ActiveOrder, error) {
	var resp struct {
		Orders []types.ActiveOrder `json:"orders"`
	}
	err := c.get(ctx, EndpointActiveOrders, map[string]string{
		"market": string(market),
		"side":   string(side),
		"id":     id,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

// GetOrderByID 按交易所订单 ID 查询
func (c *Client) GetOrderByID(ctx context.Context, orderID string) (*types.Order, error) {
	var resp struct {
		Order types.Order `json:"order"`
	}
	if err := c.get(ctx, EndpointOrders+"/"+orderID, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Order, nil
}

// GetOrderByClientID 按 client id 查询
func (c *Client) GetOrderByClientID(ctx context.Context, clientID string) (*types.Order, error) {
	var resp struct {
		Order types.Order `json:"order"`
	}
	if err := c.get(ctx, EndpointOrders+"/client/"+clientID, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Order, nil
}

// CancelOrder 撤销单个订单
func (c *Client) CancelOrder(ctx context.Context, orderID string) (*types.Order, error) {
	var resp struct {
		CancelOrder types.Order `json:"cancelOrder"`
	}
	if err := c.delete(ctx, EndpointOrders+"/"+orderID, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.CancelOrder, nil
}

// CancelAllOrders 撤销全部订单，market 为空时不限市场
func (c *Client) CancelAllOrders(ctx context.Context, market types.Market) ([]types.Order, error) {
	params := map[string]string{}
	if market != "" {
		params["market"] = string(market)
	}
	var resp struct {
		CancelOrders []types.Order `json:"cancelOrders"`
	}
	if err := c.delete(ctx, EndpointOrders, params, &resp); err != nil {
		return nil, err
	}
	return resp.CancelOrders, nil
}

// CancelActiveOrders 快速撤销活跃订单
// side 在指定 id 时必填
func (c *Client) CancelActiveOrders(ctx context.Context, market types.Market, side types.Side, id string) ([]types.ActiveOrder, error) {
	var resp struct {
		CancelOrders []types.ActiveOrder `json:"cancelOrders"`
	}
	err := c.delete(ctx, EndpointActiveOrders, map[string]string{
		"market": string(market),
		"side":   string(side),
		"id":     id,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.CancelOrders, nil
}

// FillsFilter 成交列表的过滤条件
type FillsFilter struct {
	Market            types.Market
	OrderID           string
	Limit             string
	CreatedBeforeOrAt string
}

// GetFills 查询成交记录
func (c *Client) GetFills(ctx context.Context, filter *FillsFilter) ([]types.Fill, error) {
	params := map[string]string{}
	if filter != nil {
		params["market"] = string(filter.Market)
		params["orderId"] = filter.OrderID
		params["limit"] = filter.Limit
		params["createdBeforeOrAt"] = filter.CreatedBeforeOrAt
	}
	var resp struct {
		Fills []types.Fill `json:"fills"`
	}
	if err := c.get(ctx, EndpointFills, params, &resp); err != nil {
		return nil, err
	}
	return resp.Fills, nil
}
