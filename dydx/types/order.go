package types

// Order 交易所返回的订单
type Order struct {
	ID              string      `json:"id"`
	ClientID        string      `json:"clientId"`
	AccountID       string      `json:"accountId"`
	Market          Market      `json:"market"`
	Side            Side        `json:"side"`
	Price           string      `json:"price"`
	TriggerPrice    string      `json:"triggerPrice,omitempty"`
	TrailingPercent string      `json:"trailingPercent,omitempty"`
	Size            string      `json:"size"`
	RemainingSize   string      `json:"remainingSize"`
	Type            OrderType   `json:"type"`
	CreatedAt       string      `json:"createdAt"`
	UnfillableAt    string      `json:"unfillableAt,omitempty"`
	ExpiresAt       string      `json:"expiresAt"`
	Status          OrderStatus `json:"status"`
	TimeInForce     TimeInForce `json:"timeInForce"`
	PostOnly        bool        `json:"postOnly"`
	ReduceOnly      bool        `json:"reduceOnly"`
	CancelReason    string      `json:"cancelReason,omitempty"`
}

// ActiveOrder 快速撤单接口返回的活跃订单
type ActiveOrder struct {
	ID            string `json:"id"`
	AccountID     string `json:"accountId"`
	RemainingSize string `json:"remainingSize"`
	Price         string `json:"price"`
	Market        Market `json:"market"`
	Side          Side   `json:"side"`
	Size          string `json:"size"`
}

// Fill 成交记录
type Fill struct {
	ID        string `json:"id"`
	Side      Side   `json:"side"`
	Liquidity string `json:"liquidity"`
	Type      string `json:"type"`
	Market    Market `json:"market"`
	OrderID   string `json:"orderId"`
	Price     string `json:"price"`
	Size      string `json:"size"`
	Fee       string `json:"fee"`
	CreatedAt string `json:"createdAt"`
}
