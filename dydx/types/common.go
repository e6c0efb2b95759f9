package types

// NetworkID 以太坊网络 ID
type NetworkID int

const (
	NetworkIDMainnet NetworkID = 1
	NetworkIDRopsten NetworkID = 3
	NetworkIDGoerli  NetworkID = 5
)

// Side 订单方向
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// OrderType 订单类型
type OrderType string

const (
	OrderTypeLimit        OrderType = "LIMIT"
	OrderTypeStop         OrderType = "STOP"
	OrderTypeTrailingStop OrderType = "TRAILING_STOP"
	OrderTypeTakeProfit   OrderType = "TAKE_PROFIT"
)

// TimeInForce 订单有效期类型
type TimeInForce string

const (
	TimeInForceGTT TimeInForce = "GTT" // Good Till Time - 到期前一直有效
	TimeInForceFOK TimeInForce = "FOK" // Fill or Kill - 全部成交或全部取消
	TimeInForceIOC TimeInForce = "IOC" // Immediate or Cancel - 立即成交，剩余取消
)

// OrderStatus 订单状态
type OrderStatus string

const (
	OrderStatusPending     OrderStatus = "PENDING"
	OrderStatusOpen        OrderStatus = "OPEN"
	OrderStatusFilled      OrderStatus = "FILLED"
	OrderStatusCanceled    OrderStatus = "CANCELED"
	OrderStatusUntriggered OrderStatus = "UNTRIGGERED"
)

// Market 交易市场
type Market string

const (
	MarketBTCUSD  Market = "BTC-USD"
	MarketETHUSD  Market = "ETH-USD"
	MarketLINKUSD Market = "LINK-USD"
	MarketSOLUSD  Market = "SOL-USD"
)

// 抵押资产相关常量
const (
	CollateralAsset         = "USDC"
	CollateralTokenDecimals = 6
)

// APIKeyCredentials API 密钥凭证
// Secret 为 base64url 编码的二进制密钥，进程生命周期内不可变
type APIKeyCredentials struct {
	Key        string `json:"key"`
	Secret     string `json:"secret"`
	Passphrase string `json:"passphrase"`
}
