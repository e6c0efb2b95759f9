package client

// apiVersionPrefix 私有 REST API 版本前缀
const apiVersionPrefix = "/v3"

// 私有 API 端点
const (
	EndpointAPIKeys                  = "api-keys"
	EndpointRegistration             = "registration"
	EndpointUsers                    = "users"
	EndpointAccounts                 = "accounts"
	EndpointPositions                = "positions"
	EndpointOrders                   = "orders"
	EndpointActiveOrders             = "active-orders"
	EndpointFills                    = "fills"
	EndpointTransfers                = "transfers"
	EndpointWithdrawals              = "withdrawals"
	EndpointFastWithdrawals          = "fast-withdrawals"
	EndpointFunding                  = "funding"
	EndpointHistoricalPNL            = "historical-pnl"
	EndpointSendVerificationEmail    = "emails/send-verification-email"
	EndpointRewardsWeight            = "rewards/weight"
	EndpointRewardsLiquidityProvider = "rewards/liquidity-provider"
	EndpointRewardsLiquidity         = "rewards/liquidity"
	EndpointRewardsRetroactiveMining = "rewards/retroactive-mining"
	EndpointTestnetTokens            = "testnet/tokens"
)
