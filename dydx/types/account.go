package types

// Account 交易账户
type Account struct {
	ID                 string              `json:"id"`
	PositionID         string              `json:"positionId"`
	StarkKey           string              `json:"starkKey"`
	EthereumAddress    string              `json:"ethereumAddress"`
	AccountNumber      string              `json:"accountNumber"`
	QuoteBalance       string              `json:"quoteBalance"`
	PendingDeposits    string              `json:"pendingDeposits"`
	PendingWithdrawals string              `json:"pendingWithdrawals"`
	OpenPositions      map[string]Position `json:"openPositions"`
	CreatedAt          string              `json:"createdAt"`
}

// Position 持仓
type Position struct {
	Market        Market `json:"market"`
	Status        string `json:"status"`
	Side          string `json:"side"`
	Size          string `json:"size"`
	MaxSize       string `json:"maxSize"`
	EntryPrice    string `json:"entryPrice"`
	ExitPrice     string `json:"exitPrice,omitempty"`
	UnrealizedPnl string `json:"unrealizedPnl"`
	RealizedPnl   string `json:"realizedPnl"`
	SumOpen       string `json:"sumOpen"`
	SumClose      string `json:"sumClose"`
	NetFunding    string `json:"netFunding"`
	CreatedAt     string `json:"createdAt"`
	ClosedAt      string `json:"closedAt,omitempty"`
}

// User 用户信息
type User struct {
	EthereumAddress    string `json:"ethereumAddress"`
	IsRegistered       bool   `json:"isRegistered"`
	Email              string `json:"email,omitempty"`
	Username           string `json:"username,omitempty"`
	IsEmailVerified    bool   `json:"isEmailVerified"`
	Country            string `json:"country,omitempty"`
	LanguageCode       string `json:"languageCode,omitempty"`
	IsSharingUsername  bool   `json:"isSharingUsername"`
	IsSharingAddress   bool   `json:"isSharingAddress"`
	DydxTokenBalance   string `json:"dydxTokenBalance,omitempty"`
	StakedDydxBalance  string `json:"stakedDydxTokenBalance,omitempty"`
	MakerFeeRate       string `json:"makerFeeRate,omitempty"`
	TakerFeeRate       string `json:"takerFeeRate,omitempty"`
	MakerVolume30D     string `json:"makerVolume30D,omitempty"`
	TakerVolume30D     string `json:"takerVolume30D,omitempty"`
	Fees30D            string `json:"fees30D,omitempty"`
	ReferredByAffiliateLink string `json:"referredByAffiliateLink,omitempty"`
}

// Transfer 转账记录（充值、提现、跨账户转账）
type Transfer struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	DebitAsset      string `json:"debitAsset"`
	CreditAsset     string `json:"creditAsset"`
	DebitAmount     string `json:"debitAmount"`
	CreditAmount    string `json:"creditAmount"`
	TransactionHash string `json:"transactionHash,omitempty"`
	Status          string `json:"status"`
	ClientID        string `json:"clientId,omitempty"`
	FromAddress     string `json:"fromAddress,omitempty"`
	ToAddress       string `json:"toAddress,omitempty"`
	CreatedAt       string `json:"createdAt"`
	ConfirmedAt     string `json:"confirmedAt,omitempty"`
}

// FundingPayment 资金费用记录
type FundingPayment struct {
	Market       Market `json:"market"`
	Payment      string `json:"payment"`
	Rate         string `json:"rate"`
	PositionSize string `json:"positionSize"`
	Price        string `json:"price"`
	EffectiveAt  string `json:"effectiveAt"`
}

// HistoricalPNLTick 历史盈亏打点
type HistoricalPNLTick struct {
	Equity       string `json:"equity"`
	TotalPnl     string `json:"totalPnl"`
	NetTransfers string `json:"netTransfers"`
	CreatedAt    string `json:"createdAt"`
	AccountID    string `json:"accountId"`
}
