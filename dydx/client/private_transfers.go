package client

import (
	"context"
	"strings"

	"github.com/dexbot/godydx/dydx/starkex"
	"github.com/dexbot/godydx/dydx/types"
)

// GetTransfers 查询转账记录
func (c *Client) GetTransfers(ctx context.Context, transferType, limit, createdBeforeOrAt string) ([]types.Transfer, error) {
	var resp struct {
		Transfers []types.Transfer `json:"transfers"`
	}
	err := c.get(ctx, EndpointTransfers, map[string]string{
		"type":              transferType,
		"limit":             limit,
		"createdBeforeOrAt": createdBeforeOrAt,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Transfers, nil
}

// CreateWithdrawalInput 提现参数
type CreateWithdrawalInput struct {
	PositionID             string
	Amount                 string
	Asset                  string
	ClientID               string
	Expiration             string
	ExpirationEpochSeconds int64
	Signature              string
}

// withdrawalPayload 提现请求体
type withdrawalPayload struct {
	Amount     string `json:"amount"`
	Asset      string `json:"asset"`
	Expiration string `json:"expiration"`
	ClientID   string `json:"clientId"`
	Signature  string `json:"signature"`
}

// CreateWithdrawal 发起提现
func (c *Client) CreateWithdrawal(ctx context.Context, input *CreateWithdrawalInput) (*types.Transfer, error) {
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
		withdrawal := &starkex.SignableWithdrawal{
			NetworkID:              c.networkID,
			PositionID:             input.PositionID,
			ClientID:               clientID,
			HumanAmount:            input.Amount,
			ExpirationEpochSeconds: expirationEpochSeconds,
		}
		signature, err = withdrawal.Sign(c.starkSigner, c.starkPrivateKey)
		if err != nil {
			return nil, err
		}
	}

	payload := &withdrawalPayload{
		Amount:     input.Amount,
		Asset:      input.Asset,
		Expiration: expiration,
		ClientID:   clientID,
		Signature:  signature,
	}
	var resp struct {
		Withdrawal types.Transfer `json:"withdrawal"`
	}
	if err := c.post(ctx, EndpointWithdrawals, payload, &resp); err != nil {
		return nil, err
	}
	return &resp.Withdrawal, nil
}

// CreateFastWithdrawalInput 快速提现参数
// 走条件转账：做市方先行在链上垫付，由 fact 把转账绑定到垫付条件
type CreateFastWithdrawalInput struct {
	PositionID             string
	CreditAsset            string
	CreditAmount           string
	DebitAmount            string
	ToAddress              string
	LPPositionID           string
	LPStarkPublicKey       string
	SlippageTolerance      string
	ClientID               string
	Expiration             string
	ExpirationEpochSeconds int64
	Signature              string
}

// fastWithdrawalPayload 快速提现请求体
type fastWithdrawalPayload struct {
	CreditAsset       string `json:"creditAsset"`
	CreditAmount      string `json:"creditAmount"`
	DebitAmount       string `json:"debitAmount"`
	SlippageTolerance string `json:"slippageTolerance,omitempty"`
	ToAddress         string `json:"toAddress"`
	LPPositionID      string `json:"lpPositionId"`
	Expiration        string `json:"expiration"`
	ClientID          string `json:"clientId"`
	Signature         string `json:"signature"`
}

// CreateFastWithdrawal 发起快速提现
// fact 由 (接收地址小写, 抵押代币合约, 代币精度, 金额, client id 派生的 salt) 确定性派生
func (c *Client) CreateFastWithdrawal(ctx context.Context, input *CreateFastWithdrawalInput) (*types.Transfer, error) {
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
		contracts, err := types.GetContractConfig(c.networkID)
		if err != nil {
			return nil, err
		}
		fact, err := starkex.GetTransferERC20Fact(
			input.ToAddress,
			types.CollateralTokenDecimals,
			input.CreditAmount,
			contracts.CollateralToken,
			starkex.NonceFromClientID(clientID),
		)
		if err != nil {
			return nil, err
		}
		transfer := &starkex.SignableConditionalTransfer{
			NetworkID:              c.networkID,
			SenderPositionID:       input.PositionID,
			ReceiverPositionID:     input.LPPositionID,
			ReceiverPublicKey:      input.LPStarkPublicKey,
			FactRegistryAddress:    contracts.FactRegistry,
			Fact:                   fact,
			ClientID:               clientID,
			HumanAmount:            input.DebitAmount,
			ExpirationEpochSeconds: expirationEpochSeconds,
		}
		signature, err = transfer.Sign(c.starkSigner, c.starkPrivateKey)
		if err != nil {
			return nil, err
		}
	}

	payload := &fastWithdrawalPayload{
		CreditAsset:       input.CreditAsset,
		CreditAmount:      input.CreditAmount,
		DebitAmount:       input.DebitAmount,
		SlippageTolerance: input.SlippageTolerance,
		ToAddress:         strings.ToLower(input.ToAddress),
		LPPositionID:      input.LPPositionID,
		Expiration:        expiration,
		ClientID:          clientID,
		Signature:         signature,
	}
	var resp struct {
		Withdrawal types.Transfer `json:"withdrawal"`
	}
	if err := c.post(ctx, EndpointFastWithdrawals, payload, &resp); err != nil {
		return nil, err
	}
	return &resp.Withdrawal, nil
}

// CreateTransferInput 账户间转账参数
type CreateTransferInput struct {
	PositionID             string
	ReceiverAccountID      string
	ReceiverPositionID     string
	ReceiverPublicKey      string
	Amount                 string
	ClientID               string
	Expiration             string
	ExpirationEpochSeconds int64
	Signature              string
}

// transferPayload 账户间转账请求体
type transferPayload struct {
	Amount            string `json:"amount"`
	ClientID          string `json:"clientId"`
	Expiration        string `json:"expiration"`
	ReceiverAccountID string `json:"receiverAccountId"`
	Signature         string `json:"signature"`
}

// CreateTransfer 发起账户间转账
func (c *Client) CreateTransfer(ctx context.Context, input *CreateTransferInput) (*types.Transfer, error) {
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
		transfer := &starkex.SignableTransfer{
			NetworkID:              c.networkID,
			SenderPositionID:       input.PositionID,
			ReceiverPositionID:     input.ReceiverPositionID,
			ReceiverPublicKey:      input.ReceiverPublicKey,
			ClientID:               clientID,
			HumanAmount:            input.Amount,
			ExpirationEpochSeconds: expirationEpochSeconds,
		}
		signature, err = transfer.Sign(c.starkSigner, c.starkPrivateKey)
		if err != nil {
			return nil, err
		}
	}

	payload := &transferPayload{
		Amount:            input.Amount,
		ClientID:          clientID,
		Expiration:        expiration,
		ReceiverAccountID: input.ReceiverAccountID,
		Signature:         signature,
	}
	var resp struct {
		Transfer types.Transfer `json:"transfer"`
	}
	if err := c.post(ctx, EndpointTransfers, payload, &resp); err != nil {
		return nil, err
	}
	return &resp.Transfer, nil
}
